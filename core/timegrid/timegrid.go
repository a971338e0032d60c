// Package timegrid lays out timetable slots on the weekly schedule grid.
// It converts time-of-day strings into fractional vertical positions inside
// a fixed visible window, and computes the dates of the six-day working week
// around a reference date.
package timegrid

import (
	"regexp"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// MinHeightFrac keeps very short slots tall enough to stay visible and
// clickable; the presentation layer may enforce a pixel minimum on top.
const MinHeightFrac = 0.02

// Weekdays are the portal's six working days, in column order.
var Weekdays = []string{"lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"}

var timeRegex = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// ParseTimeOfDay parses a "H:MM"/"HH:MM" time-of-day string into minutes
// since midnight. ok is false for any other shape or out-of-range values;
// callers branch on it instead of handling errors.
func ParseTimeOfDay(s string) (minutes int, ok bool) {
	m := timeRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	hour, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	if hour > 23 || min > 59 {
		return 0, false
	}
	return hour*60 + min, true
}

// ParseWindow parses the visible day window bounds (both "HH:MM"). A window
// that does not parse or does not span forward would blank the whole grid,
// so it is an error the caller must not ignore.
func ParseWindow(start, end string) (startMin, endMin int, err error) {
	startMin, ok := ParseTimeOfDay(start)
	if !ok {
		return 0, 0, errors.Errorf("invalid window start %q", start)
	}
	endMin, ok = ParseTimeOfDay(end)
	if !ok {
		return 0, 0, errors.Errorf("invalid window end %q", end)
	}
	if endMin <= startMin {
		return 0, 0, errors.Errorf("window end %q is not after start %q", end, start)
	}
	return startMin, endMin, nil
}

// Position is the vertical placement of a slot, as fractions of the visible
// window span.
type Position struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// ComputePosition places the [start, end] interval inside the visible window
// (bounds in minutes since midnight). It returns nil when either endpoint
// fails to parse or the interval is degenerate (end <= start); such slots
// are simply not drawn. Overlapping slots are positioned independently, no
// overlap resolution is attempted.
func ComputePosition(start, end string, windowStart, windowEnd int) *Position {
	startMin, ok := ParseTimeOfDay(start)
	if !ok {
		return nil
	}
	endMin, ok := ParseTimeOfDay(end)
	if !ok || endMin <= startMin {
		return nil
	}
	span := float64(windowEnd - windowStart)
	if span <= 0 {
		return nil
	}

	top := float64(startMin-windowStart) / span
	if top < 0 {
		top = 0
	} else if top > 1 {
		top = 1
	}

	bottom := float64(endMin-windowStart) / span
	if bottom > 1 {
		bottom = 1
	}

	height := bottom - top
	if height < MinHeightFrac {
		height = MinHeightFrac
	}
	return &Position{Top: top, Height: height}
}

// WeekDates returns the Monday through Saturday of the week containing ref.
// A Sunday reference maps to the preceding Monday, not the upcoming one.
func WeekDates(ref time.Time) [6]time.Time {
	delta := 1 - int(ref.Weekday())
	if ref.Weekday() == time.Sunday {
		delta = -6
	}
	monday := ref.AddDate(0, 0, delta)

	var dates [6]time.Time
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i)
	}
	return dates
}

// DayIndex maps a working-day code to its grid column; ok is false for
// unknown codes (dimanche included).
func DayIndex(day string) (int, bool) {
	for i, d := range Weekdays {
		if d == day {
			return i, true
		}
	}
	return 0, false
}
