package schedule

import (
	"sort"
	"time"

	"github.com/Konou0luc/ucao-academy-sub000/core/timegrid"
)

type (
	// PositionedSlot is a Slot placed on the day column, with fractional
	// top/height coordinates.
	PositionedSlot struct {
		Slot
		Position timegrid.Position `json:"position"`
	}

	// DayColumn is one weekday of the grid.
	DayColumn struct {
		Day   string           `json:"day"`
		Date  string           `json:"date"` // YYYY-MM-DD
		Slots []PositionedSlot `json:"slots"`
	}

	// WeekView is the full Monday-to-Saturday grid, ready to render.
	WeekView struct {
		WeekStart string      `json:"week_start"` // YYYY-MM-DD, the Monday
		Days      []DayColumn `json:"days"`
	}
)

// BuildWeekView lays slots out on the week containing ref. Slots whose day or
// times cannot be placed on the grid are left out, a broken record never hides
// the rest of the week.
func BuildWeekView(slots []Slot, ref time.Time, windowStart, windowEnd int) WeekView {
	dates := timegrid.WeekDates(ref)

	view := WeekView{
		WeekStart: dates[0].Format("2006-01-02"),
		Days:      make([]DayColumn, len(timegrid.Weekdays)),
	}
	for i, day := range timegrid.Weekdays {
		view.Days[i] = DayColumn{
			Day:   day,
			Date:  dates[i].Format("2006-01-02"),
			Slots: []PositionedSlot{},
		}
	}

	for _, slot := range slots {
		idx, ok := timegrid.DayIndex(slot.Day)
		if !ok {
			continue
		}
		pos := timegrid.ComputePosition(slot.StartTime, slot.EndTime, windowStart, windowEnd)
		if pos == nil {
			continue
		}
		view.Days[idx].Slots = append(view.Days[idx].Slots, PositionedSlot{Slot: slot, Position: *pos})
	}

	for i := range view.Days {
		day := view.Days[i]
		sort.SliceStable(day.Slots, func(a, b int) bool {
			return day.Slots[a].Position.Top < day.Slots[b].Position.Top
		})
	}
	return view
}
