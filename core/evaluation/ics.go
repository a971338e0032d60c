package evaluation

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/Konou0luc/ucao-academy-sub000/core/timegrid"
)

// WriteICS serializes events as an iCalendar feed, one VEVENT per event.
// Events with a missing or malformed start time become day-long entries
// rather than being dropped.
func WriteICS(w io.Writer, events []Event) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	now := time.Now()
	for _, ev := range events {
		start, end := eventTimes(ev)

		e := cal.AddEvent(ev.ID)
		e.SetCreatedTime(now)
		e.SetDtStampTime(now)
		e.SetModifiedAt(now)
		e.SetStartAt(start)
		e.SetEndAt(end)
		e.SetSummary(ev.Title)
		if ev.Location != "" {
			e.SetLocation(ev.Location)
		}
		e.SetDescription(eventDescription(ev))
	}

	return cal.SerializeTo(w)
}

func eventTimes(ev Event) (time.Time, time.Time) {
	day := time.Date(ev.Date.Year(), ev.Date.Month(), ev.Date.Day(), 0, 0, 0, 0, ev.Date.Location())

	startMin, ok := timegrid.ParseTimeOfDay(ev.StartTime)
	if !ok {
		return day, day.AddDate(0, 0, 1)
	}
	start := day.Add(time.Duration(startMin) * time.Minute)

	endMin, ok := timegrid.ParseTimeOfDay(ev.EndTime)
	if !ok || endMin <= startMin {
		return start, start.Add(time.Hour)
	}
	return start, day.Add(time.Duration(endMin) * time.Minute)
}

func eventDescription(ev Event) string {
	parts := []string{"Type: " + ev.Type}
	if ev.CourseTitle != "" {
		parts = append(parts, "Cours: "+ev.CourseTitle)
	}
	if ev.Filiere != "" {
		parts = append(parts, fmt.Sprintf("Filière: %s (%s)", ev.Filiere, ev.Niveau))
	}
	return strings.Join(parts, "\n")
}
