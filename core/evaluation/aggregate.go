package evaluation

import (
	"sort"
	"time"

	"github.com/Konou0luc/ucao-academy-sub000/core"
)

// Filter criteria set to one of these values (or left empty) match any event.
var wildcards = map[string]bool{
	"":       true,
	"Tous":   true,
	"Toutes": true,
}

// GroupByDate partitions events by calendar day. The relative input order is
// preserved within each group; groups themselves carry no order, use
// SortedDateKeys to walk them chronologically.
func GroupByDate(events []Event) map[string][]Event {
	groups := make(map[string][]Event)
	for _, ev := range events {
		key := ev.DateKey()
		groups[key] = append(groups[key], ev)
	}
	return groups
}

// SortedDateKeys returns the group keys in chronological order. Plain string
// sorting is enough since "YYYY-MM-DD" lexical order equals date order.
func SortedDateKeys(groups map[string][]Event) []string {
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Classify reports whether ev lies in the past or is still upcoming,
// relative to now.
func Classify(ev Event, now time.Time) string {
	if ev.Date.Before(now) {
		return StatusPast
	}
	return StatusUpcoming
}

type QueryFilter struct {
	Filiere string `query:"filiere"`
	Niveau  string `query:"niveau"`
	Type    string `query:"type"`
}

func (qf *QueryFilter) Clean() {
	qf.Filiere = core.CleanString(qf.Filiere)
	qf.Niveau = core.CleanString(qf.Niveau)
	qf.Type = core.CleanString(qf.Type)
}

func (qf QueryFilter) matches(ev Event) bool {
	if !wildcards[qf.Filiere] && ev.Filiere != qf.Filiere {
		return false
	}
	if !wildcards[qf.Niveau] && ev.Niveau != qf.Niveau {
		return false
	}
	if !wildcards[qf.Type] && ev.Type != qf.Type {
		return false
	}
	return true
}

// Filter keeps the events matching every non-wildcard criterion.
func Filter(events []Event, qf QueryFilter) []Event {
	out := make([]Event, 0, len(events))
	for _, ev := range events {
		if qf.matches(ev) {
			out = append(out, ev)
		}
	}
	return out
}

// UpcomingCount counts the events that are not yet past.
func UpcomingCount(events []Event, now time.Time) int {
	var count int
	for _, ev := range events {
		if Classify(ev, now) == StatusUpcoming {
			count++
		}
	}
	return count
}

type (
	// EventView is an Event badged with its derived status.
	EventView struct {
		Event
		Status string `json:"status"`
	}

	// Day is one calendar day of the evaluation calendar.
	Day struct {
		Date   string      `json:"date"`
		Events []EventView `json:"events"`
	}
)

// Calendar groups, sorts and badges events into a render-ready sequence of
// days, ascending.
func Calendar(events []Event, now time.Time) []Day {
	groups := GroupByDate(events)
	days := make([]Day, 0, len(groups))
	for _, key := range SortedDateKeys(groups) {
		day := Day{Date: key, Events: make([]EventView, 0, len(groups[key]))}
		for _, ev := range groups[key] {
			day.Events = append(day.Events, EventView{Event: ev, Status: Classify(ev, now)})
		}
		days = append(days, day)
	}
	return days
}
