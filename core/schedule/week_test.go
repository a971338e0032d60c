package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 07:00 - 18:00 window
const (
	windowStart = 7 * 60
	windowEnd   = 18 * 60
)

func sampleSlots() []Slot {
	return []Slot{
		{ID: "s1", CourseTitle: "Algèbre linéaire", Filiere: "Développement d'application", Niveau: "licence1", Day: "lundi", StartTime: "10:00", EndTime: "12:00", Room: "B12"},
		{ID: "s2", CourseTitle: "Comptabilité générale", Filiere: "Gestion", Niveau: "licence1", Day: "lundi", StartTime: "08:00", EndTime: "10:00"},
		{ID: "s3", CourseTitle: "Réseaux", Filiere: "Développement d'application", Niveau: "licence2", Day: "mercredi", StartTime: "14:00", EndTime: "17:00", Instructor: "M. Mensah"},
	}
}

func TestBuildWeekView(t *testing.T) {
	ref := time.Date(2024, time.June, 12, 9, 0, 0, 0, time.UTC) // a Wednesday
	view := BuildWeekView(sampleSlots(), ref, windowStart, windowEnd)

	assert.Equal(t, "2024-06-10", view.WeekStart)
	assert.Len(t, view.Days, 6)
	assert.Equal(t, "lundi", view.Days[0].Day)
	assert.Equal(t, "2024-06-10", view.Days[0].Date)
	assert.Equal(t, "samedi", view.Days[5].Day)
	assert.Equal(t, "2024-06-15", view.Days[5].Date)

	// monday slots sorted by start time
	monday := view.Days[0].Slots
	assert.Len(t, monday, 2)
	assert.Equal(t, "s2", monday[0].ID)
	assert.Equal(t, "s1", monday[1].ID)
	assert.InDelta(t, 1.0/11, monday[0].Position.Top, 1e-9)
	assert.InDelta(t, 2.0/11, monday[0].Position.Height, 1e-9)

	assert.Len(t, view.Days[2].Slots, 1)
	assert.Empty(t, view.Days[1].Slots)
}

func TestBuildWeekView_sundayRef(t *testing.T) {
	ref := time.Date(2024, time.June, 9, 0, 0, 0, 0, time.UTC) // a Sunday
	view := BuildWeekView(nil, ref, windowStart, windowEnd)

	// sunday belongs to the preceding week
	assert.Equal(t, "2024-06-03", view.WeekStart)
	assert.Equal(t, "2024-06-08", view.Days[5].Date)
}

func TestBuildWeekView_skipsUnplaceable(t *testing.T) {
	slots := []Slot{
		{ID: "bad-day", Day: "dimanche", StartTime: "08:00", EndTime: "10:00"},
		{ID: "bad-time", Day: "lundi", StartTime: "8h00", EndTime: "10:00"},
		{ID: "inverted", Day: "lundi", StartTime: "12:00", EndTime: "10:00"},
		{ID: "ok", Day: "lundi", StartTime: "08:00", EndTime: "10:00"},
	}
	ref := time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC)
	view := BuildWeekView(slots, ref, windowStart, windowEnd)

	assert.Len(t, view.Days[0].Slots, 1)
	assert.Equal(t, "ok", view.Days[0].Slots[0].ID)
}

func TestFilter(t *testing.T) {
	slots := sampleSlots()

	var ids []string
	for _, slot := range Filter(slots, QueryFilter{Filiere: "Développement d'application"}) {
		ids = append(ids, slot.ID)
	}
	assert.Equal(t, []string{"s1", "s3"}, ids)

	assert.Len(t, Filter(slots, QueryFilter{}), 3)
	assert.Len(t, Filter(slots, QueryFilter{Filiere: "Gestion", Niveau: "licence2"}), 0)
	assert.Len(t, Filter(slots, QueryFilter{Niveau: "licence1"}), 2)
}
