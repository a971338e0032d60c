package evaluation

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWriteICS(t *testing.T) {
	events := []Event{
		{
			ID:          "ev-1",
			Title:       "Examen d'algèbre",
			Type:        TypeExamen,
			CourseTitle: "Algèbre linéaire",
			Date:        day(2024, time.June, 12),
			StartTime:   "08:00",
			EndTime:     "10:00",
			Location:    "Amphi B",
			Filiere:     "Développement d'application",
			Niveau:      "licence1",
		},
		{
			ID:    "ev-2",
			Title: "Projet tutoré",
			Type:  TypeProjet,
			Date:  day(2024, time.June, 14),
		},
	}

	var buf bytes.Buffer
	err := WriteICS(&buf, events)
	assert.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "METHOD:PUBLISH")
	assert.Contains(t, out, "UID:ev-1")
	assert.Contains(t, out, "SUMMARY:Examen d'algèbre")
	assert.Contains(t, out, "LOCATION:Amphi B")
	assert.Contains(t, out, "DTSTART:20240612T080000Z")
	assert.Contains(t, out, "DTEND:20240612T100000Z")
	// untimed event spans the whole day
	assert.Contains(t, out, "DTSTART:20240614T000000Z")
	assert.Contains(t, out, "DTEND:20240615T000000Z")
}

func TestWriteICS_empty(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteICS(&buf, nil))
	assert.Contains(t, buf.String(), "BEGIN:VCALENDAR")
	assert.NotContains(t, buf.String(), "BEGIN:VEVENT")
}

func TestEventTimes(t *testing.T) {
	base := day(2024, time.June, 12)

	tests := []struct {
		name       string
		start, end string
		wantStart  time.Time
		wantEnd    time.Time
	}{
		{"both valid", "08:00", "09:30", base.Add(8 * time.Hour), base.Add(9*time.Hour + 30*time.Minute)},
		{"no start", "", "10:00", base, base.AddDate(0, 0, 1)},
		{"bad start", "25:00", "10:00", base, base.AddDate(0, 0, 1)},
		{"no end", "08:00", "", base.Add(8 * time.Hour), base.Add(9 * time.Hour)},
		{"inverted end", "10:00", "08:00", base.Add(10 * time.Hour), base.Add(11 * time.Hour)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := eventTimes(Event{Date: base, StartTime: tt.start, EndTime: tt.end})
			assert.True(t, start.Equal(tt.wantStart), "start = %v, want %v", start, tt.wantStart)
			assert.True(t, end.Equal(tt.wantEnd), "end = %v, want %v", end, tt.wantEnd)
		})
	}
}
