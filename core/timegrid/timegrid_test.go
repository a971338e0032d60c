package timegrid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"09:30", 570, true},
		{"8:00", 480, true},
		{"0:00", 0, true},
		{"00:00", 0, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"9:3", 0, false},
		{"930", 0, false},
		{"ab:cd", 0, false},
		{"", 0, false},
		{"09:30:00", 0, false},
		{"-1:00", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseTimeOfDay(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ParseTimeOfDay(%q) ok = %v; want %v", tt.in, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseTimeOfDay(%q) = %v; want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestComputePosition(t *testing.T) {
	// 07:00 - 18:00 window, 660 min span
	windowStart, windowEnd := 7*60, 18*60

	t.Run("mid-window interval", func(t *testing.T) {
		pos := ComputePosition("08:00", "10:00", windowStart, windowEnd)
		if pos == nil {
			t.Fatal("ComputePosition() = nil; want position")
		}
		assert.InDelta(t, 0.0909, pos.Top, 0.0001)
		assert.InDelta(t, 0.1818, pos.Height, 0.0001)
	})

	t.Run("clamped to window", func(t *testing.T) {
		pos := ComputePosition("06:00", "19:00", windowStart, windowEnd)
		if pos == nil {
			t.Fatal("ComputePosition() = nil; want position")
		}
		assert.Equal(t, 0.0, pos.Top)
		assert.Equal(t, 1.0, pos.Height)
	})

	t.Run("minimum height floor", func(t *testing.T) {
		pos := ComputePosition("08:00", "08:05", windowStart, windowEnd)
		if pos == nil {
			t.Fatal("ComputePosition() = nil; want position")
		}
		assert.Equal(t, MinHeightFrac, pos.Height)
	})

	t.Run("inverted interval", func(t *testing.T) {
		assert.Nil(t, ComputePosition("10:00", "08:00", windowStart, windowEnd))
	})

	t.Run("zero-length interval", func(t *testing.T) {
		assert.Nil(t, ComputePosition("08:00", "08:00", windowStart, windowEnd))
	})

	t.Run("unparsable bounds", func(t *testing.T) {
		assert.Nil(t, ComputePosition("8h00", "10:00", windowStart, windowEnd))
		assert.Nil(t, ComputePosition("08:00", "25:00", windowStart, windowEnd))
	})
}

func TestParseWindow(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		wantStart  int
		wantEnd    int
		wantErr    bool
	}{
		{name: "default window", start: "07:00", end: "18:00", wantStart: 420, wantEnd: 1080},
		{name: "bad start", start: "7h00", end: "18:00", wantErr: true},
		{name: "bad end", start: "07:00", end: "25:00", wantErr: true},
		{name: "end before start", start: "18:00", end: "07:00", wantErr: true},
		{name: "zero span", start: "07:00", end: "07:00", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := ParseWindow(tt.start, tt.end)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseWindow(%q, %q) expected an error", tt.start, tt.end)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseWindow(%q, %q) unexpected error: %v", tt.start, tt.end, err)
			}
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("ParseWindow(%q, %q) = %d, %d; want %d, %d", tt.start, tt.end, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestWeekDates(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name       string
		ref        time.Time
		wantMonday time.Time
	}{
		{"wednesday", day(2024, time.June, 12), day(2024, time.June, 10)},
		{"monday", day(2024, time.June, 10), day(2024, time.June, 10)},
		{"saturday", day(2024, time.June, 15), day(2024, time.June, 10)},
		// a Sunday belongs to the week that just ended
		{"sunday maps to preceding monday", day(2024, time.June, 9), day(2024, time.June, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates := WeekDates(tt.ref)
			for i, d := range dates {
				want := tt.wantMonday.AddDate(0, 0, i)
				if !d.Equal(want) {
					t.Errorf("WeekDates(%v)[%d] = %v; want %v", tt.ref, i, d, want)
				}
			}
		})
	}
}

func TestDayIndex(t *testing.T) {
	for i, d := range Weekdays {
		idx, ok := DayIndex(d)
		if !ok || idx != i {
			t.Errorf("DayIndex(%q) = %d, %v; want %d, true", d, idx, ok, i)
		}
	}
	if _, ok := DayIndex("dimanche"); ok {
		t.Error("DayIndex(dimanche) should not resolve")
	}
}
