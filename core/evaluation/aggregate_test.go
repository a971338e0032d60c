package evaluation

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleEvents() []Event {
	return []Event{
		{ID: "e1", Title: "Examen d'algèbre", Type: TypeExamen, Date: day(2024, time.June, 12), Filiere: "Développement d'application", Niveau: "licence1"},
		{ID: "e2", Title: "Contrôle de comptabilité", Type: TypeControle, Date: day(2024, time.June, 10), Filiere: "Gestion", Niveau: "licence1"},
		{ID: "e3", Title: "TP réseaux", Type: TypeTP, Date: day(2024, time.June, 12), Filiere: "Développement d'application", Niveau: "licence2"},
		{ID: "e4", Title: "Projet tutoré", Type: TypeProjet, Date: day(2024, time.May, 2), Filiere: "Gestion", Niveau: "licence1"},
	}
}

func TestGroupByDate(t *testing.T) {
	groups := GroupByDate(sampleEvents())

	assert.Len(t, groups, 3)
	assert.Len(t, groups["2024-06-12"], 2)
	// input order preserved within a group
	assert.Equal(t, "e1", groups["2024-06-12"][0].ID)
	assert.Equal(t, "e3", groups["2024-06-12"][1].ID)
}

// grouping is a stable partition: shuffling the input across groups never
// changes a group's own ordering relative to the shuffled input
func TestGroupByDate_stablePartition(t *testing.T) {
	events := sampleEvents()
	rnd := rand.New(rand.NewSource(42))

	for i := 0; i < 20; i++ {
		shuffled := make([]Event, len(events))
		copy(shuffled, events)
		rnd.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		groups := GroupByDate(shuffled)
		for key, group := range groups {
			var want []string
			for _, ev := range shuffled {
				if ev.DateKey() == key {
					want = append(want, ev.ID)
				}
			}
			var got []string
			for _, ev := range group {
				got = append(got, ev.ID)
			}
			assert.Equal(t, want, got)
		}
	}
}

func TestSortedDateKeys(t *testing.T) {
	keys := SortedDateKeys(GroupByDate(sampleEvents()))
	assert.Equal(t, []string{"2024-05-02", "2024-06-10", "2024-06-12"}, keys)
	assert.True(t, sortedAscending(keys))
}

func sortedAscending(keys []string) bool {
	for i := 1; i < len(keys); i++ {
		if strings.Compare(keys[i-1], keys[i]) > 0 {
			return false
		}
	}
	return true
}

func TestClassify(t *testing.T) {
	now := day(2024, time.June, 11)
	assert.Equal(t, StatusPast, Classify(Event{Date: day(2024, time.June, 10)}, now))
	assert.Equal(t, StatusUpcoming, Classify(Event{Date: day(2024, time.June, 12)}, now))
	assert.Equal(t, StatusUpcoming, Classify(Event{Date: now}, now))
}

func TestFilter(t *testing.T) {
	events := sampleEvents()

	tests := []struct {
		name    string
		filter  QueryFilter
		wantIDs []string
	}{
		{"no criteria", QueryFilter{}, []string{"e1", "e2", "e3", "e4"}},
		{"wildcard values", QueryFilter{Filiere: "Toutes", Niveau: "Tous", Type: "Tous"}, []string{"e1", "e2", "e3", "e4"}},
		{"by filiere", QueryFilter{Filiere: "Gestion"}, []string{"e2", "e4"}},
		{"by type", QueryFilter{Type: TypeExamen}, []string{"e1"}},
		{"conjunctive", QueryFilter{Filiere: "Gestion", Niveau: "licence1", Type: TypeProjet}, []string{"e4"}},
		{"conjunctive with wildcard", QueryFilter{Filiere: "Développement d'application", Niveau: "Tous"}, []string{"e1", "e3"}},
		{"no match", QueryFilter{Filiere: "Gestion", Type: TypeTP}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, ev := range Filter(events, tt.filter) {
				got = append(got, ev.ID)
			}
			assert.Equal(t, tt.wantIDs, got)
		})
	}
}

func TestUpcomingCount(t *testing.T) {
	now := day(2024, time.June, 11)
	assert.Equal(t, 2, UpcomingCount(sampleEvents(), now))
	assert.Equal(t, 0, UpcomingCount(nil, now))
}

func TestCalendar(t *testing.T) {
	now := day(2024, time.June, 11)
	days := Calendar(sampleEvents(), now)

	assert.Len(t, days, 3)
	assert.Equal(t, "2024-05-02", days[0].Date)
	assert.Equal(t, StatusPast, days[0].Events[0].Status)
	assert.Equal(t, "2024-06-12", days[2].Date)
	assert.Len(t, days[2].Events, 2)
	assert.Equal(t, StatusUpcoming, days[2].Events[0].Status)
}
