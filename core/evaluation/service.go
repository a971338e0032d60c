package evaluation

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
)

var (
	// errors
	ErrNotFound = errors.New("evaluation not found")
)

type (
	Repository interface {
		CreateEvent(ctx context.Context, ev Event) (Event, error)
		GetEventByID(ctx context.Context, id string) (Event, error)
		QueryAllEvents(ctx context.Context) ([]Event, error)
		UpdateEvent(ctx context.Context, ev Event) (Event, error)
		DeleteEventsByID(ctx context.Context, ids ...string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, ne NewEvent) (Event, error) {
	now := time.Now().UTC()
	ev := Event{
		ID:          uuid.New().String(),
		Title:       ne.Title,
		Type:        ne.Type,
		CourseTitle: ne.CourseTitle,
		Date:        ne.Date,
		StartTime:   ne.StartTime,
		EndTime:     ne.EndTime,
		Location:    ne.Location,
		Filiere:     ne.Filiere,
		Niveau:      ne.Niveau,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return svc.repo.CreateEvent(ctx, ev)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Event, error) {
	return svc.repo.QueryAllEvents(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Event, error) {
	return svc.repo.GetEventByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id string, ue UpdateEvent) (Event, error) {
	ev := Event{
		ID:          id,
		Title:       ue.Title,
		Type:        ue.Type,
		CourseTitle: ue.CourseTitle,
		Date:        ue.Date,
		StartTime:   ue.StartTime,
		EndTime:     ue.EndTime,
		Location:    ue.Location,
		Filiere:     ue.Filiere,
		Niveau:      ue.Niveau,
		UpdatedAt:   time.Now().UTC(),
	}
	return svc.repo.UpdateEvent(ctx, ev)
}

func (svc *Service) Delete(ctx context.Context, ids ...string) error {
	return svc.repo.DeleteEventsByID(ctx, ids...)
}

// Calendar returns the filtered evaluation calendar: day groups sorted
// ascending, each event badged past/upcoming relative to now.
func (svc *Service) Calendar(ctx context.Context, filter QueryFilter, now time.Time) ([]Day, int, error) {
	events, err := svc.repo.QueryAllEvents(ctx)
	if err != nil {
		return nil, 0, err
	}
	events = Filter(events, filter)
	return Calendar(events, now), UpcomingCount(events, now), nil
}

// ExportICS writes the filtered events to w as an iCalendar feed.
func (svc *Service) ExportICS(ctx context.Context, w io.Writer, filter QueryFilter) error {
	events, err := svc.repo.QueryAllEvents(ctx)
	if err != nil {
		return err
	}
	return WriteICS(w, Filter(events, filter))
}
