package inmemdb

import (
	"context"

	"github.com/Konou0luc/ucao-academy-sub000/core/evaluation"
)

type evaluationRepository struct {
	db *DB
}

var _ evaluation.Repository = (*evaluationRepository)(nil)

func NewEvaluationRepository(db *DB) evaluation.Repository {
	return &evaluationRepository{db: db}
}

func (repo *evaluationRepository) CreateEvent(ctx context.Context, ev evaluation.Event) (evaluation.Event, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.evaluations[ev.ID] = &ev
	return ev, nil
}

func (repo *evaluationRepository) GetEventByID(ctx context.Context, id string) (evaluation.Event, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if ev, ok := repo.db.evaluations[id]; ok {
		return *ev, nil
	}
	return evaluation.Event{}, evaluation.ErrNotFound
}

func (repo *evaluationRepository) QueryAllEvents(ctx context.Context) ([]evaluation.Event, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	events := make([]evaluation.Event, 0, len(repo.db.evaluations))
	for _, ev := range repo.db.evaluations {
		events = append(events, *ev)
	}
	return events, nil
}

func (repo *evaluationRepository) UpdateEvent(ctx context.Context, ev evaluation.Event) (evaluation.Event, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	orig, ok := repo.db.evaluations[ev.ID]
	if !ok {
		return evaluation.Event{}, evaluation.ErrNotFound
	}
	if ev.Title != "" {
		orig.Title = ev.Title
	}
	if ev.Type != "" {
		orig.Type = ev.Type
	}
	if ev.CourseTitle != "" {
		orig.CourseTitle = ev.CourseTitle
	}
	if !ev.Date.IsZero() {
		orig.Date = ev.Date
	}
	if ev.StartTime != "" {
		orig.StartTime = ev.StartTime
	}
	if ev.EndTime != "" {
		orig.EndTime = ev.EndTime
	}
	if ev.Location != "" {
		orig.Location = ev.Location
	}
	if ev.Filiere != "" {
		orig.Filiere = ev.Filiere
	}
	if ev.Niveau != "" {
		orig.Niveau = ev.Niveau
	}
	orig.UpdatedAt = ev.UpdatedAt

	repo.db.evaluations[ev.ID] = orig
	return *orig, nil
}

func (repo *evaluationRepository) DeleteEventsByID(ctx context.Context, ids ...string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	for _, id := range ids {
		delete(repo.db.evaluations, id)
	}
	return nil
}
