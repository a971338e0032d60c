package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// errors
	ErrNotFound = errors.New("schedule slot not found")
)

type (
	Repository interface {
		CreateSlot(ctx context.Context, slot Slot) (Slot, error)
		GetSlotByID(ctx context.Context, id string) (Slot, error)
		QueryAllSlots(ctx context.Context) ([]Slot, error)
		UpdateSlot(ctx context.Context, slot Slot) (Slot, error)
		DeleteSlotsByID(ctx context.Context, ids ...string) error
	}

	Service struct {
		repo        Repository
		windowStart int // minutes since midnight
		windowEnd   int
	}
)

func NewService(repo Repository, windowStart, windowEnd int) *Service {
	return &Service{repo: repo, windowStart: windowStart, windowEnd: windowEnd}
}

func (svc *Service) Create(ctx context.Context, ns NewSlot) (Slot, error) {
	now := time.Now().UTC()
	slot := Slot{
		ID:          uuid.New().String(),
		CourseTitle: ns.CourseTitle,
		Filiere:     ns.Filiere,
		Niveau:      ns.Niveau,
		Day:         ns.Day,
		StartTime:   ns.StartTime,
		EndTime:     ns.EndTime,
		Room:        ns.Room,
		Instructor:  ns.Instructor,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return svc.repo.CreateSlot(ctx, slot)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Slot, error) {
	return svc.repo.QueryAllSlots(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Slot, error) {
	return svc.repo.GetSlotByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id string, us UpdateSlot) (Slot, error) {
	slot := Slot{
		ID:          id,
		CourseTitle: us.CourseTitle,
		Filiere:     us.Filiere,
		Niveau:      us.Niveau,
		Day:         us.Day,
		StartTime:   us.StartTime,
		EndTime:     us.EndTime,
		Room:        us.Room,
		Instructor:  us.Instructor,
		UpdatedAt:   time.Now().UTC(),
	}
	return svc.repo.UpdateSlot(ctx, slot)
}

func (svc *Service) Delete(ctx context.Context, ids ...string) error {
	return svc.repo.DeleteSlotsByID(ctx, ids...)
}

// Week returns the positioned grid for the week containing ref, filtered.
func (svc *Service) Week(ctx context.Context, ref time.Time, filter QueryFilter) (WeekView, error) {
	slots, err := svc.repo.QueryAllSlots(ctx)
	if err != nil {
		return WeekView{}, err
	}
	return BuildWeekView(Filter(slots, filter), ref, svc.windowStart, svc.windowEnd), nil
}
