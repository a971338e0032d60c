package inmemdb

import (
	"context"

	"github.com/Konou0luc/ucao-academy-sub000/core/schedule"
)

type slotRepository struct {
	db *DB
}

var _ schedule.Repository = (*slotRepository)(nil)

func NewSlotRepository(db *DB) schedule.Repository {
	return &slotRepository{db: db}
}

func (repo *slotRepository) CreateSlot(ctx context.Context, slot schedule.Slot) (schedule.Slot, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.slots[slot.ID] = &slot
	return slot, nil
}

func (repo *slotRepository) GetSlotByID(ctx context.Context, id string) (schedule.Slot, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if slot, ok := repo.db.slots[id]; ok {
		return *slot, nil
	}
	return schedule.Slot{}, schedule.ErrNotFound
}

func (repo *slotRepository) QueryAllSlots(ctx context.Context) ([]schedule.Slot, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	slots := make([]schedule.Slot, 0, len(repo.db.slots))
	for _, slot := range repo.db.slots {
		slots = append(slots, *slot)
	}
	return slots, nil
}

func (repo *slotRepository) UpdateSlot(ctx context.Context, slot schedule.Slot) (schedule.Slot, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	orig, ok := repo.db.slots[slot.ID]
	if !ok {
		return schedule.Slot{}, schedule.ErrNotFound
	}
	if slot.CourseTitle != "" {
		orig.CourseTitle = slot.CourseTitle
	}
	if slot.Filiere != "" {
		orig.Filiere = slot.Filiere
	}
	if slot.Niveau != "" {
		orig.Niveau = slot.Niveau
	}
	if slot.Day != "" {
		orig.Day = slot.Day
	}
	if slot.StartTime != "" {
		orig.StartTime = slot.StartTime
	}
	if slot.EndTime != "" {
		orig.EndTime = slot.EndTime
	}
	if slot.Room != "" {
		orig.Room = slot.Room
	}
	if slot.Instructor != "" {
		orig.Instructor = slot.Instructor
	}
	orig.UpdatedAt = slot.UpdatedAt

	repo.db.slots[slot.ID] = orig
	return *orig, nil
}

func (repo *slotRepository) DeleteSlotsByID(ctx context.Context, ids ...string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	for _, id := range ids {
		delete(repo.db.slots, id)
	}
	return nil
}
