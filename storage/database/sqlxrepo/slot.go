package sqlxrepo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Konou0luc/ucao-academy-sub000/core/schedule"
)

const slotColumns = `id, course_title, filiere, niveau, day_of_week, start_time, end_time, room, instructor, created_at, updated_at`

type slotRepository struct {
	db *sqlx.DB
}

var _ schedule.Repository = (*slotRepository)(nil)

func NewSlotRepository(db *sqlx.DB) schedule.Repository {
	return &slotRepository{db: db}
}

func (repo *slotRepository) CreateSlot(ctx context.Context, slot schedule.Slot) (schedule.Slot, error) {
	query := `
		INSERT INTO schedule_slot (` + slotColumns + `)
		VALUES (:id, :course_title, :filiere, :niveau, :day_of_week, :start_time, :end_time, :room, :instructor, :created_at, :updated_at)`
	if _, err := repo.db.NamedExecContext(ctx, query, slot); err != nil {
		return schedule.Slot{}, errors.Wrap(err, "inserting slot")
	}
	return slot, nil
}

func (repo *slotRepository) GetSlotByID(ctx context.Context, id string) (schedule.Slot, error) {
	var slot schedule.Slot
	err := repo.db.GetContext(ctx, &slot, `SELECT `+slotColumns+` FROM schedule_slot WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return schedule.Slot{}, schedule.ErrNotFound
	}
	if err != nil {
		return schedule.Slot{}, errors.Wrap(err, "selecting slot")
	}
	return slot, nil
}

func (repo *slotRepository) QueryAllSlots(ctx context.Context) ([]schedule.Slot, error) {
	slots := make([]schedule.Slot, 0)
	query := `SELECT ` + slotColumns + ` FROM schedule_slot ORDER BY day_of_week, start_time`
	if err := repo.db.SelectContext(ctx, &slots, query); err != nil {
		return nil, errors.Wrap(err, "selecting slots")
	}
	return slots, nil
}

func (repo *slotRepository) UpdateSlot(ctx context.Context, slot schedule.Slot) (schedule.Slot, error) {
	var (
		sets []string
		args []interface{}
	)
	set := func(column string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if slot.CourseTitle != "" {
		set("course_title", slot.CourseTitle)
	}
	if slot.Filiere != "" {
		set("filiere", slot.Filiere)
	}
	if slot.Niveau != "" {
		set("niveau", slot.Niveau)
	}
	if slot.Day != "" {
		set("day_of_week", slot.Day)
	}
	if slot.StartTime != "" {
		set("start_time", slot.StartTime)
	}
	if slot.EndTime != "" {
		set("end_time", slot.EndTime)
	}
	if slot.Room != "" {
		set("room", slot.Room)
	}
	if slot.Instructor != "" {
		set("instructor", slot.Instructor)
	}
	if !slot.UpdatedAt.IsZero() {
		set("updated_at", slot.UpdatedAt)
	}
	if len(sets) == 0 {
		return repo.GetSlotByID(ctx, slot.ID)
	}

	args = append(args, slot.ID)
	query := fmt.Sprintf(`UPDATE schedule_slot SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))
	res, err := repo.db.ExecContext(ctx, query, args...)
	if err != nil {
		return schedule.Slot{}, errors.Wrap(err, "updating slot")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return schedule.Slot{}, schedule.ErrNotFound
	}
	return repo.GetSlotByID(ctx, slot.ID)
}

func (repo *slotRepository) DeleteSlotsByID(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`DELETE FROM schedule_slot WHERE id IN (?)`, ids)
	if err != nil {
		return errors.Wrap(err, "expanding query")
	}
	if _, err := repo.db.ExecContext(ctx, repo.db.Rebind(query), args...); err != nil {
		return errors.Wrap(err, "deleting slots")
	}
	return nil
}
