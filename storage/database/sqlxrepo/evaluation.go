package sqlxrepo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Konou0luc/ucao-academy-sub000/core/evaluation"
)

const evaluationColumns = `id, title, type, course_title, evaluation_date, start_time, end_time, location, filiere, niveau, created_at, updated_at`

type evaluationRepository struct {
	db *sqlx.DB
}

var _ evaluation.Repository = (*evaluationRepository)(nil)

func NewEvaluationRepository(db *sqlx.DB) evaluation.Repository {
	return &evaluationRepository{db: db}
}

func (repo *evaluationRepository) CreateEvent(ctx context.Context, ev evaluation.Event) (evaluation.Event, error) {
	query := `
		INSERT INTO evaluation (` + evaluationColumns + `)
		VALUES (:id, :title, :type, :course_title, :evaluation_date, :start_time, :end_time, :location, :filiere, :niveau, :created_at, :updated_at)`
	if _, err := repo.db.NamedExecContext(ctx, query, ev); err != nil {
		return evaluation.Event{}, errors.Wrap(err, "inserting evaluation")
	}
	return ev, nil
}

func (repo *evaluationRepository) GetEventByID(ctx context.Context, id string) (evaluation.Event, error) {
	var ev evaluation.Event
	err := repo.db.GetContext(ctx, &ev, `SELECT `+evaluationColumns+` FROM evaluation WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return evaluation.Event{}, evaluation.ErrNotFound
	}
	if err != nil {
		return evaluation.Event{}, errors.Wrap(err, "selecting evaluation")
	}
	return ev, nil
}

func (repo *evaluationRepository) QueryAllEvents(ctx context.Context) ([]evaluation.Event, error) {
	events := make([]evaluation.Event, 0)
	query := `SELECT ` + evaluationColumns + ` FROM evaluation ORDER BY evaluation_date, created_at`
	if err := repo.db.SelectContext(ctx, &events, query); err != nil {
		return nil, errors.Wrap(err, "selecting evaluations")
	}
	return events, nil
}

func (repo *evaluationRepository) UpdateEvent(ctx context.Context, ev evaluation.Event) (evaluation.Event, error) {
	var (
		sets []string
		args []interface{}
	)
	set := func(column string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if ev.Title != "" {
		set("title", ev.Title)
	}
	if ev.Type != "" {
		set("type", ev.Type)
	}
	if ev.CourseTitle != "" {
		set("course_title", ev.CourseTitle)
	}
	if !ev.Date.IsZero() {
		set("evaluation_date", ev.Date)
	}
	if ev.StartTime != "" {
		set("start_time", ev.StartTime)
	}
	if ev.EndTime != "" {
		set("end_time", ev.EndTime)
	}
	if ev.Location != "" {
		set("location", ev.Location)
	}
	if ev.Filiere != "" {
		set("filiere", ev.Filiere)
	}
	if ev.Niveau != "" {
		set("niveau", ev.Niveau)
	}
	if !ev.UpdatedAt.IsZero() {
		set("updated_at", ev.UpdatedAt)
	}
	if len(sets) == 0 {
		return repo.GetEventByID(ctx, ev.ID)
	}

	args = append(args, ev.ID)
	query := fmt.Sprintf(`UPDATE evaluation SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))
	res, err := repo.db.ExecContext(ctx, query, args...)
	if err != nil {
		return evaluation.Event{}, errors.Wrap(err, "updating evaluation")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return evaluation.Event{}, evaluation.ErrNotFound
	}
	return repo.GetEventByID(ctx, ev.ID)
}

func (repo *evaluationRepository) DeleteEventsByID(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`DELETE FROM evaluation WHERE id IN (?)`, ids)
	if err != nil {
		return errors.Wrap(err, "expanding query")
	}
	if _, err := repo.db.ExecContext(ctx, repo.db.Rebind(query), args...); err != nil {
		return errors.Wrap(err, "deleting evaluations")
	}
	return nil
}
