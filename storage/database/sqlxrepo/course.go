package sqlxrepo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Konou0luc/ucao-academy-sub000/core"
	"github.com/Konou0luc/ucao-academy-sub000/core/catalog"
)

const courseColumns = `id, title, description, filiere, niveau, institution, created_at, updated_at`

type courseRepository struct {
	db *sqlx.DB
}

var _ catalog.Repository = (*courseRepository)(nil)

func NewCourseRepository(db *sqlx.DB) catalog.Repository {
	return &courseRepository{db: db}
}

func (repo *courseRepository) CreateCourse(ctx context.Context, course catalog.Course) (catalog.Course, error) {
	query := `
		INSERT INTO course (` + courseColumns + `)
		VALUES (:id, :title, :description, :filiere, :niveau, :institution, :created_at, :updated_at)`
	if _, err := repo.db.NamedExecContext(ctx, query, course); err != nil {
		return catalog.Course{}, errors.Wrap(err, "inserting course")
	}
	return course, nil
}

func (repo *courseRepository) GetCourseByID(ctx context.Context, id string) (catalog.Course, error) {
	var course catalog.Course
	err := repo.db.GetContext(ctx, &course, `SELECT `+courseColumns+` FROM course WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return catalog.Course{}, catalog.ErrNotFound
	}
	if err != nil {
		return catalog.Course{}, errors.Wrap(err, "selecting course")
	}
	return course, nil
}

func (repo *courseRepository) QueryAllCourses(ctx context.Context) ([]catalog.Course, error) {
	courses := make([]catalog.Course, 0)
	// created_at order keeps the catalog tree's filiere grouping stable
	query := `SELECT ` + courseColumns + ` FROM course ORDER BY created_at`
	if err := repo.db.SelectContext(ctx, &courses, query); err != nil {
		return nil, errors.Wrap(err, "selecting courses")
	}
	return courses, nil
}

func (repo *courseRepository) FilterCourses(ctx context.Context, filter catalog.QueryFilter, orderings ...core.DBOrdering) ([]catalog.Course, error) {
	var (
		conds []string
		args  []interface{}
	)
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Search != "" {
		p := arg("%" + filter.Search + "%")
		conds = append(conds, fmt.Sprintf("(title ILIKE %[1]s OR description ILIKE %[1]s)", p))
	}
	if filter.Filiere != "" {
		conds = append(conds, "filiere = "+arg(filter.Filiere))
	}
	if filter.Niveau != "" {
		conds = append(conds, "niveau = "+arg(filter.Niveau))
	}
	if filter.Institution != "" {
		conds = append(conds, "institution = "+arg(filter.Institution))
	}

	query := `SELECT ` + courseColumns + ` FROM course`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	if clause := orderBy(orderings, map[string]bool{"title": true, "filiere": true, "niveau": true, "created_at": true}); clause != "" {
		query += clause
	} else {
		query += " ORDER BY created_at"
	}

	courses := make([]catalog.Course, 0)
	if err := repo.db.SelectContext(ctx, &courses, query, args...); err != nil {
		return nil, errors.Wrap(err, "filtering courses")
	}
	return courses, nil
}

func (repo *courseRepository) UpdateCourse(ctx context.Context, course catalog.Course) (catalog.Course, error) {
	var (
		sets []string
		args []interface{}
	)
	set := func(column string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if course.Title != "" {
		set("title", course.Title)
	}
	if course.Description != "" {
		set("description", course.Description)
	}
	if course.Filiere != "" {
		set("filiere", course.Filiere)
	}
	if course.Niveau != "" {
		set("niveau", course.Niveau)
	}
	if course.Institution != "" {
		set("institution", course.Institution)
	}
	if !course.UpdatedAt.IsZero() {
		set("updated_at", course.UpdatedAt)
	}
	if len(sets) == 0 {
		return repo.GetCourseByID(ctx, course.ID)
	}

	args = append(args, course.ID)
	query := fmt.Sprintf(`UPDATE course SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))
	res, err := repo.db.ExecContext(ctx, query, args...)
	if err != nil {
		return catalog.Course{}, errors.Wrap(err, "updating course")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return catalog.Course{}, catalog.ErrNotFound
	}
	return repo.GetCourseByID(ctx, course.ID)
}

func (repo *courseRepository) DeleteCoursesByID(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`DELETE FROM course WHERE id IN (?)`, ids)
	if err != nil {
		return errors.Wrap(err, "expanding query")
	}
	if _, err := repo.db.ExecContext(ctx, repo.db.Rebind(query), args...); err != nil {
		return errors.Wrap(err, "deleting courses")
	}
	return nil
}
