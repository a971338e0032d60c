package inmemdb

import (
	"context"
	"sort"
	"strings"

	"github.com/Konou0luc/ucao-academy-sub000/core"
	"github.com/Konou0luc/ucao-academy-sub000/core/catalog"
)

type courseRepository struct {
	db *DB

	// order preserves insertion order, the catalog tree groups
	// filieres by first encounter
	order []string
}

var _ catalog.Repository = (*courseRepository)(nil)

func NewCourseRepository(db *DB) catalog.Repository {
	return &courseRepository{db: db}
}

func (repo *courseRepository) query() []catalog.Course {
	courses := make([]catalog.Course, 0, len(repo.order))
	for _, id := range repo.order {
		if course, ok := repo.db.courses[id]; ok {
			courses = append(courses, *course)
		}
	}
	return courses
}

func (repo *courseRepository) CreateCourse(ctx context.Context, course catalog.Course) (catalog.Course, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.courses[course.ID] = &course
	repo.order = append(repo.order, course.ID)
	return course, nil
}

func (repo *courseRepository) GetCourseByID(ctx context.Context, id string) (catalog.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if course, ok := repo.db.courses[id]; ok {
		return *course, nil
	}
	return catalog.Course{}, catalog.ErrNotFound
}

func (repo *courseRepository) QueryAllCourses(ctx context.Context) ([]catalog.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *courseRepository) FilterCourses(ctx context.Context, filter catalog.QueryFilter, orderings ...core.DBOrdering) ([]catalog.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	out := make([]catalog.Course, 0)
	for _, course := range repo.query() {
		if matchesCourseFilter(course, filter) {
			out = append(out, course)
		}
	}
	applyCourseOrderings(out, orderings)
	return out, nil
}

func (repo *courseRepository) UpdateCourse(ctx context.Context, course catalog.Course) (catalog.Course, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	orig, ok := repo.db.courses[course.ID]
	if !ok {
		return catalog.Course{}, catalog.ErrNotFound
	}
	if course.Title != "" {
		orig.Title = course.Title
	}
	if course.Description != "" {
		orig.Description = course.Description
	}
	if course.Filiere != "" {
		orig.Filiere = course.Filiere
	}
	if course.Niveau != "" {
		orig.Niveau = course.Niveau
	}
	if course.Institution != "" {
		orig.Institution = course.Institution
	}
	orig.UpdatedAt = course.UpdatedAt

	repo.db.courses[course.ID] = orig
	return *orig, nil
}

func (repo *courseRepository) DeleteCoursesByID(ctx context.Context, ids ...string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	for _, id := range ids {
		delete(repo.db.courses, id)
	}
	return nil
}

func matchesCourseFilter(course catalog.Course, filter catalog.QueryFilter) bool {
	if filter.Search != "" {
		search := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(course.Title), search) &&
			!strings.Contains(strings.ToLower(course.Description), search) {
			return false
		}
	}
	if filter.Filiere != "" && course.Filiere != filter.Filiere {
		return false
	}
	if filter.Niveau != "" && course.Niveau != filter.Niveau {
		return false
	}
	if filter.Institution != "" && course.Institution != filter.Institution {
		return false
	}
	return true
}

func applyCourseOrderings(courses []catalog.Course, orderings []core.DBOrdering) {
	for i := len(orderings) - 1; i >= 0; i-- {
		ord := orderings[i]
		sort.SliceStable(courses, func(a, b int) bool {
			var less bool
			switch ord.Field {
			case "title":
				less = courses[a].Title < courses[b].Title
			case "filiere":
				less = courses[a].Filiere < courses[b].Filiere
			case "niveau":
				less = courses[a].Niveau < courses[b].Niveau
			case "created_at":
				less = courses[a].CreatedAt.Before(courses[b].CreatedAt)
			default:
				return false
			}
			if !ord.Ascending {
				return !less
			}
			return less
		})
	}
}
