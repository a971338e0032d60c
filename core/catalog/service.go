package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/Konou0luc/ucao-academy-sub000/core"
)

var (
	// errors
	ErrNotFound = errors.New("course not found")
)

const treeCacheKey = "catalog:tree"

type (
	Repository interface {
		CreateCourse(ctx context.Context, course Course) (Course, error)
		GetCourseByID(ctx context.Context, id string) (Course, error)
		QueryAllCourses(ctx context.Context) ([]Course, error)
		// FilterCourses applies AND operation on available QueryFilter fields.
		// QueryFilter.Search does a case-insensitive match on Course.Title or Course.Description.
		FilterCourses(ctx context.Context, filter QueryFilter, orderings ...core.DBOrdering) ([]Course, error)
		UpdateCourse(ctx context.Context, course Course) (Course, error)
		DeleteCoursesByID(ctx context.Context, ids ...string) error
	}

	Service struct {
		repo  Repository
		cache *cache.Cache
	}
)

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		cache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (svc *Service) Create(ctx context.Context, nc NewCourse) (Course, error) {
	now := time.Now().UTC()
	course := Course{
		ID:          uuid.New().String(),
		Title:       nc.Title,
		Description: nc.Description,
		Filiere:     nc.Filiere,
		Niveau:      nc.Niveau,
		Institution: nc.Institution,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	course, err := svc.repo.CreateCourse(ctx, course)
	if err != nil {
		return Course{}, err
	}
	svc.cache.Delete(treeCacheKey)
	return course, nil
}

func (svc *Service) QueryAll(ctx context.Context) ([]Course, error) {
	return svc.repo.QueryAllCourses(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Course, error) {
	return svc.repo.GetCourseByID(ctx, id)
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter, orderings ...core.DBOrdering) ([]Course, error) {
	return svc.repo.FilterCourses(ctx, filter, orderings...)
}

func (svc *Service) Update(ctx context.Context, id string, uc UpdateCourse) (Course, error) {
	course := Course{
		ID:          id,
		Title:       uc.Title,
		Description: uc.Description,
		Filiere:     uc.Filiere,
		Niveau:      uc.Niveau,
		Institution: uc.Institution,
		UpdatedAt:   time.Now().UTC(),
	}
	course, err := svc.repo.UpdateCourse(ctx, course)
	if err != nil {
		return Course{}, err
	}
	svc.cache.Delete(treeCacheKey)
	return course, nil
}

func (svc *Service) Delete(ctx context.Context, ids ...string) error {
	if err := svc.repo.DeleteCoursesByID(ctx, ids...); err != nil {
		return err
	}
	svc.cache.Delete(treeCacheKey)
	return nil
}

// Tree returns the full catalog tree. The built tree is cached for a few
// minutes and invalidated on any course write.
func (svc *Service) Tree(ctx context.Context) ([]Node, error) {
	if cached, ok := svc.cache.Get(treeCacheKey); ok {
		return cached.([]Node), nil
	}

	courses, err := svc.repo.QueryAllCourses(ctx)
	if err != nil {
		return nil, err
	}
	tree := BuildTree(courses)
	svc.cache.Set(treeCacheKey, tree, cache.DefaultExpiration)
	return tree, nil
}

// TreeByLevel returns the catalog tree pruned to leaves of the given niveau.
func (svc *Service) TreeByLevel(ctx context.Context, level string) ([]Node, error) {
	tree, err := svc.Tree(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByLevel(tree, level), nil
}
