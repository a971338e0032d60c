package news

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Konou0luc/ucao-academy-sub000/core/textrender"
)

var (
	// errors
	ErrNotFound = errors.New("article not found")
)

type (
	Repository interface {
		CreateArticle(ctx context.Context, article Article) (Article, error)
		GetArticleByID(ctx context.Context, id string) (Article, error)
		QueryAllArticles(ctx context.Context) ([]Article, error)
		UpdateArticle(ctx context.Context, article Article) (Article, error)
		DeleteArticlesByID(ctx context.Context, ids ...string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, na NewArticle, authorID string) (Article, error) {
	now := time.Now().UTC()
	article := Article{
		ID:          uuid.New().String(),
		Title:       na.Title,
		Body:        na.Body,
		Institution: na.Institution,
		AuthorID:    authorID,
		PublishedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	article, err := svc.repo.CreateArticle(ctx, article)
	if err != nil {
		return article, err
	}
	article.RenderedBody = textrender.Render(article.Body)
	return article, nil
}

// QueryAll returns all articles, newest first, bodies rendered.
func (svc *Service) QueryAll(ctx context.Context) ([]Article, error) {
	articles, err := svc.repo.QueryAllArticles(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})
	for i := range articles {
		articles[i].RenderedBody = textrender.Render(articles[i].Body)
	}
	return articles, nil
}

func (svc *Service) GetByID(ctx context.Context, id string) (Article, error) {
	article, err := svc.repo.GetArticleByID(ctx, id)
	if err != nil {
		return article, err
	}
	article.RenderedBody = textrender.Render(article.Body)
	return article, nil
}

func (svc *Service) Update(ctx context.Context, id string, ua UpdateArticle) (Article, error) {
	article := Article{
		ID:          id,
		Title:       ua.Title,
		Body:        ua.Body,
		Institution: ua.Institution,
		UpdatedAt:   time.Now().UTC(),
	}
	article, err := svc.repo.UpdateArticle(ctx, article)
	if err != nil {
		return article, err
	}
	article.RenderedBody = textrender.Render(article.Body)
	return article, nil
}

func (svc *Service) Delete(ctx context.Context, ids ...string) error {
	return svc.repo.DeleteArticlesByID(ctx, ids...)
}
