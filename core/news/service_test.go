package news

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	articles map[string]Article
}

func newFakeRepo() *fakeRepo { return &fakeRepo{articles: map[string]Article{}} }

func (r *fakeRepo) CreateArticle(ctx context.Context, article Article) (Article, error) {
	r.articles[article.ID] = article
	return article, nil
}
func (r *fakeRepo) GetArticleByID(ctx context.Context, id string) (Article, error) {
	article, ok := r.articles[id]
	if !ok {
		return Article{}, ErrNotFound
	}
	return article, nil
}
func (r *fakeRepo) QueryAllArticles(ctx context.Context) ([]Article, error) {
	out := make([]Article, 0, len(r.articles))
	for _, article := range r.articles {
		out = append(out, article)
	}
	return out, nil
}
func (r *fakeRepo) UpdateArticle(ctx context.Context, article Article) (Article, error) {
	if _, ok := r.articles[article.ID]; !ok {
		return Article{}, ErrNotFound
	}
	r.articles[article.ID] = article
	return article, nil
}
func (r *fakeRepo) DeleteArticlesByID(ctx context.Context, ids ...string) error {
	for _, id := range ids {
		delete(r.articles, id)
	}
	return nil
}

func TestServiceQueryAll(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewService(repo)

	repo.articles["a1"] = Article{ID: "a1", Title: "Rentrée", Body: "Bienvenue", PublishedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}
	repo.articles["a2"] = Article{ID: "a2", Title: "Examens", Body: "**Calendrier**\n- session 1", PublishedAt: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)}

	articles, err := svc.QueryAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, articles, 2)

	// newest first
	assert.Equal(t, "a2", articles[0].ID)
	assert.Equal(t, "a1", articles[1].ID)

	// bodies rendered
	assert.Contains(t, articles[0].RenderedBody, "<h3>Calendrier</h3>")
	assert.Contains(t, articles[0].RenderedBody, "<li>session 1</li>")
	assert.Equal(t, "<p>Bienvenue</p>", articles[1].RenderedBody)
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepo())

	article, err := svc.Create(ctx, NewArticle{Title: "Info", Body: "Salle **B12**"}, "author-1")
	assert.NoError(t, err)
	assert.NotEmpty(t, article.ID)
	assert.Equal(t, "author-1", article.AuthorID)
	assert.False(t, article.PublishedAt.IsZero())
	assert.Equal(t, "<p>Salle <strong>B12</strong></p>", article.RenderedBody)
}

func TestServiceGetByID(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewService(repo)

	_, err := svc.GetByID(ctx, "nope")
	assert.Equal(t, ErrNotFound, err)

	repo.articles["a1"] = Article{ID: "a1", Body: "Ligne"}
	article, err := svc.GetByID(ctx, "a1")
	assert.NoError(t, err)
	assert.Equal(t, "<p>Ligne</p>", article.RenderedBody)
}
