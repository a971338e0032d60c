package inmemdb

import (
	"context"

	"github.com/Konou0luc/ucao-academy-sub000/core/news"
)

type newsRepository struct {
	db *DB
}

var _ news.Repository = (*newsRepository)(nil)

func NewNewsRepository(db *DB) news.Repository {
	return &newsRepository{db: db}
}

func (repo *newsRepository) CreateArticle(ctx context.Context, article news.Article) (news.Article, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.articles[article.ID] = &article
	return article, nil
}

func (repo *newsRepository) GetArticleByID(ctx context.Context, id string) (news.Article, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if article, ok := repo.db.articles[id]; ok {
		return *article, nil
	}
	return news.Article{}, news.ErrNotFound
}

func (repo *newsRepository) QueryAllArticles(ctx context.Context) ([]news.Article, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	articles := make([]news.Article, 0, len(repo.db.articles))
	for _, article := range repo.db.articles {
		articles = append(articles, *article)
	}
	return articles, nil
}

func (repo *newsRepository) UpdateArticle(ctx context.Context, article news.Article) (news.Article, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	orig, ok := repo.db.articles[article.ID]
	if !ok {
		return news.Article{}, news.ErrNotFound
	}
	if article.Title != "" {
		orig.Title = article.Title
	}
	if article.Body != "" {
		orig.Body = article.Body
	}
	if article.Institution != "" {
		orig.Institution = article.Institution
	}
	orig.UpdatedAt = article.UpdatedAt

	repo.db.articles[article.ID] = orig
	return *orig, nil
}

func (repo *newsRepository) DeleteArticlesByID(ctx context.Context, ids ...string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	for _, id := range ids {
		delete(repo.db.articles, id)
	}
	return nil
}
