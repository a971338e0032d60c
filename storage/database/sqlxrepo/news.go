package sqlxrepo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Konou0luc/ucao-academy-sub000/core/news"
)

const articleColumns = `id, title, body, institution, author_id, published_at, created_at, updated_at`

type newsRepository struct {
	db *sqlx.DB
}

var _ news.Repository = (*newsRepository)(nil)

func NewNewsRepository(db *sqlx.DB) news.Repository {
	return &newsRepository{db: db}
}

func (repo *newsRepository) CreateArticle(ctx context.Context, article news.Article) (news.Article, error) {
	query := `
		INSERT INTO news_article (` + articleColumns + `)
		VALUES (:id, :title, :body, :institution, :author_id, :published_at, :created_at, :updated_at)`
	if _, err := repo.db.NamedExecContext(ctx, query, article); err != nil {
		return news.Article{}, errors.Wrap(err, "inserting article")
	}
	return article, nil
}

func (repo *newsRepository) GetArticleByID(ctx context.Context, id string) (news.Article, error) {
	var article news.Article
	err := repo.db.GetContext(ctx, &article, `SELECT `+articleColumns+` FROM news_article WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return news.Article{}, news.ErrNotFound
	}
	if err != nil {
		return news.Article{}, errors.Wrap(err, "selecting article")
	}
	return article, nil
}

func (repo *newsRepository) QueryAllArticles(ctx context.Context) ([]news.Article, error) {
	articles := make([]news.Article, 0)
	query := `SELECT ` + articleColumns + ` FROM news_article ORDER BY published_at DESC`
	if err := repo.db.SelectContext(ctx, &articles, query); err != nil {
		return nil, errors.Wrap(err, "selecting articles")
	}
	return articles, nil
}

func (repo *newsRepository) UpdateArticle(ctx context.Context, article news.Article) (news.Article, error) {
	var (
		sets []string
		args []interface{}
	)
	set := func(column string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if article.Title != "" {
		set("title", article.Title)
	}
	if article.Body != "" {
		set("body", article.Body)
	}
	if article.Institution != "" {
		set("institution", article.Institution)
	}
	if !article.UpdatedAt.IsZero() {
		set("updated_at", article.UpdatedAt)
	}
	if len(sets) == 0 {
		return repo.GetArticleByID(ctx, article.ID)
	}

	args = append(args, article.ID)
	query := fmt.Sprintf(`UPDATE news_article SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))
	res, err := repo.db.ExecContext(ctx, query, args...)
	if err != nil {
		return news.Article{}, errors.Wrap(err, "updating article")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return news.Article{}, news.ErrNotFound
	}
	return repo.GetArticleByID(ctx, article.ID)
}

func (repo *newsRepository) DeleteArticlesByID(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`DELETE FROM news_article WHERE id IN (?)`, ids)
	if err != nil {
		return errors.Wrap(err, "expanding query")
	}
	if _, err := repo.db.ExecContext(ctx, repo.db.Rebind(query), args...); err != nil {
		return errors.Wrap(err, "deleting articles")
	}
	return nil
}
