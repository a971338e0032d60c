package sqlxrepo

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Konou0luc/ucao-academy-sub000/core/discussion"
)

const (
	threadColumns  = `id, topic, filiere, niveau, author_id, created_at`
	messageColumns = `id, thread_id, author_id, body, created_at`
)

type discussionRepository struct {
	db *sqlx.DB
}

var _ discussion.Repository = (*discussionRepository)(nil)

func NewDiscussionRepository(db *sqlx.DB) discussion.Repository {
	return &discussionRepository{db: db}
}

func (repo *discussionRepository) CreateThread(ctx context.Context, thread discussion.Thread) (discussion.Thread, error) {
	query := `
		INSERT INTO discussion_thread (` + threadColumns + `)
		VALUES (:id, :topic, :filiere, :niveau, :author_id, :created_at)`
	if _, err := repo.db.NamedExecContext(ctx, query, thread); err != nil {
		return discussion.Thread{}, errors.Wrap(err, "inserting thread")
	}
	return thread, nil
}

func (repo *discussionRepository) GetThreadByID(ctx context.Context, id string) (discussion.Thread, error) {
	var thread discussion.Thread
	err := repo.db.GetContext(ctx, &thread, `SELECT `+threadColumns+` FROM discussion_thread WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return discussion.Thread{}, discussion.ErrThreadNotFound
	}
	if err != nil {
		return discussion.Thread{}, errors.Wrap(err, "selecting thread")
	}
	return thread, nil
}

func (repo *discussionRepository) QueryAllThreads(ctx context.Context) ([]discussion.Thread, error) {
	threads := make([]discussion.Thread, 0)
	query := `SELECT ` + threadColumns + ` FROM discussion_thread ORDER BY created_at DESC`
	if err := repo.db.SelectContext(ctx, &threads, query); err != nil {
		return nil, errors.Wrap(err, "selecting threads")
	}
	return threads, nil
}

func (repo *discussionRepository) DeleteThreadsByID(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	// messages go with their thread (ON DELETE CASCADE)
	query, args, err := sqlx.In(`DELETE FROM discussion_thread WHERE id IN (?)`, ids)
	if err != nil {
		return errors.Wrap(err, "expanding query")
	}
	if _, err := repo.db.ExecContext(ctx, repo.db.Rebind(query), args...); err != nil {
		return errors.Wrap(err, "deleting threads")
	}
	return nil
}

func (repo *discussionRepository) CreateMessage(ctx context.Context, msg discussion.Message) (discussion.Message, error) {
	query := `
		INSERT INTO discussion_message (` + messageColumns + `)
		VALUES (:id, :thread_id, :author_id, :body, :created_at)`
	if _, err := repo.db.NamedExecContext(ctx, query, msg); err != nil {
		return discussion.Message{}, errors.Wrap(err, "inserting message")
	}
	return msg, nil
}

func (repo *discussionRepository) QueryMessagesByThreadID(ctx context.Context, threadID string) ([]discussion.Message, error) {
	msgs := make([]discussion.Message, 0)
	query := `SELECT ` + messageColumns + ` FROM discussion_message WHERE thread_id = $1 ORDER BY created_at`
	if err := repo.db.SelectContext(ctx, &msgs, query, threadID); err != nil {
		return nil, errors.Wrap(err, "selecting messages")
	}
	return msgs, nil
}
