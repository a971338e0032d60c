package inmemdb

import (
	"context"

	"github.com/Konou0luc/ucao-academy-sub000/core/discussion"
)

type discussionRepository struct {
	db *DB
}

var _ discussion.Repository = (*discussionRepository)(nil)

func NewDiscussionRepository(db *DB) discussion.Repository {
	return &discussionRepository{db: db}
}

func (repo *discussionRepository) CreateThread(ctx context.Context, thread discussion.Thread) (discussion.Thread, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.threads[thread.ID] = &thread
	return thread, nil
}

func (repo *discussionRepository) GetThreadByID(ctx context.Context, id string) (discussion.Thread, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if thread, ok := repo.db.threads[id]; ok {
		return *thread, nil
	}
	return discussion.Thread{}, discussion.ErrThreadNotFound
}

func (repo *discussionRepository) QueryAllThreads(ctx context.Context) ([]discussion.Thread, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	threads := make([]discussion.Thread, 0, len(repo.db.threads))
	for _, thread := range repo.db.threads {
		threads = append(threads, *thread)
	}
	return threads, nil
}

func (repo *discussionRepository) DeleteThreadsByID(ctx context.Context, ids ...string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, id := range ids {
		delete(repo.db.threads, id)
		for msgID, msg := range repo.db.messages {
			if msg.ThreadID == id {
				delete(repo.db.messages, msgID)
			}
		}
	}
	return nil
}

func (repo *discussionRepository) CreateMessage(ctx context.Context, msg discussion.Message) (discussion.Message, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.messages[msg.ID] = &msg
	return msg, nil
}

func (repo *discussionRepository) QueryMessagesByThreadID(ctx context.Context, threadID string) ([]discussion.Message, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	var msgs []discussion.Message
	for _, msg := range repo.db.messages {
		if msg.ThreadID == threadID {
			msgs = append(msgs, *msg)
		}
	}
	return msgs, nil
}
