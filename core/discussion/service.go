package discussion

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
	ErrThreadNotFound = errors.New("thread not found")
)

type (
	Repository interface {
		CreateThread(ctx context.Context, thread Thread) (Thread, error)
		GetThreadByID(ctx context.Context, id string) (Thread, error)
		QueryAllThreads(ctx context.Context) ([]Thread, error)
		DeleteThreadsByID(ctx context.Context, ids ...string) error

		CreateMessage(ctx context.Context, msg Message) (Message, error)
		QueryMessagesByThreadID(ctx context.Context, threadID string) ([]Message, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) CreateThread(ctx context.Context, nt NewThread, authorID string) (Thread, error) {
	thread := Thread{
		ID:        uuid.New().String(),
		Topic:     nt.Topic,
		Filiere:   nt.Filiere,
		Niveau:    nt.Niveau,
		AuthorID:  authorID,
		CreatedAt: time.Now().UTC(),
	}
	return svc.repo.CreateThread(ctx, thread)
}

// QueryThreads lists threads newest first, each with its message count.
func (svc *Service) QueryThreads(ctx context.Context) ([]ThreadView, error) {
	threads, err := svc.repo.QueryAllThreads(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(threads, func(i, j int) bool {
		return threads[i].CreatedAt.After(threads[j].CreatedAt)
	})

	views := make([]ThreadView, 0, len(threads))
	for _, thread := range threads {
		msgs, err := svc.repo.QueryMessagesByThreadID(ctx, thread.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, ThreadView{Thread: thread, MessageCount: len(msgs)})
	}
	return views, nil
}

func (svc *Service) GetThread(ctx context.Context, id string) (Thread, error) {
	return svc.repo.GetThreadByID(ctx, id)
}

func (svc *Service) DeleteThreads(ctx context.Context, ids ...string) error {
	return svc.repo.DeleteThreadsByID(ctx, ids...)
}

func (svc *Service) PostMessage(ctx context.Context, threadID string, nm NewMessage, authorID string) (Message, error) {
	if _, err := svc.repo.GetThreadByID(ctx, threadID); err != nil {
		return Message{}, err
	}
	msg := Message{
		ID:        uuid.New().String(),
		ThreadID:  threadID,
		AuthorID:  authorID,
		Body:      nm.Body,
		CreatedAt: time.Now().UTC(),
	}
	msg, err := svc.repo.CreateMessage(ctx, msg)
	if err != nil {
		return msg, err
	}
	msg.RenderedBody = textrender.Render(msg.Body)
	return msg, nil
}

// Messages returns a thread's messages oldest first, bodies rendered.
func (svc *Service) Messages(ctx context.Context, threadID string) ([]Message, error) {
	if _, err := svc.repo.GetThreadByID(ctx, threadID); err != nil {
		return nil, err
	}
	msgs, err := svc.repo.QueryMessagesByThreadID(ctx, threadID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].CreatedAt.Before(msgs[j].CreatedAt)
	})
	for i := range msgs {
		msgs[i].RenderedBody = textrender.Render(msgs[i].Body)
	}
	return msgs, nil
}
