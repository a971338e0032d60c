package discussion

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	threads  map[string]Thread
	messages []Message
}

func newFakeRepo() *fakeRepo { return &fakeRepo{threads: map[string]Thread{}} }

func (r *fakeRepo) CreateThread(ctx context.Context, thread Thread) (Thread, error) {
	r.threads[thread.ID] = thread
	return thread, nil
}
func (r *fakeRepo) GetThreadByID(ctx context.Context, id string) (Thread, error) {
	thread, ok := r.threads[id]
	if !ok {
		return Thread{}, ErrThreadNotFound
	}
	return thread, nil
}
func (r *fakeRepo) QueryAllThreads(ctx context.Context) ([]Thread, error) {
	out := make([]Thread, 0, len(r.threads))
	for _, thread := range r.threads {
		out = append(out, thread)
	}
	return out, nil
}
func (r *fakeRepo) DeleteThreadsByID(ctx context.Context, ids ...string) error {
	for _, id := range ids {
		delete(r.threads, id)
	}
	return nil
}
func (r *fakeRepo) CreateMessage(ctx context.Context, msg Message) (Message, error) {
	r.messages = append(r.messages, msg)
	return msg, nil
}
func (r *fakeRepo) QueryMessagesByThreadID(ctx context.Context, threadID string) ([]Message, error) {
	var out []Message
	for _, msg := range r.messages {
		if msg.ThreadID == threadID {
			out = append(out, msg)
		}
	}
	return out, nil
}

func TestServiceQueryThreads(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewService(repo)

	repo.threads["t1"] = Thread{ID: "t1", Topic: "Emploi du temps", CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}
	repo.threads["t2"] = Thread{ID: "t2", Topic: "TP réseaux", CreatedAt: time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)}
	repo.messages = []Message{
		{ID: "m1", ThreadID: "t1", Body: "a"},
		{ID: "m2", ThreadID: "t1", Body: "b"},
	}

	views, err := svc.QueryThreads(ctx)
	assert.NoError(t, err)
	assert.Len(t, views, 2)
	assert.Equal(t, "t2", views[0].ID) // newest first
	assert.Equal(t, 0, views[0].MessageCount)
	assert.Equal(t, 2, views[1].MessageCount)
}

func TestServicePostMessage(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewService(repo)

	_, err := svc.PostMessage(ctx, "missing", NewMessage{Body: "hello"}, "u1")
	assert.Equal(t, ErrThreadNotFound, err)

	repo.threads["t1"] = Thread{ID: "t1"}
	msg, err := svc.PostMessage(ctx, "t1", NewMessage{Body: "Voir **annexe**"}, "u1")
	assert.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, "t1", msg.ThreadID)
	assert.Equal(t, "<p>Voir <strong>annexe</strong></p>", msg.RenderedBody)
}

func TestServiceMessages(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewService(repo)
	repo.threads["t1"] = Thread{ID: "t1"}
	repo.messages = []Message{
		{ID: "m2", ThreadID: "t1", Body: "deuxième", CreatedAt: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)},
		{ID: "m1", ThreadID: "t1", Body: "première", CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "m3", ThreadID: "other", Body: "ailleurs"},
	}

	msgs, err := svc.Messages(ctx, "t1")
	assert.NoError(t, err)
	assert.Len(t, msgs, 2)
	assert.Equal(t, "m1", msgs[0].ID) // oldest first
	assert.Equal(t, "<p>première</p>", msgs[0].RenderedBody)
}
