package discussion

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Konou0luc/ucao-academy-sub000/core"
)

type (
	Thread struct {
		ID        string    `json:"id" db:"id"`
		Topic     string    `json:"topic" db:"topic"`
		Filiere   string    `json:"filiere,omitempty" db:"filiere"`
		Niveau    string    `json:"niveau,omitempty" db:"niveau"`
		AuthorID  string    `json:"author_id" db:"author_id"`
		CreatedAt time.Time `json:"created_at" db:"created_at"` // UTC
	}

	Message struct {
		ID           string    `json:"id" db:"id"`
		ThreadID     string    `json:"thread_id" db:"thread_id"`
		AuthorID     string    `json:"author_id" db:"author_id"`
		Body         string    `json:"body" db:"body"`
		RenderedBody string    `json:"rendered_body,omitempty" db:"-"`
		CreatedAt    time.Time `json:"created_at" db:"created_at"` // UTC
	}

	// ThreadView is a Thread with its message count, for listings.
	ThreadView struct {
		Thread
		MessageCount int `json:"message_count"`
	}
)

// NewThread contains information needed to open a new Thread.
type NewThread struct {
	Topic   string `json:"topic" validate:"required"`
	Filiere string `json:"filiere"`
	Niveau  string `json:"niveau"`
}

func (nt *NewThread) Validate(validate *validator.Validate) error {
	nt.Topic = core.CleanString(nt.Topic)
	nt.Filiere = core.CleanString(nt.Filiere)
	nt.Niveau = core.CleanString(nt.Niveau, true /* lower */)
	return validate.Struct(nt)
}

// NewMessage contains information needed to post a Message on a Thread.
type NewMessage struct {
	Body string `json:"body" validate:"required"`
}

func (nm *NewMessage) Validate(validate *validator.Validate) error {
	nm.Body = core.CleanString(nm.Body)
	return validate.Struct(nm)
}
