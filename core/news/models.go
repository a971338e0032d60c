package news

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Konou0luc/ucao-academy-sub000/core"
)

type Article struct {
	ID           string    `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Body         string    `json:"body" db:"body"`
	RenderedBody string    `json:"rendered_body,omitempty" db:"-"`
	Institution  string    `json:"institution,omitempty" db:"institution"`
	AuthorID     string    `json:"author_id" db:"author_id"`
	PublishedAt  time.Time `json:"published_at" db:"published_at"` // UTC
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // UTC
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`     // UTC
}

// NewArticle contains information needed to publish a new Article.
type NewArticle struct {
	Title       string `json:"title" validate:"required"`
	Body        string `json:"body" validate:"required"`
	Institution string `json:"institution" validate:"omitempty,oneof=DGI ISSJ ISEG"`
}

func (na *NewArticle) Validate(validate *validator.Validate) error {
	na.Title = core.CleanString(na.Title)
	na.Body = core.CleanString(na.Body)
	na.Institution = core.CleanString(na.Institution)
	return validate.Struct(na)
}

// UpdateArticle defines what information may be provided to modify an existing Article.
type UpdateArticle struct {
	Title       string `json:"title"`
	Body        string `json:"body"`
	Institution string `json:"institution" validate:"omitempty,oneof=DGI ISSJ ISEG"`
}

func (ua *UpdateArticle) Validate(orig Article, validate *validator.Validate) error {
	if title := core.CleanString(ua.Title); title != "" {
		ua.Title = title
	} else {
		ua.Title = orig.Title
	}
	if body := core.CleanString(ua.Body); body != "" {
		ua.Body = body
	} else {
		ua.Body = orig.Body
	}
	ua.Institution = core.CleanString(ua.Institution)
	return validate.Struct(ua)
}
