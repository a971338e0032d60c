package evaluation

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Konou0luc/ucao-academy-sub000/core"
)

// Event types
const (
	TypeExamen   = "examen"
	TypeControle = "controle"
	TypeTP       = "tp"
	TypeProjet   = "projet"
)

// Statuses, derived relative to "now" at aggregation time; never persisted.
const (
	StatusUpcoming = "upcoming"
	StatusPast     = "past"
)

type Event struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Type        string    `json:"type" db:"type"`
	CourseTitle string    `json:"course_title,omitempty" db:"course_title"`
	Date        time.Time `json:"evaluation_date" db:"evaluation_date"`
	StartTime   string    `json:"start_time,omitempty" db:"start_time"`
	EndTime     string    `json:"end_time,omitempty" db:"end_time"`
	Location    string    `json:"location,omitempty" db:"location"`
	Filiere     string    `json:"filiere,omitempty" db:"filiere"`
	Niveau      string    `json:"niveau,omitempty" db:"niveau"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"` // UTC
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"` // UTC
}

// DateKey is the calendar-day grouping key; its lexical order equals
// chronological order.
func (e Event) DateKey() string {
	return e.Date.Format("2006-01-02")
}

// NewEvent contains information needed to create a new Event.
type NewEvent struct {
	Title       string    `json:"title" validate:"required"`
	Type        string    `json:"type" validate:"required,oneof=examen controle tp projet"`
	CourseTitle string    `json:"course_title"`
	Date        time.Time `json:"evaluation_date" validate:"required"`
	StartTime   string    `json:"start_time" validate:"omitempty,timestr"`
	EndTime     string    `json:"end_time" validate:"omitempty,timestr"`
	Location    string    `json:"location"`
	Filiere     string    `json:"filiere"`
	Niveau      string    `json:"niveau"`
}

func (ne *NewEvent) Validate(validate *validator.Validate) error {
	ne.Title = core.CleanString(ne.Title)
	ne.Type = core.CleanString(ne.Type, true /* lower */)
	ne.CourseTitle = core.CleanString(ne.CourseTitle)
	ne.Location = core.CleanString(ne.Location)
	ne.Filiere = core.CleanString(ne.Filiere)
	ne.Niveau = core.CleanString(ne.Niveau, true /* lower */)
	return validate.Struct(ne)
}

// UpdateEvent defines what information may be provided to modify an existing Event.
type UpdateEvent struct {
	Title       string    `json:"title"`
	Type        string    `json:"type" validate:"omitempty,oneof=examen controle tp projet"`
	CourseTitle string    `json:"course_title"`
	Date        time.Time `json:"evaluation_date"`
	StartTime   string    `json:"start_time" validate:"omitempty,timestr"`
	EndTime     string    `json:"end_time" validate:"omitempty,timestr"`
	Location    string    `json:"location"`
	Filiere     string    `json:"filiere"`
	Niveau      string    `json:"niveau"`
}

func (ue *UpdateEvent) Validate(orig Event, validate *validator.Validate) error {
	if title := core.CleanString(ue.Title); title != "" {
		ue.Title = title
	} else {
		ue.Title = orig.Title
	}
	if typ := core.CleanString(ue.Type, true /* lower */); typ != "" {
		ue.Type = typ
	} else {
		ue.Type = orig.Type
	}
	if ue.Date.IsZero() {
		ue.Date = orig.Date
	}
	ue.CourseTitle = core.CleanString(ue.CourseTitle)
	ue.Location = core.CleanString(ue.Location)
	ue.Filiere = core.CleanString(ue.Filiere)
	ue.Niveau = core.CleanString(ue.Niveau, true /* lower */)
	return validate.Struct(ue)
}
