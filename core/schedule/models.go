package schedule

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Konou0luc/ucao-academy-sub000/core"
)

type Slot struct {
	ID          string    `json:"id" db:"id"`
	CourseTitle string    `json:"course_title" db:"course_title"`
	Filiere     string    `json:"filiere" db:"filiere"`
	Niveau      string    `json:"niveau" db:"niveau"`
	Day         string    `json:"day_of_week" db:"day_of_week"` // lundi .. samedi
	StartTime   string    `json:"start_time" db:"start_time"`   // H:MM or HH:MM
	EndTime     string    `json:"end_time" db:"end_time"`
	Room        string    `json:"room,omitempty" db:"room"`
	Instructor  string    `json:"instructor,omitempty" db:"instructor"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"` // UTC
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"` // UTC
}

// NewSlot contains information needed to create a new Slot.
type NewSlot struct {
	CourseTitle string `json:"course_title" validate:"required"`
	Filiere     string `json:"filiere" validate:"required"`
	Niveau      string `json:"niveau" validate:"required"`
	Day         string `json:"day_of_week" validate:"required,oneof=lundi mardi mercredi jeudi vendredi samedi"`
	StartTime   string `json:"start_time" validate:"required,timestr"`
	EndTime     string `json:"end_time" validate:"required,timestr"`
	Room        string `json:"room"`
	Instructor  string `json:"instructor"`
}

func (ns *NewSlot) Validate(validate *validator.Validate) error {
	ns.CourseTitle = core.CleanString(ns.CourseTitle)
	ns.Filiere = core.CleanString(ns.Filiere)
	ns.Niveau = core.CleanString(ns.Niveau, true /* lower */)
	ns.Day = core.CleanString(ns.Day, true /* lower */)
	ns.Room = core.CleanString(ns.Room)
	ns.Instructor = core.CleanString(ns.Instructor)
	return validate.Struct(ns)
}

// UpdateSlot defines what information may be provided to modify an existing Slot.
type UpdateSlot struct {
	CourseTitle string `json:"course_title"`
	Filiere     string `json:"filiere"`
	Niveau      string `json:"niveau"`
	Day         string `json:"day_of_week" validate:"omitempty,oneof=lundi mardi mercredi jeudi vendredi samedi"`
	StartTime   string `json:"start_time" validate:"omitempty,timestr"`
	EndTime     string `json:"end_time" validate:"omitempty,timestr"`
	Room        string `json:"room"`
	Instructor  string `json:"instructor"`
}

func (us *UpdateSlot) Validate(orig Slot, validate *validator.Validate) error {
	if title := core.CleanString(us.CourseTitle); title != "" {
		us.CourseTitle = title
	} else {
		us.CourseTitle = orig.CourseTitle
	}
	if day := core.CleanString(us.Day, true /* lower */); day != "" {
		us.Day = day
	} else {
		us.Day = orig.Day
	}
	if us.StartTime == "" {
		us.StartTime = orig.StartTime
	}
	if us.EndTime == "" {
		us.EndTime = orig.EndTime
	}
	us.Filiere = core.CleanString(us.Filiere)
	us.Niveau = core.CleanString(us.Niveau, true /* lower */)
	us.Room = core.CleanString(us.Room)
	us.Instructor = core.CleanString(us.Instructor)
	return validate.Struct(us)
}

type QueryFilter struct {
	Filiere string `query:"filiere"`
	Niveau  string `query:"niveau"`
}

func (qf *QueryFilter) Clean() {
	qf.Filiere = core.CleanString(qf.Filiere)
	qf.Niveau = core.CleanString(qf.Niveau)
}

func (qf QueryFilter) matches(slot Slot) bool {
	if qf.Filiere != "" && slot.Filiere != qf.Filiere {
		return false
	}
	if qf.Niveau != "" && slot.Niveau != qf.Niveau {
		return false
	}
	return true
}

// Filter keeps the slots matching every non-empty criterion.
func Filter(slots []Slot, qf QueryFilter) []Slot {
	out := make([]Slot, 0, len(slots))
	for _, slot := range slots {
		if qf.matches(slot) {
			out = append(out, slot)
		}
	}
	return out
}
