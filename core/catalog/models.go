package catalog

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Konou0luc/ucao-academy-sub000/core"
)

// Sentinels used when a course record carries no filière/niveau.
const (
	DefaultFiliere = "Autre"
	DefaultNiveau  = "autre"
)

// Institutions
const (
	InstitutionDGI  = "DGI"
	InstitutionISSJ = "ISSJ"
	InstitutionISEG = "ISEG"
)

type Course struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description,omitempty" db:"description"`
	Filiere     string    `json:"filiere,omitempty" db:"filiere"`
	Niveau      string    `json:"niveau,omitempty" db:"niveau"`
	Institution string    `json:"institution,omitempty" db:"institution"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"` // UTC
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"` // UTC
}

// NewCourse contains information needed to create a new Course.
type NewCourse struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Filiere     string `json:"filiere"`
	Niveau      string `json:"niveau"`
	Institution string `json:"institution" validate:"omitempty,oneof=DGI ISSJ ISEG"`
}

func (nc *NewCourse) Validate(validate *validator.Validate) error {
	nc.Title = core.CleanString(nc.Title)
	nc.Description = core.CleanString(nc.Description)
	nc.Filiere = core.CleanString(nc.Filiere)
	nc.Niveau = core.CleanString(nc.Niveau, true /* lower */)
	nc.Institution = core.CleanString(nc.Institution)
	return validate.Struct(nc)
}

// UpdateCourse defines what information may be provided to modify an existing Course.
type UpdateCourse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Filiere     string `json:"filiere"`
	Niveau      string `json:"niveau"`
	Institution string `json:"institution" validate:"omitempty,oneof=DGI ISSJ ISEG"`
}

func (uc *UpdateCourse) Validate(orig Course, validate *validator.Validate) error {
	if title := core.CleanString(uc.Title); title != "" {
		uc.Title = title
	} else {
		uc.Title = orig.Title
	}
	uc.Description = core.CleanString(uc.Description)
	uc.Filiere = core.CleanString(uc.Filiere)
	uc.Niveau = core.CleanString(uc.Niveau, true /* lower */)
	uc.Institution = core.CleanString(uc.Institution)
	return validate.Struct(uc)
}

type QueryFilter struct {
	Search      string `query:"search"`
	Filiere     string `query:"filiere"`
	Niveau      string `query:"niveau"`
	Institution string `query:"institution"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.Filiere == "" && qf.Niveau == "" && qf.Institution == ""
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Filiere = core.CleanString(qf.Filiere)
	qf.Niveau = core.CleanString(qf.Niveau, true /* lower */)
	qf.Institution = core.CleanString(qf.Institution)
}
