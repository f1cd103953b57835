package tutor

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/campushelper/backend/core"
)

type Tutor struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Unit      string    `json:"unit" db:"unit"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	CreatedAt time.Time `json:"created_at" db:"created_at"` // UTC
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // UTC
}

// NewTutor contains information needed to list a new Tutor.
type NewTutor struct {
	Name  string `json:"name" validate:"required"`
	Unit  string `json:"unit" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

func (nt *NewTutor) Validate(validate *validator.Validate) error {
	nt.Name = core.CleanString(nt.Name)
	nt.Unit = core.CleanString(nt.Unit)
	nt.Email = core.CleanString(nt.Email, true /* lower */)
	nt.Phone = core.CleanString(nt.Phone)
	return validate.Struct(nt)
}
