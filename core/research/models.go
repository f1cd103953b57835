package research

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/campushelper/backend/core"
)

// Material is a research resource shared by a user for a given course unit.
type Material struct {
	ID          string    `json:"id" db:"id"`
	Unit        string    `json:"unit" db:"unit"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	OwnerID     string    `json:"owner_id" db:"owner_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"` // UTC
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"` // UTC
}

type NewMaterial struct {
	Unit        string `json:"unit" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

func (nm *NewMaterial) Validate(validate *validator.Validate) error {
	nm.Unit = core.CleanString(nm.Unit)
	nm.Title = core.CleanString(nm.Title)
	nm.Description = core.CleanString(nm.Description)
	return validate.Struct(nm)
}
