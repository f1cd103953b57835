package lostfound

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/campushelper/backend/core"
)

// Item is a lost-and-found report posted by a user.
type Item struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	OwnerID     string    `json:"owner_id" db:"owner_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"` // UTC
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"` // UTC
}

type NewItem struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

func (ni *NewItem) Validate(validate *validator.Validate) error {
	ni.Title = core.CleanString(ni.Title)
	ni.Description = core.CleanString(ni.Description)
	return validate.Struct(ni)
}
