package post

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/campushelper/backend/core"
)

type Post struct {
	ID      string `json:"id" db:"id"`
	Title   string `json:"title" db:"title"`
	Body    string `json:"body" db:"body"`
	OwnerID string `json:"owner_id" db:"owner_id"`
	// OwnerEmail is only populated on admin-facing listings.
	OwnerEmail string    `json:"owner_email,omitempty" db:"owner_email"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"` // UTC
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"` // UTC
}

// NewPost contains information needed to create a new Post.
type NewPost struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body"`
}

func (np *NewPost) Validate(validate *validator.Validate) error {
	np.Title = core.CleanString(np.Title)
	np.Body = core.CleanString(np.Body)
	return validate.Struct(np)
}
