package activity

import "time"

// Activity is a single entry in the audit feed shown on the admin dashboard.
type Activity struct {
	ID        string    `json:"id" db:"id"`
	Action    string    `json:"action" db:"action"`
	CreatedAt time.Time `json:"created_at" db:"created_at"` // UTC
}
