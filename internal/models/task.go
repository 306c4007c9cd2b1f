package models

import (
	"time"

	"github.com/google/uuid"
)

// Task is one classified task in a user's history. Rows are append-only:
// description and category are assigned at creation and never change.
type Task struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`

	// Seq is a monotonic insertion counter used to break created_at ties
	// in history listings. Not exposed over the API.
	Seq int64 `json:"-"`
}
