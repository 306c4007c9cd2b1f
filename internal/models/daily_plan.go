package models

import (
	"time"

	"github.com/google/uuid"
)

// DailyPlan is one submitted daily plan in a user's history. Only the
// original plan text is persisted; the model's suggested adjustment is
// returned to the caller but never stored.
type DailyPlan struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	PlanText  string    `json:"plan_text"`
	CreatedAt time.Time `json:"created_at"`

	Seq int64 `json:"-"`
}
