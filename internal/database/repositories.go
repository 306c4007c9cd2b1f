package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/prioriza/prioriza/internal/models"
)

// TaskRepositoryInterface defines the append-only task history contract.
// Enables mock implementations in handler and service tests.
type TaskRepositoryInterface interface {
	Append(ctx context.Context, task *models.Task) (uuid.UUID, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Task, error)
}

// DailyPlanRepositoryInterface defines the append-only daily-plan history contract.
type DailyPlanRepositoryInterface interface {
	Append(ctx context.Context, plan *models.DailyPlan) (uuid.UUID, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.DailyPlan, error)
}

// Ensure concrete types implement the interfaces
var (
	_ TaskRepositoryInterface      = (*TaskRepository)(nil)
	_ DailyPlanRepositoryInterface = (*DailyPlanRepository)(nil)
)
