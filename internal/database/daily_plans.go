package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prioriza/prioriza/internal/models"
)

// DailyPlanRepository handles daily-plan history operations. Append-only,
// like TaskRepository.
type DailyPlanRepository struct {
	db *DB
}

// NewDailyPlanRepository creates a new daily plan repository
func NewDailyPlanRepository(db *DB) *DailyPlanRepository {
	return &DailyPlanRepository{db: db}
}

// Append inserts one daily plan and returns its ID.
func (r *DailyPlanRepository) Append(ctx context.Context, plan *models.DailyPlan) (uuid.UUID, error) {
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}

	query := `
		INSERT INTO daily_plans (id, user_id, plan_text, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING seq, created_at
	`

	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		plan.ID,
		plan.UserID,
		plan.PlanText,
		now,
	).Scan(&plan.Seq, &plan.CreatedAt)

	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to append daily plan: %w", err)
	}

	return plan.ID, nil
}

// ListByUserID retrieves all daily plans for one user, newest first.
func (r *DailyPlanRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.DailyPlan, error) {
	query := `
		SELECT id, seq, user_id, plan_text, created_at
		FROM daily_plans
		WHERE user_id = $1
		ORDER BY created_at DESC, seq DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily plans: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var plans []*models.DailyPlan
	for rows.Next() {
		plan := &models.DailyPlan{}
		err := rows.Scan(
			&plan.ID,
			&plan.Seq,
			&plan.UserID,
			&plan.PlanText,
			&plan.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily plan: %w", err)
		}
		plans = append(plans, plan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily plans: %w", err)
	}

	return plans, nil
}
