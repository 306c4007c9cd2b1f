package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prioriza/prioriza/internal/models"
)

// TaskRepository handles classified-task history operations. The table is
// append-only: no update or delete is exposed.
type TaskRepository struct {
	db *DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Append inserts one classified task and returns its ID. The write is
// durable once this returns; callers respond to the client only after.
func (r *TaskRepository) Append(ctx context.Context, task *models.Task) (uuid.UUID, error) {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}

	query := `
		INSERT INTO tasks (id, user_id, description, category, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING seq, created_at
	`

	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		task.ID,
		task.UserID,
		task.Description,
		task.Category,
		now,
	).Scan(&task.Seq, &task.CreatedAt)

	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to append task: %w", err)
	}

	return task.ID, nil
}

// ListByUserID retrieves all classified tasks for one user, newest first.
// Ties on created_at resolve to the most recently inserted row.
func (r *TaskRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	query := `
		SELECT id, seq, user_id, description, category, created_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC, seq DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var tasks []*models.Task
	for rows.Next() {
		task := &models.Task{}
		err := rows.Scan(
			&task.ID,
			&task.Seq,
			&task.UserID,
			&task.Description,
			&task.Category,
			&task.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tasks: %w", err)
	}

	return tasks, nil
}

// CountByUserID returns the number of classified tasks for one user.
func (r *TaskRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	return count, nil
}
