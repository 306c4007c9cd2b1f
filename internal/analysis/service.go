package analysis

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/prioriza/prioriza/internal/database"
	"github.com/prioriza/prioriza/internal/models"
	"github.com/prioriza/prioriza/internal/prompt"
	"github.com/prioriza/prioriza/internal/services/ai"
)

// Validation messages match the user-facing language of the product.
var (
	errTaskRequired = errors.New("La descripción de la tarea es obligatoria.")
	errListRequired = errors.New("La lista de tareas es obligatoria.")
	errPlanRequired = errors.New("El plan diario es obligatorio.")
)

// Service runs the classification pipeline. Appends are durable before the
// success result is returned; a storage fault after a successful gateway
// call still fails the whole operation.
type Service struct {
	provider ai.Provider
	tasks    database.TaskRepositoryInterface
	plans    database.DailyPlanRepositoryInterface
	logger   *zap.Logger
}

// NewService creates a classification service.
func NewService(provider ai.Provider, tasks database.TaskRepositoryInterface, plans database.DailyPlanRepositoryInterface, logger *zap.Logger) *Service {
	return &Service{
		provider: provider,
		tasks:    tasks,
		plans:    plans,
		logger:   logger,
	}
}

// AnalyzeEisenhower classifies a single task with the Eisenhower Matrix,
// appends one history record, and returns the raw model text.
func (s *Service) AnalyzeEisenhower(ctx context.Context, userID uuid.UUID, task string) (string, error) {
	if task == "" {
		return "", validationError(errTaskRequired)
	}

	result, category, opErr := s.callGateway(ctx, models.FrameworkEisenhower, prompt.BuildEisenhower(task))
	if opErr != nil {
		return "", opErr
	}

	record := &models.Task{UserID: userID, Description: task, Category: category}
	if _, err := s.tasks.Append(ctx, record); err != nil {
		return "", persistenceError(fmt.Errorf("failed to append task record: %w", err))
	}

	return result, nil
}

// AnalyzeLaborit picks the first task of the day from a task list (or free
// text), appends one history record for the submitted list, and returns the
// raw model text.
func (s *Service) AnalyzeLaborit(ctx context.Context, userID uuid.UUID, payload prompt.LaboritPayload) (string, error) {
	description := payload.String()
	if description == "" {
		return "", validationError(errListRequired)
	}

	result, category, opErr := s.callGateway(ctx, models.FrameworkLaborit, prompt.BuildLaborit(payload))
	if opErr != nil {
		return "", opErr
	}

	record := &models.Task{UserID: userID, Description: description, Category: category}
	if _, err := s.tasks.Append(ctx, record); err != nil {
		return "", persistenceError(fmt.Errorf("failed to append task record: %w", err))
	}

	return result, nil
}

// ReviewDailyPlan checks a daily plan against the Yerkes-Dodson and Illich
// laws. Only the submitted plan text is persisted; the model's suggested
// adjustment is returned to the caller but not stored.
func (s *Service) ReviewDailyPlan(ctx context.Context, userID uuid.UUID, plan string) (string, error) {
	if plan == "" {
		return "", validationError(errPlanRequired)
	}

	built := prompt.BuildYerkesDodson(plan)
	result, err := s.provider.Generate(ctx, built)
	if err != nil {
		s.logGatewayFailure(models.FrameworkYerkesDodson, err)
		return "", gatewayError(err)
	}

	record := &models.DailyPlan{UserID: userID, PlanText: plan}
	if _, err := s.plans.Append(ctx, record); err != nil {
		return "", persistenceError(fmt.Errorf("failed to append daily plan record: %w", err))
	}

	return result, nil
}

// ListTasks returns the caller's classified tasks, newest first.
func (s *Service) ListTasks(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	tasks, err := s.tasks.ListByUserID(ctx, userID)
	if err != nil {
		return nil, persistenceError(fmt.Errorf("failed to list tasks: %w", err))
	}
	return tasks, nil
}

// ListDailyPlans returns the caller's daily plans, newest first.
func (s *Service) ListDailyPlans(ctx context.Context, userID uuid.UUID) ([]*models.DailyPlan, error) {
	plans, err := s.plans.ListByUserID(ctx, userID)
	if err != nil {
		return nil, persistenceError(fmt.Errorf("failed to list daily plans: %w", err))
	}
	return plans, nil
}

// callGateway runs the model call plus category parse shared by the two
// classification kinds.
func (s *Service) callGateway(ctx context.Context, framework models.Framework, built string) (string, string, *OperationError) {
	result, err := s.provider.Generate(ctx, built)
	if err != nil {
		s.logGatewayFailure(framework, err)
		return "", "", gatewayError(err)
	}
	return result, prompt.ParseCategory(result), nil
}

func (s *Service) logGatewayFailure(framework models.Framework, err error) {
	if s.logger == nil {
		return
	}
	s.logger.Error("gateway call failed",
		zap.String("framework", string(framework)),
		zap.Error(err),
	)
}
