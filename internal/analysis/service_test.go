package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/prioriza/prioriza/internal/models"
	"github.com/prioriza/prioriza/internal/prompt"
)

type fakeProvider struct {
	response string
	err      error
	prompts  []string
}

func (p *fakeProvider) Generate(ctx context.Context, built string) (string, error) {
	p.prompts = append(p.prompts, built)
	if p.err != nil {
		return "", p.err
	}
	return p.response, nil
}

type fakeTaskRepo struct {
	appended []*models.Task
	listed   []*models.Task
	err      error
}

func (r *fakeTaskRepo) Append(ctx context.Context, task *models.Task) (uuid.UUID, error) {
	if r.err != nil {
		return uuid.Nil, r.err
	}
	r.appended = append(r.appended, task)
	return uuid.New(), nil
}

func (r *fakeTaskRepo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.listed, nil
}

type fakePlanRepo struct {
	appended []*models.DailyPlan
	listed   []*models.DailyPlan
	err      error
}

func (r *fakePlanRepo) Append(ctx context.Context, plan *models.DailyPlan) (uuid.UUID, error) {
	if r.err != nil {
		return uuid.Nil, r.err
	}
	r.appended = append(r.appended, plan)
	return uuid.New(), nil
}

func (r *fakePlanRepo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.DailyPlan, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.listed, nil
}

func TestAnalyzeEisenhower(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("success appends one record with parsed category", func(t *testing.T) {
		t.Parallel()

		response := "- Tarea: Finish quarterly report\n- Categoría: Urgente e Importante\n- Justificación: Deadline imminent"
		provider := &fakeProvider{response: response}
		tasks := &fakeTaskRepo{}
		svc := NewService(provider, tasks, &fakePlanRepo{}, nil)

		got, err := svc.AnalyzeEisenhower(context.Background(), userID, "Finish quarterly report")
		if err != nil {
			t.Fatalf("AnalyzeEisenhower() error = %v", err)
		}
		if got != response {
			t.Errorf("Expected raw model text back, got %q", got)
		}
		if len(tasks.appended) != 1 {
			t.Fatalf("Expected exactly one record appended, got %d", len(tasks.appended))
		}
		record := tasks.appended[0]
		if record.UserID != userID {
			t.Error("Expected record owned by the requesting user")
		}
		if record.Description != "Finish quarterly report" {
			t.Errorf("Unexpected description %q", record.Description)
		}
		if record.Category != "Urgente e Importante" {
			t.Errorf("Expected category from parser, got %q", record.Category)
		}
	})

	t.Run("empty task fails validation without calling gateway", func(t *testing.T) {
		t.Parallel()

		provider := &fakeProvider{response: "ignored"}
		tasks := &fakeTaskRepo{}
		svc := NewService(provider, tasks, &fakePlanRepo{}, nil)

		_, err := svc.AnalyzeEisenhower(context.Background(), userID, "")
		var opErr *OperationError
		if !errors.As(err, &opErr) || opErr.Kind != KindValidation {
			t.Fatalf("Expected validation error, got %v", err)
		}
		if opErr.HTTPStatus() != 400 {
			t.Errorf("Expected 400 mapping, got %d", opErr.HTTPStatus())
		}
		if len(provider.prompts) != 0 {
			t.Error("Gateway must not be called for invalid input")
		}
		if len(tasks.appended) != 0 {
			t.Error("No record may be appended for invalid input")
		}
	})

	t.Run("gateway failure surfaces the underlying message and persists nothing", func(t *testing.T) {
		t.Parallel()

		provider := &fakeProvider{err: errors.New("connection reset by peer")}
		tasks := &fakeTaskRepo{}
		svc := NewService(provider, tasks, &fakePlanRepo{}, nil)

		_, err := svc.AnalyzeEisenhower(context.Background(), userID, "task")
		var opErr *OperationError
		if !errors.As(err, &opErr) || opErr.Kind != KindGateway {
			t.Fatalf("Expected gateway error, got %v", err)
		}
		if opErr.Error() != "connection reset by peer" {
			t.Errorf("Expected underlying message, got %q", opErr.Error())
		}
		if opErr.HTTPStatus() != 500 {
			t.Errorf("Expected 500 mapping, got %d", opErr.HTTPStatus())
		}
		if len(tasks.appended) != 0 {
			t.Error("No record may be appended on gateway failure")
		}
	})

	t.Run("persistence failure fails the whole operation", func(t *testing.T) {
		t.Parallel()

		provider := &fakeProvider{response: "- Categoría: Urgente e Importante"}
		tasks := &fakeTaskRepo{err: errors.New("pq: connection refused")}
		svc := NewService(provider, tasks, &fakePlanRepo{}, nil)

		_, err := svc.AnalyzeEisenhower(context.Background(), userID, "task")
		var opErr *OperationError
		if !errors.As(err, &opErr) || opErr.Kind != KindPersistence {
			t.Fatalf("Expected persistence error, got %v", err)
		}
	})

	t.Run("unparseable response stores the sentinel category", func(t *testing.T) {
		t.Parallel()

		provider := &fakeProvider{response: "free-form answer without labels"}
		tasks := &fakeTaskRepo{}
		svc := NewService(provider, tasks, &fakePlanRepo{}, nil)

		if _, err := svc.AnalyzeEisenhower(context.Background(), userID, "task"); err != nil {
			t.Fatalf("AnalyzeEisenhower() error = %v", err)
		}
		if tasks.appended[0].Category != models.CategoryUnspecified {
			t.Errorf("Expected sentinel category, got %q", tasks.appended[0].Category)
		}
	})
}

func TestAnalyzeLaborit(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("list payload appends one record with rendered description", func(t *testing.T) {
		t.Parallel()

		provider := &fakeProvider{response: "- Tarea sugerida: write docs\n- Categoría: Alta dificultad\n- Justificación (Ley de Laborit y Pareto): primero lo difícil"}
		tasks := &fakeTaskRepo{}
		svc := NewService(provider, tasks, &fakePlanRepo{}, nil)

		payload := prompt.LaboritList([]string{"write docs 2h", "review PRs 1h"})
		if _, err := svc.AnalyzeLaborit(context.Background(), userID, payload); err != nil {
			t.Fatalf("AnalyzeLaborit() error = %v", err)
		}
		if len(tasks.appended) != 1 {
			t.Fatalf("Expected exactly one record appended, got %d", len(tasks.appended))
		}
		if tasks.appended[0].Description != "- write docs 2h\n- review PRs 1h" {
			t.Errorf("Unexpected rendered description %q", tasks.appended[0].Description)
		}
		if tasks.appended[0].Category != "Alta dificultad" {
			t.Errorf("Unexpected category %q", tasks.appended[0].Category)
		}
	})

	t.Run("empty payload fails validation", func(t *testing.T) {
		t.Parallel()

		svc := NewService(&fakeProvider{}, &fakeTaskRepo{}, &fakePlanRepo{}, nil)

		_, err := svc.AnalyzeLaborit(context.Background(), userID, prompt.LaboritText(""))
		var opErr *OperationError
		if !errors.As(err, &opErr) || opErr.Kind != KindValidation {
			t.Fatalf("Expected validation error, got %v", err)
		}
	})
}

func TestReviewDailyPlan(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("persists only the submitted plan text", func(t *testing.T) {
		t.Parallel()

		response := "- Análisis: cargado\n- Justificación (Yerkes-Dodson e Illich): exceso\n- Sugerencia (Yerkes-Dodson e Illich): plan ajustado"
		provider := &fakeProvider{response: response}
		plans := &fakePlanRepo{}
		svc := NewService(provider, &fakeTaskRepo{}, plans, nil)

		got, err := svc.ReviewDailyPlan(context.Background(), userID, "09:00 deep work\n13:00 meetings")
		if err != nil {
			t.Fatalf("ReviewDailyPlan() error = %v", err)
		}
		if got != response {
			t.Errorf("Expected raw model text back, got %q", got)
		}
		if len(plans.appended) != 1 {
			t.Fatalf("Expected exactly one plan appended, got %d", len(plans.appended))
		}
		if plans.appended[0].PlanText != "09:00 deep work\n13:00 meetings" {
			t.Errorf("Expected the input plan persisted, got %q", plans.appended[0].PlanText)
		}
	})

	t.Run("empty plan fails validation", func(t *testing.T) {
		t.Parallel()

		svc := NewService(&fakeProvider{}, &fakeTaskRepo{}, &fakePlanRepo{}, nil)

		_, err := svc.ReviewDailyPlan(context.Background(), userID, "")
		var opErr *OperationError
		if !errors.As(err, &opErr) || opErr.Kind != KindValidation {
			t.Fatalf("Expected validation error, got %v", err)
		}
	})
}

func TestListTasks(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	stored := []*models.Task{
		{UserID: userID, Description: "b", Category: "Urgente e Importante"},
		{UserID: userID, Description: "a", Category: models.CategoryUnspecified},
	}
	tasks := &fakeTaskRepo{listed: stored}
	svc := NewService(&fakeProvider{}, tasks, &fakePlanRepo{}, nil)

	got, err := svc.ListTasks(context.Background(), userID)
	if err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}
	if len(got) != 2 || got[0].Description != "b" {
		t.Errorf("Expected repository order preserved, got %+v", got)
	}

	failing := NewService(&fakeProvider{}, &fakeTaskRepo{err: errors.New("down")}, &fakePlanRepo{}, nil)
	_, err = failing.ListTasks(context.Background(), userID)
	var opErr *OperationError
	if !errors.As(err, &opErr) || opErr.Kind != KindPersistence {
		t.Fatalf("Expected persistence error, got %v", err)
	}
}
