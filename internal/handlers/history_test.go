package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/prioriza/prioriza/internal/analysis"
	"github.com/prioriza/prioriza/internal/models"
	"github.com/prioriza/prioriza/internal/request"
)

func newHistoryRouter(h *HistoryHandler, user *models.User) *mux.Router {
	router := mux.NewRouter()
	historyRouter := router.PathPrefix("/api/v1/history").Subrouter()
	h.RegisterRoutes(historyRouter)

	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user != nil {
				r = request.WithUser(r, user)
			}
			next.ServeHTTP(w, r)
		})
	})

	return router
}

func TestListTasksEndpoint(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: uuid.New(), Email: "a@example.com"}
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	t.Run("returns stored order with listing fields only", func(t *testing.T) {
		t.Parallel()

		tasks := &fakeTaskRepo{listed: []*models.Task{
			{ID: uuid.New(), UserID: user.ID, Description: "newest", Category: "Urgente e Importante", CreatedAt: now},
			{ID: uuid.New(), UserID: user.ID, Description: "oldest", Category: models.CategoryUnspecified, CreatedAt: now.Add(-time.Hour)},
		}}
		svc := analysis.NewService(&fakeProvider{}, tasks, &fakePlanRepo{}, nil)
		router := newHistoryRouter(NewHistoryHandler(svc, nil), user)

		req := httptest.NewRequest("GET", "/api/v1/history/tasks", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
		}
		body := decodeBody(t, rec)
		items, ok := body["tasks"].([]any)
		if !ok || len(items) != 2 {
			t.Fatalf("Expected two tasks, got %v", body)
		}
		first, ok := items[0].(map[string]any)
		if !ok {
			t.Fatalf("Unexpected item shape %v", items[0])
		}
		if first["description"] != "newest" || first["category"] != "Urgente e Importante" {
			t.Errorf("Unexpected first item %v", first)
		}
		if _, present := first["id"]; present {
			t.Error("Listing items must not expose record IDs")
		}
		if _, present := first["user_id"]; present {
			t.Error("Listing items must not expose owner IDs")
		}
	})

	t.Run("empty history returns empty array", func(t *testing.T) {
		t.Parallel()

		svc := analysis.NewService(&fakeProvider{}, &fakeTaskRepo{}, &fakePlanRepo{}, nil)
		router := newHistoryRouter(NewHistoryHandler(svc, nil), user)

		req := httptest.NewRequest("GET", "/api/v1/history/tasks", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		body := decodeBody(t, rec)
		items, ok := body["tasks"].([]any)
		if !ok || len(items) != 0 {
			t.Errorf("Expected empty tasks array, got %v", body)
		}
	})

	t.Run("store failure yields 500", func(t *testing.T) {
		t.Parallel()

		svc := analysis.NewService(&fakeProvider{}, &fakeTaskRepo{err: errors.New("store down")}, &fakePlanRepo{}, nil)
		router := newHistoryRouter(NewHistoryHandler(svc, nil), user)

		req := httptest.NewRequest("GET", "/api/v1/history/tasks", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", rec.Code)
		}
	})

	t.Run("missing user yields 401", func(t *testing.T) {
		t.Parallel()

		svc := analysis.NewService(&fakeProvider{}, &fakeTaskRepo{}, &fakePlanRepo{}, nil)
		router := newHistoryRouter(NewHistoryHandler(svc, nil), nil)

		req := httptest.NewRequest("GET", "/api/v1/history/tasks", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("wrong verb yields 405", func(t *testing.T) {
		t.Parallel()

		svc := analysis.NewService(&fakeProvider{}, &fakeTaskRepo{}, &fakePlanRepo{}, nil)
		router := newHistoryRouter(NewHistoryHandler(svc, nil), user)

		for _, path := range []string{"/api/v1/history/tasks", "/api/v1/history/daily-plans"} {
			req := httptest.NewRequest("POST", path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusMethodNotAllowed {
				t.Fatalf("POST %s status = %d, want 405", path, rec.Code)
			}
			body := decodeBody(t, rec)
			if body["error"] != "Método no permitido." {
				t.Errorf("POST %s unexpected error message %v", path, body["error"])
			}
		}
	})
}

func TestListDailyPlansEndpoint(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: uuid.New(), Email: "a@example.com"}
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	plans := &fakePlanRepo{listed: []*models.DailyPlan{
		{ID: uuid.New(), UserID: user.ID, PlanText: "09:00 deep work", CreatedAt: now},
	}}
	svc := analysis.NewService(&fakeProvider{}, &fakeTaskRepo{}, plans, nil)
	router := newHistoryRouter(NewHistoryHandler(svc, nil), user)

	req := httptest.NewRequest("GET", "/api/v1/history/daily-plans", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	items, ok := body["daily_plans"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("Expected one daily plan, got %v", body)
	}
	item, ok := items[0].(map[string]any)
	if !ok {
		t.Fatalf("Unexpected item shape %v", items[0])
	}
	if item["plan_text"] != "09:00 deep work" {
		t.Errorf("Unexpected plan text %v", item["plan_text"])
	}
	if _, present := item["created_at"]; !present {
		t.Error("Expected created_at in listing item")
	}
}
