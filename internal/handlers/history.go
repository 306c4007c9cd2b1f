package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/prioriza/prioriza/internal/analysis"
	"github.com/prioriza/prioriza/internal/logger"
	"github.com/prioriza/prioriza/internal/request"
)

// HistoryHandler serves owner-scoped history listings.
type HistoryHandler struct {
	service *analysis.Service
	logger  *zap.Logger
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(service *analysis.Service, log *zap.Logger) *HistoryHandler {
	return &HistoryHandler{service: service, logger: log}
}

// RegisterRoutes registers history routes on the given router. The router
// should already carry the /history prefix.
func (h *HistoryHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/tasks", h.ListTasks).Methods("GET")
	r.HandleFunc("/daily-plans", h.ListDailyPlans).Methods("GET")

	// Wrong-verb fallbacks, same reason as in AnalysisHandler: sibling
	// routes clobber the router's method-mismatch state.
	r.HandleFunc("/tasks", methodNotAllowed)
	r.HandleFunc("/daily-plans", methodNotAllowed)
}

// TaskHistoryItem is one classified task in a history listing.
type TaskHistoryItem struct {
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// DailyPlanHistoryItem is one daily plan in a history listing.
type DailyPlanHistoryItem struct {
	PlanText  string    `json:"plan_text"`
	CreatedAt time.Time `json:"created_at"`
}

// ListTasksResponse is the tasks history envelope.
type ListTasksResponse struct {
	Tasks []TaskHistoryItem `json:"tasks"`
}

// ListDailyPlansResponse is the daily plans history envelope.
type ListDailyPlansResponse struct {
	DailyPlans []DailyPlanHistoryItem `json:"daily_plans"`
}

// ListTasks returns the authenticated user's classified tasks, newest first.
func (h *HistoryHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	user := request.UserFromContext(r)
	if user == nil {
		respondJSONError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	tasks, err := h.service.ListTasks(r.Context(), user.ID)
	if err != nil {
		h.writeListError(w, "tasks", err)
		return
	}

	items := make([]TaskHistoryItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, TaskHistoryItem{
			Description: task.Description,
			Category:    task.Category,
			CreatedAt:   task.CreatedAt,
		})
	}

	respondJSON(w, http.StatusOK, ListTasksResponse{Tasks: items})
}

// ListDailyPlans returns the authenticated user's daily plans, newest first.
func (h *HistoryHandler) ListDailyPlans(w http.ResponseWriter, r *http.Request) {
	user := request.UserFromContext(r)
	if user == nil {
		respondJSONError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	plans, err := h.service.ListDailyPlans(r.Context(), user.ID)
	if err != nil {
		h.writeListError(w, "daily-plans", err)
		return
	}

	items := make([]DailyPlanHistoryItem, 0, len(plans))
	for _, plan := range plans {
		items = append(items, DailyPlanHistoryItem{
			PlanText:  plan.PlanText,
			CreatedAt: plan.CreatedAt,
		})
	}

	respondJSON(w, http.StatusOK, ListDailyPlansResponse{DailyPlans: items})
}

func (h *HistoryHandler) writeListError(w http.ResponseWriter, endpoint string, err error) {
	if h.logger != nil {
		h.logger.Error("history listing failed",
			zap.String("endpoint", endpoint),
			zap.String("error", logger.SanitizeError(err)),
		)
	}
	respondJSONError(w, http.StatusInternalServerError, err.Error())
}
