package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/prioriza/prioriza/internal/analysis"
	"github.com/prioriza/prioriza/internal/logger"
	"github.com/prioriza/prioriza/internal/request"
)

// AnalysisHandler handles the classification endpoints.
type AnalysisHandler struct {
	service *analysis.Service
	logger  *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(service *analysis.Service, log *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{service: service, logger: log}
}

// RegisterRoutes registers analysis routes on the given router. The router
// should already carry the /analyze prefix.
func (h *AnalysisHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/eisenhower", h.AnalyzeEisenhower).Methods("POST")
	r.HandleFunc("/laborit", h.AnalyzeLaborit).Methods("POST")
	r.HandleFunc("/yerkes-dodson", h.ReviewDailyPlan).Methods("POST")

	// With several sibling routes on one subrouter, a later path miss
	// resets the router's method-mismatch state, so the router's
	// MethodNotAllowedHandler only fires for the last route registered.
	// Catch wrong verbs per path instead.
	r.HandleFunc("/eisenhower", methodNotAllowed)
	r.HandleFunc("/laborit", methodNotAllowed)
	r.HandleFunc("/yerkes-dodson", methodNotAllowed)
}

// AnalyzeEisenhowerRequest represents an Eisenhower classification request.
type AnalyzeEisenhowerRequest struct {
	Task string `json:"task"`
}

// AnalyzeLaboritRequest represents a Laborit first-task request. The tasks
// field accepts either a string or an array of strings.
type AnalyzeLaboritRequest struct {
	Tasks LaboritTasks `json:"tasks"`
}

// ReviewDailyPlanRequest represents a Yerkes-Dodson plan review request.
type ReviewDailyPlanRequest struct {
	Plan string `json:"plan"`
}

// AnalysisResponse carries the raw model text back to the caller.
type AnalysisResponse struct {
	Result string `json:"result"`
}

// AnalyzeEisenhower classifies a single task into an Eisenhower quadrant.
func (h *AnalysisHandler) AnalyzeEisenhower(w http.ResponseWriter, r *http.Request) {
	user := request.UserFromContext(r)
	if user == nil {
		respondJSONError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	var req AnalyzeEisenhowerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.AnalyzeEisenhower(r.Context(), user.ID, req.Task)
	if err != nil {
		h.writeOperationError(w, "eisenhower", err)
		return
	}

	respondJSON(w, http.StatusOK, AnalysisResponse{Result: result})
}

// AnalyzeLaborit suggests the first task of the day from a task list.
func (h *AnalysisHandler) AnalyzeLaborit(w http.ResponseWriter, r *http.Request) {
	user := request.UserFromContext(r)
	if user == nil {
		respondJSONError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	var req AnalyzeLaboritRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.AnalyzeLaborit(r.Context(), user.ID, req.Tasks.Payload())
	if err != nil {
		h.writeOperationError(w, "laborit", err)
		return
	}

	respondJSON(w, http.StatusOK, AnalysisResponse{Result: result})
}

// ReviewDailyPlan checks a daily plan for overload.
func (h *AnalysisHandler) ReviewDailyPlan(w http.ResponseWriter, r *http.Request) {
	user := request.UserFromContext(r)
	if user == nil {
		respondJSONError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	var req ReviewDailyPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.ReviewDailyPlan(r.Context(), user.ID, req.Plan)
	if err != nil {
		h.writeOperationError(w, "yerkes-dodson", err)
		return
	}

	respondJSON(w, http.StatusOK, AnalysisResponse{Result: result})
}

// writeOperationError maps service failures to status codes. The underlying
// diagnostic is surfaced in the envelope, length-capped only.
func (h *AnalysisHandler) writeOperationError(w http.ResponseWriter, endpoint string, err error) {
	var opErr *analysis.OperationError
	if !errors.As(err, &opErr) {
		respondJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if opErr.Kind != analysis.KindValidation && h.logger != nil {
		h.logger.Error("analysis request failed",
			zap.String("endpoint", endpoint),
			zap.String("error", logger.SanitizeError(err)),
		)
	}

	respondJSONError(w, opErr.HTTPStatus(), opErr.Error())
}
