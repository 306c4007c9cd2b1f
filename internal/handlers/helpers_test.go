package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRespondJSON(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	respondJSON(rec, http.StatusOK, AnalysisResponse{Result: "hola"})

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"result":"hola"}` {
		t.Errorf("body = %s", got)
	}
}

func TestRespondJSONError(t *testing.T) {
	t.Parallel()

	t.Run("message passes through", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		respondJSONError(rec, http.StatusBadRequest, "La descripción de la tarea es obligatoria.")

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
		body := decodeBody(t, rec)
		if body["error"] != "La descripción de la tarea es obligatoria." {
			t.Errorf("Unexpected envelope %v", body)
		}
	})

	t.Run("oversized message is truncated", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		respondJSONError(rec, http.StatusInternalServerError, strings.Repeat("x", MaxErrorMessageLength+100))

		body := decodeBody(t, rec)
		msg, ok := body["error"].(string)
		if !ok {
			t.Fatalf("Unexpected envelope %v", body)
		}
		if len(msg) != MaxErrorMessageLength+len("...") {
			t.Errorf("Expected truncation to %d+ellipsis, got %d", MaxErrorMessageLength, len(msg))
		}
	})
}

func TestHealthCheckBasicMode(t *testing.T) {
	t.Parallel()

	h := NewHealthChecker(nil, nil)
	rec := httptest.NewRecorder()
	h.HealthCheck(rec, httptest.NewRequest("GET", "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["status"] != "healthy" {
		t.Errorf("Unexpected health payload %v", body)
	}
}
