package handlers

import (
	"encoding/json"
	"net/http"
)

// MaxErrorMessageLength caps the diagnostic text surfaced in error
// envelopes. Messages pass through otherwise untouched so clients can match
// on the underlying failure text.
const MaxErrorMessageLength = 1000

// respondJSON sends data as the response body verbatim.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// methodNotAllowed answers requests that hit a known path with the wrong
// HTTP verb.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondJSONError(w, http.StatusMethodNotAllowed, "Método no permitido.")
}

// respondJSONError sends the error envelope {"error": message}.
func respondJSONError(w http.ResponseWriter, status int, message string) {
	if len(message) > MaxErrorMessageLength {
		message = message[:MaxErrorMessageLength] + "..."
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]any{
		"error": message,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
