package handlers

import (
	"encoding/json"
	"errors"

	"github.com/prioriza/prioriza/internal/prompt"
)

// LaboritTasks is the duck-typed tasks field of the Laborit endpoint: a
// JSON string and an array of strings are both accepted, and decode to the
// matching payload variant.
type LaboritTasks struct {
	payload prompt.LaboritPayload
}

// Payload returns the decoded payload variant.
func (t LaboritTasks) Payload() prompt.LaboritPayload {
	return t.payload
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *LaboritTasks) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		t.payload = prompt.LaboritText(text)
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		t.payload = prompt.LaboritList(items)
		return nil
	}

	return errors.New("tasks must be a string or an array of strings")
}

// MarshalJSON implements json.Marshaler, mirroring the accepted input forms.
func (t LaboritTasks) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.payload.String())
}
