package prompt

import (
	"strings"

	"github.com/prioriza/prioriza/internal/models"
)

// Category label prefixes recognized in model responses. The Spanish form
// is what the prompts request; the English form is accepted because models
// occasionally translate the labels.
const (
	categoryLabelES = "- Categoría:"
	categoryLabelEN = "- Category:"
)

// ParseCategory extracts the category label from a model response. It scans
// for the first line beginning with a category label prefix and returns the
// text after the first colon on that line, trimmed. This is a best-effort
// textual convention, not a grammar: malformed input never fails, it
// degrades to the "unspecified" sentinel.
func ParseCategory(response string) string {
	for _, line := range strings.Split(response, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, categoryLabelES) && !strings.HasPrefix(trimmed, categoryLabelEN) {
			continue
		}
		// Only the text after the first colon counts as the value, even
		// if the label itself were to contain one.
		idx := strings.Index(trimmed, ":")
		return strings.TrimSpace(trimmed[idx+1:])
	}
	return models.CategoryUnspecified
}
