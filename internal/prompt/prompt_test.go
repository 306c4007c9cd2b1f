package prompt

import (
	"strings"
	"testing"
)

func TestBuildEisenhower(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		task string
	}{
		{name: "simple task", task: "Finish quarterly report"},
		{name: "multiline task", task: "line one\nline two"},
		{name: "task with quotes", task: `fix the "urgent" bug`},
		{name: "whitespace preserved", task: "  padded  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := BuildEisenhower(tt.task)

			if !strings.Contains(got, tt.task) {
				t.Errorf("Expected prompt to contain payload %q verbatim", tt.task)
			}
			if !strings.Contains(got, "Matriz de Eisenhower") {
				t.Error("Expected prompt to name the Eisenhower framework")
			}
			if !strings.Contains(got, "- Categoría:") {
				t.Error("Expected prompt to contain the required category label")
			}
			if !strings.Contains(got, "- Tarea sugerida:") {
				t.Error("Expected prompt to contain the required task label")
			}

			// Builders are pure; same input must give the same output.
			if again := BuildEisenhower(tt.task); again != got {
				t.Error("Expected builder to be deterministic")
			}
		})
	}
}

func TestBuildLaborit(t *testing.T) {
	t.Parallel()

	t.Run("text payload embedded verbatim", func(t *testing.T) {
		t.Parallel()

		payload := LaboritText("write docs 2h, review PRs 1h")
		got := BuildLaborit(payload)

		if !strings.Contains(got, "write docs 2h, review PRs 1h") {
			t.Error("Expected prompt to contain text payload verbatim")
		}
		if !strings.Contains(got, "Ley de Laborit") || !strings.Contains(got, "Ley de Pareto") {
			t.Error("Expected prompt to name both frameworks")
		}
	})

	t.Run("list payload rendered one item per line", func(t *testing.T) {
		t.Parallel()

		payload := LaboritList([]string{"write docs 2h", "review PRs 1h"})
		got := BuildLaborit(payload)

		if !strings.Contains(got, "- write docs 2h\n- review PRs 1h") {
			t.Errorf("Expected list items rendered with dashes, got:\n%s", got)
		}
	})

	t.Run("payload form is tagged", func(t *testing.T) {
		t.Parallel()

		if LaboritText("a").IsList() {
			t.Error("Expected text payload not to be a list")
		}
		if !LaboritList([]string{"a"}).IsList() {
			t.Error("Expected list payload to be a list")
		}
	})
}

func TestBuildYerkesDodson(t *testing.T) {
	t.Parallel()

	plan := "09:00 deep work\n13:00 meetings\n18:00 gym"
	got := BuildYerkesDodson(plan)

	if !strings.Contains(got, plan) {
		t.Error("Expected prompt to contain plan payload verbatim")
	}
	if !strings.Contains(got, "Yerkes-Dodson") || !strings.Contains(got, "Illich") {
		t.Error("Expected prompt to name both frameworks")
	}
	if !strings.Contains(got, "- Sugerencia (Yerkes-Dodson e Illich):") {
		t.Error("Expected prompt to contain the suggestion label")
	}
	if strings.Contains(got, "- Categoría:") {
		t.Error("Plan-review prompt must not request a category line")
	}
}
