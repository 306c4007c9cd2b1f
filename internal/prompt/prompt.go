// Package prompt builds the decision-framework instructions sent to the
// language-model gateway and parses category labels out of its replies.
// Builders are pure: the user payload is embedded verbatim, never trimmed
// or sanitized, and the output is fully determined by the input.
package prompt

import (
	"fmt"
	"strings"
)

// LaboritPayload is the tagged payload for the Laborit framework. The
// endpoint accepts either free text or a list of task lines; the two forms
// render differently in the prompt.
type LaboritPayload struct {
	items  []string
	text   string
	isList bool
}

// LaboritText builds the free-text form of the payload.
func LaboritText(text string) LaboritPayload {
	return LaboritPayload{text: text}
}

// LaboritList builds the list form of the payload.
func LaboritList(items []string) LaboritPayload {
	return LaboritPayload{items: items, isList: true}
}

// IsList reports whether the payload carries the list form.
func (p LaboritPayload) IsList() bool { return p.isList }

// String renders the payload for embedding in the prompt: list items one
// per line with a dash, free text verbatim.
func (p LaboritPayload) String() string {
	if !p.isList {
		return p.text
	}
	var b strings.Builder
	for i, item := range p.items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- ")
		b.WriteString(item)
	}
	return b.String()
}

// BuildEisenhower produces the Eisenhower Matrix classification prompt.
func BuildEisenhower(task string) string {
	return fmt.Sprintf(`Eres un experto en productividad que aplica la Matriz de Eisenhower.
Analiza la siguiente tarea y clasifícala en una de estas cuatro categorías:
1. Urgente e Importante
2. Urgente y No Importante
3. No Urgente e Importante
4. No Urgente y No Importante

Tarea: "%s"

Da tu respuesta en el siguiente formato, sin explicaciones adicionales:
- Tarea sugerida: [La tarea elegida]
- Categoría: [La categoría elegida]
- Justificación: [Una breve explicación]`, task)
}

// BuildLaborit produces the Laborit/Pareto first-task prompt.
func BuildLaborit(payload LaboritPayload) string {
	return fmt.Sprintf(`Eres un coach de productividad que aplica la Ley de Laborit (hacer lo más difícil primero) y la Ley de Pareto (80/20).
Analiza la siguiente lista de tareas, incluyendo su tiempo estimado, y determina cuál es la "tarea más difícil" o de mayor impacto.
Sugiere cuál debería ser la primera tarea del día para maximizar la productividad.
Justifica tu respuesta basándote en la Ley de Laborit.

Lista de tareas:
%s

Da tu respuesta en el siguiente formato, sin explicaciones adicionales:
- Tarea sugerida: [La tarea elegida]
- Categoría: [La categoría de la tarea elegida]
- Justificación (Ley de Laborit y Pareto): [Una breve explicación]`, payload.String())
}

// BuildYerkesDodson produces the Yerkes-Dodson/Illich plan-review prompt.
// Its required output format has no category line; the response is returned
// to the caller unparsed.
func BuildYerkesDodson(plan string) string {
	return fmt.Sprintf(`Eres un experto en el manejo de la energía y el rendimiento, basándote en la Ley de Yerkes-Dodson y la Ley de Illich.
Analiza el siguiente plan de trabajo diario e identifica si es óptimo o si podría llevar al agotamiento.
Sugiere un ajuste para el plan, justificándolo con ambas leyes.

Plan de trabajo:
%s

Da tu respuesta en el siguiente formato, sin explicaciones adicionales:
- Análisis: [Una evaluación del plan]
- Justificación (Yerkes-Dodson e Illich): [Una breve explicación]
- Sugerencia (Yerkes-Dodson e Illich): [El plan ajustado con la lista de tareas]`, plan)
}
