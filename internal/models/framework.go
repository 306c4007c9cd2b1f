package models

// Framework identifies the decision framework applied to a submission.
type Framework string

const (
	FrameworkEisenhower   Framework = "eisenhower"
	FrameworkLaborit      Framework = "laborit"
	FrameworkYerkesDodson Framework = "yerkes_dodson"
)

// CategoryUnspecified is stored when the model response contains no
// recognizable category line.
const CategoryUnspecified = "unspecified"
