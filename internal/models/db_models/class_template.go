package db_models

// ClassTemplate is a reusable shape for creating schedule classes.
// Editing a template never touches classes already created from it.
type ClassTemplate struct {
	BaseModel
	Name              string
	DurationMinutes   int
	Level             string
	DefaultInstructor string
	Description       string
}
