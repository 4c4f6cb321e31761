// internal/domain/exercise.go
package domain

// Exercise represents a single catalog entry in the exercise library.
// Catalog entries are seeded once at startup and are read-only afterwards.
type Exercise struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	MuscleGroup  string `json:"muscleGroup"`            // e.g., "Peito", "Costas", "Pernas"
	Instructions string `json:"instructions,omitempty"` // Execution technique
	ImageRef     string `json:"imageRef,omitempty"`     // Absolute URL or object key in file storage
}
