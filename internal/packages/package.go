package packages

import "time"

// PackageExercise is one exercise slot of a workout package, referring
// to an exercise definition by its ID.
type PackageExercise struct {
	ExerciseID string `json:"exerciseId"`
	Order      int    `json:"order"`
	Notes      string `json:"notes,omitempty"`
}

// Package is a workout template: an ordered list of exercises a
// session can be started from.
type Package struct {
	ID          string            `json:"id"`
	UserID      string            `json:"userId"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Exercises   []PackageExercise `json:"exercises"`
	IsPublic    bool              `json:"isPublic"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}
