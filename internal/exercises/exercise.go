package exercises

import "time"

// Exercise types. The type drives how the training volume and the
// energy expenditure of an exercise are estimated.
const (
	TypeStrength = "strength"
	TypeCardio   = "cardio"
)

type Exercise struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category,omitempty"`
	Type         string    `json:"type"`
	MuscleGroups []string  `json:"muscleGroups,omitempty"`
	Equipment    string    `json:"equipment,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
