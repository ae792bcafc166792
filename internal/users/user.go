package users

import (
	"time"
)

type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Username     string     `json:"username"`
	Name         string     `json:"name,omitempty"`
	PasswordHash string     `json:"-"`
	WeightKg     *float64   `json:"weightKg,omitempty"`
	HeightCm     *float64   `json:"heightCm,omitempty"`
	Gender       string     `json:"gender,omitempty"`
	BirthDate    *time.Time `json:"birthDate,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// WeightEntry is a single point of the user weight history. The latest
// entry also becomes the current weight on the user profile.
type WeightEntry struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	WeightKg   float64   `json:"weightKg"`
	RecordedAt time.Time `json:"recordedAt"`
}
