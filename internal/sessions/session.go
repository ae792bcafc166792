package sessions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/fitlog/internal/exercises"
)

// A session started without a workout package carries these sentinel
// values instead of a real package reference.
const (
	EmptySessionPackageID   = "empty_session"
	EmptySessionPackageName = "Free Training"
)

type StrengthSet struct {
	SetNumber int     `json:"setNumber"`
	Weight    float64 `json:"weight"`
	Reps      int     `json:"reps"`
	Completed bool    `json:"completed"`
}

type CardioSet struct {
	DurationMinutes float64  `json:"durationMinutes"`
	Distance        *float64 `json:"distance,omitempty"`
	Incline         *float64 `json:"incline,omitempty"`
	Speed           *float64 `json:"speed,omitempty"`
	Completed       bool     `json:"completed"`
}

// ExerciseLog records all sets performed for one exercise within a
// session. The declared Type decides which set variant the log holds:
// a log never mixes strength and cardio sets. ExerciseName is copied
// from the exercise definition when the session starts and is never
// re-synced, so historical sessions show what the user saw back then.
type ExerciseLog struct {
	ExerciseID   string `json:"exerciseId"`
	ExerciseName string `json:"exerciseName"`
	Type         string `json:"type"`
	Notes        string `json:"notes,omitempty"`

	StrengthSets []StrengthSet `json:"-"`
	CardioSets   []CardioSet   `json:"-"`
}

type exerciseLogJson struct {
	ExerciseID   string          `json:"exerciseId"`
	ExerciseName string          `json:"exerciseName"`
	Type         string          `json:"type"`
	Sets         json.RawMessage `json:"sets"`
	Notes        string          `json:"notes,omitempty"`
}

// MarshalJSON flattens the active set variant into a single "sets"
// array, shaped by the log type.
func (el ExerciseLog) MarshalJSON() ([]byte, error) {
	out := exerciseLogJson{
		ExerciseID:   el.ExerciseID,
		ExerciseName: el.ExerciseName,
		Type:         el.Type,
		Notes:        el.Notes,
	}

	var sets any
	if el.Type == exercises.TypeCardio {
		if el.CardioSets == nil {
			sets = []CardioSet{}
		} else {
			sets = el.CardioSets
		}
	} else {
		if el.StrengthSets == nil {
			sets = []StrengthSet{}
		} else {
			sets = el.StrengthSets
		}
	}

	setsJson, err := json.Marshal(sets)
	if err != nil {
		return nil, err
	}
	out.Sets = setsJson

	return json.Marshal(out)
}

// UnmarshalJSON parses the "sets" array with the variant selected by
// the declared log type. A payload whose sets do not match the shape
// of the declared type fails with ErrInvalidSetPayload.
func (el *ExerciseLog) UnmarshalJSON(data []byte) error {
	var raw exerciseLogJson
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	el.ExerciseID = raw.ExerciseID
	el.ExerciseName = raw.ExerciseName
	el.Type = raw.Type
	el.Notes = raw.Notes
	el.StrengthSets = nil
	el.CardioSets = nil

	if len(raw.Sets) == 0 || bytes.Equal(raw.Sets, []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw.Sets))
	dec.DisallowUnknownFields()

	if el.Type == exercises.TypeCardio {
		if err := dec.Decode(&el.CardioSets); err != nil {
			return fmt.Errorf("%w: cardio sets for exercise %q: %s", ErrInvalidSetPayload, el.ExerciseID, err)
		}
		return nil
	}

	if err := dec.Decode(&el.StrengthSets); err != nil {
		return fmt.Errorf("%w: strength sets for exercise %q: %s", ErrInvalidSetPayload, el.ExerciseID, err)
	}
	return nil
}

// SetsCount returns the number of sets of the active variant.
func (el ExerciseLog) SetsCount() int {
	if el.Type == exercises.TypeCardio {
		return len(el.CardioSets)
	}
	return len(el.StrengthSets)
}

// Session is one instance of a user performing a workout. It starts
// Active and can only transition to Completed, which is terminal.
// EndTime and DurationMinutes are unset until completion and are
// always set together.
type Session struct {
	ID              string        `json:"id"`
	UserID          string        `json:"userId"`
	PackageID       string        `json:"packageId"`
	PackageName     string        `json:"packageName"`
	Exercises       []ExerciseLog `json:"exercises"`
	StartTime       time.Time     `json:"startTime"`
	EndTime         *time.Time    `json:"endTime,omitempty"`
	DurationMinutes *int          `json:"durationMinutes,omitempty"`
	IsCompleted     bool          `json:"isCompleted"`
	CreatedAt       time.Time     `json:"createdAt"`

	// Calories is derived on read from the current user weight and
	// never persisted; nil when the user has no usable weight.
	Calories *float64 `json:"calories,omitempty"`
}
