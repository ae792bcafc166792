package sessions

import (
	"math"

	"github.com/2beens/fitlog/internal/exercises"
)

// Coarse metabolic equivalent (MET) values per exercise type.
const (
	metStrength = 6.0
	metCardio   = 7.0
	metDefault  = 5.0
)

const (
	minutesPerStrengthSet = 3.0
	minutesPerOtherSet    = 2.0
	minOtherMinutes       = 5.0
	fallbackCardioMinutes = 10.0
)

// EstimateCalories estimates the energy expenditure of a session from
// its exercise logs and the user's body weight. Returns nil when the
// weight is absent or non-positive - there is no estimate without a
// body mass. It is recomputed on every read and never persisted, so
// past estimates change retroactively when the user weight changes.
func EstimateCalories(exerciseLogs []ExerciseLog, sessionDurationMinutes *int, bodyWeightKg *float64) *float64 {
	if bodyWeightKg == nil || *bodyWeightKg <= 0 {
		return nil
	}

	var totalCalories, totalMinutes float64
	for _, el := range exerciseLogs {
		minutes := estimateExerciseMinutes(el)
		if minutes <= 0 {
			continue
		}
		totalCalories += metForType(el.Type) * *bodyWeightKg * (minutes / 60)
		totalMinutes += minutes
	}

	// reconcile with the recorded wall-clock duration when the per-set
	// estimates disagree with it
	if sessionDurationMinutes != nil && totalMinutes > 0 && float64(*sessionDurationMinutes) != totalMinutes {
		totalCalories *= float64(*sessionDurationMinutes) / totalMinutes
	}

	rounded := math.Round(totalCalories*10) / 10
	return &rounded
}

func estimateExerciseMinutes(el ExerciseLog) float64 {
	switch el.Type {
	case exercises.TypeCardio:
		var minutes float64
		for _, set := range el.CardioSets {
			minutes += set.DurationMinutes
		}
		if minutes == 0 {
			// no durations recorded, assume a short cardio bout
			minutes = fallbackCardioMinutes
		}
		return minutes
	case exercises.TypeStrength:
		// execution plus rest per set
		return float64(len(el.StrengthSets)) * minutesPerStrengthSet
	default:
		minutes := float64(el.SetsCount()) * minutesPerOtherSet
		if minutes < minOtherMinutes {
			minutes = minOtherMinutes
		}
		return minutes
	}
}

func metForType(exerciseType string) float64 {
	switch exerciseType {
	case exercises.TypeStrength:
		return metStrength
	case exercises.TypeCardio:
		return metCardio
	default:
		return metDefault
	}
}
