package stats

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/2beens/fitlog/internal/exercises"
	"github.com/2beens/fitlog/internal/sessions"
	"github.com/2beens/fitlog/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=engine_mocks_test.go -package=stats_test

const dayKeyFormat = "2006-01-02"

type sessionsRepo interface {
	ListForUserBetween(ctx context.Context, userID string, from, to time.Time) ([]sessions.Session, error)
}

// Window is a bounded time range aggregations operate over.
type Window struct {
	From time.Time
	To   time.Time
}

// LastNDays resolves a "last N days" window against the given instant.
func LastNDays(n int, now time.Time) Window {
	return Window{
		From: now.AddDate(0, 0, -n),
		To:   now,
	}
}

func (w Window) days() float64 {
	return w.To.Sub(w.From).Hours() / 24
}

type ExerciseFrequency struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type WorkoutStats struct {
	TotalWorkouts        int     `json:"totalWorkouts"`
	TotalDurationMinutes int     `json:"totalDurationMinutes"`
	AvgDurationMinutes   float64 `json:"avgDurationMinutes"`
	// TotalVolume is the sum of weight x reps over every strength set
	// in every completed session in the window.
	TotalVolume          float64            `json:"totalVolume"`
	WorkoutsPerDay       map[string]int     `json:"workoutsPerDay"`
	WeeklyFrequency      float64            `json:"weeklyFrequency"`
	MostFrequentExercise *ExerciseFrequency `json:"mostFrequentExercise,omitempty"`
}

// ProgressionPoint is one strength set flattened into a progression
// series record.
type ProgressionPoint struct {
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"`
	Reps   int       `json:"reps"`
	Volume float64   `json:"volume"`
}

type SessionSummary struct {
	ID              string    `json:"id"`
	PackageName     string    `json:"packageName"`
	StartTime       time.Time `json:"startTime"`
	DurationMinutes *int      `json:"durationMinutes,omitempty"`
	ExercisesCount  int       `json:"exercisesCount"`
}

// CalendarData maps a calendar day ("2006-01-02") to the summaries of
// the completed sessions of that day. Days without sessions have no
// entry.
type CalendarData map[string][]SessionSummary

// Engine computes derived views over stored sessions. It only reads,
// never mutates, and is safe for concurrent use.
type Engine struct {
	repo sessionsRepo
}

func NewEngine(repo sessionsRepo) *Engine {
	return &Engine{
		repo: repo,
	}
}

// WorkoutStats aggregates the user's completed sessions in the window.
// Empty windows produce zero-valued stats, never an error.
func (e *Engine) WorkoutStats(ctx context.Context, userID string, window Window) (_ *WorkoutStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.engine.workoutStats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	foundSessions, err := e.repo.ListForUserBetween(ctx, userID, window.From, window.To)
	if err != nil {
		return nil, err
	}

	workoutStats := &WorkoutStats{
		WorkoutsPerDay: map[string]int{},
	}

	exerciseCounts := map[string]int{}
	for _, session := range foundSessions {
		if !session.IsCompleted {
			continue
		}

		workoutStats.TotalWorkouts++
		if session.DurationMinutes != nil {
			workoutStats.TotalDurationMinutes += *session.DurationMinutes
		}
		workoutStats.WorkoutsPerDay[session.StartTime.UTC().Format(dayKeyFormat)]++

		for _, exerciseLog := range session.Exercises {
			exerciseCounts[exerciseLog.ExerciseName]++
			if exerciseLog.Type != exercises.TypeStrength {
				continue
			}
			for _, set := range exerciseLog.StrengthSets {
				workoutStats.TotalVolume += set.Weight * float64(set.Reps)
			}
		}
	}

	if workoutStats.TotalWorkouts > 0 {
		workoutStats.AvgDurationMinutes = roundToOneDecimal(
			float64(workoutStats.TotalDurationMinutes) / float64(workoutStats.TotalWorkouts),
		)
	}

	if windowDays := window.days(); windowDays > 0 {
		workoutStats.WeeklyFrequency = roundToOneDecimal(
			float64(workoutStats.TotalWorkouts) / windowDays * 7,
		)
	}

	workoutStats.MostFrequentExercise = mostFrequentExercise(exerciseCounts)

	return workoutStats, nil
}

// ExerciseProgression flattens every strength set of the given
// exercise across the user's completed sessions in the window into a
// chronological series, preserving session order and, within a
// session, set order.
func (e *Engine) ExerciseProgression(ctx context.Context, userID, exerciseID string, window Window) (_ []ProgressionPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.engine.exerciseProgression")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))
	span.SetAttributes(attribute.String("exercise.id", exerciseID))

	foundSessions, err := e.repo.ListForUserBetween(ctx, userID, window.From, window.To)
	if err != nil {
		return nil, err
	}

	progression := []ProgressionPoint{}
	for _, session := range foundSessions {
		if !session.IsCompleted {
			continue
		}
		for _, exerciseLog := range session.Exercises {
			if exerciseLog.ExerciseID != exerciseID || exerciseLog.Type != exercises.TypeStrength {
				continue
			}
			for _, set := range exerciseLog.StrengthSets {
				progression = append(progression, ProgressionPoint{
					Date:   session.StartTime,
					Weight: set.Weight,
					Reps:   set.Reps,
					Volume: set.Weight * float64(set.Reps),
				})
			}
		}
	}

	return progression, nil
}

// Calendar groups the user's completed sessions of the given month by
// day. Days without completed sessions are omitted, not zero-filled.
func (e *Engine) Calendar(ctx context.Context, userID string, year int, month time.Month) (_ CalendarData, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.engine.calendar")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))
	span.SetAttributes(attribute.Int("year", year))
	span.SetAttributes(attribute.Int("month", int(month)))

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// inclusive to the last second of the last day of the month
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Second)

	foundSessions, err := e.repo.ListForUserBetween(ctx, userID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	calendar := CalendarData{}
	for _, session := range foundSessions {
		if !session.IsCompleted {
			continue
		}
		dayKey := session.StartTime.UTC().Format(dayKeyFormat)
		calendar[dayKey] = append(calendar[dayKey], SessionSummary{
			ID:              session.ID,
			PackageName:     session.PackageName,
			StartTime:       session.StartTime,
			DurationMinutes: session.DurationMinutes,
			ExercisesCount:  len(session.Exercises),
		})
	}

	return calendar, nil
}

// mostFrequentExercise picks the exercise with the highest count, ties
// going to the lexicographically smaller name so that the result is
// stable. Returns nil for an empty map.
func mostFrequentExercise(exerciseCounts map[string]int) *ExerciseFrequency {
	if len(exerciseCounts) == 0 {
		return nil
	}

	names := make([]string, 0, len(exerciseCounts))
	for name := range exerciseCounts {
		names = append(names, name)
	}
	sort.Strings(names)

	top := ExerciseFrequency{Name: names[0], Count: exerciseCounts[names[0]]}
	for _, name := range names[1:] {
		if exerciseCounts[name] > top.Count {
			top = ExerciseFrequency{Name: name, Count: exerciseCounts[name]}
		}
	}
	return &top
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
