package sessions

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/2beens/fitlog/internal/exercises"
	"github.com/2beens/fitlog/internal/packages"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/internal/users"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=sessions_test

type sessionsRepo interface {
	Add(ctx context.Context, session Session) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	ListForUser(ctx context.Context, userID string, page, size int) (_ []Session, total int, err error)
	Update(ctx context.Context, session *Session) error
	Delete(ctx context.Context, id string) error
}

type templatesRepo interface {
	Get(ctx context.Context, id string) (*packages.Package, error)
}

type exercisesGetter interface {
	Get(ctx context.Context, id string) (*exercises.Exercise, error)
}

type usersGetter interface {
	GetByID(ctx context.Context, id string) (*users.User, error)
}

// Service is the session state machine. Sessions move from Active to
// Completed, and Completed is terminal; deletion works from either
// state.
type Service struct {
	repo          sessionsRepo
	templatesRepo templatesRepo
	exercisesRepo exercisesGetter
	usersRepo     usersGetter

	now func() time.Time
}

func NewService(
	repo sessionsRepo,
	templatesRepo templatesRepo,
	exercisesRepo exercisesGetter,
	usersRepo usersGetter,
) *Service {
	return &Service{
		repo:          repo,
		templatesRepo: templatesRepo,
		exercisesRepo: exercisesRepo,
		usersRepo:     usersRepo,
		now:           time.Now,
	}
}

// StartFromTemplate creates an Active session with one exercise log
// per resolvable template exercise, in template order. Template
// exercises whose definition no longer exists are skipped silently -
// stale references must not block starting a workout.
func (s *Service) StartFromTemplate(ctx context.Context, userID, templateID string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sessions.service.startFromTemplate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))
	span.SetAttributes(attribute.String("template.id", templateID))

	template, err := s.templatesRepo.Get(ctx, templateID)
	if err != nil {
		if errors.Is(err, packages.ErrPackageNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("get template: %w", err)
	}

	if template.UserID != userID && !template.IsPublic {
		return nil, ErrTemplateNotFound
	}

	templateExercises := make([]packages.PackageExercise, len(template.Exercises))
	copy(templateExercises, template.Exercises)
	sort.SliceStable(templateExercises, func(i, j int) bool {
		return templateExercises[i].Order < templateExercises[j].Order
	})

	exerciseLogs := make([]ExerciseLog, 0, len(templateExercises))
	for _, templateExercise := range templateExercises {
		exercise, err := s.exercisesRepo.Get(ctx, templateExercise.ExerciseID)
		if err != nil {
			if errors.Is(err, exercises.ErrExerciseNotFound) {
				log.Tracef(
					"start session from template [%s]: skipping stale exercise ref [%s]",
					templateID, templateExercise.ExerciseID,
				)
				continue
			}
			return nil, fmt.Errorf("get exercise [%s]: %w", templateExercise.ExerciseID, err)
		}
		exerciseLogs = append(exerciseLogs, ExerciseLog{
			ExerciseID:   exercise.ID,
			ExerciseName: exercise.Name,
			Type:         exercise.Type,
			Notes:        templateExercise.Notes,
		})
	}

	now := s.now()
	session := Session{
		ID:          uuid.NewString(),
		UserID:      userID,
		PackageID:   template.ID,
		PackageName: template.Name,
		Exercises:   exerciseLogs,
		StartTime:   now,
		CreatedAt:   now,
	}

	added, err := s.repo.Add(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("add session: %w", err)
	}

	span.SetAttributes(attribute.String("session.id", added.ID))
	return added, nil
}

// StartEmpty creates an Active ad-hoc session with no exercise logs.
func (s *Service) StartEmpty(ctx context.Context, userID string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sessions.service.startEmpty")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	now := s.now()
	session := Session{
		ID:          uuid.NewString(),
		UserID:      userID,
		PackageID:   EmptySessionPackageID,
		PackageName: EmptySessionPackageName,
		Exercises:   []ExerciseLog{},
		StartTime:   now,
		CreatedAt:   now,
	}

	added, err := s.repo.Add(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("add session: %w", err)
	}

	span.SetAttributes(attribute.String("session.id", added.ID))
	return added, nil
}

// Get returns the session with the calorie estimate attached.
func (s *Service) Get(ctx context.Context, sessionID, userID string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sessions.service.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", sessionID))

	session, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrSessionNotFound
	}

	session.Calories = EstimateCalories(session.Exercises, session.DurationMinutes, s.userWeight(ctx, userID))
	return session, nil
}

// List returns one page of the user's sessions, newest first, with
// calorie estimates attached.
func (s *Service) List(ctx context.Context, userID string, page, size int) (_ []Session, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sessions.service.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))
	span.SetAttributes(attribute.Int("page", page))
	span.SetAttributes(attribute.Int("size", size))

	sessionsPage, total, err := s.repo.ListForUser(ctx, userID, page, size)
	if err != nil {
		return nil, -1, err
	}

	weight := s.userWeight(ctx, userID)
	for i := range sessionsPage {
		sessionsPage[i].Calories = EstimateCalories(
			sessionsPage[i].Exercises,
			sessionsPage[i].DurationMinutes,
			weight,
		)
	}

	return sessionsPage, total, nil
}

// UpdateExercises replaces the whole exercise-log sequence of an
// Active session with the given payload. Exercises omitted from the
// payload are dropped.
func (s *Service) UpdateExercises(ctx context.Context, sessionID, userID string, exerciseLogs []ExerciseLog) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sessions.service.updateExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", sessionID))

	session, err := s.getOwned(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session.IsCompleted {
		return nil, ErrSessionCompleted
	}

	if exerciseLogs == nil {
		exerciseLogs = []ExerciseLog{}
	}
	session.Exercises = exerciseLogs

	if err := s.repo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	return session, nil
}

// Complete transitions the session to its terminal Completed state,
// setting the end time and the integer-truncated duration in minutes.
// Completing an already completed session fails, so an accidental
// repeat call can not overwrite the recorded end time.
func (s *Service) Complete(ctx context.Context, sessionID, userID string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sessions.service.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", sessionID))

	session, err := s.getOwned(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session.IsCompleted {
		return nil, ErrSessionCompleted
	}

	endTime := s.now()
	durationMinutes := int(endTime.Sub(session.StartTime).Minutes())

	session.EndTime = &endTime
	session.DurationMinutes = &durationMinutes
	session.IsCompleted = true

	if err := s.repo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	session.Calories = EstimateCalories(session.Exercises, session.DurationMinutes, s.userWeight(ctx, userID))
	return session, nil
}

// Delete removes the session outright, completed or not.
func (s *Service) Delete(ctx context.Context, sessionID, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sessions.service.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", sessionID))

	if _, err := s.getOwned(ctx, sessionID, userID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// getOwned is the ownership check of all mutating operations: a
// missing session and a session owned by someone else both come back
// as ErrUnauthorized.
func (s *Service) getOwned(ctx context.Context, sessionID, userID string) (*Session, error) {
	session, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	if session.UserID != userID {
		return nil, ErrUnauthorized
	}
	return session, nil
}

func (s *Service) userWeight(ctx context.Context, userID string) *float64 {
	user, err := s.usersRepo.GetByID(ctx, userID)
	if err != nil {
		log.Errorf("get user [%s] for calorie estimate: %s", userID, err)
		return nil
	}
	return user.WeightKg
}
