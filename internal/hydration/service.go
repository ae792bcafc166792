package hydration

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/internal/users"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=hydration_test

const (
	// mlPerKg is the rule of thumb amount of water per kg of body weight.
	mlPerKg = 35
	// defaultRecommendedMl applies when the user has no weight on record.
	defaultRecommendedMl = 2000

	dayKeyFormat = "2006-01-02"
)

var ErrInvalidAmount = errors.New("invalid water intake amount")

type intakesRepo interface {
	Add(ctx context.Context, intake WaterIntake) (*WaterIntake, error)
	ListForUserBetween(ctx context.Context, userID string, from, to time.Time) ([]WaterIntake, error)
}

type usersGetter interface {
	GetByID(ctx context.Context, id string) (*users.User, error)
}

type Service struct {
	repo      intakesRepo
	usersRepo usersGetter
	now       func() time.Time
}

func NewService(repo intakesRepo, usersRepo usersGetter) *Service {
	return &Service{
		repo:      repo,
		usersRepo: usersRepo,
		now:       time.Now,
	}
}

func (s *Service) Log(ctx context.Context, userID string, amountMl int) (_ *WaterIntake, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "hydration.service.log")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))
	span.SetAttributes(attribute.Int("amount.ml", amountMl))

	if amountMl <= 0 {
		return nil, ErrInvalidAmount
	}

	return s.repo.Add(ctx, WaterIntake{
		ID:         uuid.NewString(),
		UserID:     userID,
		AmountMl:   amountMl,
		RecordedAt: s.now(),
	})
}

// Stats sums the user's water intakes over the last given days,
// grouped per day. Days without intakes have no map entry.
func (s *Service) Stats(ctx context.Context, userID string, days int) (_ *Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "hydration.service.stats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))
	span.SetAttributes(attribute.Int("days", days))

	now := s.now()
	intakes, err := s.repo.ListForUserBetween(ctx, userID, now.AddDate(0, 0, -days), now)
	if err != nil {
		return nil, fmt.Errorf("list water intakes: %w", err)
	}

	intakeStats := &Stats{
		PerDay: map[string]int{},
	}
	for _, intake := range intakes {
		intakeStats.TotalMl += intake.AmountMl
		intakeStats.PerDay[intake.RecordedAt.UTC().Format(dayKeyFormat)] += intake.AmountMl
	}

	if days > 0 {
		intakeStats.DailyAvgMl = math.Round(float64(intakeStats.TotalMl)/float64(days)*10) / 10
	}

	return intakeStats, nil
}

// DailyRecommendation derives the daily water target from the user's
// body weight, falling back to a generic default when no weight is on
// record.
func (s *Service) DailyRecommendation(ctx context.Context, userID string) (_ *Recommendation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "hydration.service.dailyRecommendation")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	user, err := s.usersRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	if user.WeightKg == nil || *user.WeightKg <= 0 {
		return &Recommendation{
			RecommendedMl: defaultRecommendedMl,
			Basis:         RecommendationBasisDefault,
		}, nil
	}

	return &Recommendation{
		RecommendedMl: int(math.Round(mlPerKg * *user.WeightKg)),
		Basis:         RecommendationBasisWeight,
	}, nil
}
