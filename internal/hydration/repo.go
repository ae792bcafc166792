package hydration

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, intake WaterIntake) (_ *WaterIntake, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.hydration.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO water_intake
				(id, user_id, amount_ml, recorded_at)
				VALUES ($1, $2, $3, $4);`,
		intake.ID, intake.UserID, intake.AmountMl, intake.RecordedAt,
	)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("intake.id", intake.ID))

	return &intake, nil
}

// ListForUserBetween returns the user's water intakes with recorded_at
// in [from, to], oldest first.
func (r *Repo) ListForUserBetween(ctx context.Context, userID string, from, to time.Time) (_ []WaterIntake, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.hydration.listForUserBetween")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, amount_ml, recorded_at
			FROM water_intake
			WHERE user_id = $1
			AND recorded_at >= $2 AND recorded_at <= $3
			ORDER BY recorded_at;`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return r.rows2intakes(rows)
}

func (r *Repo) rows2intakes(rows pgx.Rows) ([]WaterIntake, error) {
	var intakes []WaterIntake
	for rows.Next() {
		var intake WaterIntake
		if err := rows.Scan(
			&intake.ID, &intake.UserID, &intake.AmountMl, &intake.RecordedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		intakes = append(intakes, intake)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return intakes, nil
}
