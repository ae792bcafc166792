package exercises

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrExerciseNotFound = errors.New("exercise not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO exercise
				(id, name, category, type, muscle_groups, equipment, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		exercise.ID, exercise.Name, exercise.Category, exercise.Type,
		exercise.MuscleGroups, exercise.Equipment, exercise.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("exercise.id", exercise.ID))

	return &exercise, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, category, type, muscle_groups, equipment, created_at
			FROM exercise
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises, err := r.rows2exercises(rows)
	if err != nil {
		return nil, err
	}

	if len(exercises) != 1 {
		return nil, ErrExerciseNotFound
	}

	return &exercises[0], nil
}

// List returns all exercise definitions, optionally filtered by type
// and/or category. Empty filter values mean no filtering.
func (r *Repo) List(ctx context.Context, exerciseType, category string) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("type", exerciseType))
	span.SetAttributes(attribute.String("category", category))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, category, type, muscle_groups, equipment, created_at
			FROM exercise
			WHERE ($1::text = '' OR type = $1)
			AND ($2::text = '' OR category = $2)
			ORDER BY name;`,
		exerciseType, category,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return r.rows2exercises(rows)
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM exercise WHERE id = $1;`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

func (r *Repo) rows2exercises(rows pgx.Rows) ([]Exercise, error) {
	var exercises []Exercise
	for rows.Next() {
		var exercise Exercise
		if err := rows.Scan(
			&exercise.ID, &exercise.Name, &exercise.Category, &exercise.Type,
			&exercise.MuscleGroups, &exercise.Equipment, &exercise.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exercises = append(exercises, exercise)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return exercises, nil
}
