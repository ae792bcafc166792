package packages

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/fitlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrPackageNotFound = errors.New("workout package not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, pack Package) (_ *Package, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.packages.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercisesJson, err := json.Marshal(pack.Exercises)
	if err != nil {
		return nil, fmt.Errorf("marshal exercises: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO workout_package
				(id, user_id, name, description, exercises, is_public, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		pack.ID, pack.UserID, pack.Name, pack.Description,
		exercisesJson, pack.IsPublic, pack.CreatedAt, pack.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("package.id", pack.ID))

	return &pack, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Package, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.packages.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("package.id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, name, description, exercises, is_public, created_at, updated_at
			FROM workout_package
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	packs, err := r.rows2packages(rows)
	if err != nil {
		return nil, err
	}

	if len(packs) != 1 {
		return nil, ErrPackageNotFound
	}

	return &packs[0], nil
}

// ListForUser returns the packages owned by the user, plus the public
// ones shared by other users.
func (r *Repo) ListForUser(ctx context.Context, userID string) (_ []Package, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.packages.listForUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, name, description, exercises, is_public, created_at, updated_at
			FROM workout_package
			WHERE user_id = $1 OR is_public
			ORDER BY created_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return r.rows2packages(rows)
}

func (r *Repo) Update(ctx context.Context, pack *Package) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.packages.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("package.id", pack.ID))

	exercisesJson, err := json.Marshal(pack.Exercises)
	if err != nil {
		return fmt.Errorf("marshal exercises: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_package
			SET name = $1, description = $2, exercises = $3, is_public = $4, updated_at = $5
			WHERE id = $6;`,
		pack.Name, pack.Description, exercisesJson, pack.IsPublic, pack.UpdatedAt, pack.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPackageNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.packages.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("package.id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout_package WHERE id = $1;`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPackageNotFound
	}
	return nil
}

func (r *Repo) rows2packages(rows pgx.Rows) ([]Package, error) {
	var packs []Package
	for rows.Next() {
		var pack Package
		var exercisesJson []byte
		if err := rows.Scan(
			&pack.ID, &pack.UserID, &pack.Name, &pack.Description,
			&exercisesJson, &pack.IsPublic, &pack.CreatedAt, &pack.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if err := json.Unmarshal(exercisesJson, &pack.Exercises); err != nil {
			return nil, fmt.Errorf("unmarshal exercises: %w", err)
		}
		packs = append(packs, pack)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return packs, nil
}
