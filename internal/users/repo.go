package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username or email already taken")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, user User) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO fitlog_user
				(id, email, username, name, password_hash, weight_kg, height_cm, gender, birth_date, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
		user.ID, user.Email, user.Username, user.Name, user.PasswordHash,
		user.WeightKg, user.HeightCm, user.Gender, user.BirthDate,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	span.SetAttributes(attribute.String("user.id", user.ID))

	return &user, nil
}

func (r *Repo) GetByID(ctx context.Context, id string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByID")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", id))

	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *Repo) GetByUsername(ctx context.Context, username string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByUsername")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.getOne(ctx, `WHERE username = $1`, username)
}

func (r *Repo) getOne(ctx context.Context, whereClause string, arg any) (*User, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT
				id, email, username, name, password_hash, weight_kg, height_cm, gender, birth_date, created_at, updated_at
			FROM fitlog_user `+whereClause+`;`,
		arg,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users, err := r.rows2users(rows)
	if err != nil {
		return nil, err
	}

	if len(users) != 1 {
		return nil, ErrUserNotFound
	}

	return &users[0], nil
}

func (r *Repo) UpdateProfile(ctx context.Context, user *User) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updateProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", user.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE fitlog_user
			SET name = $1, weight_kg = $2, height_cm = $3, gender = $4, birth_date = $5, updated_at = $6
			WHERE id = $7;`,
		user.Name, user.WeightKg, user.HeightCm, user.Gender, user.BirthDate, user.UpdatedAt, user.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// AddWeightEntry stores a weight history point and sets the new weight
// on the user profile in the same transaction.
func (r *Repo) AddWeightEntry(ctx context.Context, entry WeightEntry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.addWeightEntry")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", entry.UserID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(
		ctx,
		`INSERT INTO weight_history (id, user_id, weight_kg, recorded_at) VALUES ($1, $2, $3, $4);`,
		entry.ID, entry.UserID, entry.WeightKg, entry.RecordedAt,
	); err != nil {
		return fmt.Errorf("insert weight entry: %w", err)
	}

	tag, err := tx.Exec(
		ctx,
		`UPDATE fitlog_user SET weight_kg = $1, updated_at = $2 WHERE id = $3;`,
		entry.WeightKg, entry.RecordedAt, entry.UserID,
	)
	if err != nil {
		return fmt.Errorf("update user weight: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return tx.Commit(ctx)
}

func (r *Repo) ListWeightHistory(ctx context.Context, userID string) (_ []WeightEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.listWeightHistory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, weight_kg, recorded_at
			FROM weight_history
			WHERE user_id = $1
			ORDER BY recorded_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []WeightEntry
	for rows.Next() {
		var e WeightEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.WeightKg, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return entries, nil
}

func (r *Repo) rows2users(rows pgx.Rows) ([]User, error) {
	var users []User
	for rows.Next() {
		var user User
		if err := rows.Scan(
			&user.ID, &user.Email, &user.Username, &user.Name, &user.PasswordHash,
			&user.WeightKg, &user.HeightCm, &user.Gender, &user.BirthDate,
			&user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return users, nil
}
