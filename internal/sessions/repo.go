package sessions

import (
	"context"
	"encoding/json"
	"errors"
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

func (r *Repo) Add(ctx context.Context, session Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercisesJson, err := json.Marshal(session.Exercises)
	if err != nil {
		return nil, fmt.Errorf("marshal exercises: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO workout_session
				(id, user_id, package_id, package_name, exercises, start_time, end_time, duration_minutes, is_completed, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		session.ID, session.UserID, session.PackageID, session.PackageName,
		exercisesJson, session.StartTime, session.EndTime, session.DurationMinutes,
		session.IsCompleted, session.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("session.id", session.ID))

	return &session, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, package_id, package_name, exercises, start_time, end_time, duration_minutes, is_completed, created_at
			FROM workout_session
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	foundSessions, err := r.rows2sessions(rows)
	if err != nil {
		return nil, err
	}

	if len(foundSessions) != 1 {
		return nil, ErrSessionNotFound
	}

	return &foundSessions[0], nil
}

// ListForUser returns one page of the user's sessions ordered by start
// time descending, together with the total count.
func (r *Repo) ListForUser(ctx context.Context, userID string, page, size int) (_ []Session, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.listForUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))
	span.SetAttributes(attribute.Int("page", page))
	span.SetAttributes(attribute.Int("size", size))

	if page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM workout_session WHERE user_id = $1;`,
		userID,
	).Scan(&total); err != nil {
		return nil, -1, fmt.Errorf("count sessions: %w", err)
	}

	limit := size
	offset := (page - 1) * size

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, package_id, package_name, exercises, start_time, end_time, duration_minutes, is_completed, created_at
			FROM workout_session
			WHERE user_id = $1
			ORDER BY start_time DESC
			LIMIT $2 OFFSET $3;`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, -1, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	foundSessions, err := r.rows2sessions(rows)
	if err != nil {
		return nil, -1, err
	}

	return foundSessions, total, nil
}

// ListForUserBetween returns the user's sessions with a start time in
// [from, to], chronologically ascending.
func (r *Repo) ListForUserBetween(ctx context.Context, userID string, from, to time.Time) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.listForUserBetween")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))
	span.SetAttributes(attribute.String("from", from.String()))
	span.SetAttributes(attribute.String("to", to.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, package_id, package_name, exercises, start_time, end_time, duration_minutes, is_completed, created_at
			FROM workout_session
			WHERE user_id = $1 AND start_time >= $2 AND start_time <= $3
			ORDER BY start_time;`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return r.rows2sessions(rows)
}

func (r *Repo) Update(ctx context.Context, session *Session) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", session.ID))

	exercisesJson, err := json.Marshal(session.Exercises)
	if err != nil {
		return fmt.Errorf("marshal exercises: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_session
			SET exercises = $1, end_time = $2, duration_minutes = $3, is_completed = $4
			WHERE id = $5;`,
		exercisesJson, session.EndTime, session.DurationMinutes, session.IsCompleted, session.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout_session WHERE id = $1;`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *Repo) rows2sessions(rows pgx.Rows) ([]Session, error) {
	var foundSessions []Session
	for rows.Next() {
		var session Session
		var exercisesJson []byte
		if err := rows.Scan(
			&session.ID, &session.UserID, &session.PackageID, &session.PackageName,
			&exercisesJson, &session.StartTime, &session.EndTime, &session.DurationMinutes,
			&session.IsCompleted, &session.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if err := json.Unmarshal(exercisesJson, &session.Exercises); err != nil {
			return nil, fmt.Errorf("unmarshal exercises: %w", err)
		}
		foundSessions = append(foundSessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return foundSessions, nil
}
