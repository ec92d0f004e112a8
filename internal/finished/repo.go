package finished

import (
	"context"
	"fmt"
	"time"

	"github.com/jfcoach/backend/internal/telemetry/tracing"
	"github.com/jfcoach/backend/pkg"

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

// Add inserts a finished workout. The external_id column has a unique
// constraint; callers importing external activities should treat a unique
// violation as "already imported" (see pkg.IsUniqueViolationError).
func (r *Repo) Add(ctx context.Context, fw Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.finished.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO finished_workout
				(customer_id, workout_id, external_id, source, title,
				distance_in_meters, duration_in_seconds, pace_in_seconds,
				execution_day, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id;`,
		fw.CustomerID, fw.WorkoutID, fw.ExternalID, fw.Source, fw.Title,
		fw.DistanceInMeters, fw.DurationInSeconds, fw.PaceInSeconds,
		fw.ExecutionDay, fw.CreatedAt,
	).Scan(&id)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, fmt.Errorf("workout or customer no longer exists: %w", err)
		}
		// unique violations on external_id bubble up as is, the importer
		// inspects them to make duplicate deliveries idempotent
		return nil, err
	}

	span.SetAttributes(attribute.Int("finished.id", id))

	fw.ID = id
	return &fw, nil
}

// ExistsByExternalID reports whether an imported workout with the given
// external activity id is already stored.
func (r *Repo) ExistsByExternalID(ctx context.Context, externalID string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.finished.existsByExternalID")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("external.id", externalID))

	var exists bool
	err = r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM finished_workout WHERE external_id = $1);`,
		externalID,
	).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// GetVolume aggregates finished workouts of a customer between from and to
// (execution day, inclusive).
func (r *Repo) GetVolume(ctx context.Context, customerID int, from, to time.Time) (_ *Volume, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.finished.getVolume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("customer.id", customerID))

	var v Volume
	err = r.db.QueryRow(
		ctx,
		`SELECT
				COUNT(*),
				COALESCE(SUM(distance_in_meters), 0),
				COALESCE(SUM(duration_in_seconds), 0)
			FROM finished_workout
			WHERE customer_id = $1
				AND DATE(execution_day) >= DATE($2)
				AND DATE(execution_day) <= DATE($3);`,
		customerID, from, to,
	).Scan(&v.Workouts, &v.DistanceInMeters, &v.DurationInSeconds)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

// List returns the customer's finished workouts between from and to, newest
// first.
func (r *Repo) List(ctx context.Context, customerID int, from, to time.Time) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.finished.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("customer.id", customerID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, customer_id, workout_id, external_id, source, title,
				distance_in_meters, duration_in_seconds, pace_in_seconds,
				execution_day, created_at
			FROM finished_workout
			WHERE customer_id = $1
				AND DATE(execution_day) >= DATE($2)
				AND DATE(execution_day) <= DATE($3)
			ORDER BY execution_day DESC, id DESC;`,
		customerID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []Workout
	for rows.Next() {
		var fw Workout
		if err := rows.Scan(
			&fw.ID, &fw.CustomerID, &fw.WorkoutID, &fw.ExternalID, &fw.Source, &fw.Title,
			&fw.DistanceInMeters, &fw.DurationInSeconds, &fw.PaceInSeconds,
			&fw.ExecutionDay, &fw.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		workouts = append(workouts, fw)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("workouts.count", len(workouts)))
	return workouts, nil
}
