package workout

import (
	"context"
	"errors"
	"time"

	"github.com/jfcoach/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrWorkoutNotFound = errors.New("workout not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// GetRunningByProgramAndDay returns the published running workout of the given
// program scheduled on the same calendar date as day.
func (r *Repo) GetRunningByProgramAndDay(ctx context.Context, programID string, day time.Time) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.getRunningByProgramAndDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("program.id", programID),
		attribute.String("day", day.Format("2006-01-02")),
	)

	var w Workout
	err = r.db.QueryRow(
		ctx,
		`SELECT id, program_id, title, running, published, date_published, created_at
			FROM workout
			WHERE program_id = $1
				AND running = TRUE
				AND published = TRUE
				AND DATE(date_published) = DATE($2)
			LIMIT 1;`,
		programID, day,
	).Scan(&w.ID, &w.ProgramID, &w.Title, &w.Running, &w.Published, &w.DatePublished, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	return &w, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", id))

	var w Workout
	err = r.db.QueryRow(
		ctx,
		`SELECT id, program_id, title, running, published, date_published, created_at
			FROM workout WHERE id = $1;`,
		id,
	).Scan(&w.ID, &w.ProgramID, &w.Title, &w.Running, &w.Published, &w.DatePublished, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	return &w, nil
}
