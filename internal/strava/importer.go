package strava

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jfcoach/backend/internal/finished"
	"github.com/jfcoach/backend/internal/program"
	"github.com/jfcoach/backend/internal/telemetry/metrics"
	"github.com/jfcoach/backend/internal/telemetry/tracing"
	"github.com/jfcoach/backend/internal/workout"
	"github.com/jfcoach/backend/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// ImportOutcome is the terminal state of one import attempt. Every skip
// branch is deliberate and silent towards the provider; only the failed
// outcomes carry an error.
type ImportOutcome string

const (
	Imported            ImportOutcome = "imported"
	SkippedNoConnection ImportOutcome = "skipped_no_connection"
	SkippedWrongType    ImportOutcome = "skipped_wrong_type"
	SkippedNoProgram    ImportOutcome = "skipped_no_program"
	SkippedNoMatch      ImportOutcome = "skipped_no_match"
	SkippedDuplicate    ImportOutcome = "skipped_duplicate"
	FailedRefresh       ImportOutcome = "failed_refresh"
	FailedFetch         ImportOutcome = "failed_fetch"
	FailedStore         ImportOutcome = "failed_store"
)

//go:generate mockgen -source=$GOFILE -destination=importer_mocks_test.go -package=strava_test

type connectionsByAthleteRepo interface {
	GetByAthleteID(ctx context.Context, athleteID int64) (*Connection, error)
}

type tokenRefresher interface {
	EnsureFresh(ctx context.Context, conn *Connection) (*Connection, error)
}

type activityFetcher interface {
	GetActivity(ctx context.Context, accessToken string, activityID int64) (*Activity, error)
}

type programsRepo interface {
	GetActive(ctx context.Context, customerID int) (*program.Program, error)
}

type workoutsRepo interface {
	GetRunningByProgramAndDay(ctx context.Context, programID string, day time.Time) (*workout.Workout, error)
}

type completionsRepo interface {
	Add(ctx context.Context, fw finished.Workout) (*finished.Workout, error)
	ExistsByExternalID(ctx context.Context, externalID string) (bool, error)
}

// Importer turns a webhook activity event into at most one completion record.
type Importer struct {
	connections    connectionsByAthleteRepo
	refresher      tokenRefresher
	client         activityFetcher
	programs       programsRepo
	workouts       workoutsRepo
	completions    completionsRepo
	metricsManager *metrics.Manager
}

func NewImporter(
	connections connectionsByAthleteRepo,
	refresher tokenRefresher,
	client activityFetcher,
	programs programsRepo,
	workouts workoutsRepo,
	completions completionsRepo,
	metricsManager *metrics.Manager,
) *Importer {
	return &Importer{
		connections:    connections,
		refresher:      refresher,
		client:         client,
		programs:       programs,
		workouts:       workouts,
		completions:    completions,
		metricsManager: metricsManager,
	}
}

// ImportActivity runs the import state machine for one activity and returns
// its terminal outcome. Uniqueness of the external activity id is enforced by
// the storage layer, so a concurrent duplicate delivery cannot create a second
// completion even when both pass the exists check.
func (i *Importer) ImportActivity(ctx context.Context, activityID, ownerID int64) (outcome ImportOutcome, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "strava.importer.importActivity")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int64("activity.id", activityID),
		attribute.Int64("owner.id", ownerID),
	)
	defer func() {
		span.SetAttributes(attribute.String("outcome", string(outcome)))
		i.metricsManager.CounterActivityImports.WithLabelValues(string(outcome)).Inc()
	}()

	conn, err := i.connections.GetByAthleteID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, ErrConnectionNotFound) {
			log.Warnf("strava import: no connection for athlete %d", ownerID)
			return SkippedNoConnection, nil
		}
		return FailedStore, fmt.Errorf("get connection by athlete id: %w", err)
	}

	conn, err = i.refresher.EnsureFresh(ctx, conn)
	if err != nil {
		return FailedRefresh, err
	}

	activity, err := i.client.GetActivity(ctx, conn.AccessToken, activityID)
	if err != nil {
		return FailedFetch, err
	}

	if !activity.IsRun() {
		return SkippedWrongType, nil
	}

	activeProgram, err := i.programs.GetActive(ctx, conn.CustomerID)
	if err != nil {
		if errors.Is(err, program.ErrProgramNotFound) {
			return SkippedNoProgram, nil
		}
		return FailedStore, fmt.Errorf("get active program: %w", err)
	}

	// same calendar day, UTC on both sides, time of day ignored
	activityDay := activity.StartDate.UTC()
	matchedWorkout, err := i.workouts.GetRunningByProgramAndDay(ctx, activeProgram.ID, activityDay)
	if err != nil {
		if errors.Is(err, workout.ErrWorkoutNotFound) {
			log.Warnf("strava import: no workout on %s for program %s",
				activityDay.Format("2006-01-02"), activeProgram.ID)
			return SkippedNoMatch, nil
		}
		return FailedStore, fmt.Errorf("get workout by day: %w", err)
	}

	externalID := strconv.FormatInt(activity.ID, 10)
	exists, err := i.completions.ExistsByExternalID(ctx, externalID)
	if err != nil {
		return FailedStore, fmt.Errorf("check existing completion: %w", err)
	}
	if exists {
		log.Debugf("strava activity %s already imported", externalID)
		return SkippedDuplicate, nil
	}

	var paceInSeconds *float64
	if activity.AverageSpeed > 0 {
		pace := 1000 / activity.AverageSpeed
		paceInSeconds = &pace
	}

	completion := finished.Workout{
		CustomerID:        conn.CustomerID,
		WorkoutID:         &matchedWorkout.ID,
		ExternalID:        &externalID,
		Source:            finished.SourceStrava,
		Title:             activity.Name,
		DistanceInMeters:  activity.Distance,
		DurationInSeconds: activity.MovingTime,
		PaceInSeconds:     paceInSeconds,
		ExecutionDay:      activityDay,
		CreatedAt:         time.Now(),
	}

	added, err := i.completions.Add(ctx, completion)
	if err != nil {
		// a concurrent delivery of the same activity lost the race to the
		// unique constraint, which is the idempotence working as intended
		if pkg.IsUniqueViolationError(err) {
			return SkippedDuplicate, nil
		}
		return FailedStore, fmt.Errorf("add completion: %w", err)
	}

	log.Debugf("strava activity %s imported as completion %d for customer %d",
		externalID, added.ID, conn.CustomerID)
	return Imported, nil
}
