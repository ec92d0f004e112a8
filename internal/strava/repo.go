package strava

import (
	"context"
	"errors"

	"github.com/jfcoach/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrConnectionNotFound = errors.New("strava connection not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Save upserts the connection by customer id and returns the stored row.
// Each customer has at most one connection, same for each athlete id.
func (r *Repo) Save(ctx context.Context, conn Connection) (_ *Connection, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.strava.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("customer.id", conn.CustomerID))

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO strava_connection
				(customer_id, strava_athlete_id, access_token, refresh_token, expires_at, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
			ON CONFLICT (customer_id) DO UPDATE SET
				strava_athlete_id = EXCLUDED.strava_athlete_id,
				access_token = EXCLUDED.access_token,
				refresh_token = EXCLUDED.refresh_token,
				expires_at = EXCLUDED.expires_at,
				updated_at = NOW()
			RETURNING id, customer_id, strava_athlete_id, access_token, refresh_token, expires_at, created_at, updated_at;`,
		conn.CustomerID, conn.AthleteID, conn.AccessToken, conn.RefreshToken, conn.ExpiresAt,
	).Scan(
		&conn.ID, &conn.CustomerID, &conn.AthleteID, &conn.AccessToken,
		&conn.RefreshToken, &conn.ExpiresAt, &conn.CreatedAt, &conn.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &conn, nil
}

func (r *Repo) GetByCustomer(ctx context.Context, customerID int) (_ *Connection, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.strava.getByCustomer")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("customer.id", customerID))

	var conn Connection
	err = r.db.QueryRow(
		ctx,
		`SELECT id, customer_id, strava_athlete_id, access_token, refresh_token, expires_at, created_at, updated_at
			FROM strava_connection WHERE customer_id = $1;`,
		customerID,
	).Scan(
		&conn.ID, &conn.CustomerID, &conn.AthleteID, &conn.AccessToken,
		&conn.RefreshToken, &conn.ExpiresAt, &conn.CreatedAt, &conn.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrConnectionNotFound
		}
		return nil, err
	}

	return &conn, nil
}

func (r *Repo) GetByAthleteID(ctx context.Context, athleteID int64) (_ *Connection, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.strava.getByAthleteID")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("athlete.id", athleteID))

	var conn Connection
	err = r.db.QueryRow(
		ctx,
		`SELECT id, customer_id, strava_athlete_id, access_token, refresh_token, expires_at, created_at, updated_at
			FROM strava_connection WHERE strava_athlete_id = $1;`,
		athleteID,
	).Scan(
		&conn.ID, &conn.CustomerID, &conn.AthleteID, &conn.AccessToken,
		&conn.RefreshToken, &conn.ExpiresAt, &conn.CreatedAt, &conn.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrConnectionNotFound
		}
		return nil, err
	}

	return &conn, nil
}
