package program

import (
	"context"
	"errors"

	"github.com/jfcoach/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrProgramNotFound = errors.New("program not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// GetActive returns the customer's currently active program.
func (r *Repo) GetActive(ctx context.Context, customerID int) (_ *Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.program.getActive")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("customer.id", customerID))

	var p Program
	err = r.db.QueryRow(
		ctx,
		`SELECT id, customer_id, title, active, starts_at, ends_at, created_at
			FROM program
			WHERE customer_id = $1 AND active = TRUE
			ORDER BY created_at DESC
			LIMIT 1;`,
		customerID,
	).Scan(&p.ID, &p.CustomerID, &p.Title, &p.Active, &p.StartsAt, &p.EndsAt, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}

	return &p, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.program.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program.id", id))

	var p Program
	err = r.db.QueryRow(
		ctx,
		`SELECT id, customer_id, title, active, starts_at, ends_at, created_at
			FROM program WHERE id = $1;`,
		id,
	).Scan(&p.ID, &p.CustomerID, &p.Title, &p.Active, &p.StartsAt, &p.EndsAt, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}

	return &p, nil
}
