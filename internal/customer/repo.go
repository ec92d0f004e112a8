package customer

import (
	"context"
	"errors"

	"github.com/jfcoach/backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrCustomerNotFound = errors.New("customer not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *Customer, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.customer.getByEmail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var c Customer
	err = r.db.QueryRow(
		ctx,
		`SELECT id, email, name, password_hash, created_at FROM customer WHERE email = $1;`,
		email,
	).Scan(&c.ID, &c.Email, &c.Name, &c.PasswordHash, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("customer.id", c.ID))
	return &c, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Customer, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.customer.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("customer.id", id))

	var c Customer
	err = r.db.QueryRow(
		ctx,
		`SELECT id, email, name, password_hash, created_at FROM customer WHERE id = $1;`,
		id,
	).Scan(&c.ID, &c.Email, &c.Name, &c.PasswordHash, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	return &c, nil
}
