package strava

import (
	"context"
	"fmt"
	"time"

	"github.com/jfcoach/backend/internal/telemetry/metrics"
	"github.com/jfcoach/backend/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=refresher_mocks_test.go -package=strava_test

type connectionSaver interface {
	Save(ctx context.Context, conn Connection) (*Connection, error)
}

type tokenRefreshClient interface {
	RefreshToken(ctx context.Context, refreshToken string) (*TokenResponse, error)
}

// Refresher makes sure a connection's access token is usable before any API
// call with it.
type Refresher struct {
	repo           connectionSaver
	client         tokenRefreshClient
	metricsManager *metrics.Manager
	// ability to fake the clock in tests
	NowFunc func() time.Time
}

func NewRefresher(
	repo connectionSaver,
	client tokenRefreshClient,
	metricsManager *metrics.Manager,
) *Refresher {
	return &Refresher{
		repo:           repo,
		client:         client,
		metricsManager: metricsManager,
		NowFunc:        time.Now,
	}
}

// EnsureFresh returns the connection as is while the token is valid (the
// common case, no network call), otherwise exchanges the refresh token for a
// new pair and persists it. Concurrent refreshes for the same connection are
// tolerated: the provider returns a valid pair to each caller and the store is
// last write wins.
func (r *Refresher) EnsureFresh(ctx context.Context, conn *Connection) (_ *Connection, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "strava.refresher.ensureFresh")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("customer.id", conn.CustomerID))

	now := r.NowFunc().Unix()
	if now < conn.ExpiresAt {
		return conn, nil
	}

	log.Debugf("strava token for customer %d expired at %d, refreshing", conn.CustomerID, conn.ExpiresAt)

	tokenResponse, err := r.client.RefreshToken(ctx, conn.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("refresh token exchange: %w", err)
	}

	conn.AccessToken = tokenResponse.AccessToken
	conn.RefreshToken = tokenResponse.RefreshToken
	conn.ExpiresAt = tokenResponse.ExpiresAt

	saved, err := r.repo.Save(ctx, *conn)
	if err != nil {
		return nil, fmt.Errorf("save refreshed connection: %w", err)
	}

	r.metricsManager.CounterTokenRefreshes.Inc()

	return saved, nil
}
