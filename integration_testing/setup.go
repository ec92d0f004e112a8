package integration_testing

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"testing"

	"github.com/jfcoach/backend/internal"
	"github.com/jfcoach/backend/internal/config"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	serverPort = 9000
	serverHost = "localhost"

	testStravaVerifyToken   = "test-verify-token"
	testStravaWebhookSecret = "test-webhook-secret"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

type Suite struct {
	DB         *sql.DB
	dockerPool *dockertest.Pool
	server     *internal.Server
	teardown   []func()
}

func newSuite(ctx context.Context, t *testing.T) (_ *Suite) {
	t.Helper()

	var err error
	suite := &Suite{
		teardown: make([]func(), 0),
	}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	suite.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		t.Skipf("could not create new dockertest pool: %s", err)
	}

	// uses pool to try to connect to Docker
	if err = suite.dockerPool.Client.Ping(); err != nil {
		t.Skipf("could not ping dockertest pool: %s", err)
	}

	redisPort, err := suite.redisSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup redis: %s", err.Error())
	}

	pgPort, err := suite.postgresSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup postgres: %s", err)
	}

	cfg := getTestConfig(redisPort, pgPort)
	suite.server, err = internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             "test-version-info",
			RedisPassword:           "",
			StravaClientID:          "test-client-id",
			StravaClientSecret:      "test-client-secret",
			StravaVerifyToken:       testStravaVerifyToken,
			StravaWebhookSecret:     testStravaWebhookSecret,
			StravaStateSecret:       "test-state-secret",
			HoneycombTracingEnabled: false,
		},
	)
	if err != nil {
		suite.cleanup()
		log.Fatalf("new server: %s", err)
	}

	suite.server.Serve(ctx, cfg.Host, cfg.Port)

	return suite
}

func (s *Suite) cleanup() {
	if s.DB != nil {
		s.DB.Close()
	}
	for _, teardown := range s.teardown {
		teardown()
	}
	if s.server != nil {
		s.server.GracefulShutdown()
	}
}

func getTestConfig(redisPort, postgresPort string) *config.Config {
	return &config.Config{
		Host:                        serverHost,
		Port:                        serverPort,
		RedisHost:                   "localhost",
		RedisPort:                   redisPort,
		PostgresPort:                postgresPort,
		PostgresHost:                "localhost",
		PostgresDBName:              "coach_db",
		PrometheusMetricsHost:       "localhost",
		PrometheusMetricsPort:       "2112",
		LoginRateLimitAllowedPerMin: 100,
		StravaRedirectURI:           serverEndpoint + "/strava/callback",
		StravaAppErrorScheme:        "jfapp://strava-error",
	}
}

func (s *Suite) redisSetup() (string, error) {
	redisResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Name:       "redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		redisResource.Close()
	})

	redisPort := redisResource.GetPort("6379/tcp")
	return redisPort, nil
}

func (s *Suite) postgresSetup() (string, error) {
	pgResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_HOST_AUTH_METHOD=trust",
			"POSTGRES_DB=coach_db",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		pgResource.Close()
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://postgres@localhost:%s/coach_db?sslmode=disable", pgPort)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return "", fmt.Errorf("open db conn: %s", err)
	}
	s.DB = db

	res, err := db.Exec(initSQL)
	if err != nil {
		return "", fmt.Errorf("run init script: %s", err)
	}

	numRows, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("get rows affected: %s", err)
	}

	log.Printf("postgres setup result: %d\n", numRows)

	if db.Ping() != nil {
		return "", fmt.Errorf("ping db: %s", err)
	}

	return pgPort, nil
}

const initSQL = `
CREATE TABLE public.customer
(
    id            SERIAL PRIMARY KEY,
    email         VARCHAR NOT NULL UNIQUE,
    name          VARCHAR NOT NULL,
    password_hash VARCHAR NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

ALTER TABLE public.customer OWNER TO postgres;

CREATE TABLE public.program
(
    id          VARCHAR PRIMARY KEY,
    customer_id INTEGER NOT NULL REFERENCES public.customer (id),
    title       VARCHAR NOT NULL,
    active      BOOLEAN NOT NULL DEFAULT TRUE,
    starts_at   TIMESTAMPTZ,
    ends_at     TIMESTAMPTZ,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

ALTER TABLE public.program OWNER TO postgres;
CREATE INDEX ix_program_customer_id ON public.program (customer_id);

CREATE TABLE public.workout
(
    id             VARCHAR PRIMARY KEY,
    program_id     VARCHAR NOT NULL REFERENCES public.program (id),
    title          VARCHAR NOT NULL,
    running        BOOLEAN NOT NULL DEFAULT FALSE,
    published      BOOLEAN NOT NULL DEFAULT FALSE,
    date_published TIMESTAMPTZ,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

ALTER TABLE public.workout OWNER TO postgres;
CREATE INDEX ix_workout_program_id ON public.workout (program_id);

CREATE TABLE public.finished_workout
(
    id                  SERIAL PRIMARY KEY,
    customer_id         INTEGER NOT NULL REFERENCES public.customer (id),
    workout_id          VARCHAR REFERENCES public.workout (id),
    external_id         VARCHAR UNIQUE,
    source              VARCHAR NOT NULL,
    title               VARCHAR NOT NULL,
    distance_in_meters  DOUBLE PRECISION NOT NULL DEFAULT 0,
    duration_in_seconds INTEGER NOT NULL DEFAULT 0,
    pace_in_seconds     DOUBLE PRECISION,
    execution_day       TIMESTAMPTZ NOT NULL,
    created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

ALTER TABLE public.finished_workout OWNER TO postgres;
CREATE INDEX ix_finished_workout_customer_id ON public.finished_workout (customer_id);
CREATE INDEX ix_finished_workout_execution_day ON public.finished_workout (execution_day);

CREATE TABLE public.strava_connection
(
    id                SERIAL PRIMARY KEY,
    customer_id       INTEGER NOT NULL UNIQUE REFERENCES public.customer (id),
    strava_athlete_id BIGINT  NOT NULL,
    access_token      VARCHAR NOT NULL,
    refresh_token     VARCHAR NOT NULL,
    expires_at        BIGINT  NOT NULL,
    created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

ALTER TABLE public.strava_connection OWNER TO postgres;
CREATE UNIQUE INDEX ix_strava_connection_athlete_id ON public.strava_connection (strava_athlete_id);
`
