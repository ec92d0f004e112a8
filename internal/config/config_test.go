package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigContent = `
[development]
host = "localhost"
port = 8080
log_level = "trace"
log_to_stdout = true
postgres_host = "localhost"
postgres_port = "5432"
postgres_db_name = "coach_db"
redis_host = "localhost"
redis_port = "6379"
prometheus_metrics_host = "localhost"
prometheus_metrics_port = "2112"
login_rate_limit_allowed_per_min = 15
strava_redirect_uri = "http://localhost:8080/strava/callback"
strava_app_error_scheme = "jfapp://strava-error"

[production]
host = "0.0.0.0"
port = 9000
log_level = "debug"
logs_path = "/var/log/coach-backend"
sentry_enabled = true
postgres_host = "db"
postgres_port = "5432"
postgres_db_name = "coach_db"
redis_host = "redis"
redis_port = "6379"
prometheus_metrics_host = "0.0.0.0"
prometheus_metrics_port = "2112"
login_rate_limit_allowed_per_min = 10
strava_redirect_uri = "https://api.jfcoach.app/strava/callback"
strava_app_error_scheme = "jfapp://strava-error"
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigContent), 0o600))
	return path
}

func TestLoad_Development(t *testing.T) {
	cfg, err := Load("development", writeTestConfig(t))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "trace", cfg.LogLevel)
	assert.True(t, cfg.LogToStdout)
	assert.False(t, cfg.SentryEnabled)
	assert.Equal(t, "coach_db", cfg.PostgresDBName)
	assert.Equal(t, 15, cfg.LoginRateLimitAllowedPerMin)
	assert.Equal(t, "http://localhost:8080/strava/callback", cfg.StravaRedirectURI)
	assert.Equal(t, "jfapp://strava-error", cfg.StravaAppErrorScheme)
}

func TestLoad_Production(t *testing.T) {
	cfg, err := Load("prod", writeTestConfig(t))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9000, cfg.Port)
	assert.True(t, cfg.SentryEnabled)
	assert.Equal(t, "/var/log/coach-backend", cfg.LogsPath)
}

func TestLoad_UnknownEnv(t *testing.T) {
	cfg, err := Load("staging", writeTestConfig(t))
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "unknown env")
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load("development", "/invalid/path/config.toml")
	require.Error(t, err)
	assert.Nil(t, cfg)
}
