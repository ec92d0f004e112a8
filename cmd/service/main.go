package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/jfcoach/backend/internal"
	"github.com/jfcoach/backend/internal/config"
	"github.com/jfcoach/backend/internal/logging"
	"github.com/jfcoach/backend/pkg"

	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	if cfg.LogsPath != "" {
		logsDir := filepath.Dir(cfg.LogsPath)
		logsDirExists, err := pkg.PathExists(logsDir, true)
		if err != nil {
			log.Fatalf("check logs dir: %s", err)
		}
		if !logsDirExists {
			log.Warnf("logs dir [%s] does not exist, it will be created", logsDir)
		}
	}

	sentryDSN := os.Getenv("SENTRY_DSN")
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    false,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sentryDSN,
		SentryServerName: "jfcoach-backend",
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	stravaClientID := os.Getenv("STRAVA_CLIENT_ID")
	if stravaClientID == "" {
		log.Errorf("strava client id not set. use STRAVA_CLIENT_ID")
	}
	stravaClientSecret := os.Getenv("STRAVA_CLIENT_SECRET")
	if stravaClientSecret == "" {
		log.Errorf("strava client secret not set. use STRAVA_CLIENT_SECRET")
	}
	stravaVerifyToken := os.Getenv("STRAVA_VERIFY_TOKEN")
	if stravaVerifyToken == "" {
		log.Errorf("strava webhook verify token not set. use STRAVA_VERIFY_TOKEN")
	}
	stravaWebhookSecret := os.Getenv("STRAVA_WEBHOOK_SECRET")
	if stravaWebhookSecret == "" {
		log.Errorf("strava webhook secret not set. use STRAVA_WEBHOOK_SECRET")
	}
	stravaStateSecret := os.Getenv("STRAVA_STATE_SECRET")
	if stravaStateSecret == "" {
		log.Errorf("strava oauth state secret not set. use STRAVA_STATE_SECRET")
	}

	redisPassword := os.Getenv("JFCOACH_REDIS_PASS")
	if redisPassword == "" {
		log.Errorf("redis password not set. use JFCOACH_REDIS_PASS")
	}

	if otelServiceName := os.Getenv("OTEL_SERVICE_NAME"); otelServiceName == "" {
		log.Warnln("OTEL_SERVICE_NAME env var not set")
	}

	honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	if honeycombEnabled {
		if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             versionInfo,
			RedisPassword:           redisPassword,
			StravaClientID:          stravaClientID,
			StravaClientSecret:      stravaClientSecret,
			StravaVerifyToken:       stravaVerifyToken,
			StravaWebhookSecret:     stravaWebhookSecret,
			StravaStateSecret:       stravaStateSecret,
			HoneycombTracingEnabled: honeycombEnabled,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(ctx, cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	// go to sleep 🥱
	server.GracefulShutdown()
}

// tryGetLastCommitHash will try to get the last commit hash
// assumes that the built main executable is in project root
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return pkg.BytesToString(stdout), nil
}
