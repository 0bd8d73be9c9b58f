package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/2beens/liftplan/internal"
	"github.com/2beens/liftplan/internal/config"
	"github.com/2beens/liftplan/internal/logging"
	"github.com/2beens/liftplan/pkg"

	log "github.com/sirupsen/logrus"
)

// set with -ldflags "-X main.version=..."
var version string

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev ]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	if err := run(*env, *configPath); err != nil {
		log.Fatalf("liftplan: %s", err)
	}
}

func run(env, configPath string) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	closeLogs := logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "liftplan-service",
	})
	defer closeLogs()

	log.Warnf("---->> running in [%s] environment, port %d", env, cfg.Port)

	if cfg.CatalogPath != "" {
		exists, err := pkg.PathExists(cfg.CatalogPath, false)
		if err != nil || !exists {
			return fmt.Errorf("exercise catalog not found at [%s]: %v", cfg.CatalogPath, err)
		}
		log.Debugf("using exercise catalog: [%s]", cfg.CatalogPath)
	}

	versionInfo := versionInfo()
	log.Tracef("running version: %s", versionInfo)

	redisPassword := os.Getenv("LIFTPLAN_REDIS_PASS")
	if redisPassword == "" {
		log.Errorf("redis password not set. use LIFTPLAN_REDIS_PASS")
	}

	if os.Getenv("OTEL_SERVICE_NAME") == "" {
		log.Warnln("OTEL_SERVICE_NAME env var not set")
	}
	honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	if honeycombEnabled && os.Getenv("HONEYCOMB_API_KEY") == "" {
		log.Warnln("HONEYCOMB_API_KEY env var not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             versionInfo,
			RedisPassword:           redisPassword,
			PostgresPassword:        os.Getenv("LIFTPLAN_POSTGRES_PASS"),
			HoneycombTracingEnabled: honeycombEnabled,
		},
	)
	if err != nil {
		return fmt.Errorf("new server: %w", err)
	}

	server.Serve(cfg.Host, cfg.Port)

	<-ctx.Done()
	log.Warnln("shutdown signal received, releasing live sessions ...")
	server.GracefulShutdown()
	return nil
}

// versionInfo prefers the linked version, then the vcs revision stamped by
// the go tool, then the git checkout the binary runs from.
func versionInfo() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}
	hash, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash: %s", err)
		return "unknown"
	}
	return hash
}

func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(pkg.BytesToString(stdout)), nil
}
