// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/tomtom215/creativepathway/docs"
	"github.com/tomtom215/creativepathway/internal/api"
	"github.com/tomtom215/creativepathway/internal/config"
	"github.com/tomtom215/creativepathway/internal/logging"
	"github.com/tomtom215/creativepathway/internal/supervisor"
	"github.com/tomtom215/creativepathway/internal/supervisor/services"
)

const name = "creativepathway"

var (
	// overridden during build with ldflags
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// exit is replaced in tests.
var exit = os.Exit

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newCommand().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		exit(1)
	}
}

// newCommand builds the CLI. Running it without a subcommand starts the server.
func newCommand() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "CreativePathway behavioral telemetry ingestion API",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   fmt.Sprintf("Path to a YAML config file (default: $%s, then ./config.yaml)", config.ConfigPathEnvVar),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level override (trace, debug, info, warn, error)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "HTTP port override",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "version",
				Usage: "Print build information",
				Action: func(_ context.Context, cmd *cli.Command) error {
					printVersion(cmd.Root().Writer)
					return nil
				},
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return run(ctx, cfg)
		},
	}
}

func printVersion(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintf(w, "%s %s (commit %s, built %s)\n", name, version, commit, date)
}

// loadConfig reads the layered configuration, then applies command line
// overrides, which take precedence over every other source.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if cmd.IsSet("log-level") {
		cfg.Logging.Level = cmd.String("log-level")
	}
	if cmd.IsSet("port") {
		cfg.Server.Port = int(cmd.Int("port"))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid command line override: %w", err)
	}
	return cfg, nil
}

// run starts the supervisor tree and blocks until ctx is canceled and the
// tree has stopped.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logging.Init(logging.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Caller:     cfg.Logging.Caller,
		Timestamp:  true,
		Dir:        cfg.Logging.Dir,
		Production: cfg.IsProduction(),
	}); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() {
		if err := logging.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "closing log files: %v\n", err)
		}
	}()

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Strs("origins", cfg.AllowedOrigins()).
			Msg("CORS allows any origin; restrict CORS_ORIGINS before exposing this server")
	}

	docs.SwaggerInfo.Version = cfg.Server.Version

	limits := cfg.RateLimitSet()
	router := api.NewRouter(cfg, limits)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create supervisor tree: %w", err)
	}

	if !cfg.RateLimit.Disabled {
		tree.AddMaintenanceService(services.NewRateLimitJanitorService(limits.All(), services.DefaultJanitorInterval))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	logging.Info().
		Int("port", cfg.Server.Port).
		Str("environment", cfg.Server.Environment).
		Str("version", cfg.Server.Version).
		Str("health", fmt.Sprintf("http://localhost:%d/health", cfg.Server.Port)).
		Str("docs", fmt.Sprintf("http://localhost:%d/api/docs", cfg.Server.Port)).
		Msg("CreativePathway API server running")

	errCh := tree.ServeBackground(ctx)

	var treeErr error
	select {
	case treeErr = <-errCh:
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, draining in-flight requests")

		// A second deadline in case a service ignores cancellation.
		force := time.AfterFunc(cfg.Server.ShutdownTimeout+time.Second, func() {
			logging.Error().Dur("timeout", cfg.Server.ShutdownTimeout).
				Msg("Could not close connections in time, forcefully shutting down")
			exit(1)
		})
		defer force.Stop()

		treeErr = <-errCh
	}
	if treeErr != nil && !errors.Is(treeErr, context.Canceled) {
		logging.Error().Err(treeErr).Msg("Supervisor tree error")
		return fmt.Errorf("supervisor tree stopped: %w", treeErr)
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
		return fmt.Errorf("%d service(s) failed to stop within %s", len(unstopped), cfg.Server.ShutdownTimeout)
	}

	logging.Info().Msg("Application stopped gracefully")
	return nil
}
