// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

/*
Package main is the entry point for the CreativePathway server.

CreativePathway accepts behavioral telemetry from learning clients
(attentiveness, scientific attitude, creativity and general engagement
metrics, following the pathway model of Park et al., 2017), validates it and
acknowledges receipt. Nothing is persisted.

# Application Architecture

	RootSupervisor ("creativepathway")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── Rate limit janitor (drops expired windows)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router, see internal/api)

Startup order:

 1. Command line: urfave/cli/v3 (--config, --log-level, --port)
 2. Configuration: koanf v2 (defaults, YAML file, environment)
 3. Logging: zerolog to logs/error.log, logs/combined.log and, outside
    production, the console
 4. Rate limiters: one fixed-window limiter per policy
 5. Supervisor tree: suture v4 with an slog bridge to zerolog
 6. HTTP server

# Commands

	creativepathway                       start the server
	creativepathway --config app.yaml     start with a config file
	creativepathway --port 8080 --log-level debug
	creativepathway version               print build information

# Signal Handling

SIGINT and SIGTERM stop the listener and let in-flight requests finish for
up to SHUTDOWN_TIMEOUT (30s). If the tree has not stopped one second after
that, the process exits with status 1. Services that fail to stop also
produce a non-zero exit.

# Example Usage

	export PORT=3000
	export NODE_ENV=production
	export FRONTEND_URL=https://app.creativepathway.org
	./creativepathway

	curl -s localhost:3000/health
	curl -s -X POST localhost:3000/api/v1/behavioral-data \
	  -H 'Content-Type: application/json' \
	  -d '{"userId":"abc123","type":"general","data":{"timestamp":"2024-01-15T10:30:00Z","general":{"session_duration":120000}}}'
*/
package main
