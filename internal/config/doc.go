// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

/*
Package config provides centralized configuration management for CreativePathway.

# Configuration Sources

Configuration is layered with Koanf v2, later layers winning:

 1. Built-in defaults
 2. An optional YAML file: the --config flag, CONFIG_PATH, or the first of
    config.yaml, config.yml, /etc/creativepathway/config.yaml
 3. Environment variables (only the names below; others are ignored)

# Environment Variables

Server:
  - PORT (alias HTTP_PORT): Listen port (default: 3000)
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - ENVIRONMENT (alias NODE_ENV): development, staging, production or test
  - APP_VERSION: Reported by /health and /api/docs (default: 1.0.0)
  - SHUTDOWN_TIMEOUT: Drain period before a forced exit (default: 30s)
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT
  - MAX_BODY_BYTES: Request body cap (default: 10485760)
  - TRUST_PROXY: Use X-Forwarded-For for the client address (default: true)

CORS:
  - CORS_ORIGINS: Comma-separated allow list
  - FRONTEND_URL: Extra origin appended to the allow list
  - CORS_ALLOW_CREDENTIALS (default: true)

Compression:
  - COMPRESSION_ENABLED, COMPRESSION_LEVEL (6), COMPRESSION_THRESHOLD (1024)

Rate Limiting:
  - DISABLE_RATE_LIMIT
  - RATE_LIMIT_API_WINDOW / RATE_LIMIT_API_MAX (15m / 100)
  - RATE_LIMIT_DATA_WINDOW / RATE_LIMIT_DATA_MAX (1m / 30)
  - RATE_LIMIT_HEALTH_WINDOW / RATE_LIMIT_HEALTH_MAX (1m / 60)

Logging and Metrics:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER, LOG_DIR (info, json, false, logs)
  - METRICS_ENABLED, METRICS_PATH (true, /metrics)
  - SWAGGER_UI (true; never served in production)

# Validation

Load fails when the port is out of range, the environment is unknown, a
budget or window is non-positive, the compression level is outside -2..9,
or a wildcard CORS origin is configured in production.
*/
package config
