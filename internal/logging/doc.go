// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

// Package logging provides centralized zerolog-based structured logging for
// the ingestion service.
//
// # Streams
//
// Init builds up to three streams behind a single zerolog.MultiLevelWriter:
//
//   - <Dir>/error.log receives error level and above
//   - <Dir>/combined.log receives every record
//   - the console (JSON or human-readable) outside production
//
// File streams are opened in append mode, so a restart continues the same
// files. In production the console is skipped unless no directory is set.
//
// # Quick Start
//
//	if err := logging.Init(logging.Config{
//	    Level:      "info",
//	    Format:     "json",
//	    Timestamp:  true,
//	    Dir:        "logs",
//	    Production: cfg.Server.IsProduction(),
//	}); err != nil {
//	    return err
//	}
//	defer logging.Close()
//
//	logging.Info().Str("path", "/health").Msg("Request completed")
//
// # Request context
//
// Request and correlation IDs travel in the context; Ctx returns a logger
// pre-populated with them:
//
//	logging.Ctx(r.Context()).Warn().Int("status", 429).Msg("Request completed with error")
//
// # Security events
//
// SecurityLogger records edge events such as rate limit rejections and
// disallowed CORS origins with participant identifiers masked.
//
// # slog
//
// NewSlogLogger adapts the global logger to log/slog for libraries such as
// sutureslog.
//
// # Thread Safety
//
// All package-level functions are safe for concurrent use.
package logging
