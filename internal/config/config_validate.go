// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package config

import (
	"compress/gzip"
	"fmt"
	"strings"
	"time"
)

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateCORS(); err != nil {
		return err
	}

	if err := c.validateCompression(); err != nil {
		return err
	}

	if err := c.validateRateLimits(); err != nil {
		return err
	}

	if err := c.validateMetrics(); err != nil {
		return err
	}

	return c.validateLogging()
}

var validEnvironments = map[string]bool{
	EnvDevelopment: true,
	EnvStaging:     true,
	EnvProduction:  true,
	EnvTest:        true,
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}
	if !validEnvironments[strings.ToLower(c.Server.Environment)] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production, test")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// validateCORS rejects a wildcard origin in production. Credentials are
// allowed by default, and a wildcard with credentials lets any site read
// participant responses.
func (c *Config) validateCORS() error {
	if c.hasWildcardCORS() && c.IsProduction() {
		return fmt.Errorf("CORS_ORIGINS=* (wildcard) is not allowed in production. " +
			"Set specific origins: CORS_ORIGINS=https://yourdomain.com,https://app.yourdomain.com " +
			"or use ENVIRONMENT=development for testing purposes")
	}
	return nil
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.CORS.AllowedOrigins {
		if strings.TrimSpace(origin) == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS returns true if CORS configuration has security concerns
// that should be logged at startup
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.hasWildcardCORS()
}

func (c *Config) validateCompression() error {
	if !c.Compression.Enabled {
		return nil
	}
	if c.Compression.Level < gzip.HuffmanOnly || c.Compression.Level > gzip.BestCompression {
		return fmt.Errorf("COMPRESSION_LEVEL must be between %d and %d", gzip.HuffmanOnly, gzip.BestCompression)
	}
	if c.Compression.Threshold < 0 {
		return fmt.Errorf("COMPRESSION_THRESHOLD must not be negative")
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1              // Minimum 1 request allowed
	maxRateLimitRequests = 100000         // Maximum 100K requests per window
	minRateLimitWindow   = time.Second    // Minimum 1 second window
	maxRateLimitWindow   = 24 * time.Hour // Maximum 1 day window
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.RateLimit.Disabled {
		return nil
	}

	policies := []struct {
		env    string
		policy PolicyConfig
	}{
		{"RATE_LIMIT_API", c.RateLimit.API},
		{"RATE_LIMIT_DATA", c.RateLimit.BehavioralData},
		{"RATE_LIMIT_HEALTH", c.RateLimit.Health},
	}
	for _, p := range policies {
		if p.policy.Max < minRateLimitRequests || p.policy.Max > maxRateLimitRequests {
			return fmt.Errorf("%s_MAX must be between %d and %d", p.env, minRateLimitRequests, maxRateLimitRequests)
		}
		if p.policy.Window < minRateLimitWindow || p.policy.Window > maxRateLimitWindow {
			return fmt.Errorf("%s_WINDOW must be between %v and %v", p.env, minRateLimitWindow, maxRateLimitWindow)
		}
	}
	return nil
}

func (c *Config) validateMetrics() error {
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("METRICS_PATH must start with /")
	}
	return nil
}

// validLogLevels lists accepted log levels. "http" is accepted for
// compatibility with existing deployments and logs at info.
var validLogLevels = map[string]bool{
	"trace":    true,
	"debug":    true,
	"http":     true,
	"info":     true,
	"warn":     true,
	"error":    true,
	"fatal":    true,
	"panic":    true,
	"disabled": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates the logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error, fatal, panic, disabled")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
