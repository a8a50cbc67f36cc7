// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package config

import (
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/creativepathway/internal/ratelimit"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in values matching the reference deployment
//  2. Config File: Optional YAML file (config.yaml, or the path given by
//     --config / CONFIG_PATH)
//  3. Environment Variables: Override any setting via a fixed set of names
//
// Example:
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	srv := &http.Server{Addr: cfg.Addr()}
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server      ServerConfig      `koanf:"server"`
	CORS        CORSConfig        `koanf:"cors"`
	Compression CompressionConfig `koanf:"compression"`
	RateLimit   RateLimitConfig   `koanf:"rate_limit"`
	Logging     LoggingConfig     `koanf:"logging"`
	Metrics     MetricsConfig     `koanf:"metrics"`
	Docs        DocsConfig        `koanf:"docs"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host        string `koanf:"host"`
	Port        int    `koanf:"port"`
	Environment string `koanf:"environment"` // development, staging, production or test
	Version     string `koanf:"version"`

	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`

	// MaxBodyBytes caps JSON and urlencoded request bodies.
	MaxBodyBytes int64 `koanf:"max_body_bytes"`

	// TrustProxy takes the client address from X-Forwarded-For / X-Real-IP.
	// Enable only behind a reverse proxy that overwrites those headers.
	TrustProxy bool `koanf:"trust_proxy"`
}

// CORSConfig holds the cross-origin allow list
type CORSConfig struct {
	AllowedOrigins   []string `koanf:"allowed_origins"`
	FrontendURL      string   `koanf:"frontend_url"`
	AllowCredentials bool     `koanf:"allow_credentials"`
}

// CompressionConfig holds gzip response settings
type CompressionConfig struct {
	Enabled   bool `koanf:"enabled"`
	Level     int  `koanf:"level"`
	Threshold int  `koanf:"threshold"`
}

// PolicyConfig is one rate limit budget: at most Max requests per Window.
type PolicyConfig struct {
	Window time.Duration `koanf:"window"`
	Max    int           `koanf:"max"`
}

// RateLimitConfig holds the three per-client request budgets
type RateLimitConfig struct {
	Disabled       bool         `koanf:"disabled"`
	API            PolicyConfig `koanf:"api"`
	BehavioralData PolicyConfig `koanf:"behavioral_data"`
	Health         PolicyConfig `koanf:"health"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the console output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`

	// Dir receives error.log and combined.log. Empty disables file output.
	// Default: logs
	Dir string `koanf:"dir"`
}

// MetricsConfig holds Prometheus exposition settings
type MetricsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
}

// DocsConfig holds interactive API documentation settings
type DocsConfig struct {
	// SwaggerUI serves the OpenAPI description and explorer under /swagger/.
	// Never served in production regardless of this flag.
	// Default: true
	SwaggerUI bool `koanf:"swagger_ui"`
}

// SwaggerUIEnabled reports whether /swagger/ should be routed.
func (c *Config) SwaggerUIEnabled() bool {
	return c.Docs.SwaggerUI && !c.IsProduction()
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// IsProduction returns true if the application is running in production mode.
// Production mode hides internal error details and disables console logging.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, EnvProduction)
}

// IsDevelopment returns true if the application is running in development mode.
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "" || env == EnvDevelopment
}

// AllowedOrigins returns the CORS allow list with FrontendURL appended when
// it is set and not already listed.
func (c *Config) AllowedOrigins() []string {
	candidates := make([]string, 0, len(c.CORS.AllowedOrigins)+1)
	candidates = append(candidates, c.CORS.AllowedOrigins...)
	candidates = append(candidates, c.CORS.FrontendURL)

	origins := candidates[:0]
	seen := make(map[string]bool, len(candidates))
	for _, o := range candidates {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "" || seen[o] {
			continue
		}
		seen[o] = true
		origins = append(origins, o)
	}
	return origins
}

// RateLimitSet builds the limiters for the configured budgets.
func (c *Config) RateLimitSet(opts ...ratelimit.Option) *ratelimit.Set {
	rl := c.RateLimit
	return ratelimit.NewSet(
		ratelimit.APIPolicy(rl.API.Window, rl.API.Max),
		ratelimit.BehavioralDataPolicy(rl.BehavioralData.Window, rl.BehavioralData.Max),
		ratelimit.HealthPolicy(rl.Health.Window, rl.Health.Max),
		opts...,
	)
}

// Load reads configuration from defaults, an optional YAML file and the
// environment. An empty path searches DefaultConfigPaths.
func Load(path string) (*Config, error) {
	return LoadWithKoanf(path)
}
