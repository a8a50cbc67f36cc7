// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/creativepathway/internal/ratelimit"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/creativepathway/config.yaml",
	"/etc/creativepathway/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// Environment names accepted in server.environment.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            3000,
			Environment:     EnvDevelopment,
			Version:         "1.0.0",
			ShutdownTimeout: 30 * time.Second,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			MaxBodyBytes:    10 << 20, // 10MB
			TrustProxy:      true,     // deployed behind one reverse proxy
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost:3001",
				"https://creativepathway.org",
			},
			FrontendURL:      "",
			AllowCredentials: true,
		},
		Compression: CompressionConfig{
			Enabled:   true,
			Level:     6,
			Threshold: 1024,
		},
		RateLimit: RateLimitConfig{
			Disabled:       false,
			API:            PolicyConfig{Window: ratelimit.DefaultAPIWindow, Max: ratelimit.DefaultAPIMax},
			BehavioralData: PolicyConfig{Window: ratelimit.DefaultDataWindow, Max: ratelimit.DefaultDataMax},
			Health:         PolicyConfig{Window: ratelimit.DefaultHealthWindow, Max: ratelimit.DefaultHealthMax},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
			Dir:    "logs",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
		Docs: DocsConfig{
			SwaggerUI: true,
		},
	}
}

// Defaults returns the built-in configuration without reading files or
// the environment.
func Defaults() *Config {
	return defaultConfig()
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (explicit path, CONFIG_PATH, or the first of DefaultConfigPaths)
//  3. Environment Variables: Override any setting
//
// An explicit path that does not exist is an error; a missing default file is not.
func LoadWithKoanf(path string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	configPath, err := resolveConfigPath(path)
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Environment variables. Aliases load first so the primary
	// name wins when both are set (PORT over HTTP_PORT, ENVIRONMENT over NODE_ENV).
	if err := k.Load(env.Provider("", ".", envAliasTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Post-process slice fields from comma-separated strings
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// resolveConfigPath picks the YAML file to load, if any.
func resolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}
		return explicit, nil
	}
	return findConfigFile(), nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"cors.allowed_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok {
			continue // absent, or already a slice from YAML/defaults
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_host":          "server.host",
	"port":               "server.port",
	"environment":        "server.environment",
	"app_version":        "server.version",
	"shutdown_timeout":   "server.shutdown_timeout",
	"http_read_timeout":  "server.read_timeout",
	"http_write_timeout": "server.write_timeout",
	"http_idle_timeout":  "server.idle_timeout",
	"max_body_bytes":     "server.max_body_bytes",
	"trust_proxy":        "server.trust_proxy",

	// CORS
	"cors_origins":           "cors.allowed_origins",
	"frontend_url":           "cors.frontend_url",
	"cors_allow_credentials": "cors.allow_credentials",

	// Compression
	"compression_enabled":   "compression.enabled",
	"compression_level":     "compression.level",
	"compression_threshold": "compression.threshold",

	// Rate limiting
	"disable_rate_limit":       "rate_limit.disabled",
	"rate_limit_api_window":    "rate_limit.api.window",
	"rate_limit_api_max":       "rate_limit.api.max",
	"rate_limit_data_window":   "rate_limit.behavioral_data.window",
	"rate_limit_data_max":      "rate_limit.behavioral_data.max",
	"rate_limit_health_window": "rate_limit.health.window",
	"rate_limit_health_max":    "rate_limit.health.max",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
	"log_dir":    "logging.dir",

	// Metrics
	"metrics_enabled": "metrics.enabled",
	"metrics_path":    "metrics.path",

	// Docs
	"swagger_ui": "docs.swagger_ui",
}

// envAliases are secondary names, overridden by envMappings when both are set.
var envAliases = map[string]string{
	"http_port": "server.port",
	"node_env":  "server.environment",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - PORT -> server.port
//   - CORS_ORIGINS -> cors.allowed_origins
//   - RATE_LIMIT_DATA_MAX -> rate_limit.behavioral_data.max
//
// Unmapped keys return "" and are skipped so unrelated environment
// variables never leak into the config.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

func envAliasTransformFunc(key string) string {
	return envAliases[strings.ToLower(key)]
}
