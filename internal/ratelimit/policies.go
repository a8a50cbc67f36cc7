// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package ratelimit

import "time"

// Policy names.
const (
	PolicyAPI            = "api"
	PolicyBehavioralData = "behavioral_data"
	PolicyHealth         = "health"
)

// Default budgets.
const (
	DefaultAPIWindow    = 15 * time.Minute
	DefaultAPIMax       = 100
	DefaultDataWindow   = time.Minute
	DefaultDataMax      = 30
	DefaultHealthWindow = time.Minute
	DefaultHealthMax    = 60
)

// APIPolicy covers everything under /api/.
func APIPolicy(window time.Duration, limit int) Policy {
	return Policy{
		Name:    PolicyAPI,
		Window:  window,
		Max:     limit,
		Message: "API rate limit exceeded. Please try again later.",
	}
}

// BehavioralDataPolicy covers submissions, in addition to APIPolicy.
func BehavioralDataPolicy(window time.Duration, limit int) Policy {
	return Policy{
		Name:    PolicyBehavioralData,
		Window:  window,
		Max:     limit,
		Message: "Behavioral data submission rate limit exceeded.",
	}
}

// HealthPolicy covers /health.
func HealthPolicy(window time.Duration, limit int) Policy {
	return Policy{
		Name:    PolicyHealth,
		Window:  window,
		Max:     limit,
		Message: "Health check rate limit exceeded.",
	}
}

// Set holds the three independent limiters the router mounts.
type Set struct {
	API            *Limiter
	BehavioralData *Limiter
	Health         *Limiter
}

// NewSet builds one limiter per policy. Options apply to all three.
func NewSet(api, data, health Policy, opts ...Option) *Set {
	return &Set{
		API:            New(api, opts...),
		BehavioralData: New(data, opts...),
		Health:         New(health, opts...),
	}
}

// DefaultSet builds the production budgets.
func DefaultSet(opts ...Option) *Set {
	return NewSet(
		APIPolicy(DefaultAPIWindow, DefaultAPIMax),
		BehavioralDataPolicy(DefaultDataWindow, DefaultDataMax),
		HealthPolicy(DefaultHealthWindow, DefaultHealthMax),
		opts...,
	)
}

// All returns the limiters in a stable order.
func (s *Set) All() []*Limiter {
	return []*Limiter{s.API, s.BehavioralData, s.Health}
}
