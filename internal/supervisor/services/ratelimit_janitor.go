// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package services

import (
	"context"
	"time"

	"github.com/tomtom215/creativepathway/internal/logging"
	"github.com/tomtom215/creativepathway/internal/metrics"
)

// DefaultJanitorInterval is how often expired rate limit windows are dropped.
const DefaultJanitorInterval = time.Minute

// WindowSweeper matches *ratelimit.Limiter.
type WindowSweeper interface {
	Name() string
	Sweep() int
	Len() int
}

// RateLimitJanitorService periodically removes expired identity windows from
// the rate limiters so the counter maps stay bounded by active clients.
//
//	svc := services.NewRateLimitJanitorService(limits.All(), time.Minute)
//	tree.AddMaintenanceService(svc)
type RateLimitJanitorService struct {
	sweepers []WindowSweeper
	interval time.Duration
	name     string
}

// NewRateLimitJanitorService creates the janitor. A non-positive interval
// selects DefaultJanitorInterval.
func NewRateLimitJanitorService[S WindowSweeper](sweepers []S, interval time.Duration) *RateLimitJanitorService {
	if interval <= 0 {
		interval = DefaultJanitorInterval
	}
	ws := make([]WindowSweeper, len(sweepers))
	for i, s := range sweepers {
		ws[i] = s
	}
	return &RateLimitJanitorService{
		sweepers: ws,
		interval: interval,
		name:     "ratelimit-janitor",
	}
}

// Serve implements suture.Service.
func (j *RateLimitJanitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			j.sweep()
		}
	}
}

func (j *RateLimitJanitorService) sweep() {
	for _, s := range j.sweepers {
		removed := s.Sweep()
		remaining := s.Len()
		metrics.RecordRateLimitSweep(s.Name(), removed, remaining)
		if removed > 0 {
			logging.Debug().Str("policy", s.Name()).Int("removed", removed).Int("remaining", remaining).
				Msg("Swept expired rate limit windows")
		}
	}
}

// String implements fmt.Stringer.
func (j *RateLimitJanitorService) String() string {
	return j.name
}
