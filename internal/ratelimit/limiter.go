// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package ratelimit

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/go-chi/httprate"
)

// Clock returns the current time.
type Clock func() time.Time

// Policy describes one independent rate limit.
type Policy struct {
	// Name identifies the policy in logs and metrics.
	Name string

	// Window is the fixed window length.
	Window time.Duration

	// Max is the number of requests allowed per identity per window.
	Max int

	// Message is returned to rejected clients.
	Message string

	// KeyFunc extracts the identity key. Defaults to httprate.KeyByIP.
	KeyFunc httprate.KeyFunc
}

// Describe renders the policy as "<max> requests per <window>".
func (p Policy) Describe() string {
	return fmt.Sprintf("%d requests per %s", p.Max, describeWindow(p.Window))
}

func describeWindow(d time.Duration) string {
	switch {
	case d == time.Minute:
		return "minute"
	case d == time.Hour:
		return "hour"
	case d%time.Hour == 0 && d > 0:
		return fmt.Sprintf("%d hours", int(d/time.Hour))
	case d%time.Minute == 0 && d > 0:
		return fmt.Sprintf("%d minutes", int(d/time.Minute))
	default:
		return d.String()
	}
}

// Decision is the outcome of a single Check.
type Decision struct {
	Allowed bool

	// Limit is the policy budget.
	Limit int

	// Remaining is the budget left in the current window (never negative).
	Remaining int

	// ResetAt is when the current window ends.
	ResetAt time.Time

	// RetryAfter is the whole number of seconds, rounded up, until ResetAt.
	// Only meaningful when Allowed is false.
	RetryAfter int
}

type window struct {
	start time.Time
	count int
}

// Limiter applies one Policy. Safe for concurrent use.
type Limiter struct {
	policy Policy
	clock  Clock

	mu      sync.Mutex
	windows map[string]*window
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock replaces time.Now.
func WithClock(c Clock) Option {
	return func(l *Limiter) {
		if c != nil {
			l.clock = c
		}
	}
}

// New creates a limiter for the given policy.
func New(policy Policy, opts ...Option) *Limiter {
	if policy.KeyFunc == nil {
		policy.KeyFunc = httprate.KeyByIP
	}
	if policy.Message == "" {
		policy.Message = "Too many requests from this IP, please try again later."
	}

	l := &Limiter{
		policy:  policy,
		clock:   time.Now,
		windows: make(map[string]*window),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Policy returns the limiter's policy.
func (l *Limiter) Policy() Policy {
	return l.policy
}

// Name returns the policy name.
func (l *Limiter) Name() string {
	return l.policy.Name
}

// Check records one request for key and reports whether it is within budget.
func (l *Limiter) Check(key string) Decision {
	now := l.clock()

	l.mu.Lock()
	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= l.policy.Window {
		w = &window{start: now}
		l.windows[key] = w
	}
	w.count++
	count := w.count
	resetAt := w.start.Add(l.policy.Window)
	l.mu.Unlock()

	d := Decision{
		Allowed:   count <= l.policy.Max,
		Limit:     l.policy.Max,
		Remaining: l.policy.Max - count,
		ResetAt:   resetAt,
	}
	if d.Remaining < 0 {
		d.Remaining = 0
	}
	if !d.Allowed {
		d.RetryAfter = retryAfterSeconds(resetAt.Sub(now))
	}
	return d
}

// retryAfterSeconds rounds up to whole seconds with a floor of one.
func retryAfterSeconds(remaining time.Duration) int {
	secs := int(math.Ceil(remaining.Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}

// Sweep drops identities whose window has ended and returns how many were removed.
func (l *Limiter) Sweep() int {
	now := l.clock()

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, w := range l.windows {
		if now.Sub(w.start) >= l.policy.Window {
			delete(l.windows, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked identities.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}
