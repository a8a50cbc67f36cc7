// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

/*
Package ratelimit implements fixed-window request limiting keyed by client
identity.

A Limiter owns one Policy (window length, request budget, rejection message,
identity key function) and a map of identity → (count, window start). Each
call to Check increments the caller's counter atomically under the limiter's
mutex and compares it to the budget. When the elapsed time since the window
start reaches the window length the counter starts over.

Limiters are plain values constructed at startup and handed to the router;
there is no package-level state. Tests inject a Clock to step time without
sleeping:

	now := time.Unix(0, 0)
	l := ratelimit.New(ratelimit.Policy{Name: "health", Window: time.Minute, Max: 60},
	    ratelimit.WithClock(func() time.Time { return now }))

Fixed windows allow bursts of up to twice the nominal rate across a window
boundary. That is accepted.

Limiter.Middleware enforces a policy on an http.Handler. Every request that
passes sets X-RateLimit-Limit, X-RateLimit-Remaining and X-RateLimit-Reset;
a rejected request gets a terminal 429 with Retry-After and the flat body

	{"success": false, "error": "<policy message>", "retryAfter": 42, "timestamp": "..."}

Identities come from the policy's KeyFunc (httprate.KeyByIP by default, so
the address reflects chi's RealIP when the server trusts a proxy).

The three production policies (API, BehavioralData, Health) are independent;
a request whose path matches several prefixes passes through each limiter in
turn and is rejected by the first one that is over budget.
*/
package ratelimit
