// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

/*
Package services provides suture.Service wrappers for CreativePathway components.

Each wrapper implements the suture.Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

and fmt.Stringer, which suture uses to name the service in its events.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server, converting ListenAndServe to Serve
  - On cancellation stops accepting connections and drains in-flight
    requests for at most the shutdown timeout (default 30s)
  - A drain that overruns the deadline is returned as an error so the
    supervisor reports the service as unstopped

Rate Limit Janitor (RateLimitJanitorService):
  - Periodically sweeps expired fixed windows out of every limiter
  - Records swept and live window counts per policy

# Usage Example

	tree.AddMaintenanceService(services.NewRateLimitJanitorService(limits.All(), time.Minute))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
*/
package services
