// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

/*
Package supervisor provides process supervision for CreativePathway using suture v4.

The tree keeps the HTTP listener isolated from background housekeeping:

	RootSupervisor ("creativepathway")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── RateLimitJanitorService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with backoff once FailureThreshold failures
accumulate (decaying at FailureDecay per second). Canceling the context
passed to Serve shuts the tree down; services that do not return within
ShutdownTimeout are listed by UnstoppedServiceReport.

Supervisor events (start, stop, failure, backoff) are logged through
sutureslog; pass logging.NewSlogLogger() to route them into zerolog.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
	    return err
	}
	tree.AddMaintenanceService(services.NewRateLimitJanitorService(limits.All(), time.Minute))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	errCh := tree.ServeBackground(ctx)
	<-ctx.Done()
	<-errCh
*/
package supervisor
