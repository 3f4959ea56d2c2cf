// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

/*
Package supervisor provides process supervision for the gateway using suture v4.

# Overview

	RootSupervisor ("holonet")
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

The gateway does all of its work inside HTTP requests, so the tree is
shallow. Supervision still buys restart with backoff if the listener fails,
a bounded graceful shutdown, and a report of services that did not stop.

# Logging

Supervisor events go through sutureslog into a *slog.Logger. main passes
logging.NewSlogLogger(), which forwards to the zerolog global logger.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddAPIService(services.NewHTTPServerService(server, tree.ShutdownTimeout()))

	errCh := tree.ServeBackground(ctx)
	<-ctx.Done()
	<-errCh

	if report, _ := tree.UnstoppedServiceReport(); len(report) > 0 {
	    logging.Warn().Int("count", len(report)).Msg("Services did not stop in time")
	}
*/
package supervisor
