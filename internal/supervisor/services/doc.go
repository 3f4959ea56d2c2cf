// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

// Package services adapts long-running components to suture.Service so the
// supervisor tree can start, restart and stop them.
package services
