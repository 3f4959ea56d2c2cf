// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

package directory

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the directories. Callers match them with
// errors.Is; upstream failures additionally wrap the catalog error so the
// status can be recovered with swapi.StatusCodeOf.
var (
	// ErrStarshipNotFound indicates a starship search returned no results.
	ErrStarshipNotFound = errors.New("starship not found")

	// ErrPilotNotFound indicates no person matched the name exactly or the
	// matching person pilots no craft.
	ErrPilotNotFound = errors.New("pilot not found or has no starships")

	// ErrUpstream indicates the catalog could not be reached, answered with a
	// non-2xx status, or returned an undecodable body.
	ErrUpstream = errors.New("swapi catalog unavailable")
)

// upstreamError tags a catalog failure with the failing operation.
func upstreamError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrUpstream, err)
}
