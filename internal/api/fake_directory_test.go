// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

package api

import (
	"context"
	"errors"
	"sync"

	"github.com/tomtom215/holonet/internal/models"
)

var errUnexpectedCall = errors.New("unexpected directory call")

// fakeDirectory is a Directory whose answers are set per test. Calls to an
// unset method fail with errUnexpectedCall.
type fakeDirectory struct {
	starships *models.StarshipPage
	starship  *models.StarshipDetail
	pilots    []models.Pilot
	pilot     *models.Pilot
	err       error

	mu    sync.Mutex
	names []string
}

func (f *fakeDirectory) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.names = append(f.names, name)
}

func (f *fakeDirectory) ListStarships(context.Context) (*models.StarshipPage, error) {
	if f.starships == nil && f.err == nil {
		return nil, errUnexpectedCall
	}
	return f.starships, f.err
}

func (f *fakeDirectory) GetStarship(_ context.Context, name string) (*models.StarshipDetail, error) {
	f.record(name)
	if f.starship == nil && f.err == nil {
		return nil, errUnexpectedCall
	}
	return f.starship, f.err
}

func (f *fakeDirectory) ListPilots(context.Context) ([]models.Pilot, error) {
	return f.pilots, f.err
}

func (f *fakeDirectory) GetPilot(_ context.Context, name string) (*models.Pilot, error) {
	f.record(name)
	if f.pilot == nil && f.err == nil {
		return nil, errUnexpectedCall
	}
	return f.pilot, f.err
}

// lookedUp returns the names passed to the Get methods, in call order.
func (f *fakeDirectory) lookedUp() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.names...)
}

func str(s string) models.Value { return models.StringValue(s) }

func strPtr(s string) *string { return &s }
