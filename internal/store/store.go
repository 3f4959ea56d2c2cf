// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

/*
Package store holds the locally mutable starship records.

Records live in memory only and are lost on restart. The store is keyed by
exact starship name; updates replace a record wholesale and never create new
ones. Every record crossing the API boundary is deep-copied, so callers can
never mutate stored state through a returned Pilots slice.
*/
package store

import (
	"errors"
	"sort"
	"sync"

	"github.com/tomtom215/holonet/internal/models"
)

// ErrStarshipNotFound indicates no record exists under the given name.
var ErrStarshipNotFound = errors.New("starship not found")

// StarshipStore is a concurrency-safe in-memory map of starship records.
type StarshipStore struct {
	mu      sync.RWMutex
	records map[string]models.StarshipRecord
}

// DefaultSeed returns the record the service starts with.
func DefaultSeed() []models.StarshipRecord {
	return []models.StarshipRecord{
		{
			Name:                 "Millennium Falcon",
			Model:                "YT-1300 light freighter",
			CostInCredits:        100000,
			MaxAtmospheringSpeed: 1050,
			CrewCapacity:         4,
			PassengerCapacity:    6,
			Pilots:               []string{"Han Solo", "Chewbacca"},
		},
	}
}

// NewStarshipStore creates a store holding copies of seed.
// A later seed entry with a repeated name replaces the earlier one.
func NewStarshipStore(seed ...models.StarshipRecord) *StarshipStore {
	s := &StarshipStore{records: make(map[string]models.StarshipRecord, len(seed))}
	for _, r := range seed {
		s.records[r.Name] = r.Clone()
	}
	return s
}

// Update replaces the record named record.Name and returns the stored copy.
// Last write wins when updates race.
func (s *StarshipStore) Update(record models.StarshipRecord) (models.StarshipRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[record.Name]; !ok {
		return models.StarshipRecord{}, ErrStarshipNotFound
	}
	stored := record.Clone()
	s.records[record.Name] = stored
	return stored.Clone(), nil
}

// Get returns a copy of the record named name.
func (s *StarshipStore) Get(name string) (models.StarshipRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[name]
	if !ok {
		return models.StarshipRecord{}, ErrStarshipNotFound
	}
	return r.Clone(), nil
}

// List returns copies of all records ordered by name.
func (s *StarshipStore) List() []models.StarshipRecord {
	s.mu.RLock()
	out := make([]models.StarshipRecord, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r.Clone())
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of records held.
func (s *StarshipStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
