// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

package directory

import (
	"context"
	"net/http"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/tomtom215/holonet/internal/models"
	"github.com/tomtom215/holonet/internal/swapi"
)

const starshipsFirstPage = `{
	"count": 37,
	"next": "https://swapi.py4e.com/api/starships/?page=2",
	"previous": null,
	"results": [
		{"name": "CR90 corvette", "model": "CR90 corvette", "cost_in_credits": "3500000", "max_atmosphering_speed": "950", "crew": "30-165"},
		{"name": "Death Star", "model": "DS-1 Orbital Battle Station", "cost_in_credits": "1000000000000", "max_atmosphering_speed": "n/a"},
		{"name": "Unnamed hull"}
	]
}`

func TestListStarshipsProjectsFirstPage(t *testing.T) {
	t.Parallel()

	f := newCatalogFixture(t)
	f.handle("/starships/", starshipsFirstPage)

	page, err := f.directory(Config{}).ListStarships(context.Background())
	checkNoError(t, err)

	want := &models.StarshipPage{
		Starships: []models.StarshipSummary{
			{Name: str("CR90 corvette"), Model: str("CR90 corvette"), CostInCredits: str("3500000"), MaxAtmospheringSpeed: str("950")},
			{Name: str("Death Star"), Model: str("DS-1 Orbital Battle Station"), CostInCredits: str("1000000000000"), MaxAtmospheringSpeed: str("n/a")},
			{Name: str("Unnamed hull")},
		},
		Next: strPtr("https://swapi.py4e.com/api/starships/?page=2"),
	}
	if diff := cmp.Diff(want, page); diff != "" {
		t.Errorf("ListStarships() mismatch (-want +got):\n%s", diff)
	}
	checkIntEqual(t, "first page fetches", f.hitCount("/starships/"), 1)
}

func TestListStarshipsPassesNumericValuesThrough(t *testing.T) {
	t.Parallel()

	f := newCatalogFixture(t)
	f.handle("/starships/", `{"count": 1, "next": null, "previous": null, "results": [
		{"name": "X-wing", "model": "T-65 X-wing", "cost_in_credits": 149999, "max_atmosphering_speed": 1050}
	]}`)

	page, err := f.directory(Config{}).ListStarships(context.Background())
	checkNoError(t, err)
	checkSliceLen(t, "starships", len(page.Starships), 1)

	body, err := json.Marshal(page)
	checkNoError(t, err)
	want := `{"starships":[{"name":"X-wing","model":"T-65 X-wing","cost_in_credits":149999,"max_atmosphering_speed":1050}],"next":null}`
	checkStringEqual(t, "page JSON", string(body), want)
}

func TestListStarshipsEmptyPage(t *testing.T) {
	t.Parallel()

	f := newCatalogFixture(t)
	f.handle("/starships/", `{"count": 0, "next": null, "previous": null, "results": []}`)

	page, err := f.directory(Config{}).ListStarships(context.Background())
	checkNoError(t, err)
	checkTrue(t, "starships non-nil", page.Starships != nil)
	checkIntEqual(t, "starships", len(page.Starships), 0)
	checkTrue(t, "next is nil", page.Next == nil)
}

func TestListStarshipsUpstreamFailure(t *testing.T) {
	t.Parallel()

	f := newCatalogFixture(t)
	f.handleStatus("/starships/", http.StatusServiceUnavailable, "maintenance")

	_, err := f.directory(Config{}).ListStarships(context.Background())
	checkErrorIs(t, err, ErrUpstream)
	checkIntEqual(t, "upstream status", swapi.StatusCodeOf(err), http.StatusServiceUnavailable)
}

func TestGetStarship(t *testing.T) {
	t.Parallel()

	f := newCatalogFixture(t)
	f.handle("/starships/?search=Falcon", `{"count": 1, "next": null, "previous": null, "results": [
		{"name": "Millennium Falcon", "model": "YT-1300 light freighter", "cost_in_credits": "100000",
		 "max_atmosphering_speed": "1050", "crew": "4", "passengers": "6", "cargo_capacity": "100000"},
		{"name": "Falcon decoy"}
	]}`)

	detail, err := f.directory(Config{}).GetStarship(context.Background(), "Falcon")
	checkNoError(t, err)

	want := &models.StarshipDetail{
		Name:                 str("Millennium Falcon"),
		Model:                str("YT-1300 light freighter"),
		CostInCredits:        str("100000"),
		MaxAtmospheringSpeed: str("1050"),
		CrewCapacity:         str("4"),
		PassengerCapacity:    str("6"),
		CargoCapacity:        str("100000"),
	}
	if diff := cmp.Diff(want, detail); diff != "" {
		t.Errorf("GetStarship() mismatch (-want +got):\n%s", diff)
	}
}

func TestGetStarshipErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"no results", http.StatusOK, `{"count": 0, "next": null, "previous": null, "results": []}`, ErrStarshipNotFound},
		{"catalog error", http.StatusInternalServerError, "boom", ErrUpstream},
		{"malformed body", http.StatusOK, "<html>", ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newCatalogFixture(t)
			f.handleStatus("/starships/?search=Executor", tt.status, tt.body)

			detail, err := f.directory(Config{}).GetStarship(context.Background(), "Executor")
			checkTrue(t, "detail is nil", detail == nil)
			checkErrorIs(t, err, tt.wantErr)
		})
	}
}
