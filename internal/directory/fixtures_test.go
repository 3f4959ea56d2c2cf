// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

package directory

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/tomtom215/holonet/internal/models"
	"github.com/tomtom215/holonet/internal/swapi"
)

// Catalog fixtures. {{base}} is replaced with the fake catalog URL so the
// resource links embedded in people records point back at the test server.
const (
	lukeJSON = `{
		"name": "Luke Skywalker", "height": "172", "gender": "male", "mass": "77", "birth_year": "19BBY",
		"species": ["{{base}}/species/1/"],
		"homeworld": "{{base}}/planets/1/",
		"starships": ["{{base}}/starships/12/"]
	}`
	hanJSON = `{
		"name": "Han Solo", "height": "180", "gender": "male", "mass": "80", "birth_year": "29BBY",
		"species": ["{{base}}/species/1/"],
		"homeworld": "{{base}}/planets/2/",
		"starships": ["{{base}}/starships/10/", "{{base}}/starships/22/"]
	}`
	c3poJSON = `{
		"name": "C-3PO", "height": "167", "gender": "n/a", "mass": "75", "birth_year": "112BBY",
		"species": ["{{base}}/species/2/"],
		"homeworld": "{{base}}/planets/1/",
		"starships": []
	}`
	// Wedge has no species and no homeworld on record.
	wedgeJSON = `{
		"name": "Wedge Antilles", "height": "170", "gender": "male", "mass": "77", "birth_year": "21BBY",
		"species": [],
		"homeworld": null,
		"starships": ["{{base}}/starships/12/"]
	}`
)

// catalogFixture serves canned catalog responses keyed by request URI.
type catalogFixture struct {
	t      *testing.T
	server *httptest.Server

	mu        sync.Mutex
	responses map[string]fixtureResponse
	hits      map[string]int
}

type fixtureResponse struct {
	status int
	body   string
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()

	f := &catalogFixture{
		t:         t,
		responses: make(map[string]fixtureResponse),
		hits:      make(map[string]int),
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.server.Close)

	f.handle("/species/1/", `{"name": "Human"}`)
	f.handle("/species/2/", `{"name": "Droid"}`)
	f.handle("/planets/1/", `{"name": "Tatooine"}`)
	f.handle("/planets/2/", `{"name": "Corellia"}`)
	f.handle("/starships/12/", `{"name": "X-wing", "model": "T-65 X-wing"}`)
	f.handle("/starships/10/", `{"name": "Millennium Falcon", "model": "YT-1300 light freighter"}`)
	f.handle("/starships/22/", `{"name": "Imperial shuttle", "model": "Lambda-class T-4a shuttle"}`)
	return f
}

func (f *catalogFixture) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.hits[r.URL.RequestURI()]++
	resp, ok := f.responses[r.URL.RequestURI()]
	f.mu.Unlock()

	if !ok {
		f.t.Errorf("unexpected catalog request: %s", r.URL.RequestURI())
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = w.Write([]byte(resp.body))
}

// handle registers a 200 response for requestURI.
func (f *catalogFixture) handle(requestURI, body string) {
	f.handleStatus(requestURI, http.StatusOK, body)
}

func (f *catalogFixture) handleStatus(requestURI string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[requestURI] = fixtureResponse{status: status, body: strings.ReplaceAll(body, "{{base}}", f.server.URL)}
}

// peoplePage builds a people page body with the given next cursor and records.
func peoplePage(next string, people ...string) string {
	nextJSON := "null"
	if next != "" {
		nextJSON = `"{{base}}` + next + `"`
	}
	return `{"count": 82, "next": ` + nextJSON + `, "previous": null, "results": [` + strings.Join(people, ",") + `]}`
}

func (f *catalogFixture) hitCount(requestURI string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[requestURI]
}

func (f *catalogFixture) directory(cfg Config) *Directory {
	return New(swapi.NewClient(swapi.ClientConfig{BaseURL: f.server.URL}), cfg)
}

func strPtr(s string) *string { return &s }

func str(s string) models.Value { return models.StringValue(s) }
