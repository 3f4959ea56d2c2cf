// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

/*
client.go - SWAPI REST catalog client

Every call is a single GET attempted exactly once. Collections and search
results decode into models.SWAPIPage; referenced resources (species, planets,
starships) are fetched by the absolute URL the catalog embedded in the parent
record.

API Reference: https://swapi.py4e.com/documentation
*/

package swapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/holonet/internal/logging"
	"github.com/tomtom215/holonet/internal/metrics"
	"github.com/tomtom215/holonet/internal/models"
)

// Catalog defines the catalog operations the directories depend on.
// Both Client and CircuitBreakerClient implement this interface.
type Catalog interface {
	// ListStarships fetches the first page of /starships/.
	ListStarships(ctx context.Context) (*models.SWAPIPage[models.SWAPIStarship], error)
	// SearchStarships fetches /starships/?search=query.
	SearchStarships(ctx context.Context, query string) (*models.SWAPIPage[models.SWAPIStarship], error)
	// ListPeople fetches one page of /people/. An empty pageURL means the
	// first page; otherwise pageURL is a next cursor returned by the catalog.
	ListPeople(ctx context.Context, pageURL string) (*models.SWAPIPage[models.SWAPIPerson], error)
	// SearchPeople fetches /people/?search=query.
	SearchPeople(ctx context.Context, query string) (*models.SWAPIPage[models.SWAPIPerson], error)
	// GetSpecies fetches a species resource by its absolute URL.
	GetSpecies(ctx context.Context, resourceURL string) (*models.SWAPINamedResource, error)
	// GetPlanet fetches a planet resource by its absolute URL.
	GetPlanet(ctx context.Context, resourceURL string) (*models.SWAPINamedResource, error)
	// GetStarship fetches a starship resource by its absolute URL.
	GetStarship(ctx context.Context, resourceURL string) (*models.SWAPIStarship, error)
}

// Ensure Client implements Catalog
var _ Catalog = (*Client)(nil)

// maxErrorBodySize bounds how much of a failed response is kept for logs.
const maxErrorBodySize = 1024

// Resource labels used in errors, logs and metrics.
const (
	resourceStarships = "starships"
	resourcePeople    = "people"
	resourceSpecies   = "species"
	resourcePlanets   = "planets"
)

// Metric outcomes for a single catalog round trip.
const (
	outcomeSuccess        = "success"
	outcomeStatusError    = "status_error"
	outcomeTransportError = "transport_error"
	outcomeDecodeError    = "decode_error"
)

// StatusError reports a non-2xx catalog response. Body holds a truncated
// excerpt for logging; it is never returned to API clients.
type StatusError struct {
	Resource   string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("swapi %s returned status %d: %s", e.Resource, e.StatusCode, e.Body)
}

// StatusCodeOf returns the catalog status carried by err, or 0 when err is
// not a catalog status failure.
func StatusCodeOf(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}
	return 0
}

// ClientConfig holds construction parameters for Client.
type ClientConfig struct {
	// BaseURL is the catalog root (e.g., https://swapi.py4e.com/api).
	BaseURL string
	// Timeout bounds each request. Zero disables the client timeout.
	Timeout time.Duration
	// UserAgent is sent on every request when non-empty.
	UserAgent string
	// HTTPClient overrides the transport; Timeout is ignored when set.
	HTTPClient *http.Client
}

// Client provides access to the SWAPI REST catalog
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient creates a new catalog client
func NewClient(cfg ClientConfig) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		httpClient: httpClient,
	}
}

// BaseURL returns the normalized catalog root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListStarships fetches the first page of the starship collection
func (c *Client) ListStarships(ctx context.Context) (*models.SWAPIPage[models.SWAPIStarship], error) {
	return getJSON[models.SWAPIPage[models.SWAPIStarship]](ctx, c, resourceStarships, c.collectionURL(resourceStarships, ""))
}

// SearchStarships runs the catalog's case-insensitive substring search over starships
func (c *Client) SearchStarships(ctx context.Context, query string) (*models.SWAPIPage[models.SWAPIStarship], error) {
	return getJSON[models.SWAPIPage[models.SWAPIStarship]](ctx, c, resourceStarships, c.collectionURL(resourceStarships, query))
}

// ListPeople fetches one page of the people collection
func (c *Client) ListPeople(ctx context.Context, pageURL string) (*models.SWAPIPage[models.SWAPIPerson], error) {
	if pageURL == "" {
		pageURL = c.collectionURL(resourcePeople, "")
	}
	return getJSON[models.SWAPIPage[models.SWAPIPerson]](ctx, c, resourcePeople, pageURL)
}

// SearchPeople runs the catalog's case-insensitive substring search over people
func (c *Client) SearchPeople(ctx context.Context, query string) (*models.SWAPIPage[models.SWAPIPerson], error) {
	return getJSON[models.SWAPIPage[models.SWAPIPerson]](ctx, c, resourcePeople, c.collectionURL(resourcePeople, query))
}

// GetSpecies fetches a referenced species resource
func (c *Client) GetSpecies(ctx context.Context, resourceURL string) (*models.SWAPINamedResource, error) {
	return getJSON[models.SWAPINamedResource](ctx, c, resourceSpecies, resourceURL)
}

// GetPlanet fetches a referenced planet resource
func (c *Client) GetPlanet(ctx context.Context, resourceURL string) (*models.SWAPINamedResource, error) {
	return getJSON[models.SWAPINamedResource](ctx, c, resourcePlanets, resourceURL)
}

// GetStarship fetches a referenced starship resource
func (c *Client) GetStarship(ctx context.Context, resourceURL string) (*models.SWAPIStarship, error) {
	return getJSON[models.SWAPIStarship](ctx, c, resourceStarships, resourceURL)
}

// collectionURL builds <base>/<resource>/ with an optional search parameter.
func (c *Client) collectionURL(resource, search string) string {
	u := c.baseURL + "/" + resource + "/"
	if search == "" {
		return u
	}
	return u + "?" + url.Values{"search": []string{search}}.Encode()
}

// doRequest performs an HTTP GET request against the catalog
func (c *Client) doRequest(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	return c.httpClient.Do(req)
}

// getJSON is a generic helper that executes one catalog GET and decodes the
// JSON body into T. It handles status checking, metrics and debug logging.
func getJSON[T any](ctx context.Context, c *Client, resource, rawURL string) (*T, error) {
	start := time.Now()
	logger := logging.Ctx(ctx)

	resp, err := c.doRequest(ctx, rawURL)
	if err != nil {
		metrics.RecordUpstreamRequest(resource, outcomeTransportError, time.Since(start))
		logger.Debug().Err(err).Str("resource", resource).Str("url", rawURL).Msg("SWAPI request failed")
		return nil, fmt.Errorf("swapi %s request failed: %w", resource, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RecordUpstreamRequest(resource, outcomeStatusError, time.Since(start))
		statusErr := &StatusError{
			Resource:   resource,
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Body:       string(readBodyForError(resp.Body)),
		}
		logger.Debug().Int("status", resp.StatusCode).Str("resource", resource).Str("url", rawURL).Msg("SWAPI returned error status")
		return nil, statusErr
	}

	var result T
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		metrics.RecordUpstreamRequest(resource, outcomeDecodeError, time.Since(start))
		return nil, fmt.Errorf("failed to decode swapi %s response: %w", resource, err)
	}

	metrics.RecordUpstreamRequest(resource, outcomeSuccess, time.Since(start))
	logger.Debug().Str("resource", resource).Str("url", rawURL).Dur("duration", time.Since(start)).Msg("SWAPI request completed")
	return &result, nil
}

// readBodyForError reads a bounded excerpt of an error response body
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("... (truncated)")...)
	}
	return body
}
