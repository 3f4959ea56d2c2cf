// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

package models

// The catalog makes no promise about the type of a passthrough value or
// that its key is present, so every passthrough field is a Value: an absent
// key decodes to null and any JSON value is re-encoded unchanged.

// SWAPIPage is one page of a catalog collection or search result.
//
// Example response:
//
//	{
//	  "count": 82,
//	  "next": "https://swapi.py4e.com/api/people/?page=2",
//	  "previous": null,
//	  "results": [...]
//	}
type SWAPIPage[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// SWAPIStarship is a starship resource as served by the catalog.
type SWAPIStarship struct {
	Name                 Value    `json:"name"`
	Model                Value    `json:"model"`
	Manufacturer         Value    `json:"manufacturer"`
	CostInCredits        Value    `json:"cost_in_credits"`
	Length               Value    `json:"length"`
	MaxAtmospheringSpeed Value    `json:"max_atmosphering_speed"`
	Crew                 Value    `json:"crew"`
	Passengers           Value    `json:"passengers"`
	CargoCapacity        Value    `json:"cargo_capacity"`
	StarshipClass        Value    `json:"starship_class"`
	Pilots               []string `json:"pilots"`
	URL                  *string  `json:"url"`
}

// SWAPIPerson is a people resource as served by the catalog.
// Homeworld, Species and Starships hold resource URLs.
type SWAPIPerson struct {
	Name      Value    `json:"name"`
	Height    Value    `json:"height"`
	Mass      Value    `json:"mass"`
	Gender    Value    `json:"gender"`
	BirthYear Value    `json:"birth_year"`
	Homeworld *string  `json:"homeworld"`
	Species   []string `json:"species"`
	Starships []string `json:"starships"`
	URL       *string  `json:"url"`
}

// SWAPINamedResource covers the single-resource lookups made during
// enrichment (species, planets); only the name is consumed.
type SWAPINamedResource struct {
	Name Value `json:"name"`
}

// PersonName returns the person's name, or "" when the catalog omitted it.
func (p *SWAPIPerson) PersonName() string {
	return p.Name.String()
}

// HasStarships reports whether the person pilots at least one craft.
func (p *SWAPIPerson) HasStarships() bool {
	return len(p.Starships) > 0
}
