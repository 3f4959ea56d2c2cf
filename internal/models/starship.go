// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

package models

// StarshipSummary is the list view of a catalog starship.
// Values are passed through from the catalog verbatim.
type StarshipSummary struct {
	Name                 Value `json:"name"`
	Model                Value `json:"model"`
	CostInCredits        Value `json:"cost_in_credits"`
	MaxAtmospheringSpeed Value `json:"max_atmosphering_speed"`
}

// StarshipPage is the body of GET /starships: the first catalog page only,
// with the catalog's next cursor surfaced as-is.
type StarshipPage struct {
	Starships []StarshipSummary `json:"starships"`
	Next      *string           `json:"next"`
}

// StarshipDetail is the detail view returned by GET /starships/details/{name}.
// CrewCapacity and PassengerCapacity come from the catalog's crew and
// passengers fields.
type StarshipDetail struct {
	Name                 Value `json:"name"`
	Model                Value `json:"model"`
	CostInCredits        Value `json:"cost_in_credits"`
	MaxAtmospheringSpeed Value `json:"max_atmosphering_speed"`
	CrewCapacity         Value `json:"crew_capacity"`
	PassengerCapacity    Value `json:"passenger_capacity"`
	CargoCapacity        Value `json:"cargo_capacity"`
}

// NewStarshipSummary projects a catalog starship to the list view.
func NewStarshipSummary(s *SWAPIStarship) StarshipSummary {
	return StarshipSummary{
		Name:                 s.Name,
		Model:                s.Model,
		CostInCredits:        s.CostInCredits,
		MaxAtmospheringSpeed: s.MaxAtmospheringSpeed,
	}
}

// NewStarshipDetail projects a catalog starship to the detail view.
func NewStarshipDetail(s *SWAPIStarship) StarshipDetail {
	return StarshipDetail{
		Name:                 s.Name,
		Model:                s.Model,
		CostInCredits:        s.CostInCredits,
		MaxAtmospheringSpeed: s.MaxAtmospheringSpeed,
		CrewCapacity:         s.Crew,
		PassengerCapacity:    s.Passengers,
		CargoCapacity:        s.CargoCapacity,
	}
}

// StarshipRecord is the locally held, mutable starship record. Name is the key.
type StarshipRecord struct {
	Name                 string   `json:"name"`
	Model                string   `json:"model"`
	CostInCredits        int      `json:"cost_in_credits"`
	MaxAtmospheringSpeed int      `json:"max_atmosphering_speed"`
	CrewCapacity         int      `json:"crew_capacity"`
	PassengerCapacity    int      `json:"passenger_capacity"`
	Pilots               []string `json:"pilots"`
}

// Clone returns a deep copy so callers never share the Pilots backing array.
func (r StarshipRecord) Clone() StarshipRecord {
	out := r
	if r.Pilots != nil {
		out.Pilots = make([]string, len(r.Pilots))
		copy(out.Pilots, r.Pilots)
	}
	return out
}
