// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

package models

// Pilot is a catalog person with at least one piloted craft, enriched with
// resolved species, homeworld and craft.
//
// Example:
//
//	{
//	  "name": "Luke Skywalker",
//	  "height": "172",
//	  "gender": "male",
//	  "weight": "77",
//	  "birth_year": "19BBY",
//	  "species_name": "Human",
//	  "homeworld": "Tatooine",
//	  "starships": [{"name": "X-wing", "model": "T-65 X-wing"}]
//	}
type Pilot struct {
	Name        Value           `json:"name"`
	Height      Value           `json:"height"`
	Gender      Value           `json:"gender"`
	Weight      Value           `json:"weight"` // catalog "mass"
	BirthYear   Value           `json:"birth_year"`
	SpeciesName Value           `json:"species_name"`
	Homeworld   Value           `json:"homeworld"`
	Starships   []PilotStarship `json:"starships"`
}

// PilotStarship is a resolved craft reference. Both pilot endpoints return
// this shape.
type PilotStarship struct {
	Name  Value `json:"name"`
	Model Value `json:"model"`
}

// PilotList is the body of GET /pilots.
type PilotList struct {
	Pilots []Pilot `json:"pilots"`
}

// NewPilot copies the passthrough fields of a catalog person. Resolved
// fields are filled in by enrichment.
func NewPilot(p *SWAPIPerson) Pilot {
	return Pilot{
		Name:      p.Name,
		Height:    p.Height,
		Gender:    p.Gender,
		Weight:    p.Mass,
		BirthYear: p.BirthYear,
	}
}
