// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

package api

import "github.com/tomtom215/holonet/internal/models"

// StarshipUpdateRequest is the PUT /starships/update body. Every field is
// required; scalars are pointers so an explicit zero is told apart from a
// missing key.
type StarshipUpdateRequest struct {
	Name                 *string  `json:"name" validate:"required"`
	Model                *string  `json:"model" validate:"required"`
	CostInCredits        *int     `json:"cost_in_credits" validate:"required"`
	MaxAtmospheringSpeed *int     `json:"max_atmosphering_speed" validate:"required"`
	CrewCapacity         *int     `json:"crew_capacity" validate:"required"`
	PassengerCapacity    *int     `json:"passenger_capacity" validate:"required"`
	Pilots               []string `json:"pilots" validate:"required"`
}

// ToRecord converts a validated request to a store record.
func (r *StarshipUpdateRequest) ToRecord() models.StarshipRecord {
	pilots := make([]string, len(r.Pilots))
	copy(pilots, r.Pilots)
	return models.StarshipRecord{
		Name:                 *r.Name,
		Model:                *r.Model,
		CostInCredits:        *r.CostInCredits,
		MaxAtmospheringSpeed: *r.MaxAtmospheringSpeed,
		CrewCapacity:         *r.CrewCapacity,
		PassengerCapacity:    *r.PassengerCapacity,
		Pilots:               pilots,
	}
}
