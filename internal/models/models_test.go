// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
)

const falconJSON = `{
	"name": "Millennium Falcon",
	"model": "YT-1300 light freighter",
	"manufacturer": "Corellian Engineering Corporation",
	"cost_in_credits": "100000",
	"max_atmosphering_speed": "1050",
	"crew": "4",
	"passengers": "6",
	"cargo_capacity": "100000",
	"pilots": ["https://swapi.py4e.com/api/people/13/"],
	"url": "https://swapi.py4e.com/api/starships/10/"
}`

func TestStarshipProjections(t *testing.T) {
	t.Parallel()

	var ship SWAPIStarship
	if err := json.Unmarshal([]byte(falconJSON), &ship); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	wantSummary := StarshipSummary{
		Name:                 StringValue("Millennium Falcon"),
		Model:                StringValue("YT-1300 light freighter"),
		CostInCredits:        StringValue("100000"),
		MaxAtmospheringSpeed: StringValue("1050"),
	}
	if diff := cmp.Diff(wantSummary, NewStarshipSummary(&ship)); diff != "" {
		t.Errorf("NewStarshipSummary mismatch (-want +got):\n%s", diff)
	}

	wantDetail := StarshipDetail{
		Name:                 StringValue("Millennium Falcon"),
		Model:                StringValue("YT-1300 light freighter"),
		CostInCredits:        StringValue("100000"),
		MaxAtmospheringSpeed: StringValue("1050"),
		CrewCapacity:         StringValue("4"),
		PassengerCapacity:    StringValue("6"),
		CargoCapacity:        StringValue("100000"),
	}
	if diff := cmp.Diff(wantDetail, NewStarshipDetail(&ship)); diff != "" {
		t.Errorf("NewStarshipDetail mismatch (-want +got):\n%s", diff)
	}
}

func TestMissingCatalogKeysEncodeAsNull(t *testing.T) {
	t.Parallel()

	var ship SWAPIStarship
	if err := json.Unmarshal([]byte(`{"name": "Slave 1"}`), &ship); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	got, err := json.Marshal(NewStarshipSummary(&ship))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"name":"Slave 1","model":null,"cost_in_credits":null,"max_atmosphering_speed":null}`
	if string(got) != want {
		t.Errorf("summary JSON = %s, want %s", got, want)
	}
}

func TestNewPilotMapsMassToWeight(t *testing.T) {
	t.Parallel()

	var person SWAPIPerson
	body := `{"name":"Han Solo","height":"180","mass":"80","gender":"male","birth_year":"29BBY",
		"homeworld":"https://swapi.py4e.com/api/planets/22/","species":[],"starships":["https://swapi.py4e.com/api/starships/10/"]}`
	if err := json.Unmarshal([]byte(body), &person); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	pilot := NewPilot(&person)
	want := Pilot{
		Name:      StringValue("Han Solo"),
		Height:    StringValue("180"),
		Gender:    StringValue("male"),
		Weight:    StringValue("80"),
		BirthYear: StringValue("29BBY"),
	}
	if diff := cmp.Diff(want, pilot); diff != "" {
		t.Errorf("NewPilot mismatch (-want +got):\n%s", diff)
	}
	if !person.HasStarships() {
		t.Error("HasStarships() = false, want true")
	}
	if person.PersonName() != "Han Solo" {
		t.Errorf("PersonName() = %q", person.PersonName())
	}
}

func TestPersonNameTolerantOfMissingName(t *testing.T) {
	t.Parallel()

	var p SWAPIPerson
	if p.PersonName() != "" {
		t.Errorf("PersonName() = %q, want empty", p.PersonName())
	}
	if p.HasStarships() {
		t.Error("HasStarships() = true for zero person")
	}
}

func TestStarshipRecordCloneIsDeep(t *testing.T) {
	t.Parallel()

	orig := StarshipRecord{Name: "Millennium Falcon", Pilots: []string{"Han Solo", "Chewbacca"}}
	clone := orig.Clone()
	clone.Pilots[0] = "Lando Calrissian"

	if orig.Pilots[0] != "Han Solo" {
		t.Errorf("Clone shares Pilots: original mutated to %q", orig.Pilots[0])
	}
	if (StarshipRecord{}).Clone().Pilots != nil {
		t.Error("Clone of nil Pilots should stay nil")
	}
}

func TestPilotJSONFieldOrder(t *testing.T) {
	t.Parallel()

	p := Pilot{
		Name:      StringValue("Luke Skywalker"),
		Starships: []PilotStarship{{Name: StringValue("X-wing"), Model: StringValue("T-65 X-wing")}},
	}
	got, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"name":"Luke Skywalker","height":null,"gender":null,"weight":null,"birth_year":null,` +
		`"species_name":null,"homeworld":null,"starships":[{"name":"X-wing","model":"T-65 X-wing"}]}`
	if string(got) != want {
		t.Errorf("pilot JSON = %s\nwant %s", got, want)
	}
}
