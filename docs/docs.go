// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

// Package docs registers the OpenAPI document served under /swagger. It is
// kept in step with the swag annotations on the handlers in internal/api.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "GitHub Repository",
            "url": "https://github.com/tomtom215/holonet/issues"
        },
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "description": "Reports that the process is serving. The catalog is not contacted.",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.HealthResponse"}}
                }
            }
        },
        "/pilots": {
            "get": {
                "description": "Walks every catalog people page and returns the people who fly at least one starship, fully enriched.",
                "produces": ["application/json"],
                "tags": ["Pilots"],
                "summary": "List pilots",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PilotList"}},
                    "500": {"description": "Error fetching pilots from SWAPI", "schema": {"$ref": "#/definitions/models.ErrorDetail"}}
                }
            }
        },
        "/pilots/details/{name}": {
            "get": {
                "description": "Searches the catalog by name, requires an exact case-insensitive match that flies at least one starship, and returns it enriched.",
                "produces": ["application/json"],
                "tags": ["Pilots"],
                "summary": "Get pilot details",
                "parameters": [
                    {"type": "string", "description": "Pilot name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Pilot"}},
                    "404": {"description": "Pilot not found or has no starships.", "schema": {"$ref": "#/definitions/models.ErrorDetail"}},
                    "500": {"description": "Failed to connect to SWAPI.", "schema": {"$ref": "#/definitions/models.ErrorDetail"}}
                }
            }
        },
        "/starships": {
            "get": {
                "description": "Returns the first catalog page of starships projected to the list view.",
                "produces": ["application/json"],
                "tags": ["Starships"],
                "summary": "List starships",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StarshipPage"}},
                    "500": {"description": "Error fetching starships from SWAPI", "schema": {"$ref": "#/definitions/models.ErrorDetail"}}
                }
            }
        },
        "/starships/details/{name}": {
            "get": {
                "description": "Searches the catalog by name and returns the first match in the detail view.",
                "produces": ["application/json"],
                "tags": ["Starships"],
                "summary": "Get starship details",
                "parameters": [
                    {"type": "string", "description": "Starship name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StarshipDetail"}},
                    "404": {"description": "Starship not found", "schema": {"$ref": "#/definitions/models.ErrorDetail"}},
                    "500": {"description": "Error fetching starships from SWAPI", "schema": {"$ref": "#/definitions/models.ErrorDetail"}}
                }
            }
        },
        "/starships/records": {
            "get": {
                "description": "Returns every locally held starship record sorted by name.",
                "produces": ["application/json"],
                "tags": ["Records"],
                "summary": "List local starship records",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StarshipRecordList"}}
                }
            }
        },
        "/starships/records/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Records"],
                "summary": "Get a local starship record",
                "parameters": [
                    {"type": "string", "description": "Starship name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StarshipRecord"}},
                    "404": {"description": "Starship not found", "schema": {"$ref": "#/definitions/models.ErrorDetail"}}
                }
            }
        },
        "/starships/update": {
            "put": {
                "description": "Fully replaces the locally held record whose name matches the body. Unknown names are rejected.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Starships"],
                "summary": "Replace a starship record",
                "parameters": [
                    {"description": "Complete starship record", "name": "record", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.StarshipUpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StarshipUpdateResponse"}},
                    "404": {"description": "Starship not found", "schema": {"$ref": "#/definitions/models.ErrorDetail"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/models.ValidationErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.StarshipUpdateRequest": {
            "type": "object",
            "required": ["cost_in_credits", "crew_capacity", "max_atmosphering_speed", "model", "name", "passenger_capacity", "pilots"],
            "properties": {
                "cost_in_credits": {"type": "integer"},
                "crew_capacity": {"type": "integer"},
                "max_atmosphering_speed": {"type": "integer"},
                "model": {"type": "string"},
                "name": {"type": "string"},
                "passenger_capacity": {"type": "integer"},
                "pilots": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.ErrorDetail": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"}
            }
        },
        "models.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "uptime": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "models.Pilot": {
            "type": "object",
            "properties": {
                "birth_year": {"type": "string"},
                "gender": {"type": "string"},
                "height": {"type": "string"},
                "homeworld": {"type": "string"},
                "name": {"type": "string"},
                "species_name": {"type": "string"},
                "starships": {"type": "array", "items": {"$ref": "#/definitions/models.PilotStarship"}},
                "weight": {"type": "string"}
            }
        },
        "models.PilotList": {
            "type": "object",
            "properties": {
                "pilots": {"type": "array", "items": {"$ref": "#/definitions/models.Pilot"}}
            }
        },
        "models.PilotStarship": {
            "type": "object",
            "properties": {
                "model": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "models.StarshipDetail": {
            "type": "object",
            "properties": {
                "cargo_capacity": {"type": "string"},
                "cost_in_credits": {"type": "string"},
                "crew_capacity": {"type": "string"},
                "max_atmosphering_speed": {"type": "string"},
                "model": {"type": "string"},
                "name": {"type": "string"},
                "passenger_capacity": {"type": "string"}
            }
        },
        "models.StarshipPage": {
            "type": "object",
            "properties": {
                "next": {"type": "string"},
                "starships": {"type": "array", "items": {"$ref": "#/definitions/models.StarshipSummary"}}
            }
        },
        "models.StarshipRecord": {
            "type": "object",
            "properties": {
                "cost_in_credits": {"type": "integer"},
                "crew_capacity": {"type": "integer"},
                "max_atmosphering_speed": {"type": "integer"},
                "model": {"type": "string"},
                "name": {"type": "string"},
                "passenger_capacity": {"type": "integer"},
                "pilots": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.StarshipRecordList": {
            "type": "object",
            "properties": {
                "records": {"type": "array", "items": {"$ref": "#/definitions/models.StarshipRecord"}}
            }
        },
        "models.StarshipSummary": {
            "type": "object",
            "properties": {
                "cost_in_credits": {"type": "string"},
                "max_atmosphering_speed": {"type": "string"},
                "model": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "models.StarshipUpdateResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/models.StarshipRecord"},
                "message": {"type": "string"}
            }
        },
        "models.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "array", "items": {"$ref": "#/definitions/models.ValidationIssue"}}
            }
        },
        "models.ValidationIssue": {
            "type": "object",
            "properties": {
                "loc": {"type": "array", "items": {"type": "string"}},
                "msg": {"type": "string"},
                "type": {"type": "string"}
            }
        }
    },
    "tags": [
        {"description": "Catalog starships and the local record update", "name": "Starships"},
        {"description": "Enriched pilots walked from the catalog people collection", "name": "Pilots"},
        {"description": "Locally held starship records", "name": "Records"},
        {"description": "Liveness", "name": "Health"}
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "HoloNet API",
	Description:      "Aggregation gateway over the SWAPI Star Wars catalog.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
