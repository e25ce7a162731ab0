// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with `swag init -g cmd/api/main.go` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/journeys": {
            "get": {
                "produces": ["application/json"],
                "tags": ["journeys"],
                "summary": "Direct routes, or routes with one change when none exist",
                "parameters": [
                    {"type": "number", "name": "from_lat", "in": "query", "required": true},
                    {"type": "number", "name": "from_lon", "in": "query", "required": true},
                    {"type": "number", "name": "to_lat", "in": "query", "required": true},
                    {"type": "number", "name": "to_lon", "in": "query", "required": true},
                    {"type": "number", "name": "radius", "in": "query"},
                    {"type": "string", "name": "operator", "in": "query"},
                    {"type": "string", "name": "format", "in": "query", "description": "json, geojson, csv or yaml"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/journeys/direct": {
            "get": {
                "produces": ["application/json"],
                "tags": ["journeys"],
                "summary": "Routes serving both points without a change",
                "parameters": [
                    {"type": "number", "name": "from_lat", "in": "query", "required": true},
                    {"type": "number", "name": "from_lon", "in": "query", "required": true},
                    {"type": "number", "name": "to_lat", "in": "query", "required": true},
                    {"type": "number", "name": "to_lon", "in": "query", "required": true},
                    {"type": "number", "name": "radius", "in": "query"},
                    {"type": "string", "name": "unique", "in": "query", "description": "pair or name"},
                    {"type": "string", "name": "operator", "in": "query"},
                    {"type": "string", "name": "format", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/journeys/transfer": {
            "get": {
                "produces": ["application/json"],
                "tags": ["journeys"],
                "summary": "Route pairs connected by one interchange",
                "parameters": [
                    {"type": "number", "name": "from_lat", "in": "query", "required": true},
                    {"type": "number", "name": "from_lon", "in": "query", "required": true},
                    {"type": "number", "name": "to_lat", "in": "query", "required": true},
                    {"type": "number", "name": "to_lon", "in": "query", "required": true},
                    {"type": "number", "name": "radius", "in": "query"},
                    {"type": "string", "name": "operator", "in": "query"},
                    {"type": "string", "name": "format", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/routes/geometry": {
            "get": {
                "produces": ["application/geo+json"],
                "tags": ["routes"],
                "summary": "Route line geometry as GeoJSON",
                "parameters": [{"type": "string", "name": "route", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/stations/details": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stations"],
                "summary": "Knowledge-graph metadata for stations matching a name",
                "parameters": [{"type": "string", "name": "name", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/amenities": {
            "get": {
                "produces": ["application/json"],
                "tags": ["amenities"],
                "summary": "Amenities around a point",
                "parameters": [
                    {"type": "number", "name": "lat", "in": "query", "required": true},
                    {"type": "number", "name": "lon", "in": "query", "required": true},
                    {"type": "string", "name": "kinds", "in": "query"},
                    {"type": "number", "name": "radius", "in": "query"},
                    {"type": "string", "name": "format", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/sessions": {
            "post": {"tags": ["sessions"], "summary": "Start a planning session", "responses": {"201": {"description": "Created"}}}
        },
        "/sessions/{id}": {
            "get": {"tags": ["sessions"], "summary": "Current session state", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["sessions"], "summary": "End a session", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/sessions/{id}/points": {
            "post": {"tags": ["sessions"], "summary": "Select a point", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Two points already selected"}}},
            "delete": {"tags": ["sessions"], "summary": "Clear selected points", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/sessions/{id}/filters": {
            "put": {"tags": ["sessions"], "summary": "Replace the session filters", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/sessions/{id}/search": {
            "post": {"tags": ["sessions"], "summary": "Plan a journey between the two selected points", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Fewer than two points selected"}}}
        },
        "/sessions/{id}/journey": {
            "get": {"tags": ["sessions"], "summary": "Last search result of the session", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"type": "string", "description": "json, geojson, csv or yaml", "name": "format", "in": "query"}], "responses": {"200": {"description": "OK"}, "409": {"description": "No completed search"}}}
        },
        "/sessions/{id}/amenities": {
            "get": {"tags": ["sessions"], "summary": "Amenities around the selected points using the session filters", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"type": "string", "description": "json, geojson, csv or yaml", "name": "format", "in": "query"}], "responses": {"200": {"description": "OK"}, "409": {"description": "No point selected"}}}
        },
        "/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["history"],
                "summary": "Recently planned journeys",
                "parameters": [{"type": "integer", "name": "limit", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Railway journey planner API",
	Description:      "Finds direct and single-change rail connections between two points using OpenStreetMap and Wikidata.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
