// Package docs registers the Atlas API description with swag.
// Regenerate with: swag init -g cmd/api/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/healthz": {
            "get": {"tags": ["health"], "summary": "Health check", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/countries": {
            "get": {"tags": ["countries"], "summary": "List all countries", "responses": {"200": {"description": "OK"}, "502": {"description": "Upstream failure"}}}
        },
        "/api/v1/countries/name/{name}": {
            "get": {
                "tags": ["countries"], "summary": "Search countries by name",
                "parameters": [{"type": "string", "name": "name", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/countries/region/{region}": {
            "get": {
                "tags": ["countries"], "summary": "List countries in a region",
                "parameters": [{"type": "string", "name": "region", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Unknown region"}}
            }
        },
        "/api/v1/countries/code/{code}": {
            "get": {
                "tags": ["countries"], "summary": "Country detail with borders",
                "parameters": [{"type": "string", "name": "code", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Malformed code"}, "404": {"description": "Not found"}}
            }
        },
        "/api/v1/browse": {
            "post": {"tags": ["browse"], "summary": "Open a browse view", "responses": {"201": {"description": "Created"}}}
        },
        "/api/v1/browse/{id}": {
            "get": {
                "tags": ["browse"], "summary": "Browse view snapshot",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "tags": ["browse"], "summary": "Close a browse view",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        },
        "/api/v1/browse/{id}/search": {
            "put": {
                "tags": ["browse"], "summary": "Set the search term",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/browse/{id}/region": {
            "put": {
                "tags": ["browse"], "summary": "Set the region filter",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/auth/login": {
            "post": {"tags": ["auth"], "summary": "Log in", "responses": {"200": {"description": "OK"}, "401": {"description": "Invalid credentials"}}}
        },
        "/api/v1/auth/register": {
            "post": {"tags": ["auth"], "summary": "Register", "responses": {"200": {"description": "OK"}, "400": {"description": "Registration failed"}}}
        },
        "/api/v1/auth/logout": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Log out", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/auth/me": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Current user", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/favorites": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["favorites"], "summary": "List favorites", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["favorites"], "summary": "Add a favorite", "responses": {"201": {"description": "Created"}, "409": {"description": "Already a favorite"}}}
        },
        "/api/v1/favorites/{code}": {
            "get": {
                "security": [{"BearerAuth": []}], "tags": ["favorites"], "summary": "Check a favorite",
                "parameters": [{"type": "string", "name": "code", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}], "tags": ["favorites"], "summary": "Remove a favorite",
                "parameters": [{"type": "string", "name": "code", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Atlas API",
	Description:      "Country directory with search, region filters, detail pages and per-user favorites.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
