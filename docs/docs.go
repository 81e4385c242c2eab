// Package docs registers the swagger document served under /swagger.
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
        "/health": {
            "get": {
                "description": "get the status of server.",
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "Show the status of server.",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/response.ResponseOKWithDataModel"}
                    }
                }
            }
        },
        "/register": {
            "post": {
                "description": "Create an account. Does not log the new user in.",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["text/html"],
                "tags": ["User"],
                "summary": "Register",
                "parameters": [
                    {"type": "string", "description": "email", "name": "email", "in": "formData", "required": true},
                    {"type": "string", "description": "password", "name": "password", "in": "formData", "required": true},
                    {"type": "string", "description": "password again", "name": "confirm_password", "in": "formData", "required": true}
                ],
                "responses": {
                    "302": {"description": "Found"},
                    "400": {"description": "Bad Request"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/login": {
            "post": {
                "description": "Bind the session to the user on valid credentials.",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["text/html"],
                "tags": ["User"],
                "summary": "Login",
                "parameters": [
                    {"type": "string", "description": "email", "name": "email", "in": "formData", "required": true},
                    {"type": "string", "description": "password", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {
                    "302": {"description": "Found"},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/movie/{id}": {
            "get": {
                "description": "Show an owned movie.",
                "produces": ["text/html"],
                "tags": ["Movie"],
                "summary": "Movie Details",
                "parameters": [
                    {"type": "string", "description": "movie id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/movie/{id}/rate": {
            "get": {
                "tags": ["Movie"],
                "summary": "Rate Movie",
                "parameters": [
                    {"type": "string", "description": "movie id", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "1 to 5", "name": "rating", "in": "query", "required": true}
                ],
                "responses": {
                    "302": {"description": "Found"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/search": {
            "get": {
                "description": "Search the movie catalog. A blank query renders the empty form.",
                "produces": ["text/html"],
                "tags": ["Catalog"],
                "summary": "Search Catalog",
                "parameters": [
                    {"type": "string", "description": "search text", "name": "q", "in": "query"},
                    {"type": "integer", "description": "page, starts at 1", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/add_from_tmdb/{id}": {
            "post": {
                "description": "Copy a catalog movie into the watchlist of the signed in user.",
                "tags": ["Catalog"],
                "summary": "Import Catalog Movie",
                "parameters": [
                    {"type": "integer", "description": "catalog movie id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "302": {"description": "Found"}
                }
            }
        }
    },
    "definitions": {
        "response.ResponseOKWithDataModel": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "data": {},
                "errorMessage": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Movie Watchlist",
	Description:      "Server rendered movie watchlist backed by the TMDB catalog.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
