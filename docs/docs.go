// Package docs holds the swagger specification served at /swagger.
// Code generated by swag init; edits should go through the handler
// annotations and be regenerated.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/info": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Hub information",
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create user",
                "parameters": [{"name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CreateUserRequest"}}],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/users/{username}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get user",
                "parameters": [{"type": "string", "name": "username", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Modify user",
                "parameters": [
                    {"type": "string", "name": "username", "in": "path", "required": true},
                    {"name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ModifyUserRequest"}}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["users"],
                "summary": "Delete user",
                "parameters": [{"type": "string", "name": "username", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/users/{username}/activity": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Report user activity",
                "parameters": [{"type": "string", "name": "username", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/users/{username}/servers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["servers"],
                "summary": "List user servers",
                "parameters": [{"type": "string", "name": "username", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/users/{username}/servers/{server}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["servers"],
                "summary": "Get server",
                "parameters": [
                    {"type": "string", "name": "username", "in": "path", "required": true},
                    {"type": "string", "name": "server", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["servers"],
                "summary": "Start server",
                "parameters": [
                    {"type": "string", "name": "username", "in": "path", "required": true},
                    {"type": "string", "name": "server", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["servers"],
                "summary": "Stop server",
                "parameters": [
                    {"type": "string", "name": "username", "in": "path", "required": true},
                    {"type": "string", "name": "server", "in": "path", "required": true}
                ],
                "responses": {"202": {"description": "Accepted"}}
            }
        },
        "/groups": {
            "get": {
                "produces": ["application/json"],
                "tags": ["groups"],
                "summary": "List groups",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["groups"],
                "summary": "Create group",
                "parameters": [{"name": "group", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CreateGroupRequest"}}],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/groups/{group}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["groups"],
                "summary": "Get group",
                "parameters": [{"type": "string", "name": "group", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["groups"],
                "summary": "Delete group",
                "parameters": [{"type": "string", "name": "group", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/groups/{group}/users": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["groups"],
                "summary": "Add group members",
                "parameters": [
                    {"type": "string", "name": "group", "in": "path", "required": true},
                    {"name": "users", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.GroupUsersRequest"}}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/groups/{group}/users/{username}": {
            "delete": {
                "tags": ["groups"],
                "summary": "Remove group member",
                "parameters": [
                    {"type": "string", "name": "group", "in": "path", "required": true},
                    {"type": "string", "name": "username", "in": "path", "required": true}
                ],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/services": {
            "get": {
                "produces": ["application/json"],
                "tags": ["services"],
                "summary": "List services",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/services/{service}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["services"],
                "summary": "Get service",
                "parameters": [{"type": "string", "name": "service", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/tokens": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tokens"],
                "summary": "List tokens",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/tokens/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tokens"],
                "summary": "Get token",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/users/{username}/tokens": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tokens"],
                "summary": "Create token",
                "parameters": [
                    {"type": "string", "name": "username", "in": "path", "required": true},
                    {"name": "token", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CreateTokenRequest"}}
                ],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/users/{username}/tokens/{id}": {
            "delete": {
                "tags": ["tokens"],
                "summary": "Delete token",
                "parameters": [
                    {"type": "string", "name": "username", "in": "path", "required": true},
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/admin/shutdown": {
            "post": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Shutdown hub",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/proxy": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Proxy routing table",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/proxy/check": {
            "post": {
                "tags": ["admin"],
                "summary": "Force proxy check",
                "responses": {"202": {"description": "Accepted"}}
            }
        },
        "/admin/cull": {
            "post": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Cull idle servers",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/metrics": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Service metrics",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/servers/start-all": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Start servers for many users",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.BulkServersRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.BulkServersResult"}}}
            }
        },
        "/admin/servers/stop-all": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Stop servers for many users",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.BulkServersRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.BulkServersResult"}}}
            }
        }
    },
    "definitions": {
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"}
            }
        },
        "models.CreateUserRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"},
                "admin": {"type": "boolean"}
            }
        },
        "models.ModifyUserRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "admin": {"type": "boolean"}
            }
        },
        "models.CreateGroupRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"},
                "users": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.GroupUsersRequest": {
            "type": "object",
            "required": ["users"],
            "properties": {
                "users": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.CreateTokenRequest": {
            "type": "object",
            "properties": {
                "note": {"type": "string"},
                "expires_in": {"type": "integer"},
                "roles": {"type": "array", "items": {"type": "string"}},
                "scopes": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.BulkServersRequest": {
            "type": "object",
            "properties": {
                "users": {"type": "array", "items": {"type": "string"}},
                "options": {"type": "object", "additionalProperties": true}
            }
        },
        "models.BulkServersResult": {
            "type": "object",
            "properties": {
                "succeeded": {"type": "array", "items": {"type": "string"}},
                "failed": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "JupyterHub Manager API",
	Description:      "Management passthrough API for a JupyterHub instance",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
