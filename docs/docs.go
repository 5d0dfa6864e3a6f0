// Package docs holds the OpenAPI description served under /swagger.
// Regenerate it with `swag init -g cmd/api/main.go` after changing handler annotations.
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
        "/analytics": {
            "get": {
                "summary": "Injury analytics",
                "description": "The applied filter is echoed back so a shared link reproduces the view",
                "tags": [
                    "analytics"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Reported on or after (YYYY-MM-DD)",
                        "name": "start",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Reported on or before (YYYY-MM-DD)",
                        "name": "end",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Student sport",
                        "name": "sport",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "mild, moderate, severe or critical",
                        "name": "severity",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Zero-fill missing months in the trend",
                        "name": "dense",
                        "in": "query",
                        "required": false,
                        "type": "boolean"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/reporting.Report"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/analytics/export": {
            "get": {
                "summary": "Export injuries as CSV",
                "tags": [
                    "analytics"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "text/csv"
                ],
                "parameters": [
                    {
                        "description": "Reported on or after (YYYY-MM-DD)",
                        "name": "start",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Reported on or before (YYYY-MM-DD)",
                        "name": "end",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Student sport",
                        "name": "sport",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "mild, moderate, severe or critical",
                        "name": "severity",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "File name prefix, defaults to injuries",
                        "name": "context",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    }
                }
            }
        },
        "/appointments": {
            "get": {
                "summary": "List appointments",
                "tags": [
                    "appointments"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.Appointment"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "post": {
                "summary": "Schedule an appointment",
                "tags": [
                    "appointments"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Appointment",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateAppointmentRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Appointment"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/appointments/{id}/status": {
            "patch": {
                "summary": "Change appointment status",
                "tags": [
                    "appointments"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Appointment ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "New status",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateAppointmentStatusRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Appointment"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/assignments": {
            "get": {
                "summary": "List assignments",
                "tags": [
                    "assignments"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.Assignment"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "post": {
                "summary": "Assign a practitioner",
                "description": "Creates an active assignment and moves a reported injury to assigned",
                "tags": [
                    "assignments"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Assignment",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateAssignmentRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Assignment"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                }
            }
        },
        "/assignments/suggestion": {
            "get": {
                "summary": "Suggest an assignment",
                "tags": [
                    "assignments"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Comma separated: specialization, workload",
                        "name": "criteria",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/assignment.Suggestion"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Unknown criterion",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                }
            }
        },
        "/assignments/{id}/deactivate": {
            "post": {
                "summary": "Deactivate an assignment",
                "tags": [
                    "assignments"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Assignment ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Assignment"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/auth/me": {
            "get": {
                "summary": "Current user",
                "tags": [
                    "auth"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.UserSummary"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "summary": "Refresh tokens",
                "tags": [
                    "auth"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Refresh token",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.RefreshTokenRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.AuthResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "401": {
                        "description": "Invalid or expired refresh token",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                }
            }
        },
        "/auth/sign-in": {
            "post": {
                "summary": "User login",
                "description": "Authenticates a user and returns an access and refresh token",
                "tags": [
                    "auth"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Login credentials",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SignInRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.AuthResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "401": {
                        "description": "Invalid credentials",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                }
            }
        },
        "/auth/sign-up": {
            "post": {
                "summary": "Register a new user",
                "description": "Creates a student or practitioner account and returns a token pair. Admin accounts cannot sign up.",
                "tags": [
                    "auth"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "User registration information",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SignUpRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.AuthResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Invalid request format or invalid role type",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "409": {
                        "description": "Email already exists",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "503": {
                        "description": "Fixture backend cannot register users",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                }
            }
        },
        "/dashboard": {
            "get": {
                "summary": "Role-conditioned dashboard",
                "tags": [
                    "dashboard"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.Dashboard"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "system"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "503": {
                        "description": "Database unreachable",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                }
            }
        },
        "/injuries": {
            "get": {
                "summary": "List injuries",
                "description": "Passing page or size returns a paginated response instead of a plain list.",
                "tags": [
                    "injuries"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Reported on or after (YYYY-MM-DD)",
                        "name": "start",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Reported on or before (YYYY-MM-DD)",
                        "name": "end",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Student sport",
                        "name": "sport",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "mild, moderate, severe or critical",
                        "name": "severity",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Page number",
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "type": "integer"
                    },
                    {
                        "description": "Page size",
                        "name": "size",
                        "in": "query",
                        "required": false,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.Injury"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "post": {
                "summary": "Report an injury",
                "tags": [
                    "injuries"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Injury report",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateInjuryRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Injury"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "403": {
                        "description": "Only students report injuries",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                }
            }
        },
        "/injuries/{id}": {
            "get": {
                "summary": "Injury detail",
                "tags": [
                    "injuries"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Injury ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.InjuryDetail"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                }
            },
            "patch": {
                "summary": "Update injury progress",
                "tags": [
                    "injuries"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Injury ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Fields to change",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateInjuryRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Injury"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "503": {
                        "description": "Fixture backend is read-only",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                }
            }
        },
        "/injuries/{id}/attachments": {
            "post": {
                "summary": "Attach a file",
                "tags": [
                    "injuries"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Injury ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Scan, report or photo",
                        "name": "file",
                        "in": "formData",
                        "required": true,
                        "type": "file"
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.File"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                }
            }
        },
        "/injuries/{id}/recovery-logs": {
            "get": {
                "summary": "Recovery logs",
                "tags": [
                    "injuries"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Injury ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.RecoveryLog"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "post": {
                "summary": "Log recovery progress",
                "tags": [
                    "injuries"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Injury ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Pain and mobility on a 0-10 scale",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateRecoveryLogRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.RecoveryLog"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/messages": {
            "get": {
                "summary": "Conversation with a user",
                "tags": [
                    "messages"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Other participant's user ID",
                        "name": "with",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.Message"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "post": {
                "summary": "Send a message",
                "tags": [
                    "messages"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Message",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SendMessageRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Message"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/messages/{id}/read": {
            "post": {
                "summary": "Mark a message read",
                "tags": [
                    "messages"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Message ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Message"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/rtp-checklists": {
            "get": {
                "summary": "List return-to-play checklists",
                "tags": [
                    "rtp"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.RTPChecklist"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "post": {
                "summary": "Open a return-to-play checklist",
                "tags": [
                    "rtp"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Checklist",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateChecklistRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.RTPChecklist"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/rtp-checklists/{id}/clear": {
            "post": {
                "summary": "Clear a checklist",
                "tags": [
                    "rtp"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Checklist ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.ChecklistClearance"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "409": {
                        "description": "Already cleared",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                }
            }
        },
        "/treatment-plans": {
            "get": {
                "summary": "List treatment plans",
                "tags": [
                    "treatment"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.TreatmentPlan"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "post": {
                "summary": "Create a treatment plan",
                "tags": [
                    "treatment"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Plan",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreatePlanRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.TreatmentPlan"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/treatment-plans/{id}": {
            "get": {
                "summary": "Treatment plan detail",
                "tags": [
                    "treatment"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Plan ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.PlanDetail"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/treatment-plans/{id}/draft": {
            "get": {
                "summary": "Plan draft",
                "tags": [
                    "treatment"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Plan ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.PlanDraftResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "put": {
                "summary": "Edit plan draft",
                "tags": [
                    "treatment"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Plan ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Draft content",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.PlanDraftRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.PlanDraftResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/treatment-plans/{id}/draft/commit": {
            "post": {
                "summary": "Commit plan draft",
                "tags": [
                    "treatment"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Plan ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.TreatmentPlan"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "No draft in progress",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                }
            }
        },
        "/treatment-plans/{id}/draft/redo": {
            "post": {
                "summary": "Redo plan draft edit",
                "tags": [
                    "treatment"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Plan ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.PlanDraftResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "409": {
                        "description": "Nothing to redo",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                }
            }
        },
        "/treatment-plans/{id}/draft/undo": {
            "post": {
                "summary": "Undo plan draft edit",
                "tags": [
                    "treatment"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Plan ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.PlanDraftResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "409": {
                        "description": "Nothing to undo",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                }
            }
        },
        "/treatment-templates": {
            "get": {
                "summary": "List treatment templates",
                "tags": [
                    "treatment"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.TreatmentTemplate"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "post": {
                "summary": "Create a treatment template",
                "tags": [
                    "treatment"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Template",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateTemplateRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.TreatmentTemplate"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/users/practitioners": {
            "get": {
                "summary": "List practitioners",
                "tags": [
                    "users"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/dto.UserSummary"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/users/students": {
            "get": {
                "summary": "List students",
                "description": "Admins see every student, practitioners only their active caseload",
                "tags": [
                    "users"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/dto.UserSummary"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                }
            }
        },
        "/ws": {
            "get": {
                "summary": "Open the realtime event stream",
                "description": "Upgrades to a websocket that receives message.created and appointment.upcoming events for the caller",
                "tags": [
                    "realtime"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Access token, for clients that cannot set headers",
                        "name": "token",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "101": {
                        "description": "Switching Protocols",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "assignment.Criteria": {
            "type": "object",
            "properties": {
                "activeLoad": {
                    "type": "boolean"
                },
                "specialization": {
                    "type": "boolean"
                }
            }
        },
        "assignment.Score": {
            "type": "object",
            "properties": {
                "activeAssignments": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "practitionerId": {
                    "type": "string"
                },
                "specializationScore": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "assignment.Suggestion": {
            "type": "object",
            "properties": {
                "criteria": {
                    "$ref": "#/definitions/assignment.Criteria"
                },
                "injuryId": {
                    "type": "string"
                },
                "practitionerId": {
                    "type": "string"
                },
                "scores": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/assignment.Score"
                    }
                },
                "studentId": {
                    "type": "string"
                }
            }
        },
        "dto.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {
                    "$ref": "#/definitions/dto.ErrorDetail"
                },
                "success": {
                    "type": "boolean",
                    "example": true
                },
                "timestamp": {
                    "type": "string",
                    "example": "2025-04-23T12:01:05.123Z"
                }
            }
        },
        "dto.AdminDashboard": {
            "type": "object",
            "properties": {
                "openInjuries": {
                    "type": "integer"
                },
                "recoveryRate": {
                    "type": "integer"
                },
                "recurrenceRate": {
                    "type": "integer"
                },
                "suggestion": {
                    "$ref": "#/definitions/assignment.Suggestion"
                },
                "totalInjuries": {
                    "type": "integer"
                },
                "unassignedInjuries": {
                    "type": "integer"
                },
                "workload": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/reporting.WorkloadEntry"
                    }
                }
            }
        },
        "dto.AuthResponse": {
            "type": "object",
            "properties": {
                "token": {
                    "$ref": "#/definitions/dto.TokenResponse"
                },
                "user": {
                    "$ref": "#/definitions/dto.UserSummary"
                }
            }
        },
        "dto.CaseloadEntry": {
            "type": "object",
            "properties": {
                "assignment": {
                    "$ref": "#/definitions/models.Assignment"
                },
                "injury": {
                    "$ref": "#/definitions/models.Injury"
                },
                "student": {
                    "$ref": "#/definitions/dto.UserSummary"
                }
            }
        },
        "dto.ChecklistClearance": {
            "type": "object",
            "properties": {
                "checklist": {
                    "$ref": "#/definitions/models.RTPChecklist"
                },
                "daysToClear": {
                    "type": "integer"
                },
                "injury": {
                    "$ref": "#/definitions/models.Injury"
                }
            }
        },
        "dto.CreateAppointmentRequest": {
            "type": "object",
            "properties": {
                "durationMinutes": {
                    "type": "integer",
                    "example": 45
                },
                "injuryId": {
                    "type": "string"
                },
                "location": {
                    "type": "string",
                    "example": "Physio room 2"
                },
                "notes": {
                    "type": "string"
                },
                "practitionerId": {
                    "type": "string"
                },
                "scheduledAt": {
                    "type": "string",
                    "example": "2024-05-01T14:30:00Z"
                },
                "studentId": {
                    "type": "string"
                }
            }
        },
        "dto.CreateAssignmentRequest": {
            "type": "object",
            "properties": {
                "injuryId": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "practitionerId": {
                    "type": "string"
                }
            }
        },
        "dto.CreateChecklistRequest": {
            "type": "object",
            "properties": {
                "injuryId": {
                    "type": "string"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "dto.CreateInjuryRequest": {
            "type": "object",
            "properties": {
                "bodyPart": {
                    "type": "string",
                    "example": "Left thigh"
                },
                "dateOccurred": {
                    "type": "string",
                    "example": "2024-03-01T15:04:05Z"
                },
                "description": {
                    "type": "string"
                },
                "injuryType": {
                    "type": "string",
                    "example": "Hamstring strain"
                },
                "severity": {
                    "type": "string",
                    "enum": [
                        "mild",
                        "moderate",
                        "severe",
                        "critical"
                    ],
                    "example": "moderate"
                }
            }
        },
        "dto.CreatePlanRequest": {
            "type": "object",
            "properties": {
                "injuryId": {
                    "type": "string"
                },
                "steps": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "templateId": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                }
            }
        },
        "dto.CreateRecoveryLogRequest": {
            "type": "object",
            "properties": {
                "mobility": {
                    "type": "integer",
                    "example": 6
                },
                "notes": {
                    "type": "string"
                },
                "painLevel": {
                    "type": "integer",
                    "example": 4
                }
            }
        },
        "dto.CreateTemplateRequest": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "injuryType": {
                    "type": "string",
                    "example": "Hamstring strain"
                },
                "name": {
                    "type": "string",
                    "example": "Hamstring rehab"
                },
                "steps": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "dto.Dashboard": {
            "type": "object",
            "properties": {
                "admin": {
                    "$ref": "#/definitions/dto.AdminDashboard"
                },
                "practitioner": {
                    "$ref": "#/definitions/dto.PractitionerDashboard"
                },
                "role": {
                    "type": "string",
                    "enum": [
                        "student",
                        "practitioner",
                        "admin"
                    ]
                },
                "student": {
                    "$ref": "#/definitions/dto.StudentDashboard"
                }
            }
        },
        "dto.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string",
                    "enum": [
                        "AUTH_001",
                        "AUTH_002",
                        "AUTH_003",
                        "AUTH_005",
                        "AUTH_006",
                        "AUTH_007",
                        "AUTH_008",
                        "AUTH_009",
                        "RES_001",
                        "RES_002",
                        "RES_003",
                        "RES_004",
                        "VAL_001",
                        "VAL_002",
                        "SRV_001",
                        "SRV_002",
                        "SRV_003",
                        "SRV_004"
                    ],
                    "example": "VAL_001"
                },
                "details": {},
                "field": {
                    "type": "string",
                    "example": "severity"
                },
                "message": {
                    "type": "string",
                    "example": "Validation failed"
                },
                "severity": {
                    "type": "string",
                    "enum": [
                        "INFO",
                        "WARNING",
                        "ERROR",
                        "CRITICAL"
                    ],
                    "example": "ERROR"
                }
            }
        },
        "dto.InjuryDetail": {
            "type": "object",
            "properties": {
                "assignments": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Assignment"
                    }
                },
                "attachments": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.File"
                    }
                },
                "daysLost": {
                    "type": "integer"
                },
                "injury": {
                    "$ref": "#/definitions/models.Injury"
                },
                "practitioners": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.UserSummary"
                    }
                },
                "student": {
                    "$ref": "#/definitions/dto.UserSummary"
                }
            }
        },
        "dto.PlanDetail": {
            "type": "object",
            "properties": {
                "hasDraft": {
                    "type": "boolean"
                },
                "plan": {
                    "$ref": "#/definitions/models.TreatmentPlan"
                },
                "template": {
                    "$ref": "#/definitions/models.TreatmentTemplate"
                }
            }
        },
        "dto.PlanDraft": {
            "type": "object",
            "properties": {
                "steps": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "title": {
                    "type": "string"
                }
            }
        },
        "dto.PlanDraftRequest": {
            "type": "object",
            "properties": {
                "steps": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "title": {
                    "type": "string"
                }
            }
        },
        "dto.PlanDraftResponse": {
            "type": "object",
            "properties": {
                "canRedo": {
                    "type": "boolean"
                },
                "canUndo": {
                    "type": "boolean"
                },
                "draft": {
                    "$ref": "#/definitions/dto.PlanDraft"
                },
                "planId": {
                    "type": "string"
                },
                "redoDepth": {
                    "type": "integer"
                },
                "undoDepth": {
                    "type": "integer"
                }
            }
        },
        "dto.PractitionerDashboard": {
            "type": "object",
            "properties": {
                "caseload": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.CaseloadEntry"
                    }
                },
                "unreadMessages": {
                    "type": "integer"
                },
                "upcomingAppointments": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Appointment"
                    }
                }
            }
        },
        "dto.RefreshTokenRequest": {
            "type": "object",
            "properties": {
                "refreshToken": {
                    "type": "string"
                }
            }
        },
        "dto.SendMessageRequest": {
            "type": "object",
            "properties": {
                "content": {
                    "type": "string"
                },
                "receiverId": {
                    "type": "string"
                }
            }
        },
        "dto.SignInRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string",
                    "example": "athlete@uni.edu"
                },
                "password": {
                    "type": "string",
                    "example": "Password123!"
                }
            }
        },
        "dto.SignUpRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string",
                    "example": "athlete@uni.edu"
                },
                "fullName": {
                    "type": "string",
                    "example": "Jamie Doe"
                },
                "password": {
                    "type": "string",
                    "example": "Password123!"
                },
                "roleType": {
                    "type": "string",
                    "enum": [
                        "student",
                        "practitioner",
                        "admin"
                    ],
                    "example": "student"
                },
                "specialization": {
                    "type": "string",
                    "example": "Physiotherapy"
                },
                "sport": {
                    "type": "string",
                    "example": "Football"
                }
            }
        },
        "dto.StudentDashboard": {
            "type": "object",
            "properties": {
                "activePlans": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.TreatmentPlan"
                    }
                },
                "injuries": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Injury"
                    }
                },
                "openChecklists": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.RTPChecklist"
                    }
                },
                "upcomingAppointments": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Appointment"
                    }
                }
            }
        },
        "dto.TokenResponse": {
            "type": "object",
            "properties": {
                "accessToken": {
                    "type": "string"
                },
                "expiresIn": {
                    "type": "integer",
                    "example": 3600
                },
                "refreshExpiresIn": {
                    "type": "integer",
                    "example": 2592000
                },
                "refreshToken": {
                    "type": "string"
                },
                "tokenType": {
                    "type": "string",
                    "example": "Bearer"
                }
            }
        },
        "dto.UpdateAppointmentStatusRequest": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "enum": [
                        "scheduled",
                        "completed",
                        "cancelled"
                    ],
                    "example": "completed"
                }
            }
        },
        "dto.UpdateInjuryRequest": {
            "type": "object",
            "properties": {
                "clearDateReturned": {
                    "type": "boolean"
                },
                "clearDaysLost": {
                    "type": "boolean"
                },
                "dateReturned": {
                    "type": "string"
                },
                "daysLost": {
                    "type": "integer",
                    "example": 14
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "reported",
                        "assigned",
                        "in_treatment",
                        "recovering",
                        "resolved"
                    ],
                    "example": "in_treatment"
                }
            }
        },
        "dto.UserSummary": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "fullName": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "lastLoginAt": {
                    "type": "string"
                },
                "roleType": {
                    "type": "string",
                    "enum": [
                        "student",
                        "practitioner",
                        "admin"
                    ]
                },
                "specialization": {
                    "type": "string"
                },
                "sport": {
                    "type": "string"
                }
            }
        },
        "models.Appointment": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "type": "string"
                },
                "durationMinutes": {
                    "type": "integer"
                },
                "id": {
                    "type": "string"
                },
                "injuryId": {
                    "type": "string"
                },
                "location": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "practitionerId": {
                    "type": "string"
                },
                "scheduledAt": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "scheduled",
                        "completed",
                        "cancelled"
                    ]
                },
                "studentId": {
                    "type": "string"
                }
            }
        },
        "models.Assignment": {
            "type": "object",
            "properties": {
                "active": {
                    "type": "boolean"
                },
                "createdAt": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "injuryId": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "practitionerId": {
                    "type": "string"
                },
                "studentId": {
                    "type": "string"
                }
            }
        },
        "models.File": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "type": "string"
                },
                "fileName": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "injuryId": {
                    "type": "string"
                },
                "key": {
                    "type": "string"
                },
                "mimeType": {
                    "type": "string"
                },
                "ownerId": {
                    "type": "string"
                },
                "size": {
                    "type": "integer"
                },
                "url": {
                    "type": "string"
                }
            }
        },
        "models.Injury": {
            "type": "object",
            "properties": {
                "bodyPart": {
                    "type": "string",
                    "example": "Left thigh"
                },
                "createdAt": {
                    "type": "string"
                },
                "dateOccurred": {
                    "type": "string"
                },
                "dateReported": {
                    "type": "string"
                },
                "dateReturned": {
                    "type": "string"
                },
                "daysLost": {
                    "type": "integer"
                },
                "description": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "injuryType": {
                    "type": "string",
                    "example": "Hamstring strain"
                },
                "severity": {
                    "type": "string",
                    "enum": [
                        "mild",
                        "moderate",
                        "severe",
                        "critical"
                    ],
                    "example": "moderate"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "reported",
                        "assigned",
                        "in_treatment",
                        "recovering",
                        "resolved"
                    ],
                    "example": "reported"
                },
                "studentId": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
        },
        "models.Message": {
            "type": "object",
            "properties": {
                "content": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "read": {
                    "type": "boolean"
                },
                "receiverId": {
                    "type": "string"
                },
                "senderId": {
                    "type": "string"
                }
            }
        },
        "models.RTPChecklist": {
            "type": "object",
            "properties": {
                "clearedAt": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "injuryId": {
                    "type": "string"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "practitionerId": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "pending",
                        "in_progress",
                        "cleared"
                    ]
                },
                "studentId": {
                    "type": "string"
                }
            }
        },
        "models.RecoveryLog": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "injuryId": {
                    "type": "string"
                },
                "mobility": {
                    "type": "integer"
                },
                "notes": {
                    "type": "string"
                },
                "painLevel": {
                    "type": "integer"
                },
                "studentId": {
                    "type": "string"
                }
            }
        },
        "models.TreatmentPlan": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "injuryId": {
                    "type": "string"
                },
                "practitionerId": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "active",
                        "completed"
                    ]
                },
                "steps": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "studentId": {
                    "type": "string"
                },
                "templateId": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
        },
        "models.TreatmentTemplate": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "type": "string"
                },
                "createdBy": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "injuryType": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "steps": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "reporting.Report": {
            "type": "object",
            "properties": {
                "averageRtpDays": {
                    "type": "integer"
                },
                "filter": {
                    "$ref": "#/definitions/reporting.View"
                },
                "filteredInjuries": {
                    "type": "integer"
                },
                "incidenceBySport": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/reporting.SportCount"
                    }
                },
                "monthlyTrend": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/reporting.TrendPoint"
                    }
                },
                "openInjuries": {
                    "type": "integer"
                },
                "recoveryRate": {
                    "type": "integer"
                },
                "recurrenceRate": {
                    "type": "integer"
                },
                "severityDistribution": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/reporting.SeverityBucket"
                    }
                },
                "timeLossBySeverity": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/reporting.TimeLoss"
                    }
                },
                "totalInjuries": {
                    "type": "integer"
                },
                "workload": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/reporting.WorkloadEntry"
                    }
                }
            }
        },
        "reporting.SeverityBucket": {
            "type": "object",
            "properties": {
                "color": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "value": {
                    "type": "integer"
                }
            }
        },
        "reporting.SportCount": {
            "type": "object",
            "properties": {
                "injuries": {
                    "type": "integer"
                },
                "sport": {
                    "type": "string"
                }
            }
        },
        "reporting.TimeLoss": {
            "type": "object",
            "properties": {
                "daysLost": {
                    "type": "integer"
                },
                "severity": {
                    "type": "string"
                }
            }
        },
        "reporting.TrendPoint": {
            "type": "object",
            "properties": {
                "injuries": {
                    "type": "integer"
                },
                "month": {
                    "type": "string"
                }
            }
        },
        "reporting.View": {
            "type": "object",
            "properties": {
                "end": {
                    "type": "string"
                },
                "severity": {
                    "type": "string"
                },
                "sport": {
                    "type": "string"
                },
                "start": {
                    "type": "string"
                }
            }
        },
        "reporting.WorkloadEntry": {
            "type": "object",
            "properties": {
                "active": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "practitionerId": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "JWT token for authorization",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Injury Desk API",
	Description:      "API for student-athlete injury reporting, treatment and return-to-play tracking",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
