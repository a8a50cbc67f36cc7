// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

// Package docs registers the OpenAPI 2.0 description of the API with swag so
// that http-swagger can serve it at /swagger/doc.json.
//
// The template mirrors the @-annotations on the handlers in internal/api;
// keep both in sync when a route or response shape changes.
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
            "url": "https://github.com/tomtom215/creativepathway"
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
                "description": "Liveness probe with uptime and build information",
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.HealthResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/ratelimit.RejectionBody"}}
                }
            }
        },
        "/api/docs": {
            "get": {
                "description": "Lists endpoints, the research basis and the active rate limit budgets",
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "API documentation",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.DocsResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/ratelimit.RejectionBody"}}
                }
            }
        },
        "/api/v1/behavioral-data": {
            "post": {
                "description": "Validates a behavioral telemetry submission and acknowledges it",
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["Telemetry"],
                "summary": "Submit behavioral data",
                "parameters": [
                    {
                        "description": "Behavioral submission",
                        "name": "submission",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/validation.Submission"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.SubmissionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ValidationFailure"}},
                    "413": {"description": "Payload Too Large", "schema": {"$ref": "#/definitions/apierrors.Envelope"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/ratelimit.RejectionBody"}}
                }
            }
        }
    },
    "definitions": {
        "api.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "healthy"},
                "timestamp": {"type": "string", "example": "2024-01-15T10:30:00.000Z"},
                "version": {"type": "string", "example": "1.0.0"},
                "environment": {"type": "string", "example": "development"},
                "uptime": {"type": "number", "example": 12.5},
                "research": {"type": "string", "example": "Park et al. (2017) Implementation"}
            }
        },
        "api.DocsResponse": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "version": {"type": "string"},
                "description": {"type": "string"},
                "baseUrl": {"type": "string"},
                "endpoints": {"type": "object", "additionalProperties": {"type": "string"}},
                "research_basis": {"$ref": "#/definitions/api.ResearchBasis"},
                "rate_limits": {"$ref": "#/definitions/api.RateLimitSummary"}
            }
        },
        "api.ResearchBasis": {
            "type": "object",
            "properties": {
                "paper": {"type": "string"},
                "doi": {"type": "string", "example": "10.5539/ies.v10n5p167"},
                "journal": {"type": "string"},
                "volume": {"type": "integer", "example": 10},
                "number": {"type": "integer", "example": 5},
                "pages": {"type": "string", "example": "167-180"}
            }
        },
        "api.RateLimitSummary": {
            "type": "object",
            "properties": {
                "general": {"type": "string", "example": "100 requests per 15 minutes"},
                "behavioral_data": {"type": "string", "example": "30 requests per minute"},
                "health": {"type": "string", "example": "60 requests per minute"}
            }
        },
        "api.SubmissionResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "message": {"type": "string", "example": "Behavioral data received successfully"},
                "data": {"$ref": "#/definitions/api.SubmissionReceipt"},
                "research_note": {"type": "string"}
            }
        },
        "api.SubmissionReceipt": {
            "type": "object",
            "properties": {
                "userId": {"type": "string", "example": "abc123"},
                "type": {"type": "string", "example": "general"},
                "processedAt": {"type": "string"},
                "dataPoints": {"type": "integer", "example": 2}
            }
        },
        "api.ValidationFailure": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "error": {"type": "string", "example": "Validation failed"},
                "details": {"type": "array", "items": {"$ref": "#/definitions/validation.FieldError"}},
                "timestamp": {"type": "string"}
            }
        },
        "validation.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string", "example": "type"},
                "message": {"type": "string"},
                "value": {}
            }
        },
        "validation.Submission": {
            "type": "object",
            "required": ["userId", "type", "data"],
            "properties": {
                "userId": {"type": "string", "maxLength": 50, "minLength": 3, "pattern": "^[A-Za-z0-9_-]+$"},
                "type": {"type": "string", "enum": ["attentiveness", "scientific_attitude", "creativity", "general"]},
                "data": {
                    "type": "object",
                    "required": ["timestamp"],
                    "properties": {
                        "timestamp": {"type": "string", "example": "2024-01-15T10:30:00Z"},
                        "attentiveness": {"type": "object", "additionalProperties": {"type": "number"}},
                        "scientific_attitude": {"type": "object", "additionalProperties": {"type": "number"}},
                        "creativity": {"type": "object", "additionalProperties": {"type": "number"}},
                        "general": {"type": "object", "additionalProperties": {"type": "number"}}
                    }
                },
                "metadata": {
                    "type": "object",
                    "properties": {
                        "browser": {"type": "string", "maxLength": 100},
                        "platform": {"type": "string", "maxLength": 50},
                        "screen_resolution": {"type": "string", "pattern": "^\\d+x\\d+$"},
                        "timezone": {"type": "string", "maxLength": 50},
                        "language": {"type": "string", "maxLength": 10}
                    }
                }
            }
        },
        "ratelimit.RejectionBody": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "error": {"type": "string", "example": "Health check rate limit exceeded."},
                "retryAfter": {"type": "integer", "example": 42},
                "timestamp": {"type": "string"}
            }
        },
        "apierrors.Envelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "error": {
                    "type": "object",
                    "properties": {
                        "type": {"type": "string", "example": "PayloadTooLargeError"},
                        "message": {"type": "string"},
                        "timestamp": {"type": "string"},
                        "stack": {"type": "string"},
                        "details": {},
                        "retryAfter": {"type": "integer"}
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "CreativePathway API",
	Description:      "Behavioral telemetry ingestion API based on Park et al. (2017) research",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
