// Package docs registers the OpenAPI description served under /swagger.
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
        "/api/leads": {
            "post": {
                "description": "Validates a credit request and mails it, with a CSV attachment, to the partner or the configured recipient.",
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["leads"],
                "summary": "Submit a lead",
                "parameters": [
                    {
                        "description": "Lead submission",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/docs.LeadRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Lead mailed", "schema": {"$ref": "#/definitions/types.LeadResponse"}},
                    "400": {"description": "Missing name or phone", "schema": {"$ref": "#/definitions/types.LeadResponse"}},
                    "405": {"description": "Method other than POST or OPTIONS", "schema": {"$ref": "#/definitions/types.LeadResponse"}},
                    "500": {"description": "Mailer misconfigured or delivery failed", "schema": {"$ref": "#/definitions/types.LeadResponse"}}
                }
            }
        },
        "/health/readiness": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "Mailer ready", "schema": {"$ref": "#/definitions/types.HealthCheck"}},
                    "503": {"description": "Mailer missing credentials", "schema": {"$ref": "#/definitions/types.HealthCheck"}}
                }
            }
        }
    },
    "definitions": {
        "docs.LeadRequest": {
            "description": "Lead submission",
            "type": "object",
            "properties": {
                "full_name": {"type": "string", "example": "Ana Petrovska"},
                "first_name": {"type": "string", "example": "Ana"},
                "last_name": {"type": "string", "example": "Petrovska"},
                "phone_e164": {"type": "string", "example": "+38970123456"},
                "requested_amount_mkd": {"type": "string", "example": "150000"},
                "target_installment_mkd": {"type": "string", "example": "4500"},
                "partner": {"type": "string", "example": "Auto Centar"},
                "partner_id": {"type": "string", "example": "p-017"},
                "partner_email": {"type": "string", "example": "leads@partner.mk"},
                "consent": {"type": "string", "example": "true"},
                "consent_timestamp": {"type": "string", "example": "2025-03-04T12:05:06.789Z"},
                "source": {"type": "string", "example": "landing"}
            }
        },
        "types.LeadResponse": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "messageId": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "types.HealthCheck": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "components": {"type": "object"},
                "version": {"type": "string"},
                "timestamp": {"type": "string"},
                "uptime": {"type": "string"}
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
	Title:            "Lead Mail API",
	Description:      "Intake endpoint that mails credit requests from the landing page.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
