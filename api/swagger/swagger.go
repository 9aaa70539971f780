package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Counseling Management API",
        "description": "Intake, availability and scheduling backend for the guidance office",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Availability", "description": "Blocked-date management and booking checks"},
        {"name": "Schedule", "description": "Calendar grid and day session views"},
        {"name": "Interview Forms", "description": "Student intake and staff workflow"},
        {"name": "Stats", "description": "Summary counters"}
    ],
    "paths": {
        "/unavailable-dates": {
            "get": {
                "tags": ["Availability"],
                "summary": "List unavailable dates",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Availability"],
                "summary": "Mark dates as unavailable",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/MarkUnavailableRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Availability"],
                "summary": "Remove dates from the unavailable set",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RemoveUnavailableRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/availability/check": {
            "get": {
                "tags": ["Availability"],
                "summary": "Check whether a date can accept a booking",
                "parameters": [
                    {"name": "date", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedule/month": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Month calendar grid",
                "parameters": [
                    {"name": "year", "in": "query", "type": "integer"},
                    {"name": "month", "in": "query", "type": "integer"},
                    {"name": "selected", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedule/day": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Sessions scheduled on a day",
                "parameters": [
                    {"name": "date", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/interview-forms": {
            "get": {
                "tags": ["Interview Forms"],
                "summary": "List interview forms",
                "parameters": [
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "isReferral", "in": "query", "type": "boolean"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "pageSize", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Interview Forms"],
                "summary": "Submit an interview form",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitFormRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/interview-forms/export": {
            "get": {
                "tags": ["Interview Forms"],
                "summary": "Export a day's sessions as CSV or PDF",
                "parameters": [
                    {"name": "date", "in": "query", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/interview-forms/{id}": {
            "get": {
                "tags": ["Interview Forms"],
                "summary": "Get an interview form",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/interview-forms/{id}/status": {
            "patch": {
                "tags": ["Interview Forms"],
                "summary": "Update form status and remarks",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateFormStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/stats/summary": {
            "get": {
                "tags": ["Stats"],
                "summary": "Intake and session summary counts",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "UnavailableDate": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "date": {"type": "string"},
                "reason": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "MarkUnavailableRequest": {
            "type": "object",
            "properties": {
                "dates": {"type": "array", "items": {"type": "string"}},
                "reason": {"type": "string"}
            },
            "required": ["dates"]
        },
        "RemoveUnavailableRequest": {
            "type": "object",
            "properties": {
                "dates": {"type": "array", "items": {"type": "string"}}
            },
            "required": ["dates"]
        },
        "SubmitFormRequest": {
            "type": "object",
            "properties": {
                "consentGiven": {"type": "boolean"},
                "studentName": {"type": "string"},
                "email": {"type": "string"},
                "dateTime": {"type": "string"},
                "courseYearSection": {"type": "string"},
                "isReferral": {"type": "boolean"},
                "type": {"type": "string"},
                "referredBy": {"type": "string"}
            },
            "required": ["consentGiven", "studentName", "dateTime"]
        },
        "UpdateFormStatusRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "remarks": {"type": "string"},
                "dateTime": {"type": "string"},
                "followUpDate": {"type": "string"}
            },
            "required": ["status"]
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
