package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "UQPP API",
        "description": "Course catalogue lookup and program requirements checks",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Courses", "description": "Course catalogue lookups"},
        {"name": "Program", "description": "Program catalogue and requirements"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/courses/{code}": {
            "get": {
                "tags": ["Courses"],
                "summary": "Look up a course by code",
                "parameters": [
                    {"name": "code", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Merged course aggregate", "schema": {"$ref": "#/definitions/Course"}},
                    "404": {"description": "Unknown course code", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "Upstream catalogue failure", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses/{code}/export": {
            "get": {
                "tags": ["Courses"],
                "summary": "Export a course timetable",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "code", "in": "path", "type": "string", "required": true},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Rendered timetable attachment"},
                    "404": {"description": "Unknown course code"}
                }
            }
        },
        "/program/courses": {
            "get": {
                "tags": ["Program"],
                "summary": "List the program's categorized courses",
                "responses": {
                    "200": {"description": "Categorized program course list"},
                    "502": {"description": "Upstream catalogue failure"}
                }
            }
        },
        "/program/requirements/evaluate": {
            "post": {
                "tags": ["Program"],
                "summary": "Check a course selection against the program requirements",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/EvaluateRequirementsRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Evaluation with per-rule results"},
                    "400": {"description": "Invalid payload"}
                }
            }
        }
    },
    "definitions": {
        "Activity": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "location": {"type": "string"},
                "start_time": {"type": "string", "example": "09:00"},
                "end_time": {"type": "string", "example": "10:00"},
                "duration": {"type": "integer"},
                "type": {"type": "string", "enum": ["LECTURE", "PRACTICAL", "TUTORIAL", "STUDIO", "DELAYED"]},
                "day": {"type": "string", "enum": ["MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"]},
                "dates": {"type": "array", "items": {"type": "string", "format": "date"}}
            }
        },
        "Offering": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "semester": {"type": "integer"},
                "campus": {"type": "string"},
                "attendance_mode": {"type": "string", "enum": ["IN_PERSON", "EXTERNAL"]},
                "faculty": {"type": "string"},
                "activities": {"type": "array", "items": {"$ref": "#/definitions/Activity"}}
            }
        },
        "Course": {
            "type": "object",
            "properties": {
                "faculty": {"type": "string"},
                "school": {"type": "string"},
                "code": {"type": "string"},
                "name": {"type": "string"},
                "level": {"type": "string"},
                "units": {"type": "integer"},
                "duration": {"type": "string"},
                "contact_hours": {"type": "string"},
                "coordinator": {"type": "string"},
                "coordinator_email": {"type": "string"},
                "assessment_methods": {"type": "string"},
                "offerings": {"type": "array", "items": {"$ref": "#/definitions/Offering"}}
            }
        },
        "EvaluateRequirementsRequest": {
            "type": "object",
            "required": ["course_codes"],
            "properties": {
                "course_codes": {"type": "array", "items": {"type": "string"}}
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
                "error": {"$ref": "#/definitions/APIError"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

// Doc exposes the raw document for the openapi dump flag.
func Doc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
