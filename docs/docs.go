// Package docs registers the OpenAPI document served under /swagger.
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
        "/api/categories": {
            "get": {
                "description": "Every category as an id to type mapping. An empty store is a success with an empty mapping.",
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "List categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.CategoriesResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/categories/{id}/questions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "List questions of a category",
                "parameters": [
                    {"type": "integer", "description": "Category ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.CategoryQuestionsResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/questions": {
            "get": {
                "description": "Questions ordered by id, ten per page. Pages past the end are empty.",
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "List questions",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.QuestionPageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "description": "A body with searchTerm searches question text case-insensitively; any other body creates a question.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Create a question or search questions",
                "parameters": [
                    {"description": "New question, or {\"searchTerm\": \"...\"}", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateQuestionRequest"}},
                    {"type": "integer", "default": 1, "description": "Page of search results", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SearchResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/questions/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Delete a question",
                "parameters": [
                    {"type": "integer", "description": "Question ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.DeleteResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/api/quizzes": {
            "post": {
                "description": "A random question not yet played. Category id 0 plays every category. The question is omitted once all are played.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "Pick the next quiz question",
                "parameters": [
                    {"description": "Quiz state", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.QuizRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.QuizResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness and database check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.CategoriesResponse": {
            "type": "object",
            "properties": {
                "categories": {"type": "object", "additionalProperties": {"type": "string"}},
                "success": {"type": "boolean", "example": true}
            }
        },
        "handlers.CategoryQuestionsResponse": {
            "type": "object",
            "properties": {
                "current_category": {"$ref": "#/definitions/models.Category"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/models.Question"}},
                "success": {"type": "boolean", "example": true},
                "total_questions": {"type": "integer", "example": 3}
            }
        },
        "handlers.CreateQuestionRequest": {
            "type": "object",
            "properties": {
                "answer": {"type": "string", "example": "9.81 m/s2"},
                "category": {"type": "integer", "example": 1},
                "difficulty": {"type": "integer", "example": 3},
                "question": {"type": "string", "example": "What is the acceleration of gravity?"}
            }
        },
        "handlers.DeleteResponse": {
            "type": "object",
            "properties": {
                "question_id": {"type": "integer", "example": 2},
                "success": {"type": "boolean", "example": true}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "integer", "example": 404},
                "message": {"type": "string", "example": "Not Found"},
                "success": {"type": "boolean", "example": false}
            }
        },
        "handlers.QuestionPageResponse": {
            "type": "object",
            "properties": {
                "categories": {"type": "object", "additionalProperties": {"type": "string"}},
                "current_category": {"type": "object"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/models.Question"}},
                "success": {"type": "boolean", "example": true},
                "total_questions": {"type": "integer", "example": 19}
            }
        },
        "handlers.QuizCategory": {
            "type": "object",
            "required": ["id"],
            "properties": {
                "id": {"type": "integer", "example": 1},
                "type": {"type": "string", "example": "Science"}
            }
        },
        "handlers.QuizRequest": {
            "type": "object",
            "required": ["quiz_category"],
            "properties": {
                "previous_questions": {"type": "array", "items": {"type": "integer"}},
                "quiz_category": {"$ref": "#/definitions/handlers.QuizCategory"}
            }
        },
        "handlers.QuizResponse": {
            "type": "object",
            "properties": {
                "question": {"$ref": "#/definitions/models.Question"},
                "success": {"type": "boolean", "example": true}
            }
        },
        "handlers.SearchResponse": {
            "type": "object",
            "properties": {
                "current_category": {"type": "object"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/models.Question"}},
                "success": {"type": "boolean", "example": true},
                "total_questions": {"type": "integer", "example": 2}
            }
        },
        "models.Category": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "type": {"type": "string"}
            }
        },
        "models.Question": {
            "type": "object",
            "properties": {
                "answer": {"type": "string"},
                "category": {"type": "integer"},
                "difficulty": {"type": "integer"},
                "id": {"type": "integer"},
                "question": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Trivia API",
	Description:      "Trivia questions, categories and quizzes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
