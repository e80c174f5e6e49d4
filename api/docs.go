// Package api holds the OpenAPI document for the backend.
//
// The document is maintained by hand and registered with swag so that
// gin-swagger can serve it at /docs.
package api

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
        "/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Categories"],
                "summary": "Get categories",
                "description": "Returns a single category when the id parameter is set, otherwise the caller's categories ordered by name.",
                "parameters": [
                    {"type": "string", "name": "id", "in": "query", "description": "Return only the category with this ID"},
                    {"type": "string", "name": "type", "in": "query", "description": "Filter by type (income or expense)"},
                    {"type": "string", "name": "name", "in": "query", "description": "Filter by name, glob patterns are supported"},
                    {"type": "integer", "name": "limit", "in": "query", "description": "Maximum number of categories to return. Defaults to 100, capped at 500."},
                    {"type": "integer", "name": "offset", "in": "query", "description": "The offset of the first category returned. Defaults to 0."}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Category"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperror.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperror.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httperror.Error"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Categories"],
                "summary": "Create category",
                "parameters": [
                    {"name": "category", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.CategoryEditable"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Category"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperror.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httperror.Error"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Categories"],
                "summary": "Delete category",
                "parameters": [
                    {"type": "string", "name": "id", "in": "query", "required": true, "description": "ID of the category to delete"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.CategoryDeleteResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperror.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperror.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httperror.Error"}}
                }
            }
        },
        "/transactions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Transactions"],
                "summary": "Get transactions",
                "description": "Returns a single transaction when the id parameter is set, otherwise the caller's transactions ordered by date descending.",
                "parameters": [
                    {"type": "string", "name": "id", "in": "query", "description": "Return only the transaction with this ID"},
                    {"type": "string", "name": "type", "in": "query", "description": "Filter by type (income or expense)"},
                    {"type": "string", "name": "category", "in": "query", "description": "Filter by category name (exact match)"},
                    {"type": "string", "name": "dateFrom", "in": "query", "description": "Transactions at and after this date"},
                    {"type": "string", "name": "dateTo", "in": "query", "description": "Transactions before and at this date"},
                    {"type": "integer", "name": "limit", "in": "query", "description": "Maximum number of transactions to return. Defaults to 100, capped at 1000."},
                    {"type": "integer", "name": "offset", "in": "query", "description": "The offset of the first transaction returned. Defaults to 0."}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Transaction"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperror.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperror.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httperror.Error"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Transactions"],
                "summary": "Create transaction",
                "parameters": [
                    {"name": "transaction", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.TransactionEditable"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Transaction"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperror.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httperror.Error"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Transactions"],
                "summary": "Update transaction",
                "description": "Partially updates the transaction with the ID given in the id parameter. Only fields present in the body change; updatedAt is always refreshed.",
                "parameters": [
                    {"type": "string", "name": "id", "in": "query", "required": true, "description": "ID of the transaction to update"},
                    {"name": "transaction", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.TransactionEditable"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Transaction"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperror.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperror.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httperror.Error"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Transactions"],
                "summary": "Delete transaction",
                "parameters": [
                    {"type": "string", "name": "id", "in": "query", "required": true, "description": "ID of the transaction to delete"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.TransactionDeleteResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperror.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperror.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httperror.Error"}}
                }
            }
        },
        "/transactions/summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Transactions"],
                "summary": "Get summary",
                "description": "Returns totals, balance, transaction count and the per-category breakdown for the caller's transactions in the date window.",
                "parameters": [
                    {"type": "string", "name": "dateFrom", "in": "query", "description": "Include transactions at and after this date"},
                    {"type": "string", "name": "dateTo", "in": "query", "description": "Include transactions before and at this date"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Summary"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperror.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httperror.Error"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "tags": ["General"],
                "summary": "Health",
                "description": "Returns the health of the backend, determined by a database ping.",
                "responses": {
                    "204": {"description": "No Content"},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httperror.Error"}}
                }
            }
        },
        "/version": {
            "get": {
                "tags": ["General"],
                "summary": "API version",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    },
    "definitions": {
        "httperror.Error": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "Valid ID is required"},
                "code": {"type": "string", "example": "INVALID_ID"}
            }
        },
        "models.Category": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 7},
                "userId": {"type": "string", "example": "user-1"},
                "name": {"type": "string", "example": "Groceries"},
                "type": {"type": "string", "enum": ["income", "expense"]},
                "color": {"type": "string", "example": "#10B981"},
                "icon": {"type": "string", "example": "shopping-cart"},
                "createdAt": {"type": "string", "example": "2024-01-15T10:04:05Z"}
            }
        },
        "models.Transaction": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 42},
                "userId": {"type": "string", "example": "user-1"},
                "type": {"type": "string", "enum": ["income", "expense"]},
                "amount": {"type": "number", "example": 42.5},
                "category": {"type": "string", "example": "Food & Dining"},
                "description": {"type": "string", "example": "Lunch"},
                "date": {"type": "string", "example": "2024-01-15T00:00:00.000Z"},
                "createdAt": {"type": "string", "example": "2024-01-15T10:04:05Z"},
                "updatedAt": {"type": "string", "example": "2024-01-15T10:04:05Z"}
            }
        },
        "models.Summary": {
            "type": "object",
            "properties": {
                "totalIncome": {"type": "number", "example": 300},
                "totalExpenses": {"type": "number", "example": 100},
                "balance": {"type": "number", "example": 200},
                "transactionCount": {"type": "integer", "example": 5},
                "categoryBreakdown": {"type": "array", "items": {"$ref": "#/definitions/models.CategorySum"}}
            }
        },
        "models.CategorySum": {
            "type": "object",
            "properties": {
                "category": {"type": "string", "example": "Food & Dining"},
                "type": {"type": "string", "enum": ["income", "expense"]},
                "total": {"type": "number", "example": 85},
                "count": {"type": "integer", "example": 2}
            }
        },
        "v1.CategoryEditable": {
            "type": "object",
            "required": ["name", "type"],
            "properties": {
                "name": {"type": "string", "example": "Groceries"},
                "type": {"type": "string", "enum": ["income", "expense"]},
                "color": {"type": "string", "example": "#10B981"},
                "icon": {"type": "string", "example": "shopping-cart"}
            }
        },
        "v1.TransactionEditable": {
            "type": "object",
            "required": ["type", "amount", "category", "date"],
            "properties": {
                "type": {"type": "string", "enum": ["income", "expense"]},
                "amount": {"type": "number", "example": 42.5},
                "category": {"type": "string", "example": "Food & Dining"},
                "description": {"type": "string", "example": "Lunch"},
                "date": {"type": "string", "example": "2024-01-15T00:00:00.000Z"}
            }
        },
        "v1.CategoryDeleteResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Category deleted successfully"},
                "category": {"$ref": "#/definitions/models.Category"}
            }
        },
        "v1.TransactionDeleteResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Transaction deleted successfully"},
                "transaction": {"$ref": "#/definitions/models.Transaction"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
