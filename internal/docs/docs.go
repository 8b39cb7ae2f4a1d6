// Package docs holds the Swagger document served under /swagger.
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
        "/funds": {
            "get": {
                "produces": ["application/json"],
                "tags": ["funds"],
                "summary": "List funds",
                "responses": {
                    "200": {"description": "Funds ordered by name", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.MutualFund"}}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/funds/overlap": {
            "get": {
                "produces": ["application/json"],
                "tags": ["funds"],
                "summary": "Stock overlap between two funds",
                "parameters": [
                    {"type": "integer", "description": "First fund ID", "name": "fund1", "in": "query", "required": true},
                    {"type": "integer", "description": "Second fund ID", "name": "fund2", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "Overlap", "schema": {"$ref": "#/definitions/services.FundOverlapResult"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Fund not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/funds/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["funds"],
                "summary": "Fund details with allocations",
                "parameters": [{"type": "integer", "description": "Fund ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Fund", "schema": {"$ref": "#/definitions/services.FundDetail"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Fund not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/funds/{id}/sectors": {
            "get": {
                "produces": ["application/json"],
                "tags": ["funds"],
                "summary": "Fund sector allocation",
                "parameters": [{"type": "integer", "description": "Fund ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Sectors", "schema": {"type": "array", "items": {"$ref": "#/definitions/services.SectorWeight"}}},
                    "404": {"description": "Fund not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/funds/{id}/stocks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["funds"],
                "summary": "Fund stock holdings",
                "parameters": [{"type": "integer", "description": "Fund ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Stocks", "schema": {"type": "array", "items": {"$ref": "#/definitions/services.StockWeight"}}},
                    "404": {"description": "Fund not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/funds/{id}/performance": {
            "get": {
                "produces": ["application/json"],
                "tags": ["funds"],
                "summary": "Fund NAV series",
                "parameters": [
                    {"type": "integer", "description": "Fund ID", "name": "id", "in": "path", "required": true},
                    {"enum": ["1M", "3M", "6M", "1Y", "3Y", "MAX"], "type": "string", "description": "Period (default 1M)", "name": "period", "in": "query"},
                    {"enum": ["daily", "monthly", "yearly"], "type": "string", "description": "Interval (default daily)", "name": "interval", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Series", "schema": {"$ref": "#/definitions/services.FundPerformance"}},
                    "400": {"description": "Invalid period or interval", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Fund not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/funds/{id}/compare/{compareId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["funds"],
                "summary": "Compare two funds",
                "parameters": [
                    {"type": "integer", "description": "Fund ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Fund ID to compare with", "name": "compareId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Comparison", "schema": {"$ref": "#/definitions/services.FundComparison"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Fund not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/portfolio": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["portfolio"],
                "summary": "Portfolio summary",
                "responses": {
                    "200": {"description": "Summary", "schema": {"$ref": "#/definitions/services.PortfolioSummary"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "No investments", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/portfolio/performance": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["portfolio"],
                "summary": "Portfolio value series",
                "parameters": [
                    {"enum": ["1M", "3M", "6M", "1Y", "3Y", "MAX"], "type": "string", "description": "Period (default 1M)", "name": "period", "in": "query"},
                    {"enum": ["daily", "monthly", "yearly"], "type": "string", "description": "Interval (default daily)", "name": "interval", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Series", "schema": {"$ref": "#/definitions/services.PortfolioPerformance"}},
                    "400": {"description": "Invalid period or interval", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/portfolio/sectors": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["portfolio"],
                "summary": "Portfolio sector allocation",
                "responses": {
                    "200": {"description": "Allocation", "schema": {"$ref": "#/definitions/services.SectorAllocation"}}
                }
            }
        },
        "/portfolio/health": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["portfolio"],
                "summary": "Portfolio health scores",
                "responses": {
                    "200": {"description": "Health", "schema": {"$ref": "#/definitions/services.PortfolioHealth"}}
                }
            }
        },
        "/investments/summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["investments"],
                "summary": "Investment summary",
                "responses": {
                    "200": {"description": "Summary", "schema": {"$ref": "#/definitions/services.InvestmentSummary"}}
                }
            }
        },
        "/investments": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["investments"],
                "summary": "List investments",
                "responses": {
                    "200": {"description": "Investments", "schema": {"type": "array", "items": {"$ref": "#/definitions/services.InvestmentView"}}}
                }
            }
        },
        "/transactions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["investments"],
                "summary": "Investment transactions",
                "parameters": [
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page (default 20, max 100)", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Paginated investments"}
                }
            }
        },
        "/users/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Register a new user",
                "parameters": [{"description": "User registration data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.RegisterRequest"}}],
                "responses": {
                    "201": {"description": "User registered and token generated", "schema": {"$ref": "#/definitions/handlers.AuthResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "409": {"description": "Email already registered", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/users/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Login user",
                "parameters": [{"description": "User login credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}],
                "responses": {
                    "200": {"description": "User authenticated and token generated", "schema": {"$ref": "#/definitions/handlers.AuthResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/users/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get user profile",
                "responses": {
                    "200": {"description": "User profile", "schema": {"$ref": "#/definitions/models.User"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Update user profile",
                "parameters": [{"description": "Profile fields", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdateProfileRequest"}}],
                "responses": {
                    "200": {"description": "Updated profile", "schema": {"$ref": "#/definitions/models.User"}},
                    "409": {"description": "Email already registered", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/pipeline/snapshots": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pipeline"],
                "summary": "Compute portfolio snapshots",
                "parameters": [
                    {"type": "string", "description": "Pipeline API key", "name": "X-API-Key", "in": "header", "required": true},
                    {"description": "Snapshot parameters", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ComputeSnapshotsRequest"}}
                ],
                "responses": {
                    "200": {"description": "Snapshots recorded count"},
                    "401": {"description": "Invalid API key", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "503": {"description": "Pipeline not configured", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "string"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"$ref": "#/definitions/handlers.ErrorDetail"}}
        },
        "handlers.RegisterRequest": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {
                "name": {"type": "string", "maxLength": 100},
                "email": {"type": "string", "maxLength": 255},
                "password": {"type": "string", "maxLength": 128, "minLength": 6},
                "phone": {"type": "string", "maxLength": 20},
                "risk_profile": {"type": "string", "enum": ["Low", "Moderate", "High"]}
            }
        },
        "handlers.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handlers.UpdateProfileRequest": {
            "type": "object",
            "required": ["email", "name"],
            "properties": {
                "name": {"type": "string", "maxLength": 100},
                "email": {"type": "string", "maxLength": 255},
                "phone": {"type": "string", "maxLength": 20},
                "risk_profile": {"type": "string", "enum": ["Low", "Moderate", "High"]}
            }
        },
        "handlers.AuthResponse": {
            "type": "object",
            "properties": {
                "user": {"$ref": "#/definitions/models.User"},
                "token": {"type": "string"}
            }
        },
        "handlers.ComputeSnapshotsRequest": {
            "type": "object",
            "required": ["recorded_at"],
            "properties": {"recorded_at": {"type": "string", "format": "date-time"}}
        },
        "models.User": {
            "type": "object",
            "properties": {
                "user_id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "risk_profile": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "models.MutualFund": {
            "type": "object",
            "properties": {
                "fund_id": {"type": "integer"},
                "fund_name": {"type": "string"},
                "fund_type": {"type": "string"},
                "risk_level": {"type": "string"},
                "nav": {"type": "number"},
                "aum": {"type": "number"},
                "expense_ratio": {"type": "number"},
                "isin": {"type": "string"}
            }
        },
        "services.SectorWeight": {
            "type": "object",
            "properties": {
                "sectorId": {"type": "integer"},
                "sectorName": {"type": "string"},
                "percentage": {"type": "number"}
            }
        },
        "services.StockWeight": {
            "type": "object",
            "properties": {
                "stockId": {"type": "integer"},
                "stockName": {"type": "string"},
                "ticker": {"type": "string"},
                "percentage": {"type": "number"}
            }
        },
        "services.FundDetail": {
            "type": "object",
            "properties": {
                "fund_id": {"type": "integer"},
                "fund_name": {"type": "string"},
                "sectors": {"type": "array", "items": {"$ref": "#/definitions/services.SectorWeight"}},
                "stocks": {"type": "array", "items": {"$ref": "#/definitions/services.StockWeight"}},
                "marketCaps": {"type": "array", "items": {"type": "object"}}
            }
        },
        "services.NAVPoint": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "nav": {"type": "number"},
                "changePercentage": {"type": "number"}
            }
        },
        "services.FundPerformance": {
            "type": "object",
            "properties": {
                "fundId": {"type": "integer"},
                "fundName": {"type": "string"},
                "period": {"type": "string"},
                "interval": {"type": "string"},
                "data": {"type": "array", "items": {"$ref": "#/definitions/services.NAVPoint"}}
            }
        },
        "services.FundComparison": {
            "type": "object",
            "properties": {
                "fund1": {"type": "object"},
                "fund2": {"type": "object"},
                "overlapPct": {"type": "number"},
                "sectorComparison": {"type": "array", "items": {"type": "object"}}
            }
        },
        "services.FundOverlapResult": {
            "type": "object",
            "properties": {
                "funds": {"type": "array", "items": {"type": "object"}},
                "stocksOverlap": {"type": "integer"},
                "averageOverlapPercentage": {"type": "number"},
                "commonStocks": {"type": "array", "items": {"type": "string"}}
            }
        },
        "services.PortfolioSummary": {
            "type": "object",
            "properties": {
                "totalValue": {"type": "number"},
                "totalInvested": {"type": "number"},
                "totalReturns": {"type": "number"},
                "percentageGain": {"type": "number"},
                "investments": {"type": "array", "items": {"type": "object"}}
            }
        },
        "services.PortfolioPerformance": {
            "type": "object",
            "properties": {
                "userId": {"type": "integer"},
                "period": {"type": "string"},
                "interval": {"type": "string"},
                "synthetic": {"type": "boolean"},
                "data": {"type": "array", "items": {"type": "object"}}
            }
        },
        "services.SectorAllocation": {
            "type": "object",
            "properties": {
                "totalValue": {"type": "number"},
                "sectors": {"type": "array", "items": {"type": "object"}}
            }
        },
        "services.PortfolioHealth": {
            "type": "object",
            "properties": {
                "diversificationScore": {"type": "number"},
                "riskScore": {"type": "number"},
                "performanceScore": {"type": "number"},
                "recommendations": {"type": "array", "items": {"type": "object"}},
                "totalValue": {"type": "number"},
                "percentageGain": {"type": "number"}
            }
        },
        "services.InvestmentSummary": {
            "type": "object",
            "properties": {
                "userCount": {"type": "integer"},
                "fundCount": {"type": "integer"},
                "totalAUM": {"type": "number"},
                "investmentCount": {"type": "integer"},
                "totalInvested": {"type": "number"},
                "avgReturns": {"type": "number"},
                "topPerformingFund": {"type": "object"},
                "lastUpdated": {"type": "string"}
            }
        },
        "services.InvestmentView": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "userId": {"type": "integer"},
                "fundId": {"type": "integer"},
                "fundName": {"type": "string"},
                "fundType": {"type": "string"},
                "riskLevel": {"type": "string"},
                "amountInvested": {"type": "number"},
                "investmentDate": {"type": "string"},
                "currentValue": {"type": "number"},
                "returns": {"type": "number", "description": "Returns since investment, percent"},
                "returnsAmount": {"type": "number"},
                "nav": {"type": "number"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5001",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "InvestWelth API",
	Description:      "Mutual fund reference data, investments, portfolio performance and portfolio health.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
