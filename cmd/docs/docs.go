// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/performup_backend/main.go -o cmd/docs
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
        "/ledger/payments": {"post": {"tags": ["ledger"], "summary": "Book a payment"}},
        "/ledger/expenses": {"post": {"tags": ["ledger"], "summary": "Book an expense"}},
        "/ledger/missions/payments": {"post": {"tags": ["ledger"], "summary": "Pay a mission"}},
        "/ledger/fx-exchanges": {"post": {"tags": ["ledger"], "summary": "Book a currency exchange"}},
        "/ledger/transfers": {"post": {"tags": ["ledger"], "summary": "Book a transfer"}},
        "/ledger/distributions": {"post": {"tags": ["ledger"], "summary": "Book a profit distribution"}},
        "/ledger/quotes/numbers": {"post": {"tags": ["ledger"], "summary": "Mint a quote number"}},
        "/ledger/transactions": {"get": {"tags": ["ledger"], "summary": "List ledger transactions"}},
        "/ledger/transactions/{transactionID}": {"get": {"tags": ["ledger"], "summary": "Get a ledger transaction"}},
        "/ledger/accounts/{accountID}/balance": {"get": {"tags": ["ledger"], "summary": "Get an account balance"}},
        "/ledger/balances": {"get": {"tags": ["ledger"], "summary": "Get totals by currency"}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "PerformUp Ledger API",
	Description:      "Transaction journal, balances and reference numbers for the PerformUp platform.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
