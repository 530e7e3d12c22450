package firefly

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wire types for the Firefly III JSON:API payloads. Fields the dashboard
// does not consume are not mapped. Optional and nullable upstream fields
// are pointers so missing values decode to nil instead of failing.

type transactionSplit struct {
	Amount                string    `json:"amount"`
	Date                  time.Time `json:"date"`
	Description           string    `json:"description"`
	Type                  string    `json:"type"`
	ForeignAmount         *string   `json:"foreign_amount"`
	CurrencyCode          *string   `json:"currency_code"`
	CurrencySymbol        *string   `json:"currency_symbol"`
	ForeignCurrencySymbol *string   `json:"foreign_currency_symbol"`
	SourceName            *string   `json:"source_name"`
	DestinationName       *string   `json:"destination_name"`
	CategoryName          *string   `json:"category_name"`
	BudgetName            *string   `json:"budget_name"`
	Tags                  []string  `json:"tags"`
}

type transactionAttributes struct {
	Transactions []transactionSplit `json:"transactions"`
	GroupTitle   *string            `json:"group_title"`
}

type transactionRead struct {
	ID         string                `json:"id"`
	Attributes transactionAttributes `json:"attributes"`
}

type pagination struct {
	Total       int `json:"total"`
	Count       int `json:"count"`
	PerPage     int `json:"per_page"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

type meta struct {
	Pagination pagination `json:"pagination"`
}

type transactionArray struct {
	Data []transactionRead `json:"data"`
	Meta meta              `json:"meta"`
}

type currencySum struct {
	CurrencyCode   *string `json:"currency_code"`
	CurrencySymbol *string `json:"currency_symbol"`
	Sum            *string `json:"sum"`
}

type budgetAttributes struct {
	Name             string        `json:"name"`
	Active           *bool         `json:"active"`
	AutoBudgetAmount *string       `json:"auto_budget_amount"`
	CurrencyCode     *string       `json:"currency_code"`
	CurrencySymbol   *string       `json:"currency_symbol"`
	Spent            []currencySum `json:"spent"`
}

type budgetRead struct {
	ID         string           `json:"id"`
	Attributes budgetAttributes `json:"attributes"`
}

type budgetArray struct {
	Data []budgetRead `json:"data"`
}

type budgetLimitAttributes struct {
	BudgetID       string  `json:"budget_id"`
	Amount         string  `json:"amount"`
	CurrencyCode   *string `json:"currency_code"`
	CurrencySymbol *string `json:"currency_symbol"`
}

type budgetLimitRead struct {
	ID         string                `json:"id"`
	Attributes budgetLimitAttributes `json:"attributes"`
}

type budgetLimitArray struct {
	Data []budgetLimitRead `json:"data"`
}

type accountAttributes struct {
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Active       *bool   `json:"active"`
	CurrencyCode *string `json:"currency_code"`
}

type accountRead struct {
	ID         string            `json:"id"`
	Attributes accountAttributes `json:"attributes"`
}

type accountArray struct {
	Data []accountRead `json:"data"`
}

type categoryAttributes struct {
	Name string `json:"name"`
}

type categoryRead struct {
	ID         string             `json:"id"`
	Attributes categoryAttributes `json:"attributes"`
}

type categoryArray struct {
	Data []categoryRead `json:"data"`
}

type tagAttributes struct {
	Tag string `json:"tag"`
}

type tagRead struct {
	ID         string        `json:"id"`
	Attributes tagAttributes `json:"attributes"`
}

type tagArray struct {
	Data []tagRead `json:"data"`
}

type insightEntry struct {
	ID              *string  `json:"id"`
	Name            *string  `json:"name"`
	Difference      *string  `json:"difference"`
	DifferenceFloat *float64 `json:"difference_float"`
	CurrencyCode    *string  `json:"currency_code"`
}

// Flattened domain types. One Entry per transaction split, carrying the
// raw amount strings; parsing into numbers happens in the report package.

// Entry is one transaction split flattened for the dashboard.
type Entry struct {
	ID                    string
	Title                 string
	Date                  time.Time
	Amount                string
	ForeignAmount         string
	CurrencyCode          string
	CurrencySymbol        string
	ForeignCurrencySymbol string
	Type                  string
	Source                string
	Destination           string
	Category              string
	Budget                string
	Tags                  []string
}

// Pagination describes the upstream paging of a transaction listing.
type Pagination struct {
	Total       int
	CurrentPage int
	TotalPages  int
}

// Budget is a budget with its spending for the requested range.
type Budget struct {
	ID             string
	Name           string
	Spent          decimal.Decimal
	CurrencyCode   string
	CurrencySymbol string
	AutoLimit      decimal.Decimal
}

// BudgetLimit is an explicit per-period limit for a budget.
type BudgetLimit struct {
	BudgetID       string
	Amount         decimal.Decimal
	CurrencyCode   string
	CurrencySymbol string
}

// Account is an account as offered in the account filter.
type Account struct {
	ID           string
	Name         string
	Type         string
	CurrencyCode string
}

// Category is a transaction category.
type Category struct {
	ID   string
	Name string
}

// Tag is a transaction tag.
type Tag struct {
	ID   string
	Name string
}

// InsightTotal is one pre-summed total per currency from an insight
// endpoint.
type InsightTotal struct {
	CurrencyCode string
	Amount       decimal.Decimal
}

// InsightGroup is one pre-summed group total, e.g. per category.
type InsightGroup struct {
	ID           string
	Name         string
	CurrencyCode string
	Amount       decimal.Decimal
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// parseDecimal parses an upstream amount string into its absolute decimal
// value. Malformed values default to zero, they never fail the request.
func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d.Abs()
}
