package firefly

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Budgets lists all budgets with their spending in the date range.
func (c *Client) Budgets(ctx context.Context, start, end time.Time) ([]Budget, error) {
	params := url.Values{}
	params.Set("start", dateParam(start))
	params.Set("end", dateParam(end))
	params.Set("limit", strconv.Itoa(listLimit))

	var payload budgetArray
	if err := c.get(ctx, "/v1/budgets", params, &payload); err != nil {
		return nil, err
	}

	budgets := make([]Budget, 0, len(payload.Data))
	for _, read := range payload.Data {
		attr := read.Attributes

		// The spent array holds one sum per currency. The first entry
		// is the budget's primary currency.
		spent := decimal.Zero
		currencyCode := deref(attr.CurrencyCode)
		currencySymbol := deref(attr.CurrencySymbol)
		if len(attr.Spent) > 0 {
			first := attr.Spent[0]
			if first.Sum != nil {
				spent = parseDecimal(*first.Sum)
			}
			if first.CurrencyCode != nil {
				currencyCode = *first.CurrencyCode
			}
			if first.CurrencySymbol != nil {
				currencySymbol = *first.CurrencySymbol
			}
		}

		auto := decimal.Zero
		if attr.AutoBudgetAmount != nil {
			auto = parseDecimal(*attr.AutoBudgetAmount)
		}

		budgets = append(budgets, Budget{
			ID:             read.ID,
			Name:           attr.Name,
			Spent:          spent,
			CurrencyCode:   currencyCode,
			CurrencySymbol: currencySymbol,
			AutoLimit:      auto,
		})
	}

	return budgets, nil
}

// BudgetLimits lists the explicit budget limits intersecting the range.
func (c *Client) BudgetLimits(ctx context.Context, start, end time.Time) ([]BudgetLimit, error) {
	params := url.Values{}
	params.Set("start", dateParam(start))
	params.Set("end", dateParam(end))

	var payload budgetLimitArray
	if err := c.get(ctx, "/v1/budget-limits", params, &payload); err != nil {
		return nil, err
	}

	limits := make([]BudgetLimit, 0, len(payload.Data))
	for _, read := range payload.Data {
		limits = append(limits, BudgetLimit{
			BudgetID:       read.Attributes.BudgetID,
			Amount:         parseDecimal(read.Attributes.Amount),
			CurrencyCode:   deref(read.Attributes.CurrencyCode),
			CurrencySymbol: deref(read.Attributes.CurrencySymbol),
		})
	}

	return limits, nil
}
