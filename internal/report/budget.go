package report

import (
	"github.com/fireview/backend/internal/firefly"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

var hundred = decimal.NewFromInt(100)

// BudgetUsage is a budget joined with its limit for the period plus the
// derived usage numbers.
type BudgetUsage struct {
	firefly.Budget

	// Limit is the explicit budget limit when one exists, otherwise the
	// auto-budget amount, otherwise zero. Zero renders as "no limit set".
	Limit decimal.Decimal

	// Currency of the limit for display: explicit limit currency first,
	// then the budget's own currency.
	LimitCurrencyCode   string
	LimitCurrencySymbol string

	// Percent is spent/limit clamped to [0, 100] for the progress bar.
	// The uncapped overage is carried in OverBy.
	Percent float64
	OverBy  decimal.Decimal
	IsOver  bool
}

// BudgetUsages joins budgets with their explicit limits and computes
// usage. The result is sorted by spent, descending.
func BudgetUsages(budgets []firefly.Budget, limits []firefly.BudgetLimit) []BudgetUsage {
	limitByBudget := make(map[string]firefly.BudgetLimit, len(limits))
	for _, limit := range limits {
		limitByBudget[limit.BudgetID] = limit
	}

	usages := make([]BudgetUsage, 0, len(budgets))
	for _, budget := range budgets {
		usage := BudgetUsage{
			Budget:              budget,
			Limit:               budget.AutoLimit,
			LimitCurrencyCode:   budget.CurrencyCode,
			LimitCurrencySymbol: budget.CurrencySymbol,
		}

		if limit, ok := limitByBudget[budget.ID]; ok {
			usage.Limit = limit.Amount
			if limit.CurrencyCode != "" {
				usage.LimitCurrencyCode = limit.CurrencyCode
			}
			if limit.CurrencySymbol != "" {
				usage.LimitCurrencySymbol = limit.CurrencySymbol
			}
		}

		if usage.Limit.IsPositive() {
			percent := budget.Spent.Div(usage.Limit).Mul(hundred)
			if percent.GreaterThan(hundred) {
				percent = hundred
			}
			usage.Percent = percent.InexactFloat64()

			if over := budget.Spent.Sub(usage.Limit); over.IsPositive() {
				usage.OverBy = over
				usage.IsOver = true
			} else {
				usage.OverBy = decimal.Zero
			}
		}

		usages = append(usages, usage)
	}

	slices.SortStableFunc(usages, func(a, b BudgetUsage) int {
		return b.Spent.Cmp(a.Spent)
	})

	return usages
}
