package firefly

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// InsightKind selects which insight totals endpoint to query.
type InsightKind string

const (
	InsightExpense  InsightKind = "expense"
	InsightIncome   InsightKind = "income"
	InsightTransfer InsightKind = "transfer"
)

func rangeParams(start, end time.Time) url.Values {
	params := url.Values{}
	params.Set("start", dateParam(start))
	params.Set("end", dateParam(end))
	return params
}

// InsightTotals returns the pre-summed totals per currency for a
// transaction type in the date range.
func (c *Client) InsightTotals(ctx context.Context, kind InsightKind, start, end time.Time) ([]InsightTotal, error) {
	var payload []insightEntry
	path := fmt.Sprintf("/v1/insight/%s/total", kind)
	if err := c.get(ctx, path, rangeParams(start, end), &payload); err != nil {
		return nil, err
	}

	return flattenInsightTotals(payload), nil
}

// InsightExpenseByCategory returns the expense sums per category in the
// date range.
func (c *Client) InsightExpenseByCategory(ctx context.Context, start, end time.Time) ([]InsightGroup, error) {
	var payload []insightEntry
	if err := c.get(ctx, "/v1/insight/expense/category", rangeParams(start, end), &payload); err != nil {
		return nil, err
	}

	groups := make([]InsightGroup, 0, len(payload))
	for _, entry := range payload {
		groups = append(groups, InsightGroup{
			ID:           deref(entry.ID),
			Name:         deref(entry.Name),
			CurrencyCode: deref(entry.CurrencyCode),
			Amount:       insightAmount(entry),
		})
	}

	return groups, nil
}

// InsightExpenseNoCategory returns the expense sums for transactions
// without a category in the date range.
func (c *Client) InsightExpenseNoCategory(ctx context.Context, start, end time.Time) ([]InsightTotal, error) {
	var payload []insightEntry
	if err := c.get(ctx, "/v1/insight/expense/no-category", rangeParams(start, end), &payload); err != nil {
		return nil, err
	}

	return flattenInsightTotals(payload), nil
}

func flattenInsightTotals(payload []insightEntry) []InsightTotal {
	totals := make([]InsightTotal, 0, len(payload))
	for _, entry := range payload {
		totals = append(totals, InsightTotal{
			CurrencyCode: deref(entry.CurrencyCode),
			Amount:       insightAmount(entry),
		})
	}
	return totals
}

// insightAmount prefers the string difference and falls back to the
// float. Differences are signed upstream, the dashboard reports
// magnitudes.
func insightAmount(entry insightEntry) decimal.Decimal {
	if entry.Difference != nil {
		return parseDecimal(*entry.Difference)
	}
	if entry.DifferenceFloat != nil {
		return decimal.NewFromFloat(*entry.DifferenceFloat).Abs()
	}
	return decimal.Zero
}
