package firefly

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TransactionParams are the parameters for listing transactions.
type TransactionParams struct {
	Start time.Time
	End   time.Time

	// Type filters by transaction type. Empty and "all" list everything.
	Type string

	Page  int
	Limit int
}

// ListTransactions lists the transactions in a date range.
func (c *Client) ListTransactions(ctx context.Context, p TransactionParams) ([]Entry, Pagination, error) {
	params := url.Values{}
	if !p.Start.IsZero() {
		params.Set("start", dateParam(p.Start))
	}
	if !p.End.IsZero() {
		params.Set("end", dateParam(p.End))
	}
	if p.Type != "" && p.Type != "all" {
		params.Set("type", p.Type)
	}
	if p.Page > 0 {
		params.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		params.Set("limit", strconv.Itoa(p.Limit))
	}

	var payload transactionArray
	if err := c.get(ctx, "/v1/transactions", params, &payload); err != nil {
		return nil, Pagination{}, err
	}

	entries, pagination := flattenTransactions(payload)
	return entries, pagination, nil
}

// SearchTransactions runs a full text search against the transaction
// search endpoint.
func (c *Client) SearchTransactions(ctx context.Context, query string, page, limit int) ([]Entry, Pagination, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))

	var payload transactionArray
	if err := c.get(ctx, "/v1/search/transactions", params, &payload); err != nil {
		return nil, Pagination{}, err
	}

	entries, pagination := flattenTransactions(payload)
	return entries, pagination, nil
}

// flattenTransactions turns the wire payload into one Entry per split.
// Later splits of a multi-split group get an index suffix so ids stay
// unique when merging result sets.
func flattenTransactions(payload transactionArray) ([]Entry, Pagination) {
	entries := make([]Entry, 0, len(payload.Data))
	for _, read := range payload.Data {
		for i, split := range read.Attributes.Transactions {
			id := read.ID
			if i > 0 {
				id = fmt.Sprintf("%s-%d", read.ID, i)
			}

			title := split.Description
			if title == "" {
				title = deref(read.Attributes.GroupTitle)
			}

			entries = append(entries, Entry{
				ID:                    id,
				Title:                 title,
				Date:                  split.Date,
				Amount:                split.Amount,
				ForeignAmount:         deref(split.ForeignAmount),
				CurrencyCode:          deref(split.CurrencyCode),
				CurrencySymbol:        deref(split.CurrencySymbol),
				ForeignCurrencySymbol: deref(split.ForeignCurrencySymbol),
				Type:                  split.Type,
				Source:                deref(split.SourceName),
				Destination:           deref(split.DestinationName),
				Category:              deref(split.CategoryName),
				Budget:                deref(split.BudgetName),
				Tags:                  split.Tags,
			})
		}
	}

	return entries, Pagination{
		Total:       payload.Meta.Pagination.Total,
		CurrentPage: payload.Meta.Pagination.CurrentPage,
		TotalPages:  payload.Meta.Pagination.TotalPages,
	}
}

// SearchQuery builds a query string for the transaction search endpoint.
type SearchQuery struct {
	Start     time.Time
	End       time.Time
	Type      string
	AccountID string
	Category  string
	Tag       string
}

var whitespace = regexp.MustCompile(`\s`)

// String renders the query in the search syntax the API expects.
func (q SearchQuery) String() string {
	tokens := []string{
		"date_after:" + dateParam(q.Start),
		"date_before:" + dateParam(q.End),
	}

	if q.Type != "" && q.Type != "all" {
		tokens = append(tokens, "type:"+q.Type)
	}
	if q.AccountID != "" {
		tokens = append(tokens, "account_id:"+q.AccountID)
	}
	if q.Category != "" {
		tokens = append(tokens, "category_is:"+searchValue(q.Category))
	}
	if q.Tag != "" {
		tokens = append(tokens, "tag_is:"+searchValue(q.Tag))
	}

	return strings.Join(tokens, " ")
}

// searchValue escapes quotes and wraps values containing whitespace.
func searchValue(value string) string {
	escaped := strings.ReplaceAll(strings.TrimSpace(value), `"`, `\"`)
	if whitespace.MatchString(escaped) {
		return `"` + escaped + `"`
	}
	return escaped
}
