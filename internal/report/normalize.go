// Package report turns raw Firefly III collections into the view models
// the pages render: per-currency totals, category breakdowns with pie
// chart angles, and budget usage.
package report

import (
	"github.com/fireview/backend/internal/firefly"
	"github.com/shopspring/decimal"
)

// Entry is a transaction entry with its amount strings parsed.
//
// AmountValue is always the non-negative magnitude; the direction of the
// money flow is carried by Type and the source/destination accounts, not
// by the sign.
type Entry struct {
	firefly.Entry

	AmountValue        decimal.Decimal
	ForeignAmountValue *decimal.Decimal
}

// Normalize parses the amount strings of all entries. A malformed amount
// becomes zero, never an error.
func Normalize(entries []firefly.Entry) []Entry {
	normalized := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		normalized = append(normalized, Entry{
			Entry:              entry,
			AmountValue:        parseAmount(entry.Amount),
			ForeignAmountValue: parseOptionalAmount(entry.ForeignAmount),
		})
	}
	return normalized
}

// IsExpense reports whether the entry moves money out.
func (e Entry) IsExpense() bool {
	return e.Type == "withdrawal" || e.Type == "expense"
}

// IsIncome reports whether the entry moves money in.
func (e Entry) IsIncome() bool {
	return e.Type == "deposit" || e.Type == "income"
}

func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d.Abs()
}

func parseOptionalAmount(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}

	abs := d.Abs()
	return &abs
}
