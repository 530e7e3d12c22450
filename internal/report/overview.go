package report

import (
	"github.com/fireview/backend/internal/firefly"
	"github.com/fireview/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Overview is the fully derived view model for the overview page.
type Overview struct {
	Range types.Range

	// Recent holds all normalized entries, newest first.
	Recent []Entry

	// CurrencyTotals sums all entries per currency, largest first. The
	// first bucket's currency is the primary currency the summary cards
	// report in.
	CurrencyTotals  []Bucket
	PrimaryCurrency string
	PrimaryCount    int

	// Totals over the primary-currency entries.
	TotalSpent  decimal.Decimal
	TotalIncome decimal.Decimal
	DailyPace   decimal.Decimal

	// Category breakdown of the primary-currency expenses, top five plus
	// an "Other" remainder, with the matching pie stops.
	CategorySlices []Bucket
	PieStops       []PieStop
	PieGradient    string

	Budgets []BudgetUsage
}

// OverviewInput carries the freshly fetched collections the overview is
// derived from. Insight totals are optional; when present they override
// the sums computed from the entries, since the upstream has the full
// picture while the entry listing is capped.
type OverviewInput struct {
	Entries       []firefly.Entry
	Budgets       []firefly.Budget
	BudgetLimits  []firefly.BudgetLimit
	ExpenseTotals []firefly.InsightTotal
	IncomeTotals  []firefly.InsightTotal
}

// BuildOverview derives the overview view model from one fetched
// snapshot.
func BuildOverview(in OverviewInput, r types.Range) Overview {
	normalized := Normalize(in.Entries)

	currencyTotals := SumBy(normalized, CurrencyKey, nil, UnknownCurrency)
	counts := CountBy(normalized, CurrencyKey, UnknownCurrency)

	overview := Overview{
		Range:          r,
		CurrencyTotals: currencyTotals,
		Budgets:        BudgetUsages(in.Budgets, in.BudgetLimits),
	}

	focus := normalized
	if len(currencyTotals) > 0 {
		primary := currencyTotals[0].Key
		overview.PrimaryCurrency = primary
		overview.PrimaryCount = counts[primary]

		focus = make([]Entry, 0, len(normalized))
		for _, entry := range normalized {
			key := entry.CurrencyCode
			if key == "" {
				key = UnknownCurrency
			}
			if key == primary {
				focus = append(focus, entry)
			}
		}
	}

	for _, entry := range focus {
		if entry.IsExpense() {
			overview.TotalSpent = overview.TotalSpent.Add(entry.AmountValue)
		}
		if entry.IsIncome() {
			overview.TotalIncome = overview.TotalIncome.Add(entry.AmountValue)
		}
	}

	// The insight endpoints see the whole range, the entry listing is
	// capped by its page size. Prefer their totals when they carry the
	// primary currency.
	if total, ok := totalFor(in.ExpenseTotals, overview.PrimaryCurrency); ok {
		overview.TotalSpent = total
	}
	if total, ok := totalFor(in.IncomeTotals, overview.PrimaryCurrency); ok {
		overview.TotalIncome = total
	}

	if overview.PrimaryCurrency != "" {
		overview.DailyPace = overview.TotalSpent.Div(decimal.NewFromInt(int64(r.Days())))
	}

	var expenses []Entry
	for _, entry := range focus {
		if entry.IsExpense() {
			expenses = append(expenses, entry)
		}
	}

	overview.CategorySlices = TopWithOther(SumBy(expenses, CategoryKey, nil, Uncategorized))
	overview.PieStops = PieStops(overview.CategorySlices)
	overview.PieGradient = Gradient(overview.PieStops)

	overview.Recent = SortByDateDesc(normalized)

	return overview
}

// SortByDateDesc returns the entries sorted newest first. The input is
// not modified.
func SortByDateDesc(entries []Entry) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)

	slices.SortStableFunc(sorted, func(a, b Entry) int {
		return b.Date.Compare(a.Date)
	})

	return sorted
}

func totalFor(totals []firefly.InsightTotal, currencyCode string) (decimal.Decimal, bool) {
	if currencyCode == "" {
		return decimal.Zero, false
	}

	for _, total := range totals {
		if total.CurrencyCode == currencyCode {
			return total.Amount, true
		}
	}

	return decimal.Zero, false
}
