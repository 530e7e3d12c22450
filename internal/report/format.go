package report

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatAmount renders an amount for display. A known ISO currency code
// wins, then a bare symbol prefix, then the unlabeled number.
func FormatAmount(amount decimal.Decimal, code, symbol string) string {
	if code != "" {
		if unit, err := currency.ParseISO(code); err == nil {
			return printer.Sprintf("%v", currency.Symbol(unit.Amount(amount.InexactFloat64())))
		}
	}

	if symbol != "" {
		return symbol + amount.StringFixed(2)
	}

	return amount.StringFixed(2)
}

// FormatDate renders a transaction date for table rows.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 02")
}
