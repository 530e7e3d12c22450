// Package filter maps between the URL query string and the typed filter
// state of the pages. All state lives in the URL; decoding never fails,
// out-of-range values fall back to their defaults.
package filter

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fireview/backend/internal/types"
	"golang.org/x/exp/slices"
)

// PageSizes are the allowed page sizes for the transactions table.
var PageSizes = []int{25, 50, 100}

const DefaultPageSize = 50

// transactionTypes are the accepted values for the type filter, matching
// the upstream API's type parameter.
var transactionTypes = []string{
	"all",
	"withdrawal", "withdrawals", "expense",
	"deposit", "deposits", "income",
	"transfer", "transfers",
	"opening_balance", "reconciliation",
	"special", "specials",
}

// State is the resolved filter and pagination state of a page.
type State struct {
	// Type filters by transaction type, "all" means no filter.
	Type string

	// Preset and Month select the date range. Month is only meaningful
	// with PresetMonth and holds a normalized "YYYY-MM" string, empty
	// for the current month.
	Preset types.Preset
	Month  string

	// Account is an account id, empty for all accounts.
	Account string

	// Categories are category ids, Labels are tag names.
	Categories []string
	Labels     []string

	Page  int
	Limit int
}

// Default returns the state a page starts from: current month, all
// types, first page.
func Default() State {
	return State{
		Type:   "all",
		Preset: types.PresetMonth,
		Page:   1,
		Limit:  DefaultPageSize,
	}
}

// Decode reads the state from query parameters. Unknown or out-of-enum
// values silently fall back to the defaults.
func Decode(query url.Values) State {
	state := Default()

	if t := query.Get("type"); slices.Contains(transactionTypes, t) {
		state.Type = t
	}

	state.Preset = types.ParsePreset(query.Get("preset"))
	if state.Preset == types.PresetMonth {
		if month, err := types.ParseMonth(query.Get("month")); err == nil {
			state.Month = month.String()
		}
	}

	state.Account = query.Get("account")

	// Multi-value parameters arrive comma-joined from links and repeated
	// from form submits, both collapse to the same selection.
	state.Categories = splitSelections(strings.Join(query["categories"], ","))
	state.Labels = splitSelections(strings.Join(query["labels"], ","))

	if page, err := strconv.Atoi(query.Get("page")); err == nil && page >= 1 {
		state.Page = page
	}

	if limit, err := strconv.Atoi(query.Get("limit")); err == nil && slices.Contains(PageSizes, limit) {
		state.Limit = limit
	}

	return state
}

// Encode renders the state as query parameters. Parameters at their
// default are omitted so URLs stay minimal and shareable. Explicit
// start/end leftovers are never carried: the preset is the only source
// of the date range.
func (s State) Encode() url.Values {
	query := url.Values{}

	if s.Type != "" && s.Type != "all" {
		query.Set("type", s.Type)
	}

	if s.Preset != types.PresetMonth {
		query.Set("preset", string(s.Preset))
	} else if s.Month != "" {
		query.Set("preset", string(types.PresetMonth))
		query.Set("month", s.Month)
	}

	if s.Account != "" {
		query.Set("account", s.Account)
	}
	if len(s.Categories) > 0 {
		query.Set("categories", strings.Join(s.Categories, ","))
	}
	if len(s.Labels) > 0 {
		query.Set("labels", strings.Join(s.Labels, ","))
	}

	if s.Page > 1 {
		query.Set("page", strconv.Itoa(s.Page))
	}
	if s.Limit != DefaultPageSize && slices.Contains(PageSizes, s.Limit) {
		query.Set("limit", strconv.Itoa(s.Limit))
	}

	return query
}

// QueryString renders the encoded state with a leading "?", or an empty
// string when everything is at its default.
func (s State) QueryString() string {
	encoded := s.Encode().Encode()
	if encoded == "" {
		return ""
	}
	return "?" + encoded
}

// Range resolves the date range the state selects, relative to now.
func (s State) Range(now time.Time) types.Range {
	return types.Resolve(s.Preset, s.Month, now)
}

// splitSelections splits a comma-joined multi-value parameter and drops
// empty segments.
func splitSelections(value string) []string {
	if value == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// WithRangeToken returns a copy with the date range set from a combined
// token ("last-30-days" or "month:2024-02"). Changing the range resets
// the page, stale pagination does not survive a range switch.
func (s State) WithRangeToken(token string) State {
	preset, month, _ := strings.Cut(token, ":")

	s.Preset = types.ParsePreset(preset)
	s.Month = ""
	if s.Preset == types.PresetMonth {
		if m, err := types.ParseMonth(month); err == nil {
			s.Month = m.String()
		}
	}

	s.Page = 1
	return s
}

// WithType returns a copy filtered to a transaction type, back on the
// first page.
func (s State) WithType(transactionType string) State {
	if !slices.Contains(transactionTypes, transactionType) {
		transactionType = "all"
	}
	s.Type = transactionType
	s.Page = 1
	return s
}

// WithPage returns a copy on the given page.
func (s State) WithPage(page int) State {
	if page < 1 {
		page = 1
	}
	s.Page = page
	return s
}

// RangeToken is the combined token the range selector encodes to.
func (s State) RangeToken() string {
	if s.Preset == types.PresetMonth {
		return string(types.PresetMonth) + ":" + s.Month
	}
	return string(s.Preset)
}
