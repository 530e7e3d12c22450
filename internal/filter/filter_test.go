package filter_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/fireview/backend/internal/filter"
	"github.com/fireview/backend/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestDecodeDefaults(t *testing.T) {
	state := filter.Decode(url.Values{})

	assert.Equal(t, filter.Default(), state)
	assert.Equal(t, "all", state.Type)
	assert.Equal(t, types.PresetMonth, state.Preset)
	assert.Equal(t, 1, state.Page)
	assert.Equal(t, filter.DefaultPageSize, state.Limit)
}

func TestDecodeFullState(t *testing.T) {
	query := url.Values{
		"type":       {"withdrawal"},
		"preset":     {"month"},
		"month":      {"2024-02"},
		"account":    {"3"},
		"categories": {"1,7"},
		"labels":     {"vacation,food"},
		"page":       {"4"},
		"limit":      {"100"},
	}

	state := filter.Decode(query)

	assert.Equal(t, "withdrawal", state.Type)
	assert.Equal(t, types.PresetMonth, state.Preset)
	assert.Equal(t, "2024-02", state.Month)
	assert.Equal(t, "3", state.Account)
	assert.Equal(t, []string{"1", "7"}, state.Categories)
	assert.Equal(t, []string{"vacation", "food"}, state.Labels)
	assert.Equal(t, 4, state.Page)
	assert.Equal(t, 100, state.Limit)
}

func TestDecodeFallsBackOnGarbage(t *testing.T) {
	query := url.Values{
		"type":   {"everything"},
		"preset": {"yesteryear"},
		"month":  {"not-a-month"},
		"page":   {"0"},
		"limit":  {"999"},
	}

	state := filter.Decode(query)

	assert.Equal(t, "all", state.Type)
	assert.Equal(t, types.PresetMonth, state.Preset)
	assert.Empty(t, state.Month, "malformed month means current month")
	assert.Equal(t, 1, state.Page)
	assert.Equal(t, filter.DefaultPageSize, state.Limit)
}

func TestDecodeDropsEmptySelections(t *testing.T) {
	state := filter.Decode(url.Values{"categories": {",1,,2,"}})
	assert.Equal(t, []string{"1", "2"}, state.Categories)
}

func TestDecodeIgnoresMonthForOtherPresets(t *testing.T) {
	state := filter.Decode(url.Values{"preset": {"last-30-days"}, "month": {"2024-02"}})

	assert.Equal(t, types.PresetLast30Days, state.Preset)
	assert.Empty(t, state.Month)
}

func TestEncodeOmitsDefaults(t *testing.T) {
	assert.Empty(t, filter.Default().Encode())
	assert.Equal(t, "", filter.Default().QueryString())
}

func TestEncodeRoundTrip(t *testing.T) {
	tests := []filter.State{
		filter.Default(),
		{Type: "deposit", Preset: types.PresetLast90Days, Page: 2, Limit: 25},
		{Type: "all", Preset: types.PresetMonth, Month: "2023-11", Page: 1, Limit: 50,
			Account: "9", Categories: []string{"4", "5"}, Labels: []string{"a b"}},
		{Type: "all", Preset: types.PresetAllData, Page: 12, Limit: 100},
	}

	for _, state := range tests {
		decoded := filter.Decode(state.Encode())
		assert.Equal(t, state, decoded, "round trip for %+v", state)
	}
}

func TestEncodeMonthCarriesPreset(t *testing.T) {
	state := filter.Default()
	state.Month = "2024-02"

	query := state.Encode()
	assert.Equal(t, "month", query.Get("preset"))
	assert.Equal(t, "2024-02", query.Get("month"))
}

func TestWithRangeTokenResetsPage(t *testing.T) {
	state := filter.Default().WithPage(7).WithRangeToken("last-90-days")

	assert.Equal(t, types.PresetLast90Days, state.Preset)
	assert.Equal(t, 1, state.Page, "switching the range goes back to page one")
}

func TestWithRangeTokenMonth(t *testing.T) {
	state := filter.Default().WithRangeToken("month:2024-02")

	assert.Equal(t, types.PresetMonth, state.Preset)
	assert.Equal(t, "2024-02", state.Month)
	assert.Equal(t, "month:2024-02", state.RangeToken())
}

func TestWithTypeResetsPage(t *testing.T) {
	state := filter.Default().WithPage(3).WithType("transfer")

	assert.Equal(t, "transfer", state.Type)
	assert.Equal(t, 1, state.Page)

	state = state.WithType("bogus")
	assert.Equal(t, "all", state.Type)
}

func TestRange(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	state := filter.Default().WithRangeToken("month:2024-02")
	r := state.Range(now)

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), r.End)
}
