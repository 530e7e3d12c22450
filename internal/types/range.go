package types

import (
	"time"
)

// Preset is a named shorthand for a date range.
type Preset string

const (
	PresetLast30Days Preset = "last-30-days"
	PresetLast90Days Preset = "last-90-days"
	PresetAllData    Preset = "all-data"
	PresetMonth      Preset = "month"
)

// allDataStart is the epoch floor used for the "all-data" preset.
var allDataStart = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// ParsePreset returns the Preset for a token. Unknown or empty tokens
// fall back to PresetMonth.
func ParsePreset(s string) Preset {
	switch Preset(s) {
	case PresetLast30Days, PresetLast90Days, PresetAllData, PresetMonth:
		return Preset(s)
	default:
		return PresetMonth
	}
}

// Range is a concrete inclusive date interval resolved from a preset.
type Range struct {
	Start  time.Time
	End    time.Time
	Preset Preset

	// Month is set when Preset is PresetMonth and holds the normalized
	// month the range covers.
	Month Month
}

// Resolve turns a preset token and an optional "YYYY-MM" month string into
// a concrete date interval relative to now. Malformed month strings never
// error, they fall back to the month now is in.
func Resolve(preset Preset, month string, now time.Time) Range {
	switch preset {
	case PresetLast30Days:
		return Range{Start: now.AddDate(0, 0, -30), End: now, Preset: preset}
	case PresetLast90Days:
		return Range{Start: now.AddDate(0, 0, -90), End: now, Preset: preset}
	case PresetAllData:
		return Range{Start: allDataStart, End: now, Preset: preset}
	}

	m, err := ParseMonth(month)
	if err != nil {
		m = MonthOf(now)
	}

	return Range{
		Start:  m.FirstDay(),
		End:    m.LastDay(),
		Preset: PresetMonth,
		Month:  m,
	}
}

// Label returns the human readable description of the range.
func (r Range) Label() string {
	switch r.Preset {
	case PresetLast30Days:
		return "Last 30 days"
	case PresetLast90Days:
		return "Last 90 days"
	case PresetAllData:
		return "All data"
	default:
		return time.Time(r.Month).Format("January 2006")
	}
}

// Days returns the number of days the range spans, at least 1.
func (r Range) Days() int {
	days := int(r.End.Sub(r.Start).Round(24*time.Hour)/(24*time.Hour)) + 1
	if days < 1 {
		return 1
	}
	return days
}

// Token returns the value the range encodes to in a URL, e.g.
// "last-30-days" or "month:2024-02".
func (r Range) Token() string {
	if r.Preset == PresetMonth {
		return string(PresetMonth) + ":" + r.Month.String()
	}
	return string(r.Preset)
}
