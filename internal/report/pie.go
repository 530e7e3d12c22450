package report

import (
	"fmt"
	"strings"
)

// palette are the slice colors, cycled by slice index.
var palette = []string{
	"#22c55e",
	"#38bdf8",
	"#f97316",
	"#a78bfa",
	"#f43f5e",
	"#eab308",
}

// PieStop is one rendering-ready color stop of the category pie.
type PieStop struct {
	Color    string
	StartDeg float64
	EndDeg   float64
}

// String renders the stop for a CSS conic-gradient.
func (s PieStop) String() string {
	return fmt.Sprintf("%s %.2fdeg %.2fdeg", s.Color, s.StartDeg, s.EndDeg)
}

// PieStops converts ordered buckets into contiguous angle spans. The
// spans cover exactly [0, 360] when the total is positive. With an
// all-zero total every stop degenerates to a zero-width span at angle 0,
// no division happens.
func PieStops(buckets []Bucket) []PieStop {
	total := BucketTotal(buckets)

	stops := make([]PieStop, 0, len(buckets))
	offset := 0.0
	for i, bucket := range buckets {
		span := 0.0
		if total.IsPositive() {
			span = bucket.Amount.Div(total).InexactFloat64() * 360
		}

		stops = append(stops, PieStop{
			Color:    palette[i%len(palette)],
			StartDeg: offset,
			EndDeg:   offset + span,
		})
		offset += span
	}

	// Absorb float drift so the last stop closes the circle.
	if len(stops) > 0 && total.IsPositive() {
		stops[len(stops)-1].EndDeg = 360
	}

	return stops
}

// Gradient renders the stops as a CSS conic-gradient value.
func Gradient(stops []PieStop) string {
	parts := make([]string, 0, len(stops))
	for _, stop := range stops {
		parts = append(parts, stop.String())
	}
	return "conic-gradient(" + strings.Join(parts, ", ") + ")"
}
