package render

import (
	"math"

	"github.com/pterm/pterm"
)

var (
	// ScaleLow fills the location with the lowest average salary
	ScaleLow = pterm.NewRGB(0xB3, 0xCC, 0x8F)
	// ScaleHigh fills the location with the highest average salary
	ScaleHigh = pterm.NewRGB(0x1A, 0x1F, 0x16)
	// NoDataFill marks regions without records
	NoDataFill = pterm.NewRGB(0x9E, 0x9E, 0x9E)
	// HighlightFill marks the clicked region
	HighlightFill = pterm.NewRGB(0xFE, 0xCD, 0xAA)
)

// LegendGrades are the lower bounds of the legend rows.
var LegendGrades = []float64{0, 50000, 100000, 150000, 200000, 250000}

// ColorScale maps an average salary linearly onto ScaleLow..ScaleHigh over the
// domain [min, max] of the per-location averages.
type ColorScale struct {
	Min   float64
	Max   float64
	valid bool
}

// NewColorScale builds the scale over the given averages. With no values the
// scale is empty and every fill is NoDataFill.
func NewColorScale(values map[string]float64) ColorScale {
	s := ColorScale{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, v := range values {
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
		s.valid = true
	}
	if !s.valid {
		return ColorScale{}
	}
	return s
}

// Empty reports whether the scale has no domain
func (s ColorScale) Empty() bool {
	return !s.valid
}

// Color returns the scale colour for v, clamped to the domain.
func (s ColorScale) Color(v float64) pterm.RGB {
	if !s.valid || s.Max == s.Min {
		return ScaleLow
	}
	v = math.Max(s.Min, math.Min(s.Max, v))
	if v == s.Min {
		return ScaleLow
	}
	if v == s.Max {
		return ScaleHigh
	}
	return ScaleLow.Fade(float32(s.Min), float32(s.Max), float32(v), ScaleHigh)
}

// Fill returns the region fill for an average that may be absent.
func (s ColorScale) Fill(avg float64, ok bool) pterm.RGB {
	if !ok || !s.valid {
		return NoDataFill
	}
	return s.Color(avg)
}

// Swatch draws a small block in c.
func Swatch(c pterm.RGB) string {
	return c.Sprint("██")
}
