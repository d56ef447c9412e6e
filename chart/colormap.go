// SPDX-License-Identifier: MIT
// Package: lvplot/chart
//
// colormap.go — piecewise colormaps blended in CIE L*a*b*.

package chart

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Colormap maps t ∈ [0,1] to a color by blending between evenly spaced stops.
type Colormap struct {
	stops []colorful.Color
}

// rdYlGn is the 11-class ColorBrewer Red-Yellow-Green scheme, red first.
var rdYlGn = []string{
	"#a50026", "#d73027", "#f46d43", "#fdae61", "#fee08b", "#ffffbf",
	"#d9ef8b", "#a6d96a", "#66bd63", "#1a9850", "#006837",
}

// NewColormap builds a colormap from at least two hex stops ("#rrggbb").
func NewColormap(hexStops ...string) (Colormap, error) {
	if len(hexStops) < 2 {
		return Colormap{}, chartErrorf("NewColormap", ErrBadTheme, "need 2 stops, got %d", len(hexStops))
	}
	stops := make([]colorful.Color, len(hexStops))
	for i, h := range hexStops {
		c, err := colorful.Hex(h)
		if err != nil {
			return Colormap{}, chartErrorf("NewColormap", ErrBadTheme, "stop %d %q: %v", i, h, err)
		}
		stops[i] = c
	}

	return Colormap{stops: stops}, nil
}

// ReversedRdYlGn returns green for low values and red for high ones, so
// "fewer is better" reads green.
func ReversedRdYlGn() Colormap {
	reversed := make([]string, len(rdYlGn))
	for i, h := range rdYlGn {
		reversed[len(rdYlGn)-1-i] = h
	}
	m, err := NewColormap(reversed...)
	if err != nil {
		panic(err) // constant table
	}

	return m
}

// At returns the color for t; t is clamped to [0,1] and NaN maps to 0.
// The zero Colormap behaves like ReversedRdYlGn.
func (m Colormap) At(t float64) drawing.Color {
	if len(m.stops) < 2 {
		return ReversedRdYlGn().At(t)
	}
	if math.IsNaN(t) || t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	segments := float64(len(m.stops) - 1)
	pos := t * segments
	i := int(math.Floor(pos))
	if i >= len(m.stops)-1 {
		i = len(m.stops) - 2
	}
	c := m.stops[i].BlendLab(m.stops[i+1], pos-float64(i)).Clamped()
	r, g, b := c.RGB255()

	return drawing.Color{R: r, G: g, B: b, A: opaque}
}

// Normalize maps v from [lo, hi] to [0,1]; a flat range maps to 0.5.
func Normalize(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0.5
	}

	return (v - lo) / (hi - lo)
}
