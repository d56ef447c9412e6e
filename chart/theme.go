// SPDX-License-Identifier: MIT
// Package: lvplot/chart
//
// theme.go — output formats and the explicit styling passed to every renderer.

package chart

import (
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Format selects the output document type.
type Format int

const (
	SVG Format = iota
	PNG
)

var formatNames = [...]string{SVG: "svg", PNG: "png"}

// String returns "svg" or "png".
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "format(?)"
	}

	return formatNames[f]
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string { return "." + f.String() }

// ParseFormat accepts "svg" or "png", case-insensitively.
func ParseFormat(s string) (Format, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range formatNames {
		if name == key {
			return Format(i), nil
		}
	}

	return SVG, chartErrorf("ParseFormat", ErrUnknownFormat, "%q", s)
}

// provider maps f to a go-chart renderer constructor.
func (f Format) provider() (gochart.RendererProvider, error) {
	switch f {
	case SVG:
		return gochart.SVG, nil
	case PNG:
		return gochart.PNG, nil
	default:
		return nil, ErrUnknownFormat
	}
}

// Default theme values.
const (
	DefaultWidth     = 1200
	DefaultHeight    = 800
	DefaultFontSize  = 10.0
	DefaultTitleSize = 14.0
	DefaultGridAlpha = 0.3
	DefaultBarAlpha  = 0.8
	lineStrokeWidth  = 2.0
	lineDotWidth     = 4.0
	markerAlpha      = 0.5
	opaque           = 255
)

// Theme carries every styling decision of a figure.
type Theme struct {
	Palette   []drawing.Color // series colors, cycled
	Width     int             // canvas width in pixels
	Height    int             // canvas height in pixels
	FontSize  float64         // axis labels and annotations
	TitleSize float64         // figure titles
	GridAlpha float64         // grid line opacity in [0,1]
	BarAlpha  float64         // bar fill opacity in [0,1]
}

// DefaultTheme returns the Tableau 10 palette on a 1200×800 canvas.
// Each call returns a fresh value.
func DefaultTheme() Theme {
	return Theme{
		Palette: []drawing.Color{
			drawing.ColorFromHex("1f77b4"),
			drawing.ColorFromHex("ff7f0e"),
			drawing.ColorFromHex("2ca02c"),
			drawing.ColorFromHex("d62728"),
		},
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		FontSize:  DefaultFontSize,
		TitleSize: DefaultTitleSize,
		GridAlpha: DefaultGridAlpha,
		BarAlpha:  DefaultBarAlpha,
	}
}

// Validate reports ErrBadTheme for an empty palette, a non-positive canvas
// or opacities outside [0,1].
func (t Theme) Validate() error {
	switch {
	case len(t.Palette) == 0:
		return chartErrorf("Theme", ErrBadTheme, "empty palette")
	case t.Width <= 0 || t.Height <= 0:
		return chartErrorf("Theme", ErrBadTheme, "canvas %dx%d", t.Width, t.Height)
	case t.FontSize <= 0 || t.TitleSize <= 0:
		return chartErrorf("Theme", ErrBadTheme, "font sizes %v/%v", t.FontSize, t.TitleSize)
	case t.GridAlpha < 0 || t.GridAlpha > 1 || t.BarAlpha < 0 || t.BarAlpha > 1:
		return chartErrorf("Theme", ErrBadTheme, "alpha out of [0,1]")
	}

	return nil
}

// Color returns the palette entry for series i, cycling.
func (t Theme) Color(i int) drawing.Color {
	c := t.Palette[i%len(t.Palette)]
	c.A = opaque

	return c
}

func (t Theme) gridColor() drawing.Color {
	return withAlpha(drawing.ColorFromHex("808080"), t.GridAlpha)
}

func withAlpha(c drawing.Color, alpha float64) drawing.Color {
	c.A = uint8(alpha*opaque + 0.5)

	return c
}
