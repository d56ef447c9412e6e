// SPDX-License-Identifier: MIT
// Package: lvplot/report
//
// figures.go — the figure plan of a study.
//
// Per benchmark b:
//   - recovery_curves_<b>: one synthesized trace per algorithm.
//     Scale: log when every best value lies in [0, 1e-3]; inverted when every
//     best value is negative; linear otherwise. Study y-limits win.
//   - best_values_<b>: one bar per algorithm.
//     Labels: %.1f for negative values, %.2e below 1e-3, %.3f otherwise.
//
// Plus recovery_heatmap and recovery_iterations (grouped bars).

package report

import (
	"io"
	"math"
	"strings"
	"unicode"

	"github.com/katalvlaran/lvplot/chart"
	"github.com/katalvlaran/lvplot/curve"
	"github.com/katalvlaran/lvplot/i18n"
	"github.com/katalvlaran/lvplot/study"
)

const (
	opFigures = "Figures"

	tinyMagnitude = 1e-3

	formatNegative = "%.1f"
	formatTiny     = "%.2e"
	formatPlain    = "%.3f"

	stemCurves    = "recovery_curves_"
	stemBest      = "best_values_"
	stemHeatmap   = "recovery_heatmap"
	stemIterBars  = "recovery_iterations"
	heatmapFormat = "%.1f"
)

// Figure is one output file: Name is the file stem, Render draws it.
type Figure struct {
	Name   string
	Title  string
	Render func(w io.Writer, theme chart.Theme, format chart.Format) error
}

// Figures plans every figure of st, labelled through loc, with recovery
// curves of the given shape.
func Figures(st *study.Study, loc *i18n.Localizer, shape curve.Shape) ([]Figure, error) {
	if st == nil {
		return nil, reportErrorf(opFigures, ErrNilStudy, "plan")
	}
	if loc == nil {
		return nil, reportErrorf(opFigures, ErrNilLocalizer, "plan")
	}
	if !shape.Valid() {
		return nil, reportErrorf(opFigures, curve.ErrUnknownShape, "%s", shape)
	}

	benchmarks := st.Benchmarks()
	figs := make([]Figure, 0, 2*len(benchmarks)+2)

	for b, name := range benchmarks {
		lines, err := curvesSpec(st, loc, b, shape)
		if err != nil {
			return nil, reportErrorf(opFigures, err, "%s curves", name)
		}
		figs = append(figs, Figure{
			Name:  stemCurves + Slug(name),
			Title: lines.Title,
			Render: func(w io.Writer, theme chart.Theme, format chart.Format) error {
				return chart.RenderLines(w, lines, theme, format)
			},
		})
	}

	heat := heatmapSpec(st, loc)
	figs = append(figs, Figure{
		Name:  stemHeatmap,
		Title: heat.Title,
		Render: func(w io.Writer, theme chart.Theme, format chart.Format) error {
			return chart.RenderHeatmap(w, heat, theme, format)
		},
	})

	for b, name := range benchmarks {
		bars, err := bestSpec(st, loc, b)
		if err != nil {
			return nil, reportErrorf(opFigures, err, "%s best values", name)
		}
		figs = append(figs, Figure{
			Name:  stemBest + Slug(name),
			Title: bars.Title,
			Render: func(w io.Writer, theme chart.Theme, format chart.Format) error {
				return chart.RenderBars(w, bars, theme, format)
			},
		})
	}

	grouped := groupedSpec(st, loc)
	figs = append(figs, Figure{
		Name:  stemIterBars,
		Title: grouped.Title,
		Render: func(w io.Writer, theme chart.Theme, format chart.Format) error {
			return chart.RenderGroupedBars(w, grouped, theme, format)
		},
	})

	return figs, nil
}

func curvesSpec(st *study.Study, loc *i18n.Localizer, b int, shape curve.Shape) (chart.LineSpec, error) {
	traces, err := st.Traces(b, shape)
	if err != nil {
		return chart.LineSpec{}, err
	}
	best, err := st.BestColumn(b)
	if err != nil {
		return chart.LineSpec{}, err
	}

	spec := chart.LineSpec{
		Title:   loc.T("curves.title", st.Benchmarks()[b]),
		XLabel:  loc.T("curves.xlabel"),
		Series:  make([]chart.Series, len(traces)),
		Markers: make([]float64, len(traces)),
		Scale:   ScaleFor(best),
	}
	switch spec.Scale {
	case chart.ScaleLog:
		spec.YLabel = loc.T("curves.ylabel.log")
	case chart.ScaleInverted:
		spec.YLabel = loc.T("curves.ylabel.negative")
	default:
		spec.YLabel = loc.T("curves.ylabel")
	}
	if lo, hi, ok := st.YLimits(b); ok {
		spec.FixedY, spec.YMin, spec.YMax = true, lo, hi
	}

	for i, tr := range traces {
		spec.Series[i] = chart.Series{
			Name: loc.T("curves.series", tr.Algorithm, tr.Recovery),
			X:    tr.Curve.XValues(),
			Y:    tr.Curve.Values,
		}
		spec.Markers[i] = tr.Recovery
	}

	return spec, nil
}

func bestSpec(st *study.Study, loc *i18n.Localizer, b int) (chart.BarSpec, error) {
	best, err := st.BestColumn(b)
	if err != nil {
		return chart.BarSpec{}, err
	}

	return chart.BarSpec{
		Title:       loc.T("best.title", st.Benchmarks()[b]),
		YLabel:      loc.T("best.ylabel"),
		Labels:      st.Algorithms(),
		Values:      best,
		LabelFormat: BarFormat(best),
	}, nil
}

func heatmapSpec(st *study.Study, loc *i18n.Localizer) chart.HeatmapSpec {
	return chart.HeatmapSpec{
		Title:         loc.T("heatmap.title"),
		XLabel:        loc.T("heatmap.xlabel"),
		YLabel:        loc.T("heatmap.ylabel"),
		ColorbarLabel: loc.T("heatmap.colorbar"),
		Rows:          st.Algorithms(),
		Cols:          st.Benchmarks(),
		Values:        st.Recovery().ToRows(),
		CellFormat:    heatmapFormat,
	}
}

func groupedSpec(st *study.Study, loc *i18n.Localizer) chart.GroupedBarSpec {
	return chart.GroupedBarSpec{
		Title:       loc.T("recovery.title"),
		YLabel:      loc.T("recovery.ylabel"),
		Groups:      st.Benchmarks(),
		Members:     st.Algorithms(),
		Values:      st.Recovery().ToRows(),
		LabelFormat: heatmapFormat,
	}
}

// ScaleFor picks the y scale of a recovery chart from its target values.
func ScaleFor(best []float64) chart.Scale {
	allTiny, allNegative := len(best) > 0, len(best) > 0
	for _, v := range best {
		if v < 0 || v > tinyMagnitude {
			allTiny = false
		}
		if v >= 0 {
			allNegative = false
		}
	}

	switch {
	case allTiny:
		return chart.ScaleLog
	case allNegative:
		return chart.ScaleInverted
	default:
		return chart.ScaleLinear
	}
}

// BarFormat picks the value label verb for a best-value bar chart.
func BarFormat(values []float64) string {
	maxAbs, allNegative := 0.0, len(values) > 0
	for _, v := range values {
		maxAbs = math.Max(maxAbs, math.Abs(v))
		if v >= 0 {
			allNegative = false
		}
	}

	switch {
	case allNegative:
		return formatNegative
	case maxAbs < tinyMagnitude:
		return formatTiny
	default:
		return formatPlain
	}
}

// Slug lowercases s and replaces every run of non-alphanumerics with "_".
func Slug(s string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
			pending = false
			continue
		}
		pending = true
	}

	return b.String()
}
