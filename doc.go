// Package lvplot synthesizes recovery curves and turns benchmark tables
// into charts.
//
// 🚀 What is lvplot?
//
//	A small toolkit around one idea: after an environment change, an
//	optimizer's best value moves from an initial value to a recovered one
//	over a known number of iterations. lvplot fills in the path between them
//	and draws the study that produced those numbers:
//		• Curve synthesis: exponential, linear and sigmoid progress profiles
//		• Study tables: recovery iterations, best and initial values per benchmark
//		• Charts: recovery curves, heatmap, best-value and grouped bar charts (SVG/PNG)
//		• Reports: parallel rendering of every figure plus a console summary
//		• Labels in English and Spanish
//
// Under the hood, everything is organized in small subpackages:
//
//	curve/  — Synthesize, Shape, Curve; the only numerical core
//	matrix/ — dense float64 tables with row statistics and bounds
//	study/  — validated benchmark tables, YAML codec and the built-in dataset
//	chart/  — line, bar, grouped-bar and heatmap renderers on go-chart
//	i18n/   — embedded label catalogs on golang.org/x/text
//	report/ — figure assembly, parallel rendering, summary table
//	config/ — YAML + LVPLOT_* environment configuration
//	cmd/lvplot — the command-line front end
//
// Quick start:
//
//	c, err := curve.Synthesize(8, 4.326799, 6, curve.Exponential)
//	// c.Steps  = [0 1 2 3 4 5 6]
//	// c.Values[0] = 8, c.Values[6] = 4.326799
//
//	go install github.com/katalvlaran/lvplot/cmd/lvplot@latest
//	lvplot render --out charts --format png
package lvplot
