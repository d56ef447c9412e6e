// Package chart renders the lvplot figures with github.com/wcharczuk/go-chart/v2.
//
// Four chart kinds are provided, each driven by a plain spec value plus a Theme:
//
//   - RenderLines        — recovery curves: one line per series, dashed
//     vertical markers, linear, log10 or inverted y axis.
//   - RenderBars         — one bar per category with value-annotated labels.
//   - RenderGroupedBars  — categories × members, drawn directly on a
//     go-chart Renderer with a legend and value labels.
//   - RenderHeatmap      — annotated cells colored by a reversed
//     Red-Yellow-Green colormap (Lab blending via go-colorful) plus a colorbar.
//
// There is no package-level style state: every call receives its Theme and
// writes one SVG or PNG document to the given io.Writer. Specs are validated
// before any drawing; failures wrap ErrNoSeries, ErrLengthMismatch,
// ErrBadRange, ErrUnknownFormat or ErrBadTheme.
package chart
