// Package report turns a study into the complete set of lvplot figures and
// the console summary.
//
// Figures builds every chart spec up front (so data errors surface before
// any file is touched) and returns one Figure per output file. RenderAll
// writes them concurrently under a caller-supplied context; WriteSummary
// prints the per-algorithm recovery statistics as a table.
package report
