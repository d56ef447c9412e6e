// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the descriptive statistics used by summaries and chart scaling:
//     per-row mean/min/max, per-column min/max and global bounds.
//
// Exposed API:
//   - RowMeans(X)      -> []float64   // arithmetic mean of each row
//   - RowMin(X)        -> []float64   // minimum of each row
//   - RowMax(X)        -> []float64   // maximum of each row
//   - ColumnMin(X, j)  -> float64     // minimum of column j
//   - ColumnMax(X, j)  -> float64     // maximum of column j
//   - Bounds(X)        -> (min, max)  // over every element
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths operate on the row-major flat buffer.
//
// AI-Hints:
//   - Dense rejects NaN/Inf by default, so results here are always finite.

package matrix

import "math"

// Operation name constants for unified error wrapping.
const (
	opRowMeans  = "RowMeans"
	opRowMin    = "RowMin"
	opRowMax    = "RowMax"
	opColumnMin = "ColumnMin"
	opColumnMax = "ColumnMax"
	opBounds    = "Bounds"
)

// RowMeans returns the arithmetic mean of every row.
// Errors:
//   - ErrNilMatrix for a nil receiver.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func RowMeans(X *Dense) ([]float64, error) {
	if X == nil {
		return nil, matrixErrorf(opRowMeans, ErrNilMatrix)
	}
	out := make([]float64, X.r)
	var i, j, base int
	var sum float64
	for i = 0; i < X.r; i++ {
		base = i * X.c
		sum = 0
		for j = 0; j < X.c; j++ {
			sum += X.data[base+j]
		}
		out[i] = sum / float64(X.c)
	}

	return out, nil
}

// RowMin returns the minimum of every row.
// Complexity: O(r*c).
func RowMin(X *Dense) ([]float64, error) {
	if X == nil {
		return nil, matrixErrorf(opRowMin, ErrNilMatrix)
	}

	return rowReduce(X, math.Min), nil
}

// RowMax returns the maximum of every row.
// Complexity: O(r*c).
func RowMax(X *Dense) ([]float64, error) {
	if X == nil {
		return nil, matrixErrorf(opRowMax, ErrNilMatrix)
	}

	return rowReduce(X, math.Max), nil
}

// ColumnMin returns the minimum of column j.
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
func ColumnMin(X *Dense, j int) (float64, error) {
	return columnReduce(X, j, opColumnMin, math.Min)
}

// ColumnMax returns the maximum of column j.
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
func ColumnMax(X *Dense, j int) (float64, error) {
	return columnReduce(X, j, opColumnMax, math.Max)
}

// Bounds returns the smallest and largest element of X.
// Heatmaps use it to normalize cell colors.
// Complexity: O(r*c).
func Bounds(X *Dense) (lo, hi float64, err error) {
	if X == nil {
		return 0, 0, matrixErrorf(opBounds, ErrNilMatrix)
	}
	lo, hi = X.data[0], X.data[0]
	for _, v := range X.data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi, nil
}

// rowReduce folds each row with f, seeding from its first element.
func rowReduce(X *Dense, f func(a, b float64) float64) []float64 {
	out := make([]float64, X.r)
	var i, j, base int
	for i = 0; i < X.r; i++ {
		base = i * X.c
		acc := X.data[base]
		for j = 1; j < X.c; j++ {
			acc = f(acc, X.data[base+j])
		}
		out[i] = acc
	}

	return out
}

// columnReduce folds column j with f, seeding from its first element.
func columnReduce(X *Dense, j int, op string, f func(a, b float64) float64) (float64, error) {
	if X == nil {
		return 0, matrixErrorf(op, ErrNilMatrix)
	}
	if j < 0 || j >= X.c {
		return 0, denseErrorf(op, rowColNotApply, j, ErrOutOfRange)
	}
	acc := X.data[j]
	for i := 1; i < X.r; i++ {
		acc = f(acc, X.data[i*X.c+j])
	}

	return acc, nil
}
