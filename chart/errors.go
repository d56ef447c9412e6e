// SPDX-License-Identifier: MIT
// Package: lvplot/chart
//
// errors.go — sentinel errors for chart specs and rendering.

package chart

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSeries indicates a spec without any data to draw.
	ErrNoSeries = errors.New("chart: nothing to draw")

	// ErrLengthMismatch indicates X/Y slices, labels or grid rows of different lengths.
	ErrLengthMismatch = errors.New("chart: length mismatch")

	// ErrBadRange indicates a non-finite value or an empty/inverted axis range.
	ErrBadRange = errors.New("chart: invalid value range")

	// ErrUnknownFormat indicates an output format other than svg or png.
	ErrUnknownFormat = errors.New("chart: unknown output format")

	// ErrBadTheme indicates a theme with no palette or a non-positive canvas.
	ErrBadTheme = errors.New("chart: invalid theme")
)

// chartErrorf prefixes err with the rendering function and a formatted detail.
func chartErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
