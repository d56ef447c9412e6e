// SPDX-License-Identifier: MIT
// Package: lvplot/curve
//
// errors.go — sentinel errors for the curve package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Call sites attach context via curveErrorf, which keeps the sentinel under %w.
//   • Synthesize never panics on user input.

package curve

import (
	"errors"
	"fmt"
)

var (
	// ErrBadStepCount indicates a step count that is NaN, ±Inf, below 1 or above MaxSteps.
	// A zero step count would divide by zero in the linear and sigmoid shapes.
	ErrBadStepCount = errors.New("curve: step count must be a finite number in [1, MaxSteps]")

	// ErrNonFinite indicates a NaN or ±Inf start or end value.
	ErrNonFinite = errors.New("curve: start and end must be finite")

	// ErrUnknownShape indicates a shape outside the closed set {exponential, linear, sigmoid}.
	ErrUnknownShape = errors.New("curve: unknown shape")
)

// curveErrorf prefixes err with the calling method, e.g. "Synthesize: steps=0: curve: ...".
func curveErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
