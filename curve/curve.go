// SPDX-License-Identifier: MIT
// Package: lvplot/curve
//
// curve.go — deterministic recovery-curve synthesizer.
//
// Purpose:
//   - Produce a start→end sequence shaped by an exponential, linear or sigmoid
//     progress profile, for illustrative recovery plots.
//
// Contract:
//   - Synthesize(start, end, steps, shape) returns int(steps)+1 samples or a sentinel error.
//   - O(n) time, O(n) memory. No panics. No global state.
//
// Post-processing order (identical for every shape):
//  1. p[n] = 1 exactly (exp/sigmoid only approach 1 asymptotically).
//  2. p clamped to [0,1].
//  3. v = start + p*(end−start), then clamped to [lo,hi] and v[n] = end bit-exactly.
//
// AI-Hints:
//   - Need another profile? Add a Shape constant, its name, and a case in Progress.
//   - Callers plotting averaged recovery counts can pass the raw float (e.g. 6.00).

package curve

import (
	"math"
)

// Method names used as error context.
const (
	methodSynthesize  = "Synthesize"
	methodProgress    = "Progress"
	methodParseShape  = "ParseShape"
	methodMarshalText = "MarshalText"
)

// MaxSteps bounds the sample count so a typo cannot allocate gigabytes.
const MaxSteps = 1_000_000

// Shape constants from the progress formulas.
const (
	expTimeScale     = 0.6 // exponential time constant as a fraction of steps
	sigmoidCenterDiv = 2.0 // sigmoid midpoint at steps/2
	sigmoidWidthDiv  = 4.0 // sigmoid slope scale steps/4
	minSteps         = 1.0
	progressMin      = 0.0
	progressMax      = 1.0
)

// Synthesize returns a recovery curve from start to end over steps steps.
//
// Model (x = 0..int(steps)):
//   - Exponential: p(x) = 1 − exp(−x / (0.6·steps))
//   - Linear:      p(x) = x / steps
//   - Sigmoid:     p(x) = 1 / (1 + exp(−(x − steps/2) / (steps/4)))
//   - value(x)   = start + p(x)·(end − start)
//
// Errors:
//   - ErrBadStepCount if steps is NaN, ±Inf, < 1 or > MaxSteps.
//   - ErrNonFinite if start or end is NaN or ±Inf.
//   - ErrUnknownShape if shape is not a declared constant.
func Synthesize(start, end, steps float64, shape Shape) (Curve, error) {
	if err := validateSteps(steps); err != nil {
		return Curve{}, curveErrorf(methodSynthesize, err, "steps=%v", steps)
	}
	if !isFinite(start) || !isFinite(end) {
		return Curve{}, curveErrorf(methodSynthesize, ErrNonFinite, "start=%v end=%v", start, end)
	}
	if !shape.Valid() {
		return Curve{}, curveErrorf(methodSynthesize, ErrUnknownShape, "%s", shape)
	}

	n := int(steps) // last index; sample count is n+1
	lo, hi := math.Min(start, end), math.Max(start, end)
	// end-start overflows for opposite-sign endpoints near MaxFloat64, and
	// 0·Inf would then poison the first sample with NaN.
	blend := func(p float64) float64 { return start + p*(end-start) }
	if math.IsInf(end-start, 0) {
		blend = func(p float64) float64 { return start*(1-p) + end*p }
	}

	c := Curve{
		Steps:  make([]int, n+1),
		Values: make([]float64, n+1),
	}

	var p float64
	for x := 0; x <= n; x++ {
		if x == n {
			p = progressMax
		} else {
			p = progress(shape, float64(x), steps)
		}
		p = clamp(p, progressMin, progressMax)

		c.Steps[x] = x
		c.Values[x] = clamp(blend(p), lo, hi)
	}
	c.Values[n] = end

	return c, nil
}

// Progress returns the raw progress p(x) of shape at step x, before the
// last-step override and clamping applied by Synthesize.
func Progress(shape Shape, x int, steps float64) (float64, error) {
	if err := validateSteps(steps); err != nil {
		return 0, curveErrorf(methodProgress, err, "steps=%v", steps)
	}
	if !shape.Valid() {
		return 0, curveErrorf(methodProgress, ErrUnknownShape, "%s", shape)
	}

	return progress(shape, float64(x), steps), nil
}

// progress evaluates the closed-form profile; inputs are already validated.
func progress(shape Shape, x, steps float64) float64 {
	switch shape {
	case Exponential:
		return 1 - math.Exp(-x/(steps*expTimeScale))
	case Linear:
		return x / steps
	default: // Sigmoid; Valid() has excluded everything else
		return 1 / (1 + math.Exp(-(x-steps/sigmoidCenterDiv)/(steps/sigmoidWidthDiv)))
	}
}

func validateSteps(steps float64) error {
	if !isFinite(steps) || steps < minSteps || steps > MaxSteps {
		return ErrBadStepCount
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
