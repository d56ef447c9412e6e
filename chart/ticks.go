// SPDX-License-Identifier: MIT
// Package: lvplot/chart
//
// ticks.go — "nice" axis bounds and tick marks.
//
// Steps are drawn from {1, 2, 2.5, 5, 10}·10^k, picking the candidate whose
// tick count is closest to the requested n. Tick values are computed as
// start + k·step (never accumulated) so labels stay free of drift.

package chart

import (
	"math"
	"strconv"

	gochart "github.com/wcharczuk/go-chart/v2"
)

const (
	boundsPadFraction = 0.05
	defaultTickCount  = 6
	tickEpsilonFrac   = 1e-9
)

var tickSteps = [...]float64{1, 2, 2.5, 5, 10}

// NiceBounds pads [min, max] by 5% on both sides and rounds outward to the
// span's order of magnitude. Bounds never cross zero unless the data does.
//
// A degenerate span (max ≤ min) is widened to one unit above min.
// NaN inputs are returned unchanged.
func NiceBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	a, b := min-span*boundsPadFraction, max+span*boundsPadFraction

	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if mag > 0 && !math.IsInf(mag, 0) {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	if min >= 0 && a < 0 {
		a = 0
	}
	if max <= 0 && b > 0 {
		b = 0
	}

	return a, b
}

// NiceTicks returns roughly n ticks covering [min, max] on a 1-2-2.5-5 step.
// The first tick is ≤ min and the last is ≥ max. Returns nil when n < 2 or
// the bounds are not finite.
func NiceTicks(min, max float64, n int) []gochart.Tick {
	if n < 2 || !finite(min) || !finite(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))

	step, bestScore := mag, math.MaxFloat64
	for _, c := range tickSteps {
		s := c * mag
		count := math.Ceil(span / s)
		if count < 2 {
			count = 2
		}
		if score := math.Abs(count - float64(n)); score < bestScore {
			step, bestScore = s, score
		}
	}

	start := math.Floor(min/step) * step
	end := math.Ceil(max/step) * step
	decimals := stepDecimals(step)

	count := int(math.Round((end-start)/step)) + 1
	ticks := make([]gochart.Tick, 0, count)
	for k := 0; k < count; k++ {
		v := start + float64(k)*step
		if math.Abs(v) < step*tickEpsilonFrac {
			v = 0 // no "-0"
		}
		ticks = append(ticks, gochart.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', decimals, 64)})
	}

	return ticks
}

// ticksWithin drops ticks outside [lo, hi] (with a relative tolerance).
func ticksWithin(ticks []gochart.Tick, lo, hi float64) []gochart.Tick {
	eps := (hi - lo) * tickEpsilonFrac
	out := ticks[:0:0]
	for _, t := range ticks {
		if t.Value >= lo-eps && t.Value <= hi+eps {
			out = append(out, t)
		}
	}

	return out
}

// relabel formats every tick value with a printf verb.
func relabel(ticks []gochart.Tick, format func(float64) string) []gochart.Tick {
	for i := range ticks {
		ticks[i].Label = format(ticks[i].Value)
	}

	return ticks
}

// decadeTicks labels integer exponents lo..hi with the value 10^k.
func decadeTicks(lo, hi int) []gochart.Tick {
	ticks := make([]gochart.Tick, 0, hi-lo+1)
	for k := lo; k <= hi; k++ {
		ticks = append(ticks, gochart.Tick{
			Value: float64(k),
			Label: strconv.FormatFloat(math.Pow(10, float64(k)), 'g', -1, 64),
		})
	}

	return ticks
}

// stepDecimals is the number of fractional digits needed to print multiples of step.
func stepDecimals(step float64) int {
	d := 0
	for scaled := step; d < 15 && math.Abs(scaled-math.Round(scaled)) > 1e-9*math.Max(1, scaled); d++ {
		scaled *= 10
	}

	return d
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
