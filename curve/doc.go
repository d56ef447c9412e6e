// Package curve synthesizes recovery curves: short, deterministic sequences
// that move from a start value to an end value over a fixed number of steps.
//
// 🚀 What is a recovery curve?
//
//	After a disruptive change in a dynamic optimization problem, an
//	algorithm's fitness drifts back toward its pre-change optimum. The
//	curve built here is an illustrative approximation of that drift,
//	not data from a real run:
//	  • x axis — integer step index 0..N
//	  • y axis — fitness, blended from start to end by a progress curve
//
// ✨ Shapes:
//   - Exponential — fast initial approach, asymptotic tail: 1 − e^(−x/(0.6N))
//   - Linear      — constant rate: x/N
//   - Sigmoid     — slow-fast-slow: 1 / (1 + e^(−(x − N/2)/(N/4)))
//
// Guarantees:
//   - len(Steps) == len(Values) == int(N)+1, Steps == [0..int(N)]
//   - Values[last] == end, bit-exact
//   - every value lies in [min(start,end), max(start,end)]
//   - pure: identical inputs give identical outputs
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvplot/curve"
//
//	c, err := curve.Synthesize(8.0, 4.326799, 6, curve.Exponential)
//	if errors.Is(err, curve.ErrBadStepCount) {
//	  // N must be ≥ 1
//	}
//
// Performance:
//
//   - Time:   O(N)
//   - Memory: O(N)
package curve
