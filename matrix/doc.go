// Package matrix provides a small row-major Dense table of float64 values
// with safe accessors and per-row / per-column statistics.
//
// lvplot stores every benchmark table (recovery iterations, best values,
// simulated initial fitness) as an algorithms×benchmarks Dense:
//
//	            Bench 1  Bench 2  …  Bench 5
//	FireFly 30%   6.00     2.00   …    9.00
//	ACOR 15%      4.00     2.00   …   12.00
//	…
//
// The package offers:
//
//   - NewDense / NewFromRows constructors with strict shape validation.
//   - At / Set returning sentinel errors instead of panicking.
//   - A finite-only numeric policy (DefaultValidateNaNInf) enforced by Set and Apply.
//   - Row and column copies, a visitor (Do) and an in-place map (Apply).
//   - Statistics: RowMeans, RowMin, RowMax, ColumnMin, ColumnMax, Bounds.
//
// All loops run in fixed row-major order, so results are deterministic.
package matrix
