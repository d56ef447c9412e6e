// SPDX-License-Identifier: MIT
// Package: lvplot/study
//
// study.go — construction, validation and read accessors.
//
// Contract:
//   - New validates everything up front; a *Study in hand is always consistent.
//   - Accessors return copies, so callers cannot mutate shared state.
//
// Validation priority (first failure wins):
//   • ErrEmptyStudy    — no algorithms or no benchmarks.
//   • ErrDuplicateName — blank/repeated names.
//   • ErrShapeMismatch — table shape or non-finite cells.
//   • ErrBadRecovery   — recovery < 1.
//   • ErrBadLimits     — y-limit pairs.

package study

import (
	"errors"
	"math"
	"strings"

	"github.com/katalvlaran/lvplot/curve"
	"github.com/katalvlaran/lvplot/matrix"
)

const (
	methodNew         = "New"
	methodTraces      = "Traces"
	methodBestColumn  = "BestColumn"
	methodSummaries   = "Summaries"
	methodParse       = "Parse"
	methodLoad        = "Load"
	methodMarshal     = "Marshal"
	minRecoverySteps  = 1.0
	yLimitPairLength  = 2
	tableRecovery     = "recovery"
	tableBest         = "best"
	tableInitial      = "initial"
	unknownIndexLabel = "index"
)

// New validates t and returns an immutable Study.
func New(t Tables) (*Study, error) {
	if len(t.Algorithms) == 0 || len(t.Benchmarks) == 0 {
		return nil, studyErrorf(methodNew, ErrEmptyStudy, "algorithms=%d benchmarks=%d",
			len(t.Algorithms), len(t.Benchmarks))
	}
	if err := uniqueNames(t.Algorithms); err != nil {
		return nil, studyErrorf(methodNew, err, "algorithms")
	}
	if err := uniqueNames(t.Benchmarks); err != nil {
		return nil, studyErrorf(methodNew, err, "benchmarks")
	}

	recovery, err := table(tableRecovery, t.Recovery, len(t.Algorithms), len(t.Benchmarks))
	if err != nil {
		return nil, err
	}
	best, err := table(tableBest, t.Best, len(t.Algorithms), len(t.Benchmarks))
	if err != nil {
		return nil, err
	}
	initial, err := table(tableInitial, t.Initial, len(t.Algorithms), len(t.Benchmarks))
	if err != nil {
		return nil, err
	}

	var badRecovery error
	recovery.Do(func(i, j int, v float64) bool {
		if v < minRecoverySteps {
			badRecovery = studyErrorf(methodNew, ErrBadRecovery, "%s on %s = %v",
				t.Algorithms[i], t.Benchmarks[j], v)
			return false
		}
		return true
	})
	if badRecovery != nil {
		return nil, badRecovery
	}

	limits, err := yLimits(t.YLimits, t.Benchmarks)
	if err != nil {
		return nil, err
	}

	return &Study{
		algorithms: append([]string(nil), t.Algorithms...),
		benchmarks: append([]string(nil), t.Benchmarks...),
		recovery:   recovery,
		best:       best,
		initial:    initial,
		yLimits:    limits,
	}, nil
}

// uniqueNames rejects blank and duplicate entries.
func uniqueNames(names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		key := strings.TrimSpace(n)
		if key == "" {
			return ErrDuplicateName
		}
		if _, dup := seen[key]; dup {
			return ErrDuplicateName
		}
		seen[key] = struct{}{}
	}

	return nil
}

// table lifts rows into a Dense and checks its shape against the study.
func table(name string, rows [][]float64, wantRows, wantCols int) (*matrix.Dense, error) {
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		// Both shape and NaN/Inf violations are reported as a table mismatch,
		// keeping the matrix cause in the chain.
		return nil, studyErrorf(methodNew, errors.Join(ErrShapeMismatch, err), "%s", name)
	}
	if m.Rows() != wantRows || m.Cols() != wantCols {
		return nil, studyErrorf(methodNew, ErrShapeMismatch, "%s is %dx%d, want %dx%d",
			name, m.Rows(), m.Cols(), wantRows, wantCols)
	}

	return m, nil
}

// yLimits validates optional per-benchmark fixed ranges.
func yLimits(in map[string][]float64, benchmarks []string) (map[string][2]float64, error) {
	out := make(map[string][2]float64, len(in))
	for name, pair := range in {
		if !contains(benchmarks, name) {
			return nil, studyErrorf(methodNew, ErrBadLimits, "unknown benchmark %q", name)
		}
		if len(pair) != yLimitPairLength {
			return nil, studyErrorf(methodNew, ErrBadLimits, "%q needs [min, max]", name)
		}
		lo, hi := pair[0], pair[1]
		if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
			return nil, studyErrorf(methodNew, ErrBadLimits, "%q = [%v, %v]", name, lo, hi)
		}
		out[name] = [2]float64{lo, hi}
	}

	return out, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}

	return false
}

// Algorithms returns the row names in order.
func (s *Study) Algorithms() []string { return append([]string(nil), s.algorithms...) }

// Benchmarks returns the column names in order.
func (s *Study) Benchmarks() []string { return append([]string(nil), s.benchmarks...) }

// Recovery returns a copy of the recovery-iteration table.
func (s *Study) Recovery() *matrix.Dense { return s.recovery.Clone() }

// Best returns a copy of the best pre-change value table.
func (s *Study) Best() *matrix.Dense { return s.best.Clone() }

// Initial returns a copy of the simulated initial-fitness table.
func (s *Study) Initial() *matrix.Dense { return s.initial.Clone() }

// BenchmarkIndex returns the column of the named benchmark.
func (s *Study) BenchmarkIndex(name string) (int, bool) {
	for i, b := range s.benchmarks {
		if b == name {
			return i, true
		}
	}

	return 0, false
}

// YLimits returns the fixed y-range configured for benchmark bench, if any.
func (s *Study) YLimits(bench int) (lo, hi float64, ok bool) {
	if bench < 0 || bench >= len(s.benchmarks) {
		return 0, 0, false
	}
	pair, ok := s.yLimits[s.benchmarks[bench]]

	return pair[0], pair[1], ok
}

// BestColumn returns the best value of every algorithm on benchmark bench.
func (s *Study) BestColumn(bench int) ([]float64, error) {
	col, err := s.best.Col(bench)
	if err != nil {
		return nil, studyErrorf(methodBestColumn, ErrBenchmarkIndex, "%s=%d", unknownIndexLabel, bench)
	}

	return col, nil
}

// Summaries returns mean and range of recovery iterations per algorithm.
func (s *Study) Summaries() ([]Summary, error) {
	means, err := matrix.RowMeans(s.recovery)
	if err != nil {
		return nil, studyErrorf(methodSummaries, err, "means")
	}
	mins, err := matrix.RowMin(s.recovery)
	if err != nil {
		return nil, studyErrorf(methodSummaries, err, "min")
	}
	maxs, err := matrix.RowMax(s.recovery)
	if err != nil {
		return nil, studyErrorf(methodSummaries, err, "max")
	}

	out := make([]Summary, len(s.algorithms))
	for i, name := range s.algorithms {
		out[i] = Summary{Algorithm: name, Mean: means[i], Min: mins[i], Max: maxs[i]}
	}

	return out, nil
}

// Traces synthesizes one recovery curve per algorithm on benchmark bench.
// Each curve starts at Initial[alg][bench], ends at Best[alg][bench] and
// spans Recovery[alg][bench] steps.
func (s *Study) Traces(bench int, shape curve.Shape) ([]Trace, error) {
	if bench < 0 || bench >= len(s.benchmarks) {
		return nil, studyErrorf(methodTraces, ErrBenchmarkIndex, "%s=%d", unknownIndexLabel, bench)
	}

	out := make([]Trace, len(s.algorithms))
	for i, name := range s.algorithms {
		steps, _ := s.recovery.At(i, bench)
		start, _ := s.initial.At(i, bench)
		end, _ := s.best.At(i, bench)

		c, err := curve.Synthesize(start, end, steps, shape)
		if err != nil {
			return nil, studyErrorf(methodTraces, err, "%s on %s", name, s.benchmarks[bench])
		}
		out[i] = Trace{Algorithm: name, Recovery: steps, Curve: c}
	}

	return out, nil
}

// Tables returns the plain-data form of s, suitable for YAML encoding.
func (s *Study) Tables() Tables {
	t := Tables{
		Algorithms: s.Algorithms(),
		Benchmarks: s.Benchmarks(),
		Recovery:   s.recovery.ToRows(),
		Best:       s.best.ToRows(),
		Initial:    s.initial.ToRows(),
	}
	if len(s.yLimits) > 0 {
		t.YLimits = make(map[string][]float64, len(s.yLimits))
		for k, v := range s.yLimits {
			t.YLimits[k] = []float64{v[0], v[1]}
		}
	}

	return t
}
