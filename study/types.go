// SPDX-License-Identifier: MIT
// Package: lvplot/study
//
// types.go — Study, Summary and Trace.

package study

import (
	"github.com/katalvlaran/lvplot/curve"
	"github.com/katalvlaran/lvplot/matrix"
)

// Study is an immutable algorithms×benchmarks result set.
type Study struct {
	algorithms []string
	benchmarks []string
	recovery   *matrix.Dense
	best       *matrix.Dense
	initial    *matrix.Dense
	yLimits    map[string][2]float64 // optional fixed y-range per benchmark name
}

// Summary describes one algorithm's recovery iterations across all benchmarks.
type Summary struct {
	Algorithm string
	Mean      float64
	Min       float64
	Max       float64
}

// Trace is one synthesized recovery line for a (benchmark, algorithm) pair.
type Trace struct {
	Algorithm string      // row name
	Recovery  float64     // recovery iterations used as the step count
	Curve     curve.Curve // synthesized samples
}

// Tables is the plain-data form of a Study, used by New and by the YAML codec.
type Tables struct {
	Algorithms []string             `yaml:"algorithms"`
	Benchmarks []string             `yaml:"benchmarks"`
	Recovery   [][]float64          `yaml:"recovery"`
	Best       [][]float64          `yaml:"best"`
	Initial    [][]float64          `yaml:"initial"`
	YLimits    map[string][]float64 `yaml:"y_limits,omitempty"`
}
