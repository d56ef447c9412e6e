// SPDX-License-Identifier: MIT
// Package: lvplot/study
//
// dataset.go — the built-in study: four dynamic-optimization algorithms on
// five benchmarks. Initial fitness values are simulated, not measured.

package study

// Default returns the built-in study. It never fails; the tables are
// validated by New like any other input, and a failure here is a programming
// error caught by the package tests.
func Default() *Study {
	s, err := New(DefaultTables())
	if err != nil {
		panic("study: built-in dataset is invalid: " + err.Error())
	}

	return s
}

// DefaultTables returns a fresh copy of the built-in tables.
func DefaultTables() Tables {
	return Tables{
		Algorithms: []string{"FireFly 30%", "ACOR 15%", "Genetic Diploid", "PSO Divide"},
		Benchmarks: []string{"Benchmark 1", "Benchmark 2", "Benchmark 3", "Benchmark 4", "Benchmark 5"},
		Recovery: [][]float64{
			{6, 2, 7, 3, 9},
			{4, 2, 5, 4, 12},
			{1, 1, 1, 1, 3},
			{3, 4, 8, 4, 7},
		},
		Best: [][]float64{
			{4.326799, 0.000020, 1.949308, 0.009526, -307.245057},
			{4.322080, 0.000003, 0.615696, 0.208088, -372.732798},
			{0.000000, 0.000000, 0.118543, 0.049361, -365.078117},
			{5.943962, 0.000070, 3.451031, 0.676358, -325.050923},
		},
		Initial: [][]float64{
			{8.0, 0.1, 15.0, 2.5, -150},
			{7.5, 0.08, 12.0, 3.0, -180},
			{0.5, 0.05, 1.0, 0.3, -200},
			{9.0, 0.15, 18.0, 4.0, -120},
		},
		YLimits: map[string][]float64{
			"Benchmark 1": {3, 10},
		},
	}
}
