// SPDX-License-Identifier: MIT
// Package: lvplot/study
//
// errors.go — sentinel errors for study construction and lookup.

package study

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyStudy indicates a study without algorithms or benchmarks.
	ErrEmptyStudy = errors.New("study: at least one algorithm and one benchmark are required")

	// ErrDuplicateName indicates a blank or repeated algorithm/benchmark name.
	ErrDuplicateName = errors.New("study: names must be non-empty and unique")

	// ErrShapeMismatch indicates a table whose shape differs from algorithms×benchmarks,
	// or a non-finite cell.
	ErrShapeMismatch = errors.New("study: table shape does not match algorithms×benchmarks")

	// ErrBadRecovery indicates a recovery-iteration cell below 1.
	ErrBadRecovery = errors.New("study: recovery iterations must be ≥ 1")

	// ErrBadLimits indicates a y-limit pair that is not finite and strictly increasing,
	// or one that names an unknown benchmark.
	ErrBadLimits = errors.New("study: invalid y limits")

	// ErrBenchmarkIndex indicates a benchmark index outside the study.
	ErrBenchmarkIndex = errors.New("study: benchmark index out of range")

	// ErrNilStudy indicates a nil *Study passed where a study is required.
	ErrNilStudy = errors.New("study: nil study")

	// ErrParse indicates a malformed YAML study document.
	ErrParse = errors.New("study: cannot parse document")
)

// studyErrorf prefixes err with the method name and a formatted detail.
func studyErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
