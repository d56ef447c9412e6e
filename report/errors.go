// SPDX-License-Identifier: MIT
// Package: lvplot/report
//
// errors.go — sentinel errors for figure planning and rendering.

package report

import (
	"errors"
	"fmt"
)

var (
	// ErrNilStudy indicates a missing study.
	ErrNilStudy = errors.New("report: study is nil")

	// ErrNilLocalizer indicates a missing localizer.
	ErrNilLocalizer = errors.New("report: localizer is nil")

	// ErrDuplicateFigure indicates two figures mapping to the same file.
	ErrDuplicateFigure = errors.New("report: duplicate figure name")
)

func reportErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
