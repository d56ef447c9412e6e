// SPDX-License-Identifier: MIT
// Package: lvplot/report
//
// summary.go — console summary of recovery iterations.

package report

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/katalvlaran/lvplot/i18n"
	"github.com/katalvlaran/lvplot/study"
)

const (
	opWriteSummary = "WriteSummary"
	meanDecimals   = 2
	rangeDecimals  = 2
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	numberStyle  = cellStyle.Align(lipgloss.Right)
)

// WriteSummary prints one row per algorithm: mean recovery iterations and
// their min - max range, under a localized heading.
func WriteSummary(w io.Writer, st *study.Study, loc *i18n.Localizer) error {
	if st == nil {
		return reportErrorf(opWriteSummary, ErrNilStudy, "summary")
	}
	if loc == nil {
		return reportErrorf(opWriteSummary, ErrNilLocalizer, "summary")
	}
	sums, err := st.Summaries()
	if err != nil {
		return reportErrorf(opWriteSummary, err, "summary")
	}

	rows := make([][]string, len(sums))
	for i, s := range sums {
		rows[i] = []string{
			s.Algorithm,
			loc.Number(s.Mean, meanDecimals),
			fmt.Sprintf("%s - %s", compact(loc, s.Min), compact(loc, s.Max)),
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(loc.T("summary.algorithm"), loc.T("summary.mean"), loc.T("summary.range")).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return cellStyle
			default:
				return numberStyle
			}
		})

	if _, err = fmt.Fprintln(w, headingStyle.Render(loc.T("summary.heading"))); err != nil {
		return reportErrorf(opWriteSummary, err, "write")
	}
	if _, err = fmt.Fprintln(w, t.Render()); err != nil {
		return reportErrorf(opWriteSummary, err, "write")
	}

	return nil
}

// compact prints whole numbers without decimals.
func compact(loc *i18n.Localizer, v float64) string {
	if v == math.Trunc(v) {
		return loc.Number(v, 0)
	}

	return loc.Number(v, rangeDecimals)
}
