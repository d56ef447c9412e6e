// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/lvplot/report"
	"github.com/katalvlaran/lvplot/study"
	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	var outDir, format, data, shape string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render every chart of the study",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overrideString(cmd, "out", &a.cfg.OutDir, outDir)
			overrideString(cmd, "format", &a.cfg.Format, format)
			overrideString(cmd, "data", &a.cfg.DataFile, data)
			overrideString(cmd, "shape", &a.cfg.Shape, shape)
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			st, err := a.study()
			if err != nil {
				return err
			}
			loc, err := a.localizer()
			if err != nil {
				return err
			}
			s, _ := a.cfg.CurveShape()
			f, _ := a.cfg.ChartFormat()

			figs, err := report.Figures(st, loc, s)
			if err != nil {
				return err
			}
			paths, err := report.RenderAll(cmd.Context(), a.cfg.OutDir, figs, a.cfg.Theme(), f, a.log())
			if err != nil {
				return err
			}
			for _, p := range paths {
				if _, err = fmt.Fprintln(cmd.OutOrStdout(), p); err != nil {
					return err
				}
			}

			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&outDir, "out", "", "output directory; overrides config")
	fl.StringVar(&format, "format", "", "svg or png; overrides config")
	fl.StringVar(&data, "data", "", "YAML study file; overrides config")
	fl.StringVar(&shape, "shape", "", "recovery curve shape; overrides config")

	return cmd
}

func newSummaryCmd(a *app) *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print mean and range of recovery iterations per algorithm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overrideString(cmd, "data", &a.cfg.DataFile, data)

			st, err := a.study()
			if err != nil {
				return err
			}
			loc, err := a.localizer()
			if err != nil {
				return err
			}

			return report.WriteSummary(cmd.OutOrStdout(), st, loc)
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "YAML study file; overrides config")

	return cmd
}

func newDatasetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dataset",
		Short: "Print the built-in study as YAML, ready to edit and pass to --data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := study.Marshal(study.Default())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(doc)

			return err
		},
	}
}

// overrideString copies a flag value into dst when the flag was given.
func overrideString(cmd *cobra.Command, flag string, dst *string, val string) {
	if cmd.Flags().Changed(flag) {
		*dst = val
	}
}
