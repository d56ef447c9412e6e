// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/katalvlaran/lvplot/curve"
	"github.com/spf13/cobra"
)

func newCurveCmd(a *app) *cobra.Command {
	var (
		req    curve.Request
		shape  string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Print one synthesized recovery curve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("shape") {
				shape = a.cfg.Shape
			}
			s, err := curve.ParseShape(shape)
			if err != nil {
				return err
			}
			req.Shape = s

			c, err := req.Synthesize()
			if err != nil {
				return err
			}
			a.log().Debug("curve synthesized", "shape", s.String(), "samples", c.Len())

			out := cmd.OutOrStdout()
			if asJSON {
				return json.NewEncoder(out).Encode(c)
			}

			rows := make([][]string, c.Len())
			for i := range c.Steps {
				rows[i] = []string{strconv.Itoa(c.Steps[i]), strconv.FormatFloat(c.Values[i], 'f', 6, 64)}
			}
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("step", "value").
				Rows(rows...)
			_, err = fmt.Fprintln(out, t.Render())

			return err
		},
	}

	f := cmd.Flags()
	f.Float64Var(&req.Start, "start", 0, "value right after the change")
	f.Float64Var(&req.End, "end", 0, "value reached at the last step")
	f.Float64Var(&req.Steps, "steps", 0, "number of steps (≥ 1)")
	f.StringVar(&shape, "shape", curve.Exponential.String(), "exponential, linear or sigmoid")
	f.BoolVar(&asJSON, "json", false, `print {"steps":[...],"values":[...]}`)
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	_ = cmd.MarkFlagRequired("steps")

	return cmd
}

func newShapesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shapes",
		Short: "List the supported curve shapes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, s := range curve.Shapes() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), s); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
