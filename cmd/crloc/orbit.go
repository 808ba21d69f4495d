package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chainrecurrent/locator/mapping"
	"github.com/chainrecurrent/locator/orbit"
	"github.com/chainrecurrent/locator/plot"
)

func newOrbitCmd() *cobra.Command {
	var fExpr, gExpr, out string
	var x0, y0 float64
	var iterations int
	var staggered bool

	cmd := &cobra.Command{
		Use:   "orbit",
		Short: "Trace a single orbit of (f, g) from (x0, y0)",
		RunE: func(cmd *cobra.Command, args []string) error {
			prior := loadMode(modeArbitraryMapping)

			var err error
			if !cmd.Flags().Changed("f") {
				if fExpr, err = askString("f(x, y)", stringParam(prior, "f", "x")); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("g") {
				if gExpr, err = askString("g(x, y)", stringParam(prior, "g", "y")); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("x0") {
				if x0, err = askFloat("x0", floatParam(prior, "x0", 0.1)); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("y0") {
				if y0, err = askFloat("y0", floatParam(prior, "y0", 0.1)); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("iterations") {
				if iterations, err = askInt("iterations", intParam(prior, "iterations", 1000)); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("staggered") {
				if staggered, err = askBool("use the staggered update order?", boolParam(prior, "staggered", false)); err != nil {
					return err
				}
			}

			f, err := mapping.Compile(fExpr)
			if err != nil {
				return fmt.Errorf("crloc orbit: compile f: %w", err)
			}
			g, err := mapping.Compile(gExpr)
			if err != nil {
				return fmt.Errorf("crloc orbit: compile g: %w", err)
			}

			order := orbit.Simultaneous
			if staggered {
				order = orbit.Staggered
			}

			xs, ys, err := orbit.Trace(f, g, x0, y0, iterations, order)
			if err != nil {
				return fmt.Errorf("crloc orbit: %w", err)
			}

			if out != "" {
				if err := plot.ScatterPNG(xs, ys, out); err != nil {
					return fmt.Errorf("crloc orbit: render plot: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			}

			err = saveMode(modeArbitraryMapping, idArbitraryMapping, map[string]any{
				"f":          fExpr,
				"g":          gExpr,
				"x0":         x0,
				"y0":         y0,
				"iterations": float64(iterations),
				"staggered":  staggered,
			})
			if err != nil {
				return fmt.Errorf("crloc orbit: save session: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "traced %d points\n", len(xs))
			return nil
		},
	}

	cmd.Flags().StringVar(&fExpr, "f", "", "expression for f(x, y)")
	cmd.Flags().StringVar(&gExpr, "g", "", "expression for g(x, y)")
	cmd.Flags().Float64Var(&x0, "x0", 0, "initial x")
	cmd.Flags().Float64Var(&y0, "y0", 0, "initial y")
	cmd.Flags().IntVar(&iterations, "iterations", 0, "number of steps")
	cmd.Flags().BoolVar(&staggered, "staggered", false, "use the staggered update order instead of simultaneous")
	cmd.Flags().StringVar(&out, "out", "", "write a scatter plot PNG of the trajectory to this path")

	return cmd
}
