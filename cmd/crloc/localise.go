package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/chainrecurrent/locator/cell"
	"github.com/chainrecurrent/locator/localiser"
	"github.com/chainrecurrent/locator/mapping"
	"github.com/chainrecurrent/locator/plot"
)

func newLocaliseCmd() *cobra.Command {
	var fExpr, gExpr, out string
	var swX, swY, neX, neY float64
	var cellDensity, depth, samplesPerCell, fragX, fragY int
	var topsort, parallel, verbose bool
	var seed int64

	cmd := &cobra.Command{
		Use:   "localise",
		Short: "Localise the chain-recurrent set of (f, g) inside a rectangle",
		RunE: func(cmd *cobra.Command, args []string) error {
			prior := loadMode(modeCRSetLocalizing)

			var err error
			if !cmd.Flags().Changed("f") {
				if fExpr, err = askString("f(x, y)", stringParam(prior, "f", "1 - 1.4*x*x + 0.3*y")); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("g") {
				if gExpr, err = askString("g(x, y)", stringParam(prior, "g", "x")); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("sw-x") {
				if swX, err = askFloat("south-west x", floatParam(prior, "sw_x", -1.5)); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("sw-y") {
				if swY, err = askFloat("south-west y", floatParam(prior, "sw_y", -0.4)); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("ne-x") {
				if neX, err = askFloat("north-east x", floatParam(prior, "ne_x", 1.5)); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("ne-y") {
				if neY, err = askFloat("north-east y", floatParam(prior, "ne_y", 0.4)); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("cell-density") {
				if cellDensity, err = askInt("points sampled per surviving cell", intParam(prior, "cell_density", 20)); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("depth") {
				if depth, err = askInt("refinement depth", intParam(prior, "depth", 4)); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("samples-per-cell") {
				if samplesPerCell, err = askInt("Monte-Carlo samples per cell", intParam(prior, "samples_per_cell", 100)); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("fragments-x") {
				if fragX, err = askInt("initial fragmentation factor (x)", intParam(prior, "fragments_x", 40)); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("fragments-y") {
				if fragY, err = askInt("initial fragmentation factor (y)", intParam(prior, "fragments_y", 40)); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("topsort") {
				if topsort, err = askBool("print the topological order of surviving components?", boolParam(prior, "topsort", false)); err != nil {
					return err
				}
			}

			f, err := mapping.Compile(fExpr)
			if err != nil {
				return fmt.Errorf("crloc localise: compile f: %w", err)
			}
			g, err := mapping.Compile(gExpr)
			if err != nil {
				return fmt.Errorf("crloc localise: compile g: %w", err)
			}

			cfg := localiser.DefaultConfig()
			cfg.Bounds = cell.Bounds{SwX: swX, SwY: swY, NeX: neX, NeY: neY}
			cfg.F, cfg.G = f, g
			cfg.CellDensity = cellDensity
			cfg.Depth = depth
			cfg.SamplesPerCell = samplesPerCell
			cfg.InitialFragmentsX = fragX
			cfg.InitialFragmentsY = fragY
			cfg.TopsortEnabled = topsort
			cfg.Seed = seed
			cfg.Parallel = parallel
			if verbose {
				cfg.Logger = log.New(cmd.ErrOrStderr(), "crloc: ", 0)
			}

			result, err := localiser.Run(cfg)
			if err != nil {
				return fmt.Errorf("crloc localise: %w", err)
			}

			if out != "" {
				if err := plot.ScatterPNG(result.Xs, result.Ys, out); err != nil {
					return fmt.Errorf("crloc localise: render plot: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			}

			if topsort {
				for _, comp := range result.Order {
					fmt.Fprintf(cmd.OutOrStdout(), "component %d: %d cells\n", comp.Cluster, len(comp.Cells))
				}
			}

			err = saveMode(modeCRSetLocalizing, idCRSetLocalizing, map[string]any{
				"f":                fExpr,
				"g":                gExpr,
				"sw_x":             swX,
				"sw_y":             swY,
				"ne_x":             neX,
				"ne_y":             neY,
				"cell_density":     float64(cellDensity),
				"depth":            float64(depth),
				"samples_per_cell": float64(samplesPerCell),
				"fragments_x":      float64(fragX),
				"fragments_y":      float64(fragY),
				"topsort":          topsort,
			})
			if err != nil {
				return fmt.Errorf("crloc localise: save session: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "sampled %d points from surviving cells\n", len(result.Xs))
			return nil
		},
	}

	cmd.Flags().StringVar(&fExpr, "f", "", "expression for f(x, y)")
	cmd.Flags().StringVar(&gExpr, "g", "", "expression for g(x, y)")
	cmd.Flags().Float64Var(&swX, "sw-x", 0, "south-west x of the bounding rectangle")
	cmd.Flags().Float64Var(&swY, "sw-y", 0, "south-west y of the bounding rectangle")
	cmd.Flags().Float64Var(&neX, "ne-x", 0, "north-east x of the bounding rectangle")
	cmd.Flags().Float64Var(&neY, "ne-y", 0, "north-east y of the bounding rectangle")
	cmd.Flags().IntVar(&cellDensity, "cell-density", 0, "points sampled per surviving cell")
	cmd.Flags().IntVar(&depth, "depth", 0, "number of refine-decompose-markup cycles")
	cmd.Flags().IntVar(&samplesPerCell, "samples-per-cell", 0, "Monte-Carlo samples per cell per layer")
	cmd.Flags().IntVar(&fragX, "fragments-x", 0, "initial fragmentation factor on the x axis")
	cmd.Flags().IntVar(&fragY, "fragments-y", 0, "initial fragmentation factor on the y axis")
	cmd.Flags().BoolVar(&topsort, "topsort", false, "print the topological order of surviving non-trivial components")
	cmd.Flags().Int64Var(&seed, "seed", 1, "RNG seed for Monte-Carlo sampling")
	cmd.Flags().BoolVar(&parallel, "parallel", true, "build each symbolic image with a worker pool")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "log phase transitions to stderr")
	cmd.Flags().StringVar(&out, "out", "", "write a scatter plot PNG of the surviving cells to this path")

	return cmd
}
