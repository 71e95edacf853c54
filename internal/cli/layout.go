package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/internal/config"
)

const defaultSteps = 100

// layoutCommand runs the spring layout and prints node positions.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		src   graphSource
		steps int
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Run the spring layout and print node positions",
		Long: `Run the spring layout and print node positions.

Each step advances the layout by layout.iterations iterations with the
configured weight and displacement limit. Positions are screen coordinates
(internal position × layout.distance).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := src.build(cmd, c.cfg)
			if err != nil {
				return err
			}
			p := newProgress(loggerFromContext(cmd.Context()))
			if err := runLayout(cmd.Context(), g, c.cfg.Layout, steps); err != nil {
				return err
			}
			p.done("layout settled", "steps", steps, "iterations", g.Layout().Iterations())

			w := cmd.OutOrStdout()
			rows := make([][]string, 0, g.Len())
			for _, n := range g.Nodes() {
				rows = append(rows, []string{n.ID, formatFloat(n.X), formatFloat(n.Y)})
			}
			renderTable(w, []string{"Node", "X", "Y"}, rows)

			b := g.Bounds()
			printKV(w, "bounds", fmt.Sprintf("(%s, %s) %s (%s, %s)",
				formatFloat(b.Min.X), formatFloat(b.Min.Y), iconArrow, formatFloat(b.Max.X), formatFloat(b.Max.Y)))
			return nil
		},
	}
	src.register(cmd)
	cmd.Flags().IntVar(&steps, "steps", defaultSteps, "number of layout steps")

	return cmd
}

// runLayout advances g by steps × l.Iterations spring iterations, stopping
// early when ctx is cancelled.
func runLayout(ctx context.Context, g *core.Graph, l config.Layout, steps int) error {
	if steps < 0 {
		return fmt.Errorf("--steps must be ≥ 0, got %d", steps)
	}
	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.Update(l.Iterations, l.Weight, l.Limit); err != nil {
			return err
		}
	}
	return nil
}
