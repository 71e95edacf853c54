package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netgraph/core"
)

// generateCommand builds a topology and prints its structural summary.
func (c *CLI) generateCommand() *cobra.Command {
	var src graphSource

	cmd := &cobra.Command{
		Use:   "generate [kind]",
		Short: "Generate a topology and summarise it",
		Long: `Generate a topology and summarise it.

The kind may be given as the first argument or with --graph. Explicit
--edge values are added on top of the generated graph.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				src.kind = args[0]
			}
			g, err := src.build(cmd, c.cfg)
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), g)
			return nil
		},
	}
	src.register(cmd)

	return cmd
}

// printSummary writes node/edge counts, density and class.
func printSummary(w io.Writer, g *core.Graph) {
	st := g.Stats()
	fmt.Fprintln(w, StyleTitle.Render("graph"))
	printKV(w, "nodes", st.Nodes)
	printKV(w, "edges", st.Edges)
	printKV(w, "leaves", st.Leaves)
	printKV(w, "isolated", st.Isolated)
	printKV(w, "density", formatFloat(st.Density))
	printKV(w, "class", classify(g))
	printKV(w, "components", len(g.Split()))
}

// classify names the density class of g.
func classify(g *core.Graph) string {
	switch {
	case g.Len() < 2:
		return "trivial"
	case g.IsComplete():
		return "complete"
	case g.IsDense():
		return "dense"
	case g.IsSparse():
		return "sparse"
	default:
		return "moderate"
	}
}
