package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netgraph/adjacency"
	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/prim_kruskal"
)

// backboneCommand prints the minimum-cost spanning tree of each component.
func (c *CLI) backboneCommand() *cobra.Command {
	var (
		src    graphSource
		method string
		root   string
	)

	cmd := &cobra.Command{
		Use:   "backbone",
		Short: "Print the minimum-cost spanning tree of each component",
		Long: `Print the minimum-cost spanning tree of each component.

Edges are undirected and cost 1 - 0.5×weight, so the backbone keeps the
strongest links. Disconnected graphs get one tree per component.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := src.build(cmd, c.cfg)
			if err != nil {
				return err
			}

			var (
				rows  [][]string
				total float64
			)
			for _, part := range g.Split() {
				opts := []prim_kruskal.Option{prim_kruskal.WithMethod(method)}
				if root != "" && part.HasNode(root) {
					opts = append(opts, prim_kruskal.WithRoot(root))
				}
				edges, cost, err := prim_kruskal.Compute(part, opts...)
				if err != nil {
					return err
				}
				total += cost
				for _, e := range edges {
					rows = append(rows, edgeRow(e))
				}
			}

			w := cmd.OutOrStdout()
			renderTable(w, []string{"From", "To", "Weight", "Cost"}, rows)
			printKV(w, "total cost", formatFloat(total))
			printSuccess(w, "%d of %d edges kept", len(rows), g.EdgeLen())
			return nil
		},
	}
	src.register(cmd)
	cmd.Flags().StringVar(&method, "method", prim_kruskal.MethodKruskal,
		fmt.Sprintf("%s or %s", prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim))
	cmd.Flags().StringVar(&root, "root", "", "start node for prim (default: graph root)")

	return cmd
}

func edgeRow(e *core.Edge) []string {
	return []string{e.Node1, e.Node2, formatFloat(e.Weight), formatFloat(adjacency.Cost(e.Weight))}
}
