package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/netgraph/centrality"
	"github.com/katalvlaran/netgraph/core"
)

// rankCommand prints degree, eigenvector and betweenness scores.
func (c *CLI) rankCommand() *cobra.Command {
	var (
		src graphSource
		top int
	)

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank nodes by centrality",
		Long: `Rank nodes by centrality.

Prints normalized degree, eigenvector weight and betweenness centrality,
sorted by betweenness (ties keep insertion order).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := src.build(cmd, c.cfg)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			p := newProgress(logger)

			centrality.Degree(g)
			res, err := centrality.Eigenvector(g, c.cfg.EigenvectorOptions(centrality.WithLogger(logger))...)
			if err != nil {
				return err
			}
			if _, err := centrality.Betweenness(g, c.cfg.BetweennessOptions()...); err != nil {
				return err
			}
			p.done("ranked", "nodes", g.Len(), "eigenvector_iterations", res.Iterations, "converged", res.Converged)

			ranked := g.Sorted(core.ByCentrality, 0)
			if top > 0 && top < len(ranked) {
				ranked = ranked[:top]
			}
			rows := make([][]string, 0, len(ranked))
			for _, n := range ranked {
				rows = append(rows, []string{n.ID, formatFloat(n.Degree), formatFloat(n.Weight), formatFloat(n.Centrality)})
			}
			renderTable(cmd.OutOrStdout(), []string{"Node", "Degree", "Eigenvector", "Betweenness"}, rows)
			return nil
		},
	}
	src.register(cmd)
	cmd.Flags().IntVar(&top, "top", 0, "show only the top N nodes (0 = all)")

	return cmd
}
