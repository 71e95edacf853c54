package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netgraph/bfs"
	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/dfs"
)

// reachCommand lists the nodes reachable from a start node.
func (c *CLI) reachCommand() *cobra.Command {
	var (
		src      graphSource
		depth    int
		depthFst bool
		directed bool
	)

	cmd := &cobra.Command{
		Use:   "reach <from>",
		Short: "List nodes reachable from a node in visit order",
		Long: `List nodes reachable from a node in visit order.

Breadth-first by default, optionally bounded by --depth hops. With --dfs the
order is depth-first pre-order (--depth does not apply).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := src.build(cmd, c.cfg)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("directed") {
				directed = c.cfg.Paths.Directed
			}
			var traversable core.Traversable
			if directed {
				traversable = func(n *core.Node, e *core.Edge) bool { return e.Node1 == n.ID }
			}

			var order []string
			visit := func(n *core.Node) bool {
				order = append(order, n.ID)
				return false
			}

			if depthFst {
				opts := []dfs.Option{dfs.WithContext(cmd.Context()), dfs.WithVisit(visit)}
				if traversable != nil {
					opts = append(opts, dfs.WithTraversable(traversable))
				}
				_, err = dfs.DFS(g, args[0], opts...)
			} else {
				opts := []bfs.Option{bfs.WithContext(cmd.Context()), bfs.WithVisit(visit), bfs.WithMaxDepth(depth)}
				if traversable != nil {
					opts = append(opts, bfs.WithTraversable(traversable))
				}
				_, err = bfs.BFS(g, args[0], opts...)
			}
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, StyleValue.Render(strings.Join(order, " ")))
			printSuccess(w, "%d of %d nodes reached", len(order), g.Len())
			return nil
		},
	}
	src.register(cmd)
	cmd.Flags().IntVar(&depth, "depth", 0, "maximum hops for breadth-first search (0 = unbounded)")
	cmd.Flags().BoolVar(&depthFst, "dfs", false, "use depth-first order")
	cmd.Flags().BoolVar(&directed, "directed", false, "follow edges only in their direction (default: paths.directed)")

	return cmd
}
