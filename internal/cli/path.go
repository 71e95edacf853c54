package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netgraph/adjacency"
	"github.com/katalvlaran/netgraph/dfs"
	"github.com/katalvlaran/netgraph/dijkstra"
)

// pathCommand prints the cheapest path between two nodes, or every path up
// to a length bound.
func (c *CLI) pathCommand() *cobra.Command {
	var (
		src       graphSource
		all       bool
		maxLength int
		directed  bool
	)

	cmd := &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Find the shortest path, or all bounded paths, between two nodes",
		Long: `Find the shortest path, or all bounded paths, between two nodes.

Edge cost is 1 - 0.5×weight. With --all every simple path of at most
--max-length nodes is listed, shortest first.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := src.build(cmd, c.cfg)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("max-length") {
				maxLength = c.cfg.Paths.MaxLength
			}
			if !cmd.Flags().Changed("directed") {
				directed = c.cfg.Paths.Directed
			}
			w := cmd.OutOrStdout()

			if all {
				paths := dfs.Paths(g, args[0], args[1], maxLength)
				if len(paths) == 0 {
					fmt.Fprintln(w, StyleWarning.Render(fmt.Sprintf("no path of at most %d nodes", maxLength)))
					return nil
				}
				for _, p := range paths {
					printPath(w, p)
				}
				return nil
			}

			p, cost, err := dijkstra.ShortestPathCost(g, args[0], args[1], dijkstra.WithDirected(directed))
			if err != nil {
				return err
			}
			printPath(w, p)
			printKV(w, "cost", formatFloat(cost))
			return nil
		},
	}
	src.register(cmd)
	cmd.Flags().BoolVar(&all, "all", false, "list all paths up to --max-length nodes")
	cmd.Flags().IntVar(&maxLength, "max-length", 0, "maximum nodes per path with --all (default: paths.max_length)")
	cmd.Flags().BoolVar(&directed, "directed", false, "follow edges only in their direction (default: paths.directed)")

	return cmd
}

// distancesCommand prints the all-pairs cost matrix.
func (c *CLI) distancesCommand() *cobra.Command {
	var src graphSource

	cmd := &cobra.Command{
		Use:   "distances",
		Short: "Print all-pairs shortest path costs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := src.build(cmd, c.cfg)
			if err != nil {
				return err
			}
			d, err := adjacency.AllPairs(g, adjacency.WithDirected(c.cfg.Paths.Directed))
			if err != nil {
				return err
			}
			ids := d.IDs()
			rows := make([][]string, 0, len(ids))
			for _, from := range ids {
				row := []string{from}
				for _, to := range ids {
					if cost, ok := d.Distance(from, to); ok {
						row = append(row, formatFloat(cost))
					} else {
						row = append(row, "∞")
					}
				}
				rows = append(rows, row)
			}
			renderTable(cmd.OutOrStdout(), append([]string{""}, ids...), rows)
			return nil
		},
	}
	src.register(cmd)

	return cmd
}

func printPath(w io.Writer, p []string) {
	fmt.Fprintln(w, StyleValue.Render(strings.Join(p, " "+iconArrow+" ")))
}
