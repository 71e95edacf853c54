package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

const maxListedIDs = 6

// splitCommand partitions the graph into connected components.
func (c *CLI) splitCommand() *cobra.Command {
	var src graphSource

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Partition the graph into connected components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := src.build(cmd, c.cfg)
			if err != nil {
				return err
			}
			parts := g.Split()
			rows := make([][]string, 0, len(parts))
			for i, p := range parts {
				ids := p.NodeIDs()
				if len(ids) > maxListedIDs {
					ids = append(ids[:maxListedIDs:maxListedIDs], "…")
				}
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					strconv.Itoa(p.Len()),
					strconv.Itoa(p.EdgeLen()),
					strings.Join(ids, " "),
				})
			}
			renderTable(cmd.OutOrStdout(), []string{"#", "Nodes", "Edges", "Members"}, rows)
			return nil
		},
	}
	src.register(cmd)

	return cmd
}
