package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/netgraph/internal/config"
)

// configCommand prints the effective configuration.
func (c *CLI) configCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the effective configuration: built-in defaults overlaid with
the file given by --config. The output is a valid config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.cfg.Encode(cmd.OutOrStdout(), format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", config.FormatTOML, "output format: toml, yaml")

	return cmd
}
