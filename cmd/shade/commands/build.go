package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate declaration stubs and the runtime module for every shader",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := options(cmd)
			opts.DryRun, _ = cmd.Flags().GetBool("dry-run")
			_, err := c.app.Build(cmd.Context(), opts)
			return err
		},
	}
	cmd.Flags().BoolP("dry-run", "n", false, "Report the files that would change without writing them")
	return cmd
}
