package commands

import "github.com/spf13/cobra"

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove generated declaration stubs and the runtime module",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := options(cmd)
			opts.DryRun, _ = cmd.Flags().GetBool("dry-run")
			_, err := c.app.Clean(cmd.Context(), opts)
			return err
		},
	}
	cmd.Flags().BoolP("dry-run", "n", false, "List the files that would be removed")
	return cmd
}
