package commands

import "github.com/spf13/cobra"

// get <id>: fetch one hero.
func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one hero",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return report(cmd, appCtx.Heroes.Hero(cmd.Context(), id))
		},
	}
}
