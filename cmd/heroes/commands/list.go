package commands

import "github.com/spf13/cobra"

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every hero",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return report(cmd, appCtx.Heroes.Heroes(cmd.Context()))
		},
	}
}

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Find heroes whose name contains term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return report(cmd, appCtx.Heroes.Search(cmd.Context(), args[0]))
		},
	}
}
