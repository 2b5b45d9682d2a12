package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"heroes/internal/domain"
)

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a hero",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hero := domain.Hero{Name: strings.Join(args, " ")}
			return report(cmd, appCtx.Heroes.Add(cmd.Context(), hero))
		},
	}
}

// update <id> <name>: rename a hero.
func updateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <id> <name>",
		Short: "Rename a hero",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			hero := domain.Hero{ID: id, Name: strings.Join(args[1:], " ")}
			return report(cmd, appCtx.Heroes.Update(cmd.Context(), hero))
		},
	}
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a hero",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return report(cmd, appCtx.Heroes.Delete(cmd.Context(), id))
		},
	}
}
