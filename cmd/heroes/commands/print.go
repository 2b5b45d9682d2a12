package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"heroes/internal/domain"
)

// report prints result as indented JSON followed by the message feed.
func report(cmd *cobra.Command, result any) error {
	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, string(b))
	for _, m := range appCtx.Messages.Messages() {
		fmt.Fprintf(out, "# %s\n", m)
	}
	return nil
}

func parseID(s string) (domain.HeroID, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid hero id %q", s)
	}
	return domain.HeroID(n), nil
}
