package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tianliu1119/npuzzle-solver/pkg/presets"
)

func newPresetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the built-in puzzles",
		RunE: func(cmd *cobra.Command, args []string) error {
			list := presets.List()

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(list)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSIZE\tMOVES\tDESCRIPTION")
			for _, p := range list {
				moves := "unsolvable"
				if p.Moves >= 0 {
					moves = fmt.Sprintf("%d", p.Moves)
				}
				fmt.Fprintf(w, "%s\t%dx%d\t%s\t%s\n", p.Name, p.Dim(), p.Dim(), moves, p.Description)
			}
			return w.Flush()
		},
	}
	return cmd
}
