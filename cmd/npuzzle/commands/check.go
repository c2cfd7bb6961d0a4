package commands

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newCheckCommand() *cobra.Command {
	var (
		presetName string
		filePath   string
	)

	cmd := &cobra.Command{
		Use:   "check [tiles...]",
		Short: "Check whether a puzzle is solvable",
		Long: `Run the inversion-parity solvability test without searching.

An 8-puzzle reaches only half of the 9! tile arrangements; this check
decides membership in the reachable half before any search effort is
spent.`,
		Example: `  # The classic unsolvable arrangement
  npuzzle check 1 2 3 4 5 6 8 7 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			puz, source, err := resolvePuzzle(args, presetName, filePath)
			if err != nil {
				return err
			}

			log.Debug().Str("source", source).Int("dim", puz.Dim()).Msg("Checking solvability")

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				return enc.Encode(map[string]interface{}{
					"dim":      puz.Dim(),
					"solvable": puz.Solvable(),
				})
			}
			if puz.Solvable() {
				fmt.Fprintln(cmd.OutOrStdout(), "solvable")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "not solvable")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&presetName, "preset", "", "use a built-in puzzle (see 'npuzzle presets')")
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "YAML puzzle file path")

	return cmd
}
