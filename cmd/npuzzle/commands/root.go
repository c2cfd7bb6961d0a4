// Package commands implements the npuzzle CLI: puzzle entry, heuristic
// selection, solving, solvability checks, and heuristic benchmarking.
package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
	jsonOutput bool
)

// Execute runs the root command.
func Execute(ctx context.Context, version, commit, buildDate string) error {
	rootCmd := newRootCommand(version, commit, buildDate)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "npuzzle",
		Short: "npuzzle - optimal sliding-tile puzzle solver",
		Long: `npuzzle solves square sliding-tile puzzles (8-puzzle, 15-puzzle, and
larger) with best-first graph search, guaranteeing minimum-length
solutions under any of its admissible heuristics:

  1. uniform       Uniform Cost Search
  2. misplaced     A* with the Misplaced Tile heuristic
  3. euclidean     A* with the Euclidean distance heuristic
  4. manhattan     A* with the Manhattan distance heuristic
  5. manhattan-lc  A* with Manhattan distance plus linear conflict`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "telemetry config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	rootCmd.AddCommand(newSolveCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newBenchCommand())
	rootCmd.AddCommand(newPresetsCommand())

	return rootCmd
}
