package commands

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tianliu1119/npuzzle-solver/pkg/heuristic"
	"github.com/tianliu1119/npuzzle-solver/pkg/puzzle"
	"github.com/tianliu1119/npuzzle-solver/pkg/search"
)

func newSolveCommand() *cobra.Command {
	var (
		heuristicName   string
		presetName      string
		filePath        string
		maxNodes        int
		traceExpansions bool
	)

	cmd := &cobra.Command{
		Use:   "solve [tiles...]",
		Short: "Find an optimal solution for a puzzle",
		Long: `Solve a sliding-tile puzzle and print the optimal move sequence.

The puzzle comes from tile values on the command line (0 for the blank),
a built-in preset, or a YAML puzzle file. The heuristic is selected by
name or by the classic numeric choice 1..5; unknown selections fall back
to uniform-cost search.`,
		Example: `  # Solve a puzzle given inline, with the Manhattan heuristic
  npuzzle solve --heuristic manhattan 1 2 0 4 5 3 7 8 6

  # Solve the worst-case built-in 8-puzzle with linear conflict
  npuzzle solve --preset wait-for-it --heuristic manhattan-lc

  # Solve a puzzle file with a node budget
  npuzzle solve --file board.yaml --max-nodes 1000000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tel, err := newTelemetry()
			if err != nil {
				return err
			}
			defer tel.Shutdown(cmd.Context())

			puz, source, err := resolvePuzzle(args, presetName, filePath)
			if err != nil {
				if puzzle.IsInvalidGrid(err) && tel.Metrics != nil {
					tel.Metrics.PuzzleRejected("invalid_grid")
				}
				return err
			}
			sel := resolveHeuristic(heuristicName)

			log.Info().
				Str("source", source).
				Int("dim", puz.Dim()).
				Str("heuristic", sel.String()).
				Msg("Solving puzzle")

			opts := []search.Option{search.WithObserver(tel)}
			if maxNodes > 0 {
				opts = append(opts, search.WithMaxNodes(maxNodes))
			}
			if traceExpansions {
				opts = append(opts, search.WithExpandHook(func(s puzzle.State, expanded int) {
					log.Debug().
						Int("expanded", expanded).
						Int("g", s.G).
						Float64("h", s.H).
						Str("key", s.Key()).
						Msg("Expanding state")
				}))
			}

			engine := search.New(puz, sel, opts...)
			res, err := engine.Solve(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput {
				return printSolveJSON(cmd, puz, sel, res)
			}
			return printSolveText(cmd, puz, res)
		},
	}

	cmd.Flags().StringVarP(&heuristicName, "heuristic", "H", "manhattan-lc",
		"heuristic: uniform, misplaced, euclidean, manhattan, manhattan-lc, or 1..5")
	cmd.Flags().StringVar(&presetName, "preset", "", "use a built-in puzzle (see 'npuzzle presets')")
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "YAML puzzle file path")
	cmd.Flags().IntVar(&maxNodes, "max-nodes", 0, "abort after this many expansions (0 = unlimited)")
	cmd.Flags().BoolVar(&traceExpansions, "trace-expansions", false, "log every expanded state at debug level")

	return cmd
}

// resolveHeuristic accepts a selector name or the classic numeric menu
// choice. Anything unrecognized degrades to uniform-cost.
func resolveHeuristic(name string) heuristic.Selector {
	if len(name) == 1 && name[0] >= '1' && name[0] <= '9' {
		return heuristic.FromChoice(int(name[0] - '0'))
	}
	return heuristic.FromName(name)
}

func printSolveText(cmd *cobra.Command, puz *puzzle.Puzzle, res search.Result) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, puz.RenderSolution(res.Path))
	if len(res.Path) == 0 {
		return nil
	}
	fmt.Fprintf(out, "nodes expanded:    %d\n", res.NodesExpanded)
	fmt.Fprintf(out, "max frontier size: %d\n", res.MaxFrontierSize)
	fmt.Fprintf(out, "solution depth:    %d\n", res.GoalDepth)
	return nil
}

func printSolveJSON(cmd *cobra.Command, puz *puzzle.Puzzle, sel heuristic.Selector, res search.Result) error {
	moves := make([]string, 0, len(res.Path))
	for _, s := range res.Path[min(1, len(res.Path)):] {
		moves = append(moves, s.Move.String())
	}
	payload := map[string]interface{}{
		"dim":               puz.Dim(),
		"heuristic":         sel.String(),
		"solvable":          len(res.Path) > 0,
		"moves":             moves,
		"nodes_expanded":    res.NodesExpanded,
		"max_frontier_size": res.MaxFrontierSize,
		"goal_depth":        res.GoalDepth,
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
