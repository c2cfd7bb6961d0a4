package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tianliu1119/npuzzle-solver/pkg/heuristic"
	"github.com/tianliu1119/npuzzle-solver/pkg/search"
)

// benchSelectors is the fixed comparison order, weakest guidance first.
var benchSelectors = []heuristic.Selector{
	heuristic.UniformCost,
	heuristic.MisplacedTile,
	heuristic.Euclidean,
	heuristic.Manhattan,
	heuristic.ManhattanLinearConflict,
}

func newBenchCommand() *cobra.Command {
	var (
		presetName string
		filePath   string
		maxNodes   int
		skipSlow   bool
	)

	cmd := &cobra.Command{
		Use:   "bench [tiles...]",
		Short: "Compare all heuristics on one puzzle",
		Long: `Solve the same puzzle once per heuristic and tabulate nodes expanded,
peak frontier size, and solution depth. Optimal depth is identical for
every admissible heuristic; only the search effort differs.`,
		Example: `  # Compare heuristics on the hard built-in 8-puzzle
  npuzzle bench --preset oh-boy

  # Skip the unguided heuristics on a 15-puzzle
  npuzzle bench --preset 15-wait-for-it --skip-slow`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tel, err := newTelemetry()
			if err != nil {
				return err
			}
			defer tel.Shutdown(cmd.Context())

			puz, source, err := resolvePuzzle(args, presetName, filePath)
			if err != nil {
				return err
			}
			if !puz.Solvable() {
				fmt.Fprintln(cmd.OutOrStdout(), "not solvable")
				return nil
			}

			log.Info().Str("source", source).Int("dim", puz.Dim()).Msg("Benchmarking heuristics")

			type row struct {
				Heuristic   string        `json:"heuristic"`
				Expanded    int           `json:"nodes_expanded"`
				MaxFrontier int           `json:"max_frontier_size"`
				Depth       int           `json:"goal_depth"`
				Elapsed     time.Duration `json:"elapsed_ns"`
			}
			var rows []row

			for _, sel := range benchSelectors {
				if skipSlow && (sel == heuristic.UniformCost || sel == heuristic.MisplacedTile) {
					continue
				}
				opts := []search.Option{search.WithObserver(tel)}
				if maxNodes > 0 {
					opts = append(opts, search.WithMaxNodes(maxNodes))
				}
				began := time.Now()
				res, err := search.New(puz, sel, opts...).Solve(cmd.Context())
				if err != nil {
					return fmt.Errorf("heuristic %s: %w", sel, err)
				}
				rows = append(rows, row{
					Heuristic:   sel.String(),
					Expanded:    res.NodesExpanded,
					MaxFrontier: res.MaxFrontierSize,
					Depth:       res.GoalDepth,
					Elapsed:     time.Since(began),
				})
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "HEURISTIC\tEXPANDED\tMAX FRONTIER\tDEPTH\tELAPSED")
			for _, r := range rows {
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n",
					r.Heuristic, r.Expanded, r.MaxFrontier, r.Depth, r.Elapsed.Round(time.Microsecond))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&presetName, "preset", "", "use a built-in puzzle (see 'npuzzle presets')")
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "YAML puzzle file path")
	cmd.Flags().IntVar(&maxNodes, "max-nodes", 0, "abort any run after this many expansions (0 = unlimited)")
	cmd.Flags().BoolVar(&skipSlow, "skip-slow", false, "skip uniform and misplaced-tile runs")

	return cmd
}
