package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tianliu1119/npuzzle-solver/pkg/presets"
	"github.com/tianliu1119/npuzzle-solver/pkg/puzzle"
	"github.com/tianliu1119/npuzzle-solver/pkg/telemetry"
)

// resolvePuzzle builds the puzzle instance from, in order of precedence,
// a named preset, a YAML puzzle file, or tile values given as arguments.
// The returned label identifies the source for logging.
func resolvePuzzle(args []string, presetName, filePath string) (*puzzle.Puzzle, string, error) {
	switch {
	case presetName != "":
		p, err := presets.Get(presetName)
		if err != nil {
			return nil, "", err
		}
		puz, err := puzzle.New(p.Grid)
		if err != nil {
			return nil, "", err
		}
		return puz, "preset:" + p.Name, nil

	case filePath != "":
		puz, doc, err := presets.LoadFile(filePath)
		if err != nil {
			return nil, "", err
		}
		return puz, "file:" + doc.Name, nil

	case len(args) > 0:
		grid, err := parseTiles(args)
		if err != nil {
			return nil, "", err
		}
		puz, err := puzzle.New(grid)
		if err != nil {
			return nil, "", err
		}
		return puz, "args", nil

	default:
		return nil, "", fmt.Errorf("no puzzle given: pass tile values, --preset, or --file")
	}
}

// parseTiles accepts tiles as separate arguments or as one quoted
// space-separated string, matching the classic interactive entry format.
func parseTiles(args []string) ([]int, error) {
	var grid []int
	for _, arg := range args {
		for _, field := range strings.Fields(arg) {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("invalid tile value %q: %w", field, err)
			}
			grid = append(grid, v)
		}
	}
	return grid, nil
}

// newTelemetry builds the telemetry handle from the --config file (or
// defaults) with the persistent flags applied on top.
func newTelemetry() (*telemetry.Telemetry, error) {
	var (
		cfg *telemetry.Config
		err error
	)
	if configPath != "" {
		cfg, err = telemetry.LoadFile(configPath)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = telemetry.DefaultConfig()
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if jsonOutput {
		cfg.Logging.Format = "json"
	}
	return telemetry.New(cfg)
}
