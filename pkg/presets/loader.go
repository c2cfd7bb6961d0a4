package presets

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/tianliu1119/npuzzle-solver/pkg/puzzle"
)

// Document is the YAML shape of a user-supplied puzzle file:
//
//	name: my-board
//	description: optional free text
//	rows:
//	  - [1, 2, 3]
//	  - [4, 5, 6]
//	  - [7, 8, 0]
type Document struct {
	Name        string  `yaml:"name" validate:"required"`
	Description string  `yaml:"description"`
	Rows        [][]int `yaml:"rows" validate:"required,min=2,dive,min=2"`
}

var validate = validator.New()

// Load parses a YAML puzzle document and constructs the puzzle instance.
// Structural problems (missing fields, ragged rows) surface as load
// errors; tile-level problems surface as puzzle invalid-grid errors.
func Load(data []byte) (*puzzle.Puzzle, *Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("failed to parse puzzle document: %w", err)
	}
	if err := validate.Struct(&doc); err != nil {
		return nil, nil, fmt.Errorf("invalid puzzle document: %w", err)
	}

	dim := len(doc.Rows)
	grid := make([]int, 0, dim*dim)
	for i, row := range doc.Rows {
		if len(row) != dim {
			return nil, nil, fmt.Errorf("row %d has %d cells, want %d (square grid)",
				i, len(row), dim)
		}
		grid = append(grid, row...)
	}

	p, err := puzzle.New(grid)
	if err != nil {
		return nil, nil, err
	}
	return p, &doc, nil
}

// LoadFile reads and parses a YAML puzzle file.
func LoadFile(path string) (*puzzle.Puzzle, *Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read puzzle file %s: %w", path, err)
	}
	return Load(data)
}
