// Package config loads the static game configuration: the color palette, the
// piece shapes, the gravity interval and the cell size used by renderers.
//
// Files are YAML. JSON is a subset of YAML, so a {"COLORS": [...],
// "SHAPES": [...]} JSON file loads as is.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/plus3/blockfall/tetris"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultConfig []byte

var (
	ErrNoColors      = errors.New("palette has no colors")
	ErrEmptyColor    = errors.New("empty color token")
	ErrNoShapes      = errors.New("palette has no shapes")
	ErrEmptyShape    = errors.New("shape has no occupied cell")
	ErrRaggedShape   = errors.New("shape rows differ in length")
	ErrBadCell       = errors.New("shape cell must be 0 or 1")
	ErrShapeTooLarge = errors.New("shape does not fit the board")
	ErrBadGravity    = errors.New("gravity interval must be positive")
	ErrBadCellSize   = errors.New("cell size must be positive")
)

type Config struct {
	Colors   []string      `yaml:"COLORS"`
	Shapes   [][][]int     `yaml:"SHAPES"`
	Gravity  time.Duration `yaml:"gravity"`
	CellSize int           `yaml:"cell_size"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultConfig, cfg); err != nil {
		panic("config: embedded default.yaml: " + err.Error())
	}
	return cfg
}

// Parse decodes data on top of the defaults, so keys missing from data keep
// their default values. The result is validated.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every precondition the engine relies on.
func (c *Config) Validate() error {
	if len(c.Colors) == 0 {
		return fmt.Errorf("config: %w", ErrNoColors)
	}
	for i, color := range c.Colors {
		if color == "" {
			return fmt.Errorf("config: color %d: %w", i, ErrEmptyColor)
		}
	}

	if len(c.Shapes) == 0 {
		return fmt.Errorf("config: %w", ErrNoShapes)
	}
	for i, shape := range c.Shapes {
		if err := validateShape(shape); err != nil {
			return fmt.Errorf("config: shape %d: %w", i, err)
		}
	}

	if c.Gravity <= 0 {
		return fmt.Errorf("config: %w", ErrBadGravity)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("config: %w", ErrBadCellSize)
	}
	return nil
}

func validateShape(rows [][]int) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return ErrEmptyShape
	}
	if len(rows) > tetris.Rows || len(rows[0]) > tetris.Cols {
		return ErrShapeTooLarge
	}

	occupied := 0
	for _, row := range rows {
		if len(row) != len(rows[0]) {
			return ErrRaggedShape
		}
		for _, cell := range row {
			switch cell {
			case 0:
			case 1:
				occupied++
			default:
				return ErrBadCell
			}
		}
	}

	if occupied == 0 {
		return ErrEmptyShape
	}
	return nil
}

// Palette validates the configuration and converts it into the engine's
// immutable shape and color set.
func (c *Config) Palette() (*tetris.Palette, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	palette := &tetris.Palette{
		Colors: make([]tetris.Color, len(c.Colors)),
		Shapes: make([]tetris.Shape, len(c.Shapes)),
	}
	for i, color := range c.Colors {
		palette.Colors[i] = tetris.Color(color)
	}
	for i, shape := range c.Shapes {
		palette.Shapes[i] = tetris.ShapeFromInts(shape)
	}
	return palette, nil
}
