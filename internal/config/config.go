// Package config handles voxelizer configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/voxelate/internal/voxel"
	"github.com/Faultbox/voxelate/pkg/vmath"
)

// Config holds all voxelizer settings.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Scene   SceneConfig   `yaml:"scene"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// GridConfig describes the target occupancy grid. Vectors are [x y z].
type GridConfig struct {
	CellSize  []float64 `yaml:"cell_size"`
	BoundsMin []float64 `yaml:"bounds_min"`
	BoundsMax []float64 `yaml:"bounds_max"`
}

// SceneConfig selects the scene input and how shapes are combined.
type SceneConfig struct {
	Path    string `yaml:"path"`
	MergeOp string `yaml:"merge_op"`
}

// OutputConfig controls what gets written after voxelization.
type OutputConfig struct {
	Path      string `yaml:"path"`      // occupied cell coordinates, empty to skip
	Wireframe bool   `yaml:"wireframe"` // include wireframe vertex data
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			CellSize:  []float64{1, 1, 1},
			BoundsMin: []float64{-32, -32, -32},
			BoundsMax: []float64{32, 32, 32},
		},
		Scene: SceneConfig{
			Path:    "scene.yaml",
			MergeOp: "or",
		},
		Output: OutputConfig{
			Path:      "",
			Wireframe: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks the config for values the voxelizer cannot work with.
func (c *Config) Validate() error {
	if len(c.Grid.CellSize) != 3 || len(c.Grid.BoundsMin) != 3 || len(c.Grid.BoundsMax) != 3 {
		return fmt.Errorf("grid vectors must have 3 components")
	}
	for i, v := range c.Grid.CellSize {
		if v <= 0 {
			return fmt.Errorf("cell_size[%d] = %v must be positive", i, v)
		}
	}
	for i := 0; i < 3; i++ {
		if c.Grid.BoundsMax[i] <= c.Grid.BoundsMin[i] {
			return fmt.Errorf("bounds_max[%d] = %v must exceed bounds_min[%d] = %v",
				i, c.Grid.BoundsMax[i], i, c.Grid.BoundsMin[i])
		}
	}
	if _, err := voxel.ParseMergeOp(c.Scene.MergeOp); err != nil {
		return fmt.Errorf("merge_op: %w", err)
	}
	return nil
}

// CellSizeVec returns the configured cell size as a vector.
func (c *Config) CellSizeVec() vmath.Vec3 {
	return vmath.Vec3{X: c.Grid.CellSize[0], Y: c.Grid.CellSize[1], Z: c.Grid.CellSize[2]}
}

// Bounds returns the configured grid bounds.
func (c *Config) Bounds() vmath.Box {
	return vmath.Box{
		Min: vmath.Vec3{X: c.Grid.BoundsMin[0], Y: c.Grid.BoundsMin[1], Z: c.Grid.BoundsMin[2]},
		Max: vmath.Vec3{X: c.Grid.BoundsMax[0], Y: c.Grid.BoundsMax[1], Z: c.Grid.BoundsMax[2]},
	}
}

// MergeOp returns the configured merge operator. Call Validate first.
func (c *Config) MergeOp() voxel.MergeOp {
	op, err := voxel.ParseMergeOp(c.Scene.MergeOp)
	if err != nil {
		return voxel.MergeOr
	}
	return op
}
