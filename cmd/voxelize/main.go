// Package main is the entry point for the voxelize CLI.
package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/voxelate/internal/config"
	"github.com/Faultbox/voxelate/internal/debug"
	"github.com/Faultbox/voxelate/internal/logger"
	"github.com/Faultbox/voxelate/internal/scene"
	"github.com/Faultbox/voxelate/internal/voxel"
	"github.com/Faultbox/voxelate/internal/voxelator"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Voxelate ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("voxelization failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	s, err := scene.Load(cfg.Scene.Path)
	if err != nil {
		return err
	}
	logger.Info("scene loaded",
		zap.String("path", cfg.Scene.Path),
		zap.Int("objects", len(s.Objects())))

	grid := voxel.NewGrid(cfg.CellSizeVec(), cfg.Bounds())
	v := voxelator.New(s,
		voxelator.WithMergeOp(cfg.MergeOp()),
		voxelator.WithLogger(logger.Log))

	start := time.Now()
	store, err := v.VoxelizeRegion(grid)
	if err != nil {
		return err
	}

	logger.Info("voxelization complete",
		zap.Int("cells", grid.CellCount()),
		zap.Int("occupied", store.OccupiedCount()),
		zap.Duration("elapsed", time.Since(start)))

	if cfg.Output.Path != "" {
		if err := writeOccupiedCells(cfg, store); err != nil {
			return err
		}
		logger.Info("wrote occupied cells", zap.String("path", cfg.Output.Path))
	}

	return nil
}

// writeOccupiedCells writes one occupied cell coordinate per line, and
// optionally the wireframe line vertices for each occupied cell.
func writeOccupiedCells(cfg *config.Config, store *voxel.OccupancyStore) error {
	f, err := os.Create(cfg.Output.Path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	grid := store.Grid()
	for _, index := range store.OccupiedIndices() {
		c, err := grid.CellCoordinate(index)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(f, "%d %d %d\n", c.X, c.Y, c.Z); err != nil {
			return err
		}
	}

	if cfg.Output.Wireframe {
		verts, err := debug.OccupiedCellWireframes(store)
		if err != nil {
			return err
		}
		for i := 0; i < len(verts); i += 2 {
			a, b := verts[i], verts[i+1]
			if _, err := fmt.Fprintf(f, "line %g %g %g %g %g %g\n",
				a.X, a.Y, a.Z, b.X, b.Y, b.Z); err != nil {
				return err
			}
		}
	}

	return f.Sync()
}
