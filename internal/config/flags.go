package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagScene    = flag.String("scene", "", "Path to scene file")
	flagOutput   = flag.String("output", "", "Path to write occupied cell coordinates")
	flagCellSize = flag.Float64("cell-size", 0, "Uniform grid cell size")
	flagMerge    = flag.String("merge", "", "Merge operator: or, and, xor")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagScene != "" {
		cfg.Scene.Path = *flagScene
	}
	if *flagOutput != "" {
		cfg.Output.Path = *flagOutput
	}
	if *flagCellSize > 0 {
		cfg.Grid.CellSize = []float64{*flagCellSize, *flagCellSize, *flagCellSize}
	}
	if *flagMerge != "" {
		cfg.Scene.MergeOp = *flagMerge
	}
}
