// Package config provides configuration types, defaults, and persistence
// for taskbook.
package config

import "fmt"

// Output format names accepted by the renderer.
const (
	OutputBoard = "board"
	OutputJSON  = "json"
)

// LogConfig holds console logging options.
type LogConfig struct {
	// Enabled toggles all log output. Default: true.
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// Level is the minimum severity to emit.
	// Valid values: "debug", "info", "warn", "error". Default: "info".
	Level string `mapstructure:"level" yaml:"level"`
}

// Config holds all configuration options for taskbook.
type Config struct {
	// Output selects how registries are rendered.
	// Valid values: "board" (default) or "json".
	Output string `mapstructure:"output" yaml:"output"`

	// Seed toggles populating the registries with sample data on startup.
	// Default: true. With seeding off the commands render empty registries.
	Seed bool `mapstructure:"seed" yaml:"seed"`

	Log LogConfig `mapstructure:"log" yaml:"log"`
}

// Defaults returns the configuration used when no config file exists.
func Defaults() Config {
	return Config{
		Output: OutputBoard,
		Seed:   true,
		Log: LogConfig{
			Enabled: true,
			Level:   "info",
		},
	}
}

// Validate checks option values that have a closed set of valid inputs.
func Validate(cfg Config) error {
	switch cfg.Output {
	case OutputBoard, OutputJSON:
	default:
		return fmt.Errorf("invalid output format %q: must be %q or %q", cfg.Output, OutputBoard, OutputJSON)
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", cfg.Log.Level)
	}
	return nil
}
