// Package config provides configuration management for the lpforge CLI.
//
// Configuration is merged from four sources, lowest to highest
// precedence: built-in defaults, an lpforge.yaml file, LPFORGE_*
// environment variables, and command-line flags.
package config

import (
	"time"

	intconfig "github.com/lpforge/lpforge/internal/config"
)

// Config holds all CLI configuration options.
type Config struct {
	StatePath      string  `koanf:"state_path"`
	Output         string  `koanf:"output"`
	Verbose        bool    `koanf:"verbose"`
	LenientNumbers bool    `koanf:"lenient_numbers"`
	TimeLimit      float64 `koanf:"time_limit"`
	Tolerance      float64 `koanf:"tolerance"`
}

// SolveTimeLimit converts the configured time limit in seconds to a
// duration. Zero means no limit.
func (c *Config) SolveTimeLimit() time.Duration {
	if c.TimeLimit <= 0 {
		return 0
	}
	return time.Duration(c.TimeLimit * float64(time.Second))
}

// Default configuration values - uses shared defaults from internal/config
const (
	DefaultStateFile = intconfig.DefaultStateFile
	DefaultOutput    = intconfig.DefaultOutput
	DefaultTolerance = intconfig.DefaultTolerance
)
