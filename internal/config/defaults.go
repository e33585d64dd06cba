// Package config holds default values shared between the CLI
// configuration loader and the commands that consume it.
package config

// Default configuration values.
const (
	// DefaultStateFile is where solve-run history is recorded,
	// relative to the working directory.
	DefaultStateFile = ".lpforge/state.db"

	// DefaultOutput is the rendering format for command output.
	DefaultOutput = "table"

	// DefaultTimeLimit of zero seconds means the solver runs until it
	// terminates on its own.
	DefaultTimeLimit = 0.0

	// DefaultTolerance is the feasibility tolerance used when checking
	// a reported solution against the problem's bounds.
	DefaultTolerance = 1e-6
)
