// Package commands implements the lpforge subcommands.
package commands

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/lpforge/lpforge/internal/cli/config"
	"github.com/lpforge/lpforge/internal/ingest"
	"github.com/lpforge/lpforge/internal/state"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg    *config.Config
	Logger *slog.Logger
}

// NewCommandContext creates a CommandContext from the command's
// configuration and context logger.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	return &CommandContext{
		Cfg:    getConfig(),
		Logger: config.GetLogger(cmd.Context()),
	}
}

// Parser builds an ingestion parser honoring the lenient-numbers setting.
func (c *CommandContext) Parser() *ingest.Parser {
	return ingest.NewParser(ingest.Options{LenientNumbers: c.Cfg.LenientNumbers}, c.Logger)
}

// OpenStore opens the run-history store, creating its directory and
// applying migrations. The returned cleanup must be called (typically
// via defer).
func (c *CommandContext) OpenStore() (state.Store, func(), error) {
	stateDir := filepath.Dir(c.Cfg.StatePath)
	if stateDir != "." && stateDir != "" {
		if err := os.MkdirAll(stateDir, 0750); err != nil {
			return nil, nil, err
		}
	}

	store := state.NewSQLiteStore()
	if err := store.Open(c.Cfg.StatePath); err != nil {
		return nil, nil, err
	}
	if err := store.Migrate(); err != nil {
		_ = store.Close()
		return nil, nil, err
	}

	cleanup := func() {
		_ = store.Close()
	}
	return store, cleanup, nil
}

// Helper functions shared across commands

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	return &config.Config{
		StatePath:      getEnvOrDefault("LPFORGE_STATE_PATH", config.DefaultStateFile),
		Output:         getEnvOrDefault("LPFORGE_OUTPUT", config.DefaultOutput),
		Verbose:        os.Getenv("LPFORGE_VERBOSE") == "true",
		LenientNumbers: os.Getenv("LPFORGE_LENIENT_NUMBERS") == "true",
		TimeLimit:      getEnvFloat("LPFORGE_TIME_LIMIT", 0),
		Tolerance:      getEnvFloat("LPFORGE_TOLERANCE", config.DefaultTolerance),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
