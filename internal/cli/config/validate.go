package config

import "fmt"

// validOutputs lists the accepted values for the output key.
var validOutputs = map[string]bool{
	"table":    true,
	"json":     true,
	"markdown": true,
	"md":       true,
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.StatePath == "" {
		return fmt.Errorf("state_path is required")
	}
	if !validOutputs[c.Output] {
		return fmt.Errorf("invalid output format %q (valid: table, json, markdown)", c.Output)
	}
	if c.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive, got %g", c.Tolerance)
	}
	if c.TimeLimit < 0 {
		return fmt.Errorf("time_limit must not be negative, got %g", c.TimeLimit)
	}
	return nil
}
