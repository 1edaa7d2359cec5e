package provider

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds configuration for calling the model.
type Config struct {
	// Name identifies the completer in errors and logs.
	// Default: "command".
	Name string `json:"name" yaml:"name" toml:"name"`

	// Command is the model CLI to execute for Command completers.
	// The prompt is written to its stdin and the response read from stdout.
	Command string `json:"command" yaml:"command" toml:"command"`

	// Args are passed to Command.
	Args []string `json:"args" yaml:"args" toml:"args"`

	// Env provides additional environment variables for Command.
	Env map[string]string `json:"env" yaml:"env" toml:"env"`

	// Timeout bounds a single completion. 0 means no limit.
	Timeout time.Duration `json:"timeout" yaml:"timeout" toml:"timeout"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Name:    "command",
		Timeout: 2 * time.Minute,
	}
}

// LoadFromEnv populates config fields from environment variables.
// Environment variables use the TEXTKIT_ prefix and take precedence over
// existing values.
//
// Supported variables:
//   - TEXTKIT_PROVIDER: completer name
//   - TEXTKIT_COMMAND: model CLI path
//   - TEXTKIT_COMMAND_ARGS: space-separated arguments
//   - TEXTKIT_TIMEOUT: timeout duration (e.g., "90s")
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("TEXTKIT_PROVIDER"); v != "" {
		c.Name = v
	}
	if v := os.Getenv("TEXTKIT_COMMAND"); v != "" {
		c.Command = v
	}
	if v := os.Getenv("TEXTKIT_COMMAND_ARGS"); v != "" {
		c.Args = strings.Fields(v)
	}
	if v := os.Getenv("TEXTKIT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Timeout = d
		}
	}
}

// FromEnv creates a Config from environment variables with defaults.
func FromEnv() Config {
	cfg := DefaultConfig()
	cfg.LoadFromEnv()
	return cfg
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0, got %v", c.Timeout)
	}
	return nil
}
