package segment

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config customises the marker tables, for example to segment responses
// produced from translated templates.
type Config struct {
	// NoErrorsPhrase marks a grammar errors section as explicitly empty.
	// Default: DefaultNoErrorsPhrase.
	NoErrorsPhrase string `json:"no_errors_phrase" yaml:"no_errors_phrase" toml:"no_errors_phrase"`

	// Tables replaces the default table of each named kind.
	// Keys are kind names ("grammar", "tone", "rewrite").
	Tables map[string]Table `json:"tables,omitempty" yaml:"tables,omitempty" toml:"tables"`
}

// DefaultConfig returns a Config that reproduces the built-in behaviour.
func DefaultConfig() Config {
	return Config{NoErrorsPhrase: DefaultNoErrorsPhrase}
}

// LoadConfig reads a Config from a YAML, TOML or JSON file, chosen by
// extension. Unset values keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read segment config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		_, err = toml.Decode(string(data), &cfg)
	case ".json":
		err = json.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("%w: unsupported config format %q", ErrInvalidConfig, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse segment config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFromEnv overrides config fields from environment variables.
//
// Supported variables:
//   - TEXTKIT_NO_ERRORS_PHRASE: no-errors sentinel phrase
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("TEXTKIT_NO_ERRORS_PHRASE"); v != "" {
		c.NoErrorsPhrase = v
	}
}

// Validate checks table names and sections.
func (c *Config) Validate() error {
	for name, table := range c.Tables {
		if !Kind(name).Valid() {
			return fmt.Errorf("%w: %w: %q", ErrInvalidConfig, ErrUnknownKind, name)
		}
		if len(table) == 0 {
			return fmt.Errorf("%w: table %q has no sections", ErrInvalidConfig, name)
		}

		seen := make(map[string]bool, len(table))
		for i, sec := range table {
			if sec.Field == "" {
				return fmt.Errorf("%w: %s section %d: field is required", ErrInvalidConfig, name, i)
			}
			if sec.Start == "" {
				return fmt.Errorf("%w: %s.%s: start marker is required", ErrInvalidConfig, name, sec.Field)
			}
			if seen[sec.Field] {
				return fmt.Errorf("%w: %s.%s: duplicate field", ErrInvalidConfig, name, sec.Field)
			}
			seen[sec.Field] = true
		}
	}
	return nil
}
