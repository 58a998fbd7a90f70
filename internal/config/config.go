// Package config holds the settings of the hillclimb command: which input to
// read, which traversal modes to run and how to log. Values come from
// Default, optionally overlaid by a YAML file, then by command-line flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hillclimb/climb"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full driver configuration.
type Config struct {
	// Input is the path of the heightmap file.
	Input string `yaml:"input"`
	// Modes lists traversal modes by name ("forward", "reverse") or part ("1", "2").
	Modes []string `yaml:"modes"`
	// LogLevel is any level logrus understands.
	LogLevel string `yaml:"log_level"`
	// LogFormat is "text" or "json".
	LogFormat string `yaml:"log_format"`
	// ShowPath prints the walked path under each answer.
	ShowPath bool `yaml:"show_path"`
	// Stats prints frontier and reachability counters under each answer.
	Stats bool `yaml:"stats"`
	// MaxCost caps the search depth; 0 means no cap.
	MaxCost int `yaml:"max_cost"`
}

// Default returns the configuration used when nothing else is given:
// both modes, info-level text logs, no path, no stats, no cap.
func Default() *Config {
	return &Config{
		Modes:     []string{climb.ModeForward.String(), climb.ModeReverse.String()},
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads a YAML file over Default. Unknown keys are rejected so that a
// typo does not silently fall back to a default. An empty file is valid.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	cfg := Default()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field that has a closed set of values.
// Input is not checked here; an empty Input is a usage error of the CLI.
func (c *Config) Validate() error {
	if _, err := c.ParsedModes(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q, want text or json", ErrInvalidConfig, c.LogFormat)
	}
	if c.MaxCost < 0 {
		return fmt.Errorf("%w: max_cost %d is negative", ErrInvalidConfig, c.MaxCost)
	}
	return nil
}

// ParsedModes converts Modes into climb.Mode values, dropping duplicates and
// keeping first-seen order. An empty list means every mode.
func (c *Config) ParsedModes() ([]climb.Mode, error) {
	if len(c.Modes) == 0 {
		return climb.Modes(), nil
	}
	seen := make(map[climb.Mode]bool, len(c.Modes))
	out := make([]climb.Mode, 0, len(c.Modes))
	for _, s := range c.Modes {
		m, err := climb.ParseMode(s)
		if err != nil {
			return nil, err
		}
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out, nil
}
