package cli

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the CLI configuration file (breakpoint.yaml).
type Config struct {
	// Interval is the target wall-clock interval between suspensions,
	// in time.ParseDuration syntax (e.g. "2s"). Empty disables pacing.
	Interval string `yaml:"interval"`

	// Progress enables (progress, result) decoding and remaining-time
	// estimates.
	Progress bool `yaml:"progress"`

	// Verbose enables debug logging of the drive loop.
	Verbose bool `yaml:"verbose"`
}

// TargetInterval parses the configured interval. Zero means "no target".
func (c *Config) TargetInterval() (time.Duration, error) {
	if c.Interval == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Interval)
	if err != nil {
		return 0, fmt.Errorf("invalid interval %q: %w", c.Interval, err)
	}
	return d, nil
}

// LoadConfig reads a YAML configuration file. A missing file is treated as
// an empty configuration, so the CLI works without one.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
