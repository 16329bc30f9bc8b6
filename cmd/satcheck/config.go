package main

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Settings that can come from a YAML file. Flags given on the command line
// override them.
type Config struct {
	Color    bool   `yaml:"color"`
	LogLevel string `yaml:"log_level"`
	// Rotation applied to every polygon about its centroid, in degrees
	Rotate float64      `yaml:"rotate"`
	Render RenderConfig `yaml:"render"`
}

type RenderConfig struct {
	// Output PNG path. Nothing is rendered if empty.
	Output string `yaml:"output"`
	// Pixels per unit
	Scale float64 `yaml:"scale"`
	// Also print the PNG to the terminal (iTerm only)
	Inline bool `yaml:"inline"`
}

func DefaultConfig() Config {
	return Config{
		Color:    true,
		LogLevel: "info",
		Render: RenderConfig{
			Scale: 50,
		},
	}
}

// Load a config file over the defaults. Keys missing from the file keep their
// default values.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := config.Validate(); err != nil {
		return config, errors.Wrapf(err, "config %s", path)
	}
	return config, nil
}

func (c Config) Validate() error {
	if c.Render.Scale <= 0 {
		return errors.Errorf("render scale must be positive, got %v", c.Render.Scale)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, errors.Wrapf(err, "log level %q", c.LogLevel)
	}
	return level, nil
}
