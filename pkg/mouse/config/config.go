package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/mouse/pkg/mouse/export"
	"github.com/cognicore/mouse/pkg/mouse/internalerr"
)

// Config is the YAML configuration file.
type Config struct {
	Mode          string `yaml:"mode"`
	IncludeIDs    bool   `yaml:"include_ids"`
	WarnThreshold int    `yaml:"warn_threshold"`
	DB            string `yaml:"db"`
	Vocab         string `yaml:"vocab"`
	LogLevel      string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Mode:          "advanced",
		WarnThreshold: export.LargeInputThreshold,
		LogLevel:      "info",
	}
}

// Load reads a YAML config file. Keys missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", internalerr.ErrInvalidConfig, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	switch c.Mode {
	case "basic", "advanced":
	default:
		return fmt.Errorf("%w: mode must be basic or advanced, got %q", internalerr.ErrInvalidConfig, c.Mode)
	}

	if c.WarnThreshold < 0 {
		return fmt.Errorf("%w: warn_threshold must not be negative", internalerr.ErrInvalidConfig)
	}

	switch c.LogLevel {
	case "", "trace", "debug", "info", "warn", "error", "disabled":
	default:
		return fmt.Errorf("%w: unknown log_level %q", internalerr.ErrInvalidConfig, c.LogLevel)
	}

	return nil
}

// LoadSeed loads a vocabulary seed: a YAML mapping of token value to id.
func LoadSeed(path string) (map[string]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	seed := map[string]int{}
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("%w: vocab seed %s: %v", internalerr.ErrInvalidConfig, path, err)
	}
	return seed, nil
}
