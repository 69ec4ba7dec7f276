package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

const DefaultPath = "configs/aoc.yaml"

type Config struct {
	LogLevel string         `yaml:"log_level"`
	InputDir string         `yaml:"input_dir"`
	Inputs   map[int]string `yaml:"inputs"`
	Bag      BagConfig      `yaml:"bag"`

	// Source is the file the config was read from, empty when no file was
	// found and only defaults apply.
	Source string `yaml:"-"`
}

// BagConfig holds the day 2 cube limits. Colors missing from the file keep
// their DefaultBag value; an explicit 0 means no cubes of that color.
type BagConfig struct {
	Red   int `yaml:"red"`
	Green int `yaml:"green"`
	Blue  int `yaml:"blue"`
}

var DefaultBag = BagConfig{Red: 12, Green: 13, Blue: 14}

// Load reads the YAML config at path. An empty path falls back to
// AOC_CONFIG_PATH and then DefaultPath. A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = getEnv("AOC_CONFIG_PATH", DefaultPath)
	}

	cfg := Config{Bag: DefaultBag}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		cfg.Source = path
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.LogLevel = getEnv("AOC_LOG_LEVEL", cfg.LogLevel)
	cfg.InputDir = getEnv("AOC_INPUT_DIR", cfg.InputDir)
}

func applyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.InputDir == "" {
		cfg.InputDir = "inputs"
	}
}

func (c *Config) Validate() error {
	if c.Bag.Red < 0 || c.Bag.Green < 0 || c.Bag.Blue < 0 {
		return fmt.Errorf("bag limits must not be negative: %+v", c.Bag)
	}
	for day := range c.Inputs {
		if day <= 0 {
			return fmt.Errorf("invalid day %d in inputs", day)
		}
	}
	return nil
}

// InputPath returns the input file for day: the per-day override when one
// is configured, otherwise dayNN.txt inside InputDir.
func (c *Config) InputPath(day int) string {
	if path, ok := c.Inputs[day]; ok && path != "" {
		return path
	}
	return filepath.Join(c.InputDir, fmt.Sprintf("day%02d.txt", day))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
