package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aoc.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoad_Success(t *testing.T) {
	path := writeConfig(t, `log_level: debug
input_dir: puzzles
inputs:
  2: puzzles/games.txt
bag:
  red: 20
  green: 21
  blue: 22
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "puzzles", cfg.InputDir)
	assert.Equal(t, BagConfig{Red: 20, Green: 21, Blue: 22}, cfg.Bag)
	assert.Equal(t, path, cfg.Source)
	assert.Equal(t, "puzzles/games.txt", cfg.InputPath(2))
	assert.Equal(t, filepath.Join("puzzles", "day01.txt"), cfg.InputPath(1))
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "bag:\n  blue: 30\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "inputs", cfg.InputDir)
	assert.Equal(t, BagConfig{Red: 12, Green: 13, Blue: 30}, cfg.Bag)
}

func TestLoad_ZeroLimit(t *testing.T) {
	path := writeConfig(t, "bag:\n  red: 0\n  green: 2\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BagConfig{Red: 0, Green: 2, Blue: 14}, cfg.Bag)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Empty(t, cfg.Source)
	assert.Equal(t, BagConfig{Red: 12, Green: 13, Blue: 14}, cfg.Bag)
	assert.Equal(t, filepath.Join("inputs", "day02.txt"), cfg.InputPath(2))
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "log_level: warn\ninput_dir: puzzles\n")
	t.Setenv("AOC_LOG_LEVEL", "debug")
	t.Setenv("AOC_INPUT_DIR", "/tmp/aoc")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/aoc", cfg.InputDir)
}

func TestLoad_PathFromEnv(t *testing.T) {
	path := writeConfig(t, "input_dir: from-env\n")
	t.Setenv("AOC_CONFIG_PATH", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.InputDir)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed yaml", content: "bag: [red"},
		{name: "negative limit", content: "bag:\n  red: -1\n"},
		{name: "invalid day", content: "inputs:\n  0: day0.txt\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			assert.Error(t, err)
		})
	}
}
