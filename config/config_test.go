package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/on-the-ground/advent_ive_go/config"
	"github.com/on-the-ground/advent_ive_go/effects/configkeys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "advent.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	c, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
puzzle:
  input_dir: /srv/aoc
effect:
  tribonacci:
    handler:
      num_workers: 8
`)
	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/aoc", c.Puzzle.InputDir)
	assert.Equal(t, 2020, c.Puzzle.Year)
	assert.Equal(t, 8, c.Effect.Tribonacci.Handler.NumWorkers)
	assert.Equal(t, 16, c.Effect.Tribonacci.Handler.BufferSize)
}

func TestLoad_EmptyFile(t *testing.T) {
	c, err := config.Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(writeConfig(t, "puzzle:\n  inputdir: typo\n"))
	assert.ErrorContains(t, err, "inputdir")

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBindings(t *testing.T) {
	b := config.Default().Bindings()
	assert.Equal(t, "inputs", b[configkeys.ConfigPuzzleInputDir])
	assert.Equal(t, 4, b[configkeys.ConfigEffectTribonacciHandlerNumWorkers])
	assert.Equal(t, "info", b[configkeys.ConfigEffectLogLevel])
}
