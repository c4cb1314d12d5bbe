// Package config loads the runner configuration and exposes it as bindings
// for the binding effect, keyed by configkeys.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/on-the-ground/advent_ive_go/effects/configkeys"
	"gopkg.in/yaml.v3"
)

type HandlerConfig struct {
	BufferSize int `yaml:"buffer_size"`
	NumWorkers int `yaml:"num_workers"`
}

type Config struct {
	Puzzle struct {
		InputDir string `yaml:"input_dir"`
		Year     int    `yaml:"year"`
	} `yaml:"puzzle"`

	Effect struct {
		Log struct {
			Level   string        `yaml:"level"`
			Handler HandlerConfig `yaml:"handler"`
		} `yaml:"log"`
		Tribonacci struct {
			Handler HandlerConfig `yaml:"handler"`
		} `yaml:"tribonacci"`
	} `yaml:"effect"`
}

func Default() Config {
	var c Config
	c.Puzzle.InputDir = "inputs"
	c.Puzzle.Year = 2020
	c.Effect.Log.Level = "info"
	c.Effect.Log.Handler.BufferSize = 64
	c.Effect.Tribonacci.Handler = HandlerConfig{BufferSize: 16, NumWorkers: 4}
	return c
}

// Load reads the YAML file at path over Default. An empty path yields Default.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// Bindings flattens c into the key space of configkeys.
func (c Config) Bindings() map[string]any {
	return map[string]any{
		configkeys.ConfigPuzzleInputDir:                    c.Puzzle.InputDir,
		configkeys.ConfigPuzzleYear:                        c.Puzzle.Year,
		configkeys.ConfigEffectLogLevel:                    c.Effect.Log.Level,
		configkeys.ConfigEffectLogHandlerBufferSize:        c.Effect.Log.Handler.BufferSize,
		configkeys.ConfigEffectTribonacciHandlerBufferSize: c.Effect.Tribonacci.Handler.BufferSize,
		configkeys.ConfigEffectTribonacciHandlerNumWorkers: c.Effect.Tribonacci.Handler.NumWorkers,
	}
}
