package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wang/maze"
)

var (
	errUnknownKind    = errors.New("wanggen: unknown kind")
	errBadRandomness  = errors.New("wanggen: randomness out of range 0..100")
	errConfigDecoding = errors.New("wanggen: decode config")
)

const (
	kindBlob = "blob"
	kindMaze = "maze"
)

// config describes one generation run. It is read from YAML and then
// overridden by explicitly set flags.
type config struct {
	Kind       string `yaml:"kind"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Seed       int64  `yaml:"seed"`
	Randomness int    `yaml:"randomness"`
	Rooms      bool   `yaml:"rooms"`
	Strict     bool   `yaml:"strict"`
}

func defaultConfig() config {
	return config{
		Kind:       kindBlob,
		Width:      16,
		Height:     12,
		Seed:       1,
		Randomness: maze.DefaultRandomness,
	}
}

// loadConfig decodes path over cfg. Unknown keys are rejected; an empty
// file leaves cfg unchanged.
func loadConfig(path string, cfg config) (config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w %s: %v", errConfigDecoding, path, err)
	}
	return cfg, nil
}

func (c config) validate() error {
	if c.Kind != kindBlob && c.Kind != kindMaze {
		return fmt.Errorf("%w: %q", errUnknownKind, c.Kind)
	}
	if c.Randomness < 0 || c.Randomness > 100 {
		return fmt.Errorf("%w: %d", errBadRandomness, c.Randomness)
	}
	return nil
}
