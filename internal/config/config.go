// Package config loads the handful of parameters World.New needs
// (width, height, capacity, use_energy, mutation_chance, seed) from a
// YAML file, so the CLI host application doesn't hardcode a scenario.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WorldConfig mirrors the constructor parameters of world.New.
type WorldConfig struct {
	Width          uint32  `yaml:"width"`
	Height         uint32  `yaml:"height"`
	Capacity       int     `yaml:"capacity"`
	UseEnergy      bool    `yaml:"use_energy"`
	MutationChance float64 `yaml:"mutation_chance"`
	Seed           *uint64 `yaml:"seed"`
	ProgramFile    string  `yaml:"program_file"`
	Entities       []Spawn `yaml:"entities"`
}

// Spawn describes one entity to place at startup.
type Spawn struct {
	X      uint32 `yaml:"x"`
	Y      uint32 `yaml:"y"`
	Long0  uint64 `yaml:"long0"`
	Long1  uint64 `yaml:"long1"`
	Energy uint32 `yaml:"energy"`
	Color  uint32 `yaml:"color"`
}

// Default returns the configuration used when no file is supplied: a
// single idle entity on a 1x1 grid.
func Default() WorldConfig {
	return WorldConfig{
		Width:    1,
		Height:   1,
		Capacity: 8,
		Entities: []Spawn{{X: 0, Y: 0}},
	}
}

// Load reads and validates a WorldConfig from path.
func Load(path string) (WorldConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return WorldConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return WorldConfig{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return WorldConfig{}, fmt.Errorf("config: width and height must be non-zero")
	}
	return cfg, nil
}
