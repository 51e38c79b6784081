package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultIsOneIdleEntityOnAOneByOneGrid(t *testing.T) {
	cfg := Default()
	require.Equal(t, uint32(1), cfg.Width)
	require.Equal(t, uint32(1), cfg.Height)
	require.Len(t, cfg.Entities, 1)
}

func TestLoadParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.yaml")
	contents := `
width: 8
height: 8
capacity: 4
use_energy: true
mutation_chance: 0.1
entities:
  - x: 1
    y: 2
    long0: 42
    energy: 5
    color: 3
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, uint32(8), cfg.Width)
	require.True(t, cfg.UseEnergy)
	require.InDelta(t, 0.1, cfg.MutationChance, 1e-9)
	require.Len(t, cfg.Entities, 1)
	require.Equal(t, uint32(1), cfg.Entities[0].X)
	require.Equal(t, uint64(42), cfg.Entities[0].Long0)
}

func TestLoadRejectsZeroDimensions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 0\nheight: 4\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/to/world.yaml")
	require.Error(t, err)
}
