package world

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGridOutOfBoundsReadsOccupied(t *testing.T) {
	g := NewOccupancyGrid(4, 4)
	require.True(t, g.Get(4, 0))
	require.True(t, g.Get(0, 4))
	_, ok := g.Lookup(4, 0)
	require.False(t, ok)
}

func TestGridSetAndClear(t *testing.T) {
	g := NewOccupancyGrid(4, 4)
	g.Set(7, 2, 2)
	require.True(t, g.Get(2, 2))
	id, ok := g.Lookup(2, 2)
	require.True(t, ok)
	require.Equal(t, uint32(7), id)

	g.Clear(2, 2)
	require.False(t, g.Get(2, 2))
}

func TestGridNeighborCountCorner(t *testing.T) {
	// a corner has 3 in-bounds neighbours and 5 out-of-bounds ones, all
	// of which count as occupied.
	g := NewOccupancyGrid(4, 4)
	require.Equal(t, uint64(5), g.NeighborCount(0, 0))

	g.Set(1, 1, 0)
	require.Equal(t, uint64(6), g.NeighborCount(0, 0))
}

func TestGridNeighborCountInterior(t *testing.T) {
	g := NewOccupancyGrid(4, 4)
	require.Equal(t, uint64(0), g.NeighborCount(1, 1))
	g.Set(9, 2, 2)
	require.Equal(t, uint64(1), g.NeighborCount(1, 1))
}

func TestGridZeroDimensionsPanics(t *testing.T) {
	require.Panics(t, func() { NewOccupancyGrid(0, 4) })
	require.Panics(t, func() { NewOccupancyGrid(4, 0) })
}

func TestGridSetOutOfBoundsPanics(t *testing.T) {
	g := NewOccupancyGrid(2, 2)
	require.Panics(t, func() { g.Set(0, 5, 5) })
}
