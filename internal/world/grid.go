package world

// emptySentinel marks an unoccupied cell in the dense occupancy array.
const emptySentinel = 0xFFFFFFFF

// OccupancyGrid is a bounded width*height map from cell to an
// entity id or empty, backed by a dense array indexed y*width+x.
type OccupancyGrid struct {
	width, height uint32
	cells         []uint32
}

// NewOccupancyGrid builds an all-empty grid. width and height must be
// non-zero; a zero-sized grid is a precondition violation.
func NewOccupancyGrid(width, height uint32) *OccupancyGrid {
	if width == 0 || height == 0 {
		panic("world: grid width and height must be non-zero")
	}
	cells := make([]uint32, int(width)*int(height))
	for i := range cells {
		cells[i] = emptySentinel
	}
	return &OccupancyGrid{width: width, height: height, cells: cells}
}

func (g *OccupancyGrid) inBounds(x, y uint32) bool {
	return x < g.width && y < g.height
}

func (g *OccupancyGrid) index(x, y uint32) int {
	return int(y)*int(g.width) + int(x)
}

// Get reports occupancy at (x, y). Out-of-bounds coordinates read as
// occupied, so edge probes and neighbour counts behave consistently
// without special-casing the border.
func (g *OccupancyGrid) Get(x, y uint32) bool {
	if !g.inBounds(x, y) {
		return true
	}
	return g.cells[g.index(x, y)] != emptySentinel
}

// Lookup returns the occupying entity id, or false if the cell is
// empty or out of bounds.
func (g *OccupancyGrid) Lookup(x, y uint32) (uint32, bool) {
	if !g.inBounds(x, y) {
		return 0, false
	}
	id := g.cells[g.index(x, y)]
	if id == emptySentinel {
		return 0, false
	}
	return id, true
}

// Set writes id into (x, y), overwriting any prior occupant.
// Precondition: (x, y) is in bounds.
func (g *OccupancyGrid) Set(id, x, y uint32) {
	if !g.inBounds(x, y) {
		panic("world: grid.Set out of bounds")
	}
	g.cells[g.index(x, y)] = id
}

// Clear marks (x, y) empty. Precondition: (x, y) is in bounds.
func (g *OccupancyGrid) Clear(x, y uint32) {
	if !g.inBounds(x, y) {
		panic("world: grid.Clear out of bounds")
	}
	g.cells[g.index(x, y)] = emptySentinel
}

// NeighborCount returns the number of occupied cells among the up to
// eight neighbours of (x, y), excluding (x, y) itself. Out-of-bounds
// neighbours count as occupied.
func (g *OccupancyGrid) NeighborCount(x, y uint32) uint64 {
	var count uint64
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := int64(x) + int64(dx)
			ny := int64(y) + int64(dy)
			if nx < 0 || ny < 0 || uint32(nx) >= g.width || uint32(ny) >= g.height {
				count++
				continue
			}
			if g.Get(uint32(nx), uint32(ny)) {
				count++
			}
		}
	}
	return count
}

// Dims returns the grid's width and height.
func (g *OccupancyGrid) Dims() (width, height uint32) {
	return g.width, g.height
}
