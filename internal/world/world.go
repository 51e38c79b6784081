// Package world implements the occupancy grid and the per-tick
// scheduler: it owns the entity vector and the grid exclusively,
// lending out one entity at a time during a tick rather than sharing
// mutable access across entities.
package world

import (
	"math/rand/v2"

	"github.com/gpca-project/gpca-core/internal/bytecode"
)

// World owns the entity vector, the occupancy grid, and the immutable
// callback table for its lifetime.
type World struct {
	entities       []*Entity
	grid           *OccupancyGrid
	callbacks      []Callback
	rng            *rand.Rand
	width, height  uint32
	useEnergy      bool
	mutationChance float64
}

func New(callbacks []Callback, capacity int, width, height uint32, useEnergy bool, mutationChance float64, seed *uint64) *World {
	/*
	   New constructs an empty world.

	   Parameters:
	   - callbacks: the host's Call table, indexed modulo its length
	   - capacity: initial entity-vector capacity, a sizing hint only
	   - width, height: grid dimensions; must be non-zero
	   - useEnergy: whether Step decrements and evicts on energy
	   - mutationChance: Create's per-spawn single-bit-flip probability
	   - seed: makes the world's mutation PRNG reproducible when non-nil;
	     otherwise a fixed default seed is used

	   Returns:
	   - *World: an empty world ready to receive Spawn/Create calls
	*/

	s1 := uint64(0xcafef00dd15ea5e5)
	s2 := uint64(0xa02bdbf7bb3c0a7a)
	if seed != nil {
		s1 = *seed
	}
	return &World{
		entities:       make([]*Entity, 0, capacity),
		grid:           NewOccupancyGrid(width, height),
		callbacks:      callbacks,
		rng:            rand.New(rand.NewPCG(s1, s2)),
		width:          width,
		height:         height,
		useEnergy:      useEnergy,
		mutationChance: mutationChance,
	}
}

// ------------------------------------------------------------------------------
// Accessors
// ------------------------------------------------------------------------------

// Dims implements bytecode.Host and reports the grid's dimensions.
func (w *World) Dims() (uint32, uint32) { return w.width, w.height }

// PseudoRNG returns the world's PRNG, so a host callback can draw its
// own reproducible randomness (e.g. seeding a newly spawned entity's
// registers) from the same stream Create's mutation draws from.
func (w *World) PseudoRNG() *rand.Rand { return w.rng }

// ------------------------------------------------------------------------------
// Population
// ------------------------------------------------------------------------------

// Spawn inserts e into the world at its recorded position, assigning
// id = len(entities). Precondition: the target cell is in-bounds and
// empty.
func (w *World) Spawn(e *Entity) {
	if e.x >= w.width || e.y >= w.height {
		panic("world: spawn target out of bounds")
	}
	if w.grid.Get(e.x, e.y) {
		panic("world: spawn target occupied")
	}
	e.id = uint32(len(w.entities))
	w.grid.Set(e.id, e.x, e.y)
	w.entities = append(w.entities, e)
}

// Create is Spawn preceded by a possible single-bit mutation of e's
// code, applied with probability mutationChance: a uniformly chosen
// word is XORed at a uniformly chosen bit.
func (w *World) Create(e *Entity) {
	if w.mutationChance > 0 && w.rng.Float64() < w.mutationChance {
		wordIdx := w.rng.IntN(len(e.code))
		bit := w.rng.IntN(32)
		e.code[wordIdx] ^= 1 << uint(bit)
	}
	w.Spawn(e)
}

// ------------------------------------------------------------------------------
// Spatial queries
// ------------------------------------------------------------------------------

// Get reports occupancy at (x, y); out-of-bounds reads as occupied.
func (w *World) Get(x, y uint32) bool { return w.grid.Get(x, y) }

// EntityAt returns the entity occupying (x, y), if any.
func (w *World) EntityAt(x, y uint32) (*Entity, bool) {
	id, ok := w.grid.Lookup(x, y)
	if !ok {
		return nil, false
	}
	return w.entities[id], true
}

// EntityInDirection returns the entity occupying the cell adjacent to
// entityID in the given direction, if any. Callback implementations use
// this to find the neighbour a Call targets without re-deriving the
// direction arithmetic themselves.
func (w *World) EntityInDirection(entityID uint32, dir bytecode.Direction) (*Entity, bool) {
	e := w.entities[entityID]
	nx, ny := dir.Step(e.x, e.y, w.width, w.height)
	return w.EntityAt(nx, ny)
}

// NeighborCount returns the number of occupied cells surrounding
// (x, y), in [0,8].
func (w *World) NeighborCount(x, y uint32) uint64 { return w.grid.NeighborCount(x, y) }

// ------------------------------------------------------------------------------
// bytecode.Host implementation
// ------------------------------------------------------------------------------

// AttemptMove implements bytecode.Host. It relocates the entity
// identified by entityID to (x, y) if that cell is empty, updating the
// grid and the entity's recorded position; it does not itself notify
// an Observer — that is the step loop's responsibility, since it alone
// knows whether this call originates from a move-flavoured action.
func (w *World) AttemptMove(entityID uint32, x, y uint32) bool {
	if w.grid.Get(x, y) {
		return false
	}
	e := w.entities[entityID]
	w.grid.Clear(e.x, e.y)
	w.grid.Set(entityID, x, y)
	e.x, e.y = x, y
	return true
}

// Invoke implements bytecode.Host. It calls the callback at
// callbackIndex mod len(callbacks); it is a no-op if no callbacks were
// registered.
func (w *World) Invoke(callbackIndex uint64, entityID uint32) {
	if len(w.callbacks) == 0 {
		return
	}
	w.callbacks[callbackIndex%uint64(len(w.callbacks))](entityID, w)
}

// Kill clears the grid cell occupied by entityID without removing the
// entity from the entity vector. A host callback uses this to mark an
// entity for death; the eviction itself happens the next time that
// entity is scheduled and its liveness check trips.
func (w *World) Kill(entityID uint32) {
	e := w.entities[entityID]
	w.grid.Clear(e.x, e.y)
}

// Len returns the number of live entities.
func (w *World) Len() int { return len(w.entities) }

// EntityByID returns the live entity currently holding id.
func (w *World) EntityByID(id uint32) *Entity { return w.entities[id] }

// ------------------------------------------------------------------------------
// Scheduling
// ------------------------------------------------------------------------------

// Step advances the world by one tick: entities are visited in
// ascending slot order, with energy decremented (or the entity evicted
// at zero energy) before it steps, and eviction done by swap-remove so
// that the loop re-examines whatever slides into the current slot
// without advancing the index.
func (w *World) Step(observer Observer) {
	if observer == nil {
		observer = NopObserver{}
	}
	i := 0
	for i < len(w.entities) {
		e := w.entities[i]
		if w.useEnergy {
			if e.energy == 0 {
				w.grid.Clear(e.x, e.y)
				observer.Cleared(e)
				w.evict(i)
				continue
			}
			e.energy--
		}
		if w.stepEntity(e, observer) {
			w.evict(i)
			continue
		}
		i++
	}
}

// stepEntity runs one scheduled step for e and reports whether e
// should be evicted.
func (w *World) stepEntity(e *Entity, observer Observer) (dead bool) {
	if !w.grid.Get(e.x, e.y) {
		observer.Cleared(e)
		return true
	}

	instr := e.decodeAt()
	if !bytecode.Eval(instr.Predicate, e.regs, w.NeighborCount(e.x, e.y)) {
		return false
	}

	if instr.Action.IsMoveFlavoured() {
		oldX, oldY := e.x, e.y
		bytecode.Execute(instr.Action, e, w)
		if e.x != oldX || e.y != oldY {
			observer.Cleared(oldPosEntity(e, oldX, oldY))
			observer.Placed(e)
		}
		return false
	}

	bytecode.Execute(instr.Action, e, w)
	return false
}

// oldPosEntity returns a lightweight copy of e stamped with its
// pre-move position, so Observer.Cleared reports the vacated cell
// rather than the entity's new one.
func oldPosEntity(e *Entity, oldX, oldY uint32) *Entity {
	clone := *e
	clone.x, clone.y = oldX, oldY
	return &clone
}

// evict removes entities[i] by swap-remove: the tail entity takes slot
// i and its id is rewritten to i, with the grid updated to match.
func (w *World) evict(i int) {
	last := len(w.entities) - 1
	if i != last {
		w.entities[i] = w.entities[last]
		w.entities[i].id = uint32(i)
		w.grid.Set(uint32(i), w.entities[i].x, w.entities[i].y)
	}
	w.entities = w.entities[:last]
}
