package world

import "github.com/gpca-project/gpca-core/internal/bytecode"

// Entity is a mobile agent: a code buffer, a register file, a position,
// energy, and cosmetic color metadata the engine never interprets. Its
// id is only stable while the entity is alive — eviction rewrites it.
type Entity struct {
	id     uint32
	x, y   uint32
	regs   bytecode.RegisterFile
	energy uint32
	color  uint32
	code   []uint32
	ip     int
}

func NewEntity(x, y uint32, regs bytecode.RegisterFile, energy, color uint32, code []uint32) *Entity {
	/*
	   NewEntity builds an entity at (x, y) with the given registers,
	   energy, cosmetic color, and non-empty code buffer.

	   Parameters:
	   - x, y: initial grid position, not validated against any grid here
	   - regs: initial register contents
	   - energy, color: opaque to the engine; the host assigns meaning
	   - code: non-empty instruction word buffer

	   Returns:
	   - *Entity: an entity not yet known to any World (id is assigned by
	     World.Spawn)
	*/

	if len(code) == 0 {
		panic("world: entity code must be non-empty")
	}
	return &Entity{x: x, y: y, regs: regs, energy: energy, color: color, code: code}
}

// ------------------------------------------------------------------------------
// bytecode.Entity implementation
// ------------------------------------------------------------------------------

// ID implements bytecode.Entity.
func (e *Entity) ID() uint32 { return e.id }

// Pos implements bytecode.Entity.
func (e *Entity) Pos() (uint32, uint32) { return e.x, e.y }

// Registers implements bytecode.Entity.
func (e *Entity) Registers() *bytecode.RegisterFile { return &e.regs }

// IP implements bytecode.Entity.
func (e *Entity) IP() int { return e.ip }

// SetIP implements bytecode.Entity.
func (e *Entity) SetIP(ip int) { e.ip = ip }

// CodeLen implements bytecode.Entity.
func (e *Entity) CodeLen() int { return len(e.code) }

// ------------------------------------------------------------------------------
// Host-facing state
// ------------------------------------------------------------------------------

// Energy returns the entity's remaining energy (meaningless when the
// world is not running in energy mode).
func (e *Entity) Energy() uint32 { return e.energy }

// SetEnergy overwrites the entity's energy. Host callbacks use this to
// reward or penalise an entity; it is the only sanctioned way to raise
// energy back up, since the scheduler only ever decrements it.
func (e *Entity) SetEnergy(energy uint32) { e.energy = energy }

// Color returns the opaque cosmetic metadata a host renderer may use;
// the engine itself never reads this value.
func (e *Entity) Color() uint32 { return e.color }

// Code returns the entity's instruction words. The returned slice must
// not be retained past a mutation (e.g. World.Create's bit-flip
// mutation) by callers outside this package.
func (e *Entity) Code() []uint32 { return e.code }

// decodeAt decodes the instruction at ip and advances ip to
// (ip+1) mod len(code).
func (e *Entity) decodeAt() bytecode.Instruction {
	instr := bytecode.Decode(e.code[e.ip])
	e.ip = (e.ip + 1) % len(e.code)
	return instr
}
