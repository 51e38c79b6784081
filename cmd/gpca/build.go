package main

import (
	"fmt"

	"github.com/gpca-project/gpca-core/internal/bytecode"
	"github.com/gpca-project/gpca-core/internal/config"
	"github.com/gpca-project/gpca-core/internal/world"
)

// buildWorld constructs a world.World from a WorldConfig, loading a
// shared program file (if configured) and spawning one entity per
// config.Spawn entry with that program.
func buildWorld(cfg config.WorldConfig) (*world.World, error) {
	var program []uint32
	if cfg.ProgramFile != "" {
		p, err := config.LoadProgram(cfg.ProgramFile)
		if err != nil {
			return nil, err
		}
		program = p
	} else {
		program = []uint32{0x0000_0000}
	}

	w := world.New(nil, cfg.Capacity, cfg.Width, cfg.Height, cfg.UseEnergy, cfg.MutationChance, cfg.Seed)
	for _, s := range cfg.Entities {
		code := make([]uint32, len(program))
		copy(code, program)
		regs := bytecode.NewRegisterFile(s.Long0, s.Long1)
		e := world.NewEntity(s.X, s.Y, regs, s.Energy, s.Color, code)
		if err := spawnSafely(w, e, s.X, s.Y); err != nil {
			return nil, err
		}
	}
	return w, nil
}

func spawnSafely(w *world.World, e *world.Entity, x, y uint32) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("spawn entity at (%d,%d): %v", x, y, r)
		}
	}()
	w.Create(e)
	return nil
}
