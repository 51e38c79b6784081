package main

import (
	"github.com/gpca-project/gpca-core/internal/config"
	"github.com/gpca-project/gpca-core/internal/telemetry"
	"github.com/gpca-project/gpca-core/internal/world"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var configFile string
	var ticks uint64
	var printEvery uint64

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the world headlessly for a fixed number of ticks",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := telemetry.New(parseLogLevel())

			cfg := config.Default()
			if configFile != "" {
				loaded, err := config.Load(configFile)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			w, err := buildWorld(cfg)
			if err != nil {
				return err
			}
			log.Infof("world ready: %dx%d, %d entities", cfg.Width, cfg.Height, w.Len())

			obs := loggingObserver{log: log}
			for tick := uint64(0); tick < ticks; tick++ {
				w.Step(obs)
				if printEvery != 0 && tick%printEvery == 0 {
					log.WithTick(tick).Infof("%d live entities", w.Len())
				}
				if w.Len() == 0 {
					log.WithTick(tick).Infof("world is empty, stopping early")
					break
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "path to a world config YAML file")
	cmd.Flags().Uint64Var(&ticks, "ticks", 100, "number of ticks to run")
	cmd.Flags().Uint64Var(&printEvery, "print-every", 10, "log a summary every N ticks (0 disables)")
	return cmd
}

// loggingObserver forwards placement events to a Logger at debug level,
// so `--log-level debug` traces every move without instrumenting World.
type loggingObserver struct {
	log *telemetry.Logger
}

func (o loggingObserver) Cleared(e *world.Entity) {
	x, y := e.Pos()
	o.log.WithEntity(e.ID()).Debugf("cleared (%d,%d)", x, y)
}

func (o loggingObserver) Placed(e *world.Entity) {
	x, y := e.Pos()
	o.log.WithEntity(e.ID()).Debugf("placed (%d,%d)", x, y)
}
