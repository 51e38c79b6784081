package main

import (
	"fmt"
	"os"

	"github.com/gpca-project/gpca-core/internal/config"
	"github.com/gpca-project/gpca-core/internal/telemetry"
	"golang.org/x/term"

	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Step the world one keypress at a time, rendering it to the terminal",
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

			fd := int(os.Stdin.Fd())
			oldState, err := term.MakeRaw(fd)
			if err != nil {
				return fmt.Errorf("watch: failed to set raw mode: %w", err)
			}
			defer term.Restore(fd, oldState)

			tick := uint64(0)
			buf := make([]byte, 1)
			for {
				fmt.Print("\x1b[H\x1b[2J")
				fmt.Printf("tick %d — space/enter to step, q to quit\r\n", tick)
				fmt.Print(crlf(renderGrid(w, cfg.Width, cfg.Height)))

				n, err := os.Stdin.Read(buf)
				if err != nil || n == 0 {
					return nil
				}
				switch buf[0] {
				case 'q', 3: // q or Ctrl-C
					return nil
				case ' ', '\r', '\n':
					w.Step(loggingObserver{log: log.WithTick(tick)})
					tick++
				}
				if w.Len() == 0 {
					fmt.Print("\r\nworld is empty\r\n")
					return nil
				}
			}
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "path to a world config YAML file")
	return cmd
}

// crlf rewrites bare \n into \r\n, needed because the terminal is in
// raw mode and won't do its own carriage return.
func crlf(s string) string {
	out := make([]byte, 0, len(s)+8)
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, '\r', '\n')
		} else {
			out = append(out, s[i])
		}
	}
	return string(out)
}
