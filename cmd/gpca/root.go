// Command gpca runs a cellular world of register-machine entities,
// either headlessly for a fixed number of ticks or interactively with
// a terminal renderer stepped one keypress at a time.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gpca",
		Short: "Run a grid of programmable cellular-automaton entities",
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.AddCommand(newRunCmd())
	root.AddCommand(newWatchCmd())
	return root
}

func parseLogLevel() logrus.Level {
	lvl, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
