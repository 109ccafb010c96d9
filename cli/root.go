// Package cli wires the hydronet commands: calculate, validate, demo
// and kfactors. Commands load a network from a JSON or YAML file, call
// into the solver packages, and print JSON to stdout; diagnostics go to
// slog on stderr.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:           "hydronet",
		Short:         "hydronet — pressure drop and flow distribution in tree hydrant networks",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogger(debug)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(calculateCmd())
	cmd.AddCommand(validateCmd())
	cmd.AddCommand(demoCmd())
	cmd.AddCommand(kfactorsCmd())

	return cmd
}

// setupLogger installs the process-wide slog handler: text on stderr,
// info level unless debug is requested.
func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}
