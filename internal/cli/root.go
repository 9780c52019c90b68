// Package cli implements the bhava command-line interface using Cobra.
// Each subcommand is a thin view over the progress engine and the catalog.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bhava-app/bhava/internal/daemon"
)

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at the configured level instead of warnings only")
}

var rootCmd = &cobra.Command{
	Use:   "bhava",
	Short: "bhava - name a feeling, do something small about it",
	Long: `bhava is a local-first emotional check-in companion.
Pick an emotion, rate how strong it is, try a micro-action, and earn
points, streaks and badges along the way. Everything is stored on this
machine; syncing to a remote backup is optional.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// openDaemon loads configuration and wires the runtime for one command.
// Callers must Close it so pending sync work gets its grace period.
func openDaemon() (*daemon.Daemon, error) {
	cfg, err := daemon.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if !verbose {
		cfg.Logging.Level = "warn"
	}
	return daemon.NewWithConfig(cfg)
}
