package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bhava-app/bhava/internal/daemon"
)

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to listen on (overrides config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().BoolVar(&servePretty, "pretty", false, "Human-readable logs instead of JSON")
	rootCmd.AddCommand(serveCmd)
}

var (
	serveHost   string
	servePort   int
	servePretty bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the bhava HTTP API",
	Long: `Start the local JSON API at localhost:7477.
Exposes progress, check-ins, the content catalog, health and metrics.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := daemon.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Override config from flags
	cfg.Logging.Pretty = servePretty
	if serveHost != "" {
		cfg.API.Host = serveHost
	}
	if servePort > 0 {
		cfg.API.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	d, err := daemon.NewWithConfig(cfg)
	if err != nil {
		return err
	}
	defer d.Close()

	return d.Serve(context.Background())
}
