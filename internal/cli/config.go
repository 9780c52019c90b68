package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bhava-app/bhava/internal/daemon"
)

func init() {
	configCmd.Flags().BoolVar(&configInit, "init", false, "Write the effective configuration to config.toml")
	configCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config.toml with --init")
	rootCmd.AddCommand(configCmd)
}

var (
	configInit  bool
	configForce bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or write the effective configuration",
	Long: `Print the configuration after config.toml, .env and BHAVA_* overrides
are applied. The sync API key is masked. With --init the same values are
written to config.toml so they can be edited.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := daemon.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	path := daemon.ConfigPath()
	out := cmd.OutOrStdout()

	if configInit {
		if _, err := os.Stat(path); err == nil && !configForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err := daemon.SaveConfig(cfg); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Fprintf(out, "Wrote %s\n", path)
		return nil
	}

	fmt.Fprintf(out, "# %s\n", path)
	return daemon.EncodeConfig(out, cfg)
}
