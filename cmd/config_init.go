package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/samhoang/claco/internal/config"
	"github.com/samhoang/claco/internal/logging"
)

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate default claco.toml configuration",
	Long: `Generate a default claco.toml configuration file.

The config file controls:
  - Logging verbosity and format
  - The scope used when a command is given no --scope
  - The timeout for fetching remote settings

Example claco.toml:

  verbose = false
  log_level = "warn"
  log_format = "text"
  default_scope = "project"
  fetch_timeout = 30`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configPath := paths.ConfigPath()

	// Check if already exists
	if _, err := os.Stat(configPath); err == nil {
		logging.UserInfo("Config already exists: %s", configPath)
		logging.UserInfo("Edit it directly or delete to regenerate.")
		return nil
	}

	// Create default config
	cfg := config.DefaultClacoConfig()
	if err := cfg.Save(paths.ClacoDir); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	logging.UserSuccess("Created: %s", configPath)
	return nil
}
