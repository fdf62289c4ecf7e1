package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/samhoang/claco/internal/config"
	"github.com/samhoang/claco/internal/logging"
)

var Version = "dev"

var (
	verboseFlag   bool
	configDirFlag string
)

// Resolved by the root command before any subcommand runs
var (
	paths    *config.Paths
	clacoCfg *config.ClacoConfig
)

var rootCmd = &cobra.Command{
	Use:   "claco",
	Short: "Claude Code settings and hooks manager",
	Long: `claco (Claude Code helper) manages Claude Code settings files.

It lists, adds and deletes hooks, and merges settings from local files or
URLs into the user, project or project-local settings file. Unknown settings
are preserved and legacy hook layouts are migrated on load.`,
	Version:           Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// setup resolves paths, loads claco.toml and configures logging
func setup(cmd *cobra.Command, args []string) error {
	p, err := config.ResolvePaths()
	if err != nil {
		return fmt.Errorf("failed to resolve paths: %w", err)
	}
	if configDirFlag != "" {
		p.ClacoDir = configDirFlag
	}

	cfg, err := config.LoadClacoConfig(p.ClacoDir)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", p.ConfigPath(), err)
	}

	logging.Setup(verboseFlag || cfg.Verbose, cfg.LogLevel, cfg.LogFormat == "json", nil)
	logging.Debug("resolved paths",
		"claude_dir", p.ClaudeDir,
		"project_dir", p.ProjectDir,
		"claco_dir", p.ClacoDir)

	paths, clacoCfg = p, cfg
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "Directory holding claco.toml (default $CLACO_DIR or ~/.claco)")
}
