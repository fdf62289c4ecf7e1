package cmd

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration utilities",
	Long:  `Manage claco's own configuration file, claco.toml.`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
