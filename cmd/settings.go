package cmd

import (
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage Claude Code settings files",
	Long: `Apply, migrate and inspect Claude Code settings files.

Scopes:
  user      $CLAUDE_CONFIG_DIR/settings.json (default ~/.claude/settings.json)
  project   .claude/settings.json in the current directory
  local     .claude/settings.local.json in the current directory`,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}
