package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/samhoang/claco/internal/config"
)

var hooksCmd = &cobra.Command{
	Use:   "hooks",
	Short: "Manage Claude Code hooks",
	Long: `List, add and delete the hooks configured in Claude Code settings files.

Hooks are addressed by coordinates of the form <event>:<matcher>:<hook>, as
printed by 'claco hooks list'. Coordinates change whenever the file changes.`,
}

func init() {
	rootCmd.AddCommand(hooksCmd)
}

// scopeTitle capitalizes a scope name for headings
func scopeTitle(scope config.Scope) string {
	s := string(scope)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
