package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	errs "github.com/samhoang/claco/internal/errors"
	"github.com/samhoang/claco/internal/settings"
)

var settingsGetScope string

var settingsGetCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Print a value from a settings file",
	Long: `Print the value at a GJSON path from the settings file of a scope.

Strings print bare; objects and arrays print as JSON.

Examples:
  claco settings get model
  claco settings get hooks.PreToolUse.0.hooks.#.command
  claco settings get --scope user permissions.allow`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsGet,
}

func init() {
	settingsCmd.AddCommand(settingsGetCmd)
	addScopeFlag(settingsGetCmd, &settingsGetScope, "Scope to read: user, project or local")
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	scope, err := resolveScope(settingsGetScope)
	if err != nil {
		return err
	}

	path := paths.SettingsPath(scope)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no settings file for %s scope: %s", scope, path)
		}
		return errs.NewPathError(path, "read settings", err)
	}

	// Report malformed files the same way every other command does
	if !gjson.ValidBytes(data) {
		if _, err := settings.Parse(path, data); err != nil {
			return err
		}
	}

	result := gjson.GetBytes(data, args[0])
	if !result.Exists() {
		return fmt.Errorf("no value at %q in %s", args[0], path)
	}

	out := cmd.OutOrStdout()
	switch result.Type {
	case gjson.String:
		fmt.Fprintln(out, result.Str)
	default:
		fmt.Fprintln(out, result.Raw)
	}
	return nil
}
