package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samhoang/claco/internal/config"
	errs "github.com/samhoang/claco/internal/errors"
	"github.com/samhoang/claco/internal/logging"
	"github.com/samhoang/claco/internal/settings"
)

var (
	hooksAddScope   string
	hooksAddEvent   string
	hooksAddMatcher string
	hooksAddCommand string
	hooksAddTimeout int
	hooksAddForce   bool
)

var hooksAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a hook",
	Long: `Bind a shell command to a hook event.

The hook joins the matcher with exactly the same pattern if one exists,
otherwise a new matcher is appended.

Examples:
  claco hooks add --event PreToolUse --matcher Bash --command "echo pre"
  claco hooks add --scope user --event Stop --command "say done" --timeout 10`,
	Args: cobra.NoArgs,
	RunE: runHooksAdd,
}

func init() {
	hooksCmd.AddCommand(hooksAddCmd)
	addScopeFlag(hooksAddCmd, &hooksAddScope, "Scope to modify: user, project or local")
	hooksAddCmd.Flags().StringVarP(&hooksAddEvent, "event", "e", "", "Hook event (e.g., PreToolUse, Stop)")
	hooksAddCmd.Flags().StringVarP(&hooksAddMatcher, "matcher", "m", "", "Tool name pattern; empty matches everything")
	hooksAddCmd.Flags().StringVarP(&hooksAddCommand, "command", "c", "", "Shell command to run")
	hooksAddCmd.Flags().IntVar(&hooksAddTimeout, "timeout", 0, "Timeout in seconds (0 for Claude Code's default)")
	hooksAddCmd.Flags().BoolVar(&hooksAddForce, "force", false, "Allow event names claco does not know")
	hooksAddCmd.MarkFlagRequired("event")
	hooksAddCmd.MarkFlagRequired("command")
	hooksAddCmd.RegisterFlagCompletionFunc("event", completeHookEvents)
}

func runHooksAdd(cmd *cobra.Command, args []string) error {
	scope, err := resolveScope(hooksAddScope)
	if err != nil {
		return err
	}

	if !hooksAddForce && !config.IsKnownHookEvent(hooksAddEvent) {
		var valid []string
		for _, event := range config.AllHookEvents() {
			valid = append(valid, string(event))
		}
		return fmt.Errorf("%w %q: valid events are %s (use --force to add it anyway)",
			errs.ErrUnknownEvent, hooksAddEvent, strings.Join(valid, ", "))
	}
	if strings.TrimSpace(hooksAddCommand) == "" {
		return fmt.Errorf("--command must not be empty")
	}
	if hooksAddTimeout < 0 {
		return fmt.Errorf("--timeout must not be negative")
	}

	path := paths.SettingsPath(scope)
	s, err := settings.Load(path)
	if err != nil {
		return err
	}

	s.AddHook(hooksAddEvent, hooksAddMatcher, hooksAddCommand, hooksAddTimeout)

	if err := settings.Save(path, s); err != nil {
		return err
	}

	hook := settings.Hook{Type: settings.HookTypeCommand, Command: hooksAddCommand, Timeout: hooksAddTimeout}
	logging.UserSuccess("Added hook: %s -> %s", hooksAddEvent, settings.FormatHook(hooksAddMatcher, hook))
	logging.UserInfo("Settings file: %s", path)
	return nil
}
