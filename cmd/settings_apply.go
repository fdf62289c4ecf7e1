package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/samhoang/claco/internal/logging"
	"github.com/samhoang/claco/internal/settings"
	"github.com/samhoang/claco/internal/source"
)

var (
	settingsApplyScope     string
	settingsApplyOverwrite bool
)

var settingsApplyCmd = &cobra.Command{
	Use:   "apply <source>",
	Short: "Merge settings from a file or URL into a scope",
	Long: `Merge a settings document into the settings file of a scope.

The source can be a local JSON or YAML file, a GitHub file URL
(https://github.com/<owner>/<repo>/blob/<ref>/<path>) or any http(s) URL.
GITHUB_TOKEN is sent when fetching from GitHub.

Without --overwrite, any hook event or setting present in both documents is
a conflict and nothing is written. With --overwrite the source wins.

Examples:
  claco settings apply ./team-settings.json
  claco settings apply https://github.com/acme/dotfiles/blob/main/claude/settings.json --scope user
  claco settings apply hooks.yaml --scope local --overwrite`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsApply,
}

func init() {
	settingsCmd.AddCommand(settingsApplyCmd)
	addScopeFlag(settingsApplyCmd, &settingsApplyScope, "Scope to modify: user, project or local")
	settingsApplyCmd.Flags().BoolVar(&settingsApplyOverwrite, "overwrite", false, "Replace existing settings on conflict")
}

func runSettingsApply(cmd *cobra.Command, args []string) error {
	src := args[0]

	scope, err := resolveScope(settingsApplyScope)
	if err != nil {
		return err
	}

	opts := source.FetchOptions{Timeout: clacoCfg.Timeout()}
	if p := source.DetectProvider(src); p != nil && p.Type() == "github" {
		if token := os.Getenv("GITHUB_TOKEN"); token != "" {
			opts.Headers = map[string]string{"Authorization": "token " + token}
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	incoming, err := source.Load(ctx, src, opts)
	if err != nil {
		return err
	}

	path := paths.SettingsPath(scope)
	target, err := settings.Load(path)
	if err != nil {
		return err
	}

	if err := settings.Merge(target, incoming, settingsApplyOverwrite); err != nil {
		return err
	}

	if err := settings.Save(path, target); err != nil {
		return err
	}

	logging.UserSuccess("Applied settings from %s to %s scope", src, scope)
	logging.UserInfo("Settings file: %s", path)
	return nil
}
