package cmd

import (
	"os"

	"github.com/spf13/cobra"

	errs "github.com/samhoang/claco/internal/errors"
	"github.com/samhoang/claco/internal/logging"
	"github.com/samhoang/claco/internal/settings"
)

var settingsMigrateScope string

var settingsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Rewrite settings files in the current format",
	Long: `Rewrite settings files that use a legacy hook layout.

Legacy layouts are already read transparently; this command saves the
migrated document so Claude Code sees the current format. Every scope is
checked unless --scope is given. Files already in the current format are
left alone.`,
	Args: cobra.NoArgs,
	RunE: runSettingsMigrate,
}

func init() {
	settingsCmd.AddCommand(settingsMigrateCmd)
	addScopeFlag(settingsMigrateCmd, &settingsMigrateScope, "Scope to migrate: user, project or local (default all)")
}

func runSettingsMigrate(cmd *cobra.Command, args []string) error {
	scopes, err := scopesFor(settingsMigrateScope)
	if err != nil {
		return err
	}

	migrated := 0
	for _, scope := range scopes {
		path := paths.SettingsPath(scope)

		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			logging.Debug("no settings file", "scope", scope, "path", path)
			continue
		}
		if err != nil {
			return errs.NewPathError(path, "read settings", err)
		}

		if !settings.NeedsMigration(data) {
			logging.UserInfo("%s: already current", path)
			continue
		}

		s, err := settings.Parse(path, data)
		if err != nil {
			return err
		}
		if err := settings.Save(path, s); err != nil {
			return err
		}

		logging.UserSuccess("Migrated %s", path)
		migrated++
	}

	if migrated == 0 {
		logging.UserInfo("Nothing to migrate")
	}
	return nil
}
