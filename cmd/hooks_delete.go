package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samhoang/claco/internal/config"
	"github.com/samhoang/claco/internal/logging"
	"github.com/samhoang/claco/internal/picker"
	"github.com/samhoang/claco/internal/settings"
)

var (
	hooksDeleteScope       string
	hooksDeleteInteractive bool
)

// pickHooks is swapped out in tests
var pickHooks = picker.PickHooks

var hooksDeleteCmd = &cobra.Command{
	Use:   "delete [event:matcher:hook ...]",
	Short: "Delete hooks",
	Long: `Delete hooks by coordinate, or choose them interactively with -i.

Coordinates come from 'claco hooks list'. All coordinates are checked before
anything is removed; matchers and events left empty are removed too.

Examples:
  claco hooks delete --scope project PreToolUse:0:1 Stop:0:0
  claco hooks delete -i
  claco hooks delete -i --scope user`,
	RunE:              runHooksDelete,
	ValidArgsFunction: completeHookCoords,
}

func init() {
	hooksCmd.AddCommand(hooksDeleteCmd)
	addScopeFlag(hooksDeleteCmd, &hooksDeleteScope, "Scope to modify: user, project or local")
	hooksDeleteCmd.Flags().BoolVarP(&hooksDeleteInteractive, "interactive", "i", false, "Choose hooks from a list (all scopes unless --scope is given)")
}

func runHooksDelete(cmd *cobra.Command, args []string) error {
	if hooksDeleteInteractive {
		if len(args) > 0 {
			return fmt.Errorf("hook coordinates cannot be combined with --interactive")
		}
		return deleteHooksInteractive()
	}

	if len(args) == 0 {
		return fmt.Errorf("specify hook coordinates (see 'claco hooks list') or use --interactive")
	}

	scope, err := resolveScope(hooksDeleteScope)
	if err != nil {
		return err
	}

	coords := make([]settings.Coord, 0, len(args))
	for _, arg := range args {
		c, err := settings.ParseCoord(arg)
		if err != nil {
			return err
		}
		coords = append(coords, c)
	}

	return deleteHooks(scope, nil, coords)
}

func deleteHooksInteractive() error {
	scopes, err := scopesFor(hooksDeleteScope)
	if err != nil {
		return err
	}

	loaded := make(map[config.Scope]*settings.Settings)
	var sets []picker.HookSet
	for _, scope := range scopes {
		s, err := settings.Load(paths.SettingsPath(scope))
		if err != nil {
			return err
		}
		loaded[scope] = s
		if refs := s.ListHooks(); len(refs) > 0 {
			sets = append(sets, picker.HookSet{Name: string(scope), Refs: refs})
		}
	}

	if len(sets) == 0 {
		logging.UserInfo("No hooks found")
		return nil
	}

	picked, err := pickHooks("Select hooks to delete", sets)
	if err != nil {
		return fmt.Errorf("hook picker failed: %w", err)
	}
	if len(picked) == 0 {
		logging.UserInfo("No hooks selected")
		return nil
	}

	for _, scope := range scopes {
		if coords := picked[string(scope)]; len(coords) > 0 {
			if err := deleteHooks(scope, loaded[scope], coords); err != nil {
				return err
			}
		}
	}
	return nil
}

// deleteHooks removes coords from the scope's settings file. s is the
// document the coordinates were taken from, or nil to load it.
func deleteHooks(scope config.Scope, s *settings.Settings, coords []settings.Coord) error {
	path := paths.SettingsPath(scope)
	if s == nil {
		var err error
		if s, err = settings.Load(path); err != nil {
			return err
		}
	}

	removed, err := s.DeleteHooks(coords)
	if err != nil {
		return fmt.Errorf("%s scope: %w", scope, err)
	}

	if err := settings.Save(path, s); err != nil {
		return err
	}

	logging.UserSuccess("Deleted %d hook(s) from %s scope", removed, scope)
	return nil
}
