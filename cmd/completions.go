package cmd

import (
	"github.com/spf13/cobra"

	"github.com/samhoang/claco/internal/config"
	"github.com/samhoang/claco/internal/settings"
)

// completeScopes lists the scope names
func completeScopes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var names []string
	for _, scope := range config.AllScopes() {
		names = append(names, string(scope))
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// completeHookEvents lists the hook events Claude Code fires
func completeHookEvents(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var events []string
	for _, event := range config.AllHookEvents() {
		events = append(events, string(event))
	}
	return events, cobra.ShellCompDirectiveNoFileComp
}

// completeHookCoords lists the coordinates of hooks in the scope named by
// --scope, or the default scope
func completeHookCoords(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	p, err := config.ResolvePaths()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	scope := config.ScopeProject
	if value, _ := cmd.Flags().GetString("scope"); value != "" {
		if scope, err = config.ParseScope(value); err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
	} else if cfg, err := config.LoadClacoConfig(p.ClacoDir); err == nil {
		scope = cfg.Scope()
	}

	s, err := settings.Load(p.SettingsPath(scope))
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var coords []string
	for _, ref := range s.ListHooks() {
		coords = append(coords, ref.Coord.String()+"\t"+settings.FormatHook(ref.Matcher, ref.Hook))
	}
	return coords, cobra.ShellCompDirectiveNoFileComp
}
