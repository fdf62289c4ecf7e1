package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samhoang/claco/internal/config"
)

// addScopeFlag registers --scope on cmd
func addScopeFlag(cmd *cobra.Command, target *string, usage string) {
	cmd.Flags().StringVarP(target, "scope", "s", "", usage)
	cmd.RegisterFlagCompletionFunc("scope", completeScopes)
}

// resolveScope parses an explicit --scope value, falling back to the
// configured default scope
func resolveScope(value string) (config.Scope, error) {
	if value == "" {
		return clacoCfg.Scope(), nil
	}
	scope, err := config.ParseScope(value)
	if err != nil {
		return "", fmt.Errorf("%q: %w", value, err)
	}
	return scope, nil
}

// scopesFor returns the given scope, or every scope when value is empty
func scopesFor(value string) ([]config.Scope, error) {
	if value == "" {
		return config.AllScopes(), nil
	}
	scope, err := resolveScope(value)
	if err != nil {
		return nil, err
	}
	return []config.Scope{scope}, nil
}
