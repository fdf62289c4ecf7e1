package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/samhoang/claco/internal/config"
	"github.com/samhoang/claco/internal/settings"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose settings files",
	Long: `Check the settings file of every scope for common issues.

Checks:
- Does the file parse?
- Does it use a legacy hook layout?
- Are all hook events known to Claude Code?
- Are temp files from interrupted saves lying around?`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "=== claco doctor ===")
	fmt.Fprintln(out)

	issues := 0
	for _, scope := range config.AllScopes() {
		issues += checkScope(cmd, scope)
	}

	// Summary
	fmt.Fprintln(out)
	if issues == 0 {
		fmt.Fprintln(out, "All checks passed!")
	} else {
		fmt.Fprintf(out, "Found %d issue(s)\n", issues)
	}

	return nil
}

// checkScope prints the checks for one scope and returns the issue count
func checkScope(cmd *cobra.Command, scope config.Scope) int {
	out := cmd.OutOrStdout()
	path := paths.SettingsPath(scope)

	var warnings []string
	temps, _ := filepath.Glob(path + ".*tmp")
	for _, tmp := range temps {
		warnings = append(warnings, "leftover temp file from an interrupted save: "+tmp)
	}

	fmt.Fprintf(out, "Checking %s settings (%s)... ", scope, path)
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		if len(warnings) == 0 {
			fmt.Fprintln(out, "not present")
			return 0
		}
	case err != nil:
		fmt.Fprintln(out, "FAIL")
		fmt.Fprintf(out, "  → %v\n", err)
		return 1
	default:
		s, err := settings.Parse(path, data)
		if err != nil {
			fmt.Fprintln(out, "FAIL")
			fmt.Fprintf(out, "  → %v\n", err)
			return 1
		}
		warnings = append(warnings, lintSettings(s, data)...)
	}

	if len(warnings) == 0 {
		fmt.Fprintln(out, "OK")
		return 0
	}

	fmt.Fprintf(out, "WARN (%d)\n", len(warnings))
	for _, w := range warnings {
		fmt.Fprintf(out, "  → %s\n", w)
	}
	return len(warnings)
}

// lintSettings flags a legacy layout and hook events Claude Code never fires
func lintSettings(s *settings.Settings, data []byte) []string {
	var warnings []string
	if settings.NeedsMigration(data) {
		warnings = append(warnings, "legacy hook layout; run 'claco settings migrate'")
	}

	var unknown []string
	for event := range s.Hooks {
		if !config.IsKnownHookEvent(event) {
			unknown = append(unknown, event)
		}
	}
	sort.Strings(unknown)
	for _, event := range unknown {
		warnings = append(warnings, fmt.Sprintf("unknown hook event %q", event))
	}
	return warnings
}
