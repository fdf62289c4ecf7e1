package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/samhoang/claco/internal/config"
	"github.com/samhoang/claco/internal/settings"
)

var (
	hooksListScope  string
	hooksListOutput string
)

var hooksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured hooks",
	Long: `List hooks from one scope, or from every scope when --scope is omitted.

Examples:
  claco hooks list
  claco hooks list --scope user
  claco hooks list --output yaml`,
	Args: cobra.NoArgs,
	RunE: runHooksList,
}

func init() {
	hooksCmd.AddCommand(hooksListCmd)
	addScopeFlag(hooksListCmd, &hooksListScope, "Scope to list: user, project or local (default all)")
	hooksListCmd.Flags().StringVarP(&hooksListOutput, "output", "o", "text", "Output format: text, json or yaml")
}

// scopeHooks is the listing of one scope, as printed by --output json|yaml
type scopeHooks struct {
	Scope string      `json:"scope" yaml:"scope"`
	Path  string      `json:"path" yaml:"path"`
	Hooks []hookEntry `json:"hooks" yaml:"hooks"`
}

type hookEntry struct {
	Coord   string `json:"coord" yaml:"coord"`
	Event   string `json:"event" yaml:"event"`
	Matcher string `json:"matcher" yaml:"matcher"`
	Type    string `json:"type" yaml:"type"`
	Command string `json:"command" yaml:"command"`
	Timeout int    `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

func runHooksList(cmd *cobra.Command, args []string) error {
	scopes, err := scopesFor(hooksListScope)
	if err != nil {
		return err
	}

	var listings []scopeHooks
	for _, scope := range scopes {
		path := paths.SettingsPath(scope)
		s, err := settings.Load(path)
		if err != nil {
			return err
		}

		listing := scopeHooks{Scope: string(scope), Path: path, Hooks: []hookEntry{}}
		for _, ref := range s.ListHooks() {
			listing.Hooks = append(listing.Hooks, hookEntry{
				Coord:   ref.Coord.String(),
				Event:   ref.Event,
				Matcher: ref.Matcher,
				Type:    ref.Hook.Type,
				Command: ref.Hook.Command,
				Timeout: ref.Hook.Timeout,
			})
		}
		listings = append(listings, listing)
	}

	out := cmd.OutOrStdout()
	switch hooksListOutput {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "  ")
		return encoder.Encode(listings)
	case "yaml":
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(listings); err != nil {
			return err
		}
		return encoder.Close()
	case "text", "":
		if hooksListScope != "" {
			printScopeHooks(out, listings[0])
		} else {
			printAllHooks(out, listings)
		}
		return nil
	default:
		return fmt.Errorf("invalid output format %q: use text, json or yaml", hooksListOutput)
	}
}

func printScopeHooks(out io.Writer, listing scopeHooks) {
	fmt.Fprintf(out, "Hooks in %s scope:\n", listing.Scope)
	fmt.Fprintf(out, "Settings file: %s\n\n", listing.Path)

	if len(listing.Hooks) == 0 {
		fmt.Fprintln(out, "No hooks found")
		return
	}
	printHookEntries(out, listing.Hooks, "")
}

func printAllHooks(out io.Writer, listings []scopeHooks) {
	for _, listing := range listings {
		title := scopeTitle(config.Scope(listing.Scope))
		if len(listing.Hooks) == 0 {
			fmt.Fprintf(out, "No %s hooks found at: %s\n", listing.Scope, listing.Path)
			continue
		}
		fmt.Fprintf(out, "%s hooks: %s\n", title, listing.Path)
		printHookEntries(out, listing.Hooks, "  ")
		fmt.Fprintln(out)
	}
}

func printHookEntries(out io.Writer, entries []hookEntry, indent string) {
	event := ""
	for i, e := range entries {
		if e.Event != event {
			if i > 0 && indent == "" {
				fmt.Fprintln(out)
			}
			event = e.Event
			fmt.Fprintf(out, "%sEvent: %s\n", indent, event)
		}
		hook := settings.Hook{Type: e.Type, Command: e.Command, Timeout: e.Timeout}
		fmt.Fprintf(out, "%s  [%s] %s\n", indent, e.Coord, settings.FormatHook(e.Matcher, hook))
	}
}
