package cmd

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/samhoang/claco/internal/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration and settings paths",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configShowCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := toml.Marshal(clacoCfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# %s\n", paths.ConfigPath())
	fmt.Fprint(out, string(data))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "# settings files")
	for _, scope := range config.AllScopes() {
		fmt.Fprintf(out, "# %-8s %s\n", scope, paths.SettingsPath(scope))
	}
	return nil
}
