package cmd

import (
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for claco.

To load completions:

Bash:
  $ source <(claco completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ claco completion bash > /etc/bash_completion.d/claco
  # macOS:
  $ claco completion bash > $(brew --prefix)/etc/bash_completion.d/claco

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ claco completion zsh > "${fpath[1]}/_claco"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ claco completion fish | source
  # To load completions for each session, execute once:
  $ claco completion fish > ~/.config/fish/completions/claco.fish

PowerShell:
  PS> claco completion powershell | Out-String | Invoke-Expression
  # To load completions for every new session, run:
  PS> claco completion powershell > claco.ps1
  # and source this file from your PowerShell profile.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "bash":
			rootCmd.GenBashCompletionV2(cmd.OutOrStdout(), true)
		case "zsh":
			rootCmd.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			rootCmd.GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
