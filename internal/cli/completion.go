package cli

import "github.com/spf13/cobra"

// completionCommand creates the completion command for generating shell
// completions, including the run, render and trace flags.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for cardstack.

To load completions:

Bash:
  $ source <(cardstack completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ cardstack completion bash > /etc/bash_completion.d/cardstack
  # macOS:
  $ cardstack completion bash > $(brew --prefix)/etc/bash_completion.d/cardstack

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ cardstack completion zsh > "${fpath[1]}/_cardstack"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ cardstack completion fish | source

  # To load completions for each session, execute once:
  $ cardstack completion fish > ~/.config/fish/completions/cardstack.fish

PowerShell:
  PS> cardstack completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> cardstack completion powershell > cardstack.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}

	return cmd
}
