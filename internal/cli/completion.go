package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Print a completion script for the given shell to stdout.

For a one-off session, source the output directly:

  $ source <(bhopengraph completion bash)
  $ bhopengraph completion fish | source

To install permanently, write the script where your shell picks it up:

  $ bhopengraph completion bash > /etc/bash_completion.d/bhopengraph
  $ bhopengraph completion zsh > "${fpath[1]}/_bhopengraph"
  $ bhopengraph completion fish > ~/.config/fish/completions/bhopengraph.fish
  PS> bhopengraph completion powershell >> $PROFILE

Zsh needs compinit enabled first ("autoload -U compinit; compinit" in
~/.zshrc); bash and zsh require a new shell before completions take effect.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}
