package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/linden/pkg/presets"
)

// blueprintExts are the file extensions offered when completing a blueprint
// argument.
var blueprintExts = []cobra.Completion{"json", "toml", "yaml", "yml"}

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for linden.

Completions cover commands and flags, preset names for --preset, and
blueprint files for positional arguments.

  $ source <(linden completion bash)
  $ linden completion zsh > "${fpath[1]}/_linden"
  $ linden completion fish > ~/.config/fish/completions/linden.fish
  PS> linden completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

// completePresets completes preset names with their descriptions.
func completePresets(_ *cobra.Command, _ []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
	var out []cobra.Completion
	for _, p := range presets.All() {
		if strings.HasPrefix(p.Name, strings.ToLower(toComplete)) {
			out = append(out, cobra.CompletionWithDesc(p.Name, p.Description))
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// completeBlueprint offers blueprint files for the single positional
// argument.
func completeBlueprint(_ *cobra.Command, args []string, _ string) ([]cobra.Completion, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return blueprintExts, cobra.ShellCompDirectiveFilterFileExt
}
