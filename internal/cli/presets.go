package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/linden/pkg/blueprint"
	"github.com/matzehuels/linden/pkg/presets"
)

// presetsCommand creates the presets command group.
func (c *CLI) presetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List and export built-in blueprints",
	}

	cmd.AddCommand(c.presetsListCommand())
	cmd.AddCommand(c.presetsExportCommand())

	return cmd
}

func (c *CLI) presetsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in blueprints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), presetsTable(presets.All()))
			return nil
		},
	}
}

func presetsTable(all []presets.Preset) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(all))
	for _, p := range all {
		bp := p.Blueprint()
		rows = append(rows, []string{p.Name, fmt.Sprintf("%dD", bp.Dimensions), fmt.Sprint(bp.Generations), p.Description})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Dims", "Gens", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return StyleHighlight
			default:
				return StyleDim
			}
		}).
		Render()
}

func (c *CLI) presetsExportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export NAME",
		Short: "Write a built-in blueprint to a JSON, TOML, or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bp, err := presets.Get(args[0])
			if err != nil {
				return err
			}
			if output == "" {
				output = bp.Name + ".toml"
			}
			if err := blueprint.Save(bp, output); err != nil {
				return err
			}

			printSuccess("Exported preset %s", StyleHighlight.Render(bp.Name))
			printFile(output)
			printNextStep("Render it", fmt.Sprintf("%s render %s", appName, output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file; the extension picks the format (default NAME.toml)")

	return cmd
}
