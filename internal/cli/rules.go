package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/linden/pkg/errors"
	"github.com/matzehuels/linden/pkg/render/rulegraph"
)

// rulesCommand creates the rules command group.
func (c *CLI) rulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect a blueprint's grammar rules",
	}

	cmd.AddCommand(c.rulesGraphCommand())

	return cmd
}

func (c *CLI) rulesGraphCommand() *cobra.Command {
	var (
		src      sourceFlags
		output   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "graph [blueprint]",
		Short: "Draw which rules feed which as a DOT or SVG graph",
		Long: `Graph draws one node per rule and an edge A → B when some successor of A
contains text that B's predecessor matches. Without -o the DOT source is
printed to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bp, err := src.load(cmd, args)
			if err != nil {
				return err
			}

			dot := rulegraph.ToDOT(bp.Rules, rulegraph.Options{Detailed: detailed})
			if output == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), dot)
				return err
			}

			var data []byte
			switch ext := strings.ToLower(filepath.Ext(output)); ext {
			case ".dot", ".gv":
				data = []byte(dot)
			case ".svg":
				if data, err = rulegraph.RenderSVG(dot); err != nil {
					return errors.Wrap(errors.ErrCodeInternal, err, "render rule graph")
				}
			default:
				return errors.New(errors.ErrCodeInvalidFormat, "unsupported graph extension %q (use .dot or .svg)", ext)
			}

			if err := os.WriteFile(output, data, 0o644); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("rule graph written", "rules", len(bp.Rules), "path", output)
			printSuccess("Rule graph for %s", StyleHighlight.Render(bp.Name))
			printFile(output)
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.dot or .svg)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "show predecessors and successor counts")

	return cmd
}
