package cli

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/matzehuels/linden/pkg/lsystem"
)

type generateOpts struct {
	source    sourceFlags
	maxLength int
	lengths   bool
}

// generateCommand creates the generate command, which prints one pass of
// generation strings.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate [blueprint]",
		Short: "Print the generation strings of a blueprint",
		Long: `Print the generation strings of a blueprint, one per line, axiom first.

The blueprint is read from a JSON, TOML or YAML file, or chosen with --preset.`,
		Example: `  linden generate --preset koch -n 3
  linden generate plant.yaml --seed 7 --lengths`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, args, opts)
		},
	}

	opts.source.register(cmd)
	cmd.Flags().IntVar(&opts.maxLength, "max-length", 0, "stop when a generation exceeds this many characters (default LINDEN_MAX_LENGTH)")
	cmd.Flags().BoolVar(&opts.lengths, "lengths", false, "print generation lengths instead of strings")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, args []string, opts generateOpts) error {
	logger := loggerFromContext(cmd.Context())

	bp, err := opts.source.load(cmd, args)
	if err != nil {
		return err
	}
	maxLength := opts.maxLength
	if maxLength == 0 {
		maxLength = c.Config.MaxLength
	}

	seq, err := bp.Sequence(bp.Source(), lsystem.WithMaxLength(maxLength))
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	out := cmd.OutOrStdout()
	n := 0
	for i, text := range seq.All() {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		if opts.lengths {
			fmt.Fprintf(out, "%d\t%d\n", i, utf8.RuneCountInString(text))
		} else {
			fmt.Fprintln(out, text)
		}
		n++
	}
	if err := seq.Err(); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d generations of %s", n, bp.Name))
	return nil
}
