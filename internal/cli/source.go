package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/linden/pkg/blueprint"
	"github.com/matzehuels/linden/pkg/errors"
	"github.com/matzehuels/linden/pkg/presets"
)

// sourceFlags selects a blueprint from a file argument or --preset and
// applies command-line overrides.
type sourceFlags struct {
	preset      string
	seed        uint64
	generations int
	hold        int
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.preset, "preset", "p", "", "use a built-in blueprint (see 'linden presets list')")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "override the blueprint's random seed")
	cmd.Flags().IntVarP(&f.generations, "generations", "n", 0, "override the number of generations")
	cmd.Flags().IntVar(&f.hold, "hold", 0, "override how many extra times the last frame is shown")

	_ = cmd.RegisterFlagCompletionFunc("preset", completePresets)
	cmd.ValidArgsFunction = completeBlueprint
}

// load returns the selected blueprint with overrides applied and validated.
func (f *sourceFlags) load(cmd *cobra.Command, args []string) (*blueprint.Blueprint, error) {
	var (
		bp  *blueprint.Blueprint
		err error
	)
	switch {
	case len(args) > 0 && f.preset != "":
		return nil, errors.New(errors.ErrCodeInvalidInput, "give either a blueprint file or --preset, not both")
	case len(args) > 0:
		bp, err = blueprint.Load(args[0])
	case f.preset != "":
		bp, err = presets.Get(f.preset)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "a blueprint file or --preset is required")
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		bp.Seed = f.seed
	}
	if flags.Changed("generations") {
		bp.Generations = f.generations
	}
	if flags.Changed("hold") {
		bp.Hold = f.hold
	}
	bp.SetDefaults()
	if err := bp.Validate(); err != nil {
		return nil, err
	}
	return bp, nil
}
