package pipeline

import (
	"context"
	"io"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/linden/pkg/blueprint"
	"github.com/matzehuels/linden/pkg/lsystem"
)

// Generate rewrites one pass of bp's generations. It stops with the
// context's error if ctx is cancelled between generations, and with a
// LENGTH_EXCEEDED error if a generation grows past opts.MaxLength.
func Generate(ctx context.Context, bp *blueprint.Blueprint, opts Options) ([]string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	seq, err := bp.Sequence(bp.Source(), lsystem.WithMaxLength(opts.MaxLength))
	if err != nil {
		return nil, err
	}

	texts := make([]string, 0, bp.Generations)
	for i, text := range seq.All() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		logger.Debug("generated", "generation", i, "length", utf8.RuneCountInString(text))
		texts = append(texts, text)
	}
	if err := seq.Err(); err != nil {
		return nil, err
	}
	return texts, nil
}
