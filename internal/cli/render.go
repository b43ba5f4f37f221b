package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/matzehuels/linden/pkg/errors"
	"github.com/matzehuels/linden/pkg/observability"
	"github.com/matzehuels/linden/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	source      sourceFlags
	output      string  // output base path
	formats     string  // comma-separated: svg, json
	width       float64 // SVG viewport width in pixels
	height      float64 // SVG viewport height in pixels
	stroke      string
	strokeWidth float64
	text        bool // keep generation strings in JSON
	maxLength   int
	noCache     bool
	refresh     bool
	metricsFile string // Prometheus textfile output
}

// renderCommand creates the render command.
//
// SVG output writes one file per frame (base-000.svg, base-001.svg, ...), or
// base.svg when there is a single frame. JSON output writes base.json with
// every frame and the blueprint.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		width:  pipeline.DefaultWidth,
		height: pipeline.DefaultHeight,
	}

	cmd := &cobra.Command{
		Use:   "render [blueprint]",
		Short: "Render a blueprint's generations to SVG frames or JSON",
		Example: `  linden render --preset plant -o out/plant
  linden render koch.toml -f svg,json --metrics-file linden.prom`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args, &opts)
		},
	}

	opts.source.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output base path (default: blueprint name)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), json (comma-separated)")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "frame width")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "frame height")
	cmd.Flags().StringVar(&opts.stroke, "stroke", "", "SVG stroke color")
	cmd.Flags().Float64Var(&opts.strokeWidth, "stroke-width", 0, "SVG stroke width")
	cmd.Flags().BoolVar(&opts.text, "text", false, "include generation strings in JSON output")
	cmd.Flags().IntVar(&opts.maxLength, "max-length", 0, "fail when a generation exceeds this many characters (default LINDEN_MAX_LENGTH)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results but store new ones")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics for this run to a textfile")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, args []string, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	bp, err := opts.source.load(cmd, args)
	if err != nil {
		return err
	}

	var reg *prometheus.Registry
	if opts.metricsFile != "" {
		reg = prometheus.NewRegistry()
		hooks := observability.NewPromHooks(reg)
		observability.SetPipelineHooks(hooks)
		observability.SetCacheHooks(hooks)
		defer observability.Reset()
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	maxLength := opts.maxLength
	if maxLength == 0 {
		maxLength = c.Config.MaxLength
	}
	popts := pipeline.Options{
		Formats:     parseFormats(opts.formats),
		Width:       opts.width,
		Height:      opts.height,
		Stroke:      opts.stroke,
		StrokeWidth: opts.strokeWidth,
		Text:        opts.text,
		MaxLength:   maxLength,
		Refresh:     opts.refresh,
		Logger:      logger,
	}
	if err := pipeline.ValidateFormats(popts.Formats); err != nil {
		return err
	}

	var spinner *Spinner
	if term.IsTerminal(int(os.Stderr.Fd())) {
		spinner = newSpinnerWithContext(ctx, fmt.Sprintf("Growing %s...", bp.Name))
		spinner.Start()
	}
	result, err := runner.Execute(ctx, bp, popts)
	if spinner != nil {
		if err != nil {
			spinner.StopWithError(fmt.Sprintf("Failed to grow %s", bp.Name))
		} else {
			spinner.Stop()
		}
	}
	if err != nil {
		return err
	}

	base := basePath(opts.output, bp.Name)
	paths, err := writeArtifacts(base, result)
	if err != nil {
		return err
	}

	printSuccess("Rendered %s", StyleHighlight.Render(bp.Name))
	printStats(result.Stats, result.CacheInfo.GenerateHit && result.CacheInfo.RenderHit)
	for _, p := range paths {
		printFile(p)
	}

	if reg != nil {
		if err := prometheus.WriteToTextfile(opts.metricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		printDetail("Metrics: %s", opts.metricsFile)
	}
	return nil
}

// basePath derives the base output path. Without an output it is the
// slugged blueprint name. A known format extension on output is stripped.
func basePath(output, name string) string {
	if output == "" {
		return errors.Slug(name)
	}
	switch ext := filepath.Ext(output); ext {
	case ".svg", ".json":
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// framePath returns the SVG path for frame i of n.
func framePath(base string, i, n int) string {
	if n == 1 {
		return base + ".svg"
	}
	return fmt.Sprintf("%s-%03d.svg", base, i)
}

// writeArtifacts writes every artifact in result under base and returns the
// written paths.
func writeArtifacts(base string, result *pipeline.Result) ([]string, error) {
	if dir := filepath.Dir(base); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	var paths []string
	for i, data := range result.SVG {
		p := framePath(base, i, len(result.SVG))
		if err := os.WriteFile(p, data, 0o644); err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}
	if result.JSON != nil {
		p := base + ".json"
		if err := os.WriteFile(p, result.JSON, 0o644); err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}
