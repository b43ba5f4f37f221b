package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/linden/pkg/blueprint"
	"github.com/matzehuels/linden/pkg/cache"
	"github.com/matzehuels/linden/pkg/frames"
	"github.com/matzehuels/linden/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different blueprints.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// HashBlueprint returns the content hash of bp used in cache keys.
func HashBlueprint(bp *blueprint.Blueprint) (string, error) {
	data, err := json.Marshal(bp)
	if err != nil {
		return "", fmt.Errorf("serialize blueprint for cache key: %w", err)
	}
	return cache.Hash(data), nil
}

// Execute runs the complete generate → interpret → render pipeline with
// caching.
func (r *Runner) Execute(ctx context.Context, bp *blueprint.Blueprint, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := bp.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	opts.Logger = opts.Logger.With("run", runID[:8])

	hash, err := HashBlueprint(bp)
	if err != nil {
		return nil, err
	}
	result := &Result{RunID: runID, BlueprintHash: hash}

	// Stage 1: Generate
	start := time.Now()
	texts, hit, err := r.GenerateWithCacheInfo(ctx, bp, hash, opts)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Generations = texts
	result.Stats.Generations = len(texts)
	result.Stats.Length = utf8.RuneCountInString(texts[len(texts)-1])
	result.Stats.GenerateTime = time.Since(start)
	result.CacheInfo.GenerateHit = hit

	opts.Logger.Info("generated",
		"blueprint", bp.Name,
		"generations", result.Stats.Generations,
		"length", result.Stats.Length,
		"cached", hit,
		"duration", result.Stats.GenerateTime)

	// Stage 2: Interpret
	start = time.Now()
	interp, err := bp.Interpreter()
	if err != nil {
		return nil, fmt.Errorf("interpret: %w", err)
	}
	result.Frames = frames.Build(texts, interp, bp.Hold)
	result.Stats.Segments = len(result.Frames[len(result.Frames)-1].Segments)
	result.Stats.InterpretTime = time.Since(start)
	observability.Pipeline().OnInterpret(ctx, bp.Name, result.Stats.Segments, result.Stats.InterpretTime)

	opts.Logger.Debug("interpreted",
		"frames", len(result.Frames),
		"segments", result.Stats.Segments,
		"duration", result.Stats.InterpretTime)

	// Stage 3: Render
	start = time.Now()
	hit, err = r.RenderWithCacheInfo(ctx, bp, hash, result, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Stats.RenderTime = time.Since(start)
	result.CacheInfo.RenderHit = hit

	opts.Logger.Info("rendered",
		"formats", opts.Formats,
		"frames", len(result.Frames),
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// GenerateWithCacheInfo returns one pass of generations, from the cache when
// possible, and whether it was a cache hit.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, bp *blueprint.Blueprint, hash string, opts Options) ([]string, bool, error) {
	r.applyLogger(&opts)
	hooks := observability.Pipeline()
	cacheKey := r.Keyer.GenerationsKey(hash, opts.GenerationsKeyOpts())

	if !opts.Refresh {
		if texts, ok := r.lookupGenerations(ctx, cacheKey); ok {
			return texts, true, nil
		}
	}

	hooks.OnGenerateStart(ctx, bp.Name)
	start := time.Now()
	texts, err := Generate(ctx, bp, opts)
	length := 0
	if len(texts) > 0 {
		length = utf8.RuneCountInString(texts[len(texts)-1])
	}
	hooks.OnGenerateComplete(ctx, bp.Name, len(texts), length, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(texts); err == nil {
		r.store(ctx, "generations", cacheKey, data, cache.TTLGenerations, opts.Logger)
	}
	return texts, false, nil
}

func (r *Runner) lookupGenerations(ctx context.Context, key string) ([]string, bool) {
	data, ok := r.lookup(ctx, "generations", key)
	if !ok {
		return nil, false
	}
	var texts []string
	if err := json.Unmarshal(data, &texts); err != nil || len(texts) == 0 {
		return nil, false
	}
	return texts, true
}

// RenderWithCacheInfo fills the requested artifacts of result and reports
// whether every one of them came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, bp *blueprint.Blueprint, hash string, result *Result, opts Options) (bool, error) {
	r.applyLogger(&opts)
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	allHit := true
	var err error
	if opts.Wants(FormatSVG) {
		var hit bool
		result.SVG, hit = r.renderSVG(ctx, hash, result.Frames, opts)
		allHit = allHit && hit
	}
	if opts.Wants(FormatJSON) {
		var hit bool
		result.JSON, hit, err = r.renderJSON(ctx, bp, hash, result.Frames, opts)
		allHit = allHit && hit
	}

	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return allHit && err == nil, err
}

func (r *Runner) renderSVG(ctx context.Context, hash string, all []frames.Frame, opts Options) ([][]byte, bool) {
	out := make([][]byte, len(all))
	keys := make([]string, len(all))
	missing := false
	for i := range all {
		keys[i] = r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(FormatSVG, i))
		if opts.Refresh {
			missing = true
			continue
		}
		if data, ok := r.lookup(ctx, "artifact", keys[i]); ok {
			out[i] = data
		} else {
			missing = true
		}
	}
	if !missing {
		return out, true
	}

	rendered := RenderSVG(all, opts)
	for i, data := range rendered {
		if out[i] == nil {
			out[i] = data
			r.store(ctx, "artifact", keys[i], data, cache.TTLArtifact, opts.Logger)
		}
	}
	return out, false
}

func (r *Runner) renderJSON(ctx context.Context, bp *blueprint.Blueprint, hash string, all []frames.Frame, opts Options) ([]byte, bool, error) {
	key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(FormatJSON, -1))
	if !opts.Refresh {
		if data, ok := r.lookup(ctx, "artifact", key); ok {
			return data, true, nil
		}
	}
	data, err := RenderJSON(bp, all, opts)
	if err != nil {
		return nil, false, err
	}
	r.store(ctx, "artifact", key, data, cache.TTLArtifact, opts.Logger)
	return data, false, nil
}

// lookup reads key from the cache. Cache errors are logged and treated as
// misses.
func (r *Runner) lookup(ctx context.Context, keyType, key string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "key_type", keyType, "err", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return data, true
}

func (r *Runner) store(ctx context.Context, keyType, key string, data []byte, ttl time.Duration, logger *log.Logger) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		logger.Warn("cache write failed", "key_type", keyType, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
