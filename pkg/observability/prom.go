package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PromHooks records pipeline and cache events as Prometheus metrics.
type PromHooks struct {
	generations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	length      *prometheus.GaugeVec
	segments    *prometheus.GaugeVec
	cache       *prometheus.CounterVec
	cacheBytes  *prometheus.CounterVec
}

// NewPromHooks creates the linden metrics and registers them on reg.
func NewPromHooks(reg prometheus.Registerer) *PromHooks {
	h := &PromHooks{
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "linden_generations_total",
			Help: "Generations rewritten, by blueprint and outcome.",
		}, []string{"blueprint", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "linden_stage_duration_seconds",
			Help:    "Duration of pipeline stages.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"stage"}),
		length: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "linden_generation_length_runes",
			Help: "Length of the last generation string.",
		}, []string{"blueprint"}),
		segments: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "linden_frame_segments",
			Help: "Segments in the last interpreted frame.",
		}, []string{"blueprint"}),
		cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "linden_cache_requests_total",
			Help: "Cache lookups and writes, by key type and result.",
		}, []string{"key_type", "result"}),
		cacheBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "linden_cache_written_bytes_total",
			Help: "Bytes written to the cache, by key type.",
		}, []string{"key_type"}),
	}
	reg.MustRegister(h.generations, h.duration, h.length, h.segments, h.cache, h.cacheBytes)
	return h
}

func (h *PromHooks) OnGenerateStart(context.Context, string) {}

func (h *PromHooks) OnGenerateComplete(_ context.Context, blueprint string, generations, length int, d time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	h.generations.WithLabelValues(blueprint, outcome).Add(float64(generations))
	h.length.WithLabelValues(blueprint).Set(float64(length))
	h.duration.WithLabelValues("generate").Observe(d.Seconds())
}

func (h *PromHooks) OnInterpret(_ context.Context, blueprint string, segments int, d time.Duration) {
	h.segments.WithLabelValues(blueprint).Set(float64(segments))
	h.duration.WithLabelValues("interpret").Observe(d.Seconds())
}

func (h *PromHooks) OnRenderStart(context.Context, []string) {}

func (h *PromHooks) OnRenderComplete(_ context.Context, _ []string, d time.Duration, _ error) {
	h.duration.WithLabelValues("render").Observe(d.Seconds())
}

func (h *PromHooks) OnCacheHit(_ context.Context, keyType string) {
	h.cache.WithLabelValues(keyType, "hit").Inc()
}

func (h *PromHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.cache.WithLabelValues(keyType, "miss").Inc()
}

func (h *PromHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.cache.WithLabelValues(keyType, "set").Inc()
	h.cacheBytes.WithLabelValues(keyType).Add(float64(size))
}

var (
	_ PipelineHooks = (*PromHooks)(nil)
	_ CacheHooks    = (*PromHooks)(nil)
)
