package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/cloudgram/cloudgram/pkg/cache"
	"github.com/cloudgram/cloudgram/pkg/diagram"
	"github.com/cloudgram/cloudgram/pkg/observability"
	"github.com/cloudgram/cloudgram/pkg/render"
	"github.com/cloudgram/cloudgram/pkg/topology"
	"github.com/cloudgram/cloudgram/pkg/topology/builtin"
)

// Runner executes the pipeline with artifact caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results between runs.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs the complete load → build → render pipeline.
// Any validation failure aborts the whole run before rendering starts; no
// output is produced on error.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if opts.Logger != nil {
		r.Logger = opts.Logger
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
		CacheInfo: CacheInfo{Hits: make(map[string]bool)},
	}

	// Stage 1: Load
	loadStart := time.Now()
	observability.Pipeline().OnLoadStart(ctx, opts.source())
	spec, err := r.Load(opts)
	observability.Pipeline().OnLoadComplete(ctx, opts.source(), time.Since(loadStart), err)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Spec = spec
	result.Stats.LoadTime = time.Since(loadStart)
	result.TopologyHash = topologyHash(spec)

	// Stage 2: Build
	buildStart := time.Now()
	observability.Pipeline().OnBuildStart(ctx, spec.Title)
	d, err := spec.Build()
	observability.Pipeline().OnBuildComplete(ctx, spec.Title, countNodes(d), time.Since(buildStart), err)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Diagram = d
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.NodeCount = d.NodeCount()
	result.Stats.ClusterCount = d.ClusterCount()
	result.Stats.EdgeCount = d.EdgeCount()

	r.Logger.Info("built diagram",
		"nodes", d.NodeCount(),
		"clusters", d.ClusterCount(),
		"edges", d.EdgeCount(),
		"duration", result.Stats.BuildTime)

	// Stage 3: Render
	renderStart := time.Now()
	renderOpts := opts.renderOptions(spec)
	observability.Pipeline().OnRenderStart(ctx, opts.formats(spec))
	for _, format := range opts.formats(spec) {
		data, hit, err := r.renderCached(ctx, d, result.TopologyHash, format, renderOpts, opts.Refresh)
		if err != nil {
			observability.Pipeline().OnRenderComplete(ctx, opts.formats(spec), time.Since(renderStart), err)
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		result.Artifacts[format] = data
		result.CacheInfo.Hits[format] = hit
	}
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.formats(spec), result.Stats.RenderTime, nil)

	r.Logger.Info("rendered outputs",
		"formats", opts.formats(spec),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load resolves the topology from whichever source the options name.
func (r *Runner) Load(opts Options) (*topology.Spec, error) {
	switch {
	case opts.Topology != nil:
		return opts.Topology, nil
	case opts.Architecture != "":
		r.Logger.Debug("loading builtin architecture", "name", opts.Architecture)
		return builtin.Load(opts.Architecture)
	default:
		r.Logger.Debug("loading topology file", "path", opts.Input)
		return topology.Load(opts.Input)
	}
}

// renderCached renders one format, consulting the artifact cache first.
// DOT output is never cached - it is cheaper to emit than to read back.
func (r *Runner) renderCached(ctx context.Context, d *diagram.Diagram, hash, format string, renderOpts render.Options, refresh bool) ([]byte, bool, error) {
	dot, err := render.ToDOT(d, renderOpts)
	if err != nil {
		return nil, false, err
	}
	if format == string(render.FormatDOT) {
		return []byte(dot), false, nil
	}

	key := cache.ArtifactKey(hash, cache.ArtifactKeyOpts{
		Format:    format,
		Direction: renderOpts.Direction,
		FontName:  renderOpts.FontName,
		Theme:     renderOpts.Theme,
	})

	if !refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			r.Logger.Debug("artifact cache hit", "format", format)
			observability.Cache().OnCacheHit(ctx, format)
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, format)
	}

	data, err := render.Render(ctx, dot, render.Format(format))
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, key, data, ArtifactTTL); err != nil {
		// A cache write failure never fails the render.
		r.Logger.Debug("artifact cache write failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, format, len(data))
	}
	return data, false, nil
}

// countNodes tolerates a nil diagram so build hooks can fire on failure.
func countNodes(d *diagram.Diagram) int {
	if d == nil {
		return 0
	}
	return d.NodeCount()
}

// topologyHash computes the content hash of a topology spec.
// The TOML encoding is canonical enough for cache keying: field order is
// fixed by the struct definition.
func topologyHash(s *topology.Spec) string {
	var buf bytes.Buffer
	if err := topology.Marshal(s, &buf); err != nil {
		return ""
	}
	return cache.Hash(buf.Bytes())
}
