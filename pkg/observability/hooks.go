// Package observability lets callers instrument the rendering pipeline
// without coupling the core packages to any metrics or tracing framework.
//
// The pattern is hook interfaces with no-op defaults: the pipeline and cache
// emit events unconditionally, and main decides at startup whether anything
// listens. Registration happens once, before the first pipeline run:
//
//	observability.SetPipelineHooks(&myPipelineHooks{})
//	observability.SetCacheHooks(&myCacheHooks{})
//
// Emitting side, inside the pipeline:
//
//	observability.Pipeline().OnBuildStart(ctx, title)
//	// ... build the diagram ...
//	observability.Pipeline().OnBuildComplete(ctx, title, nodeCount, elapsed, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Hook Interfaces
// =============================================================================

// PipelineHooks observes the three pipeline stages. Every Start has a
// matching Complete carrying the stage duration and error, including on
// failure paths.
type PipelineHooks interface {
	OnLoadStart(ctx context.Context, source string)
	OnLoadComplete(ctx context.Context, source string, duration time.Duration, err error)

	OnBuildStart(ctx context.Context, title string)
	OnBuildComplete(ctx context.Context, title string, nodeCount int, duration time.Duration, err error)

	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// CacheHooks observes artifact cache traffic, keyed by output format.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, format string)
	OnCacheMiss(ctx context.Context, format string)
	OnCacheSet(ctx context.Context, format string, size int)
}

// =============================================================================
// No-op Defaults
// =============================================================================

// NoopPipelineHooks ignores all pipeline events. Embed it to implement only
// the events you care about.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string)                                {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, time.Duration, error)       {}
func (NoopPipelineHooks) OnBuildStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnBuildComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                            {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error)   {}

// NoopCacheHooks ignores all cache events.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Registry
// =============================================================================

// registry holds the active hooks behind one lock. Reads vastly outnumber
// writes, so an RWMutex keeps the emit path cheap.
type registry struct {
	mu       sync.RWMutex
	pipeline PipelineHooks
	cache    CacheHooks
}

var hooks = registry{pipeline: NoopPipelineHooks{}, cache: NoopCacheHooks{}}

// SetPipelineHooks installs h as the active pipeline hooks. Nil is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h == nil {
		return
	}
	hooks.mu.Lock()
	hooks.pipeline = h
	hooks.mu.Unlock()
}

// SetCacheHooks installs h as the active cache hooks. Nil is ignored.
func SetCacheHooks(h CacheHooks) {
	if h == nil {
		return
	}
	hooks.mu.Lock()
	hooks.cache = h
	hooks.mu.Unlock()
}

// Pipeline returns the active pipeline hooks.
func Pipeline() PipelineHooks {
	hooks.mu.RLock()
	defer hooks.mu.RUnlock()
	return hooks.pipeline
}

// Cache returns the active cache hooks.
func Cache() CacheHooks {
	hooks.mu.RLock()
	defer hooks.mu.RUnlock()
	return hooks.cache
}

// Reset restores the no-op defaults. Tests use this to isolate hook state.
func Reset() {
	hooks.mu.Lock()
	hooks.pipeline = NoopPipelineHooks{}
	hooks.cache = NoopCacheHooks{}
	hooks.mu.Unlock()
}
