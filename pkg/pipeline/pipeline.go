// Package pipeline orchestrates the load → build → render flow.
//
// The pipeline is the one code path behind every way of producing a
// diagram: topology file in, image file out. Centralizing it keeps the CLI
// thin and ensures caching and timing behave the same everywhere.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: decode the topology description (file or builtin architecture)
//  2. Build: construct and validate the node/cluster/edge diagram
//  3. Render: lay out the graph with Graphviz and encode the image formats
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    Input:   "observability.toml",
//	    Formats: []string{"png"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/cloudgram/cloudgram/pkg/diagram"
	"github.com/cloudgram/cloudgram/pkg/errors"
	"github.com/cloudgram/cloudgram/pkg/render"
	"github.com/cloudgram/cloudgram/pkg/topology"
)

// DefaultFormat is the output format used when none is requested by flags
// or by the topology itself. PNG matches what the described architectures
// ship in their documentation.
const DefaultFormat = string(render.FormatPNG)

// DefaultDirection is the default Graphviz rankdir.
const DefaultDirection = "LR"

// ArtifactTTL is how long cached render artifacts are kept. Renders are
// cheap enough that bounded staleness beats unbounded cache growth.
const ArtifactTTL = 7 * 24 * time.Hour

// Options contains all configuration for one pipeline run.
type Options struct {
	// Source options. Exactly one of Input (a topology file path),
	// Architecture (a builtin architecture name) or Topology (an already
	// decoded spec) must be set.
	Input        string
	Architecture string
	Topology     *topology.Spec

	// Output options.
	Output    string   // output file stem; defaults to the topology's stem
	Formats   []string // output formats; defaults to topology format or png
	Direction string   // Graphviz rankdir override
	FontName  string   // font override
	Theme     string   // canvas theme: light (default) or dark

	// Refresh bypasses the artifact cache and re-renders.
	Refresh bool

	// Logger used during execution. Defaults to a discard logger.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Spec is the decoded topology description.
	Spec *topology.Spec

	// Diagram is the validated node/cluster/edge graph.
	Diagram *diagram.Diagram

	// TopologyHash is the content hash of the topology, used for artifact
	// cache keys.
	TopologyHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which artifacts came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount    int
	ClusterCount int
	EdgeCount    int
	LoadTime     time.Duration
	BuildTime    time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits per rendered format.
type CacheInfo struct {
	Hits map[string]bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	sources := 0
	if o.Input != "" {
		sources++
	}
	if o.Architecture != "" {
		sources++
	}
	if o.Topology != nil {
		sources++
	}
	if sources == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "a topology file, builtin architecture, or spec is required")
	}
	if sources > 1 {
		return errors.New(errors.ErrCodeInvalidInput, "topology sources are mutually exclusive")
	}

	for _, f := range o.Formats {
		if !render.ValidFormat(f) {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, dot)", f)
		}
	}

	if !render.ValidTheme(o.Theme) {
		return errors.New(errors.ErrCodeInvalidInput, "invalid theme: %q (must be light or dark)", o.Theme)
	}

	if o.Output != "" {
		if err := errors.ValidateOutputPath(o.Output); err != nil {
			return err
		}
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// source names the topology source for logging and instrumentation.
func (o *Options) source() string {
	switch {
	case o.Input != "":
		return o.Input
	case o.Architecture != "":
		return "builtin:" + o.Architecture
	default:
		return "spec"
	}
}

// renderOptions resolves the DOT emission options for this run.
func (o *Options) renderOptions(s *topology.Spec) render.Options {
	direction := o.Direction
	if direction == "" {
		direction = s.Direction
	}
	if direction == "" {
		direction = DefaultDirection
	}
	return render.Options{Direction: direction, FontName: o.FontName, Theme: o.Theme}
}

// formats resolves the output formats for this run: explicit flags win,
// then the topology's own format, then the default.
func (o *Options) formats(s *topology.Spec) []string {
	if len(o.Formats) > 0 {
		return o.Formats
	}
	if s.Format != "" {
		return []string{s.Format}
	}
	return []string{DefaultFormat}
}
