package pipeline

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/cloudgram/cloudgram/pkg/cache"
	"github.com/cloudgram/cloudgram/pkg/errors"
	"github.com/cloudgram/cloudgram/pkg/topology"
)

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func testSpec() *topology.Spec {
	return &topology.Spec{
		Title: "Pipeline Test",
		Nodes: []topology.NodeSpec{
			{ID: "api", Category: "compute"},
			{ID: "db", Category: "database"},
		},
		Edges: []topology.EdgeSpec{{From: "api", To: "db"}},
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr errors.Code
	}{
		{"no source", Options{}, errors.ErrCodeInvalidInput},
		{"two sources", Options{Input: "a.toml", Architecture: "observability"}, errors.ErrCodeInvalidInput},
		{"bad format", Options{Input: "a.toml", Formats: []string{"jpeg"}}, errors.ErrCodeInvalidFormat},
		{"bad output path", Options{Input: "a.toml", Output: "bad\npath"}, errors.ErrCodeInvalidPath},
		{"bad theme", Options{Input: "a.toml", Theme: "sepia"}, errors.ErrCodeInvalidInput},
		{"dark theme ok", Options{Input: "a.toml", Theme: "dark"}, ""},
		{"valid", Options{Input: "a.toml", Formats: []string{"svg", "dot"}}, ""},
		{"valid spec source", Options{Topology: testSpec()}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("ValidateAndSetDefaults = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAndSetDefaults = %v, want code %s", err, tt.wantErr)
			}
		})
	}
}

func TestOptionsValidateIdempotent(t *testing.T) {
	opts := Options{Topology: testSpec()}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.Logger == nil {
		t.Fatal("Logger default not applied")
	}
	logger := opts.Logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.Logger != logger {
		t.Error("second validation should not replace the logger")
	}
}

func TestFormatsResolution(t *testing.T) {
	spec := &topology.Spec{Title: "t", Format: "svg"}

	// Explicit flags win
	o := Options{Formats: []string{"pdf", "dot"}}
	if got := o.formats(spec); len(got) != 2 || got[0] != "pdf" {
		t.Errorf("formats = %v, want flag values", got)
	}

	// Then the topology's own format
	o = Options{}
	if got := o.formats(spec); len(got) != 1 || got[0] != "svg" {
		t.Errorf("formats = %v, want [svg]", got)
	}

	// Then the default
	if got := o.formats(&topology.Spec{Title: "t"}); len(got) != 1 || got[0] != DefaultFormat {
		t.Errorf("formats = %v, want [%s]", got, DefaultFormat)
	}
}

func TestRenderOptionsResolution(t *testing.T) {
	spec := &topology.Spec{Title: "t", Direction: "TB"}

	o := Options{Direction: "RL"}
	if got := o.renderOptions(spec).Direction; got != "RL" {
		t.Errorf("Direction = %q, want flag override", got)
	}

	o = Options{}
	if got := o.renderOptions(spec).Direction; got != "TB" {
		t.Errorf("Direction = %q, want topology value", got)
	}

	if got := o.renderOptions(&topology.Spec{Title: "t"}).Direction; got != DefaultDirection {
		t.Errorf("Direction = %q, want default", got)
	}
}

func TestExecute(t *testing.T) {
	r := NewRunner(nil, discardLogger())

	result, err := r.Execute(context.Background(), Options{
		Topology: testSpec(),
		Formats:  []string{"svg", "dot"},
		Logger:   discardLogger(),
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if result.Stats.NodeCount != 2 || result.Stats.EdgeCount != 1 {
		t.Errorf("stats = %+v", result.Stats)
	}
	if result.TopologyHash == "" {
		t.Error("TopologyHash should be set")
	}
	if !bytes.Contains(result.Artifacts["svg"], []byte("<svg")) {
		t.Error("svg artifact does not look like SVG")
	}
	if !bytes.Contains(result.Artifacts["dot"], []byte("digraph")) {
		t.Error("dot artifact does not look like DOT")
	}
	if result.CacheInfo.Hits["svg"] {
		t.Error("first render should not be a cache hit")
	}
}

func TestExecuteFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topo.toml")
	content := "title = \"From File\"\n\n[[nodes]]\nid = \"a\"\ncategory = \"queue\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRunner(nil, discardLogger())
	result, err := r.Execute(context.Background(), Options{
		Input:   path,
		Formats: []string{"dot"},
		Logger:  discardLogger(),
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if result.Spec.Title != "From File" {
		t.Errorf("Title = %q", result.Spec.Title)
	}
}

func TestExecuteBuiltin(t *testing.T) {
	r := NewRunner(nil, discardLogger())
	result, err := r.Execute(context.Background(), Options{
		Architecture: "observability-simple",
		Formats:      []string{"dot"},
		Logger:       discardLogger(),
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if result.Stats.NodeCount == 0 {
		t.Error("builtin architecture rendered empty")
	}
}

func TestExecuteBuildFailure(t *testing.T) {
	bad := &topology.Spec{
		Title: "bad",
		Edges: []topology.EdgeSpec{{From: "ghost", To: "ghost"}},
	}

	r := NewRunner(nil, discardLogger())
	_, err := r.Execute(context.Background(), Options{
		Topology: bad,
		Formats:  []string{"svg"},
		Logger:   discardLogger(),
	})
	if !errors.Is(err, errors.ErrCodeUnknownNode) {
		t.Errorf("Execute = %v, want UNKNOWN_NODE", err)
	}
}

func TestExecuteArtifactCache(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, discardLogger())

	opts := Options{Topology: testSpec(), Formats: []string{"svg"}, Logger: discardLogger()}

	first, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheInfo.Hits["svg"] {
		t.Error("first render should miss the cache")
	}

	second, err := r.Execute(context.Background(), Options{
		Topology: testSpec(), Formats: []string{"svg"}, Logger: discardLogger(),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheInfo.Hits["svg"] {
		t.Error("second render should hit the cache")
	}
	if !bytes.Equal(first.Artifacts["svg"], second.Artifacts["svg"]) {
		t.Error("cached artifact differs from the original")
	}

	// Refresh bypasses the cache
	third, err := r.Execute(context.Background(), Options{
		Topology: testSpec(), Formats: []string{"svg"}, Refresh: true, Logger: discardLogger(),
	})
	if err != nil {
		t.Fatal(err)
	}
	if third.CacheInfo.Hits["svg"] {
		t.Error("refresh should bypass the cache")
	}
}

func TestDOTNeverCached(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, discardLogger())
	opts := Options{Topology: testSpec(), Formats: []string{"dot"}, Logger: discardLogger()}

	for range 2 {
		result, err := r.Execute(context.Background(), opts)
		if err != nil {
			t.Fatal(err)
		}
		if result.CacheInfo.Hits["dot"] {
			t.Error("dot output should never come from the cache")
		}
	}
}

func TestTopologyHashStable(t *testing.T) {
	h1 := topologyHash(testSpec())
	h2 := topologyHash(testSpec())
	if h1 == "" || h1 != h2 {
		t.Errorf("topologyHash not stable: %q vs %q", h1, h2)
	}

	changed := testSpec()
	changed.Nodes[0].Category = "queue"
	if topologyHash(changed) == h1 {
		t.Error("topology change should change the hash")
	}
}
