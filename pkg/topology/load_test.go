package topology

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cloudgram/cloudgram/pkg/errors"
)

const sampleTopology = `
title = "Sample"
format = "svg"
direction = "TB"

[[clusters]]
id = "obs"
label = "Observability"

[[nodes]]
id = "otel"
label = "OTel Collector"
category = "monitoring"
cluster = "obs"

[[nodes]]
ids = ["svc-a", "svc-b"]
category = "container"

[[edges]]
from = "svc-a"
to = "otel"
color = "darkgreen"
line = "dashed"
label = "traces"
`

func TestRead(t *testing.T) {
	s, err := Read(strings.NewReader(sampleTopology))
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}

	if s.Title != "Sample" || s.Format != "svg" || s.Direction != "TB" {
		t.Errorf("header fields = %q/%q/%q", s.Title, s.Format, s.Direction)
	}
	if len(s.Clusters) != 1 || len(s.Nodes) != 2 || len(s.Edges) != 1 {
		t.Fatalf("section counts = %d/%d/%d", len(s.Clusters), len(s.Nodes), len(s.Edges))
	}
	if got := s.Nodes[1].IDs; len(got) != 2 || got[0] != "svc-a" {
		t.Errorf("batched ids = %v", got)
	}
	if s.Edges[0].Line != "dashed" || s.Edges[0].Label != "traces" {
		t.Errorf("edge fields = %+v", s.Edges[0])
	}

	if _, err := s.Build(); err != nil {
		t.Errorf("Build of read topology = %v", err)
	}
}

func TestReadInvalidTOML(t *testing.T) {
	_, err := Read(strings.NewReader("title = [unterminated"))
	if !errors.Is(err, errors.ErrCodeInvalidTopology) {
		t.Errorf("invalid TOML = %v, want INVALID_TOPOLOGY", err)
	}
}

func TestReadInvalidFormat(t *testing.T) {
	_, err := Read(strings.NewReader(`title = "t"` + "\n" + `format = "jpeg"`))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("invalid format = %v, want INVALID_FORMAT", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := os.WriteFile(path, []byte(sampleTopology), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s.Title != "Sample" {
		t.Errorf("Title = %q", s.Title)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file = %v, want FILE_NOT_FOUND", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	orig, err := Read(strings.NewReader(sampleTopology))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Marshal(orig, &buf); err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	again, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read of marshaled topology error: %v", err)
	}
	if again.Title != orig.Title || len(again.Nodes) != len(orig.Nodes) || len(again.Edges) != len(orig.Edges) {
		t.Error("round trip lost topology content")
	}
}
