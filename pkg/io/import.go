package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cloudgram/cloudgram/pkg/diagram"
)

// ReadJSON decodes a JSON diagram from r.
//
// The input must carry a title and a "nodes" array; "clusters" and "edges"
// are optional. Clusters must appear before the clusters and nodes that
// reference them, matching the builder's forward-pass construction.
//
// ReadJSON returns an error if the JSON is malformed, an ID is duplicated,
// or a cluster or edge references something undeclared. Errors wrap the
// diagram package's sentinels, so errors.Is works against them.
//
// The returned diagram is independent of r. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*diagram.Diagram, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	d := diagram.New(data.Title)
	for _, c := range data.Clusters {
		if err := d.AddCluster(diagram.Cluster{ID: c.ID, Label: c.Label, Parent: c.Parent}); err != nil {
			return nil, err
		}
	}
	for _, n := range data.Nodes {
		err := d.AddNode(diagram.Node{
			ID:       n.ID,
			Label:    n.Label,
			Category: n.Category,
			Cluster:  n.Cluster,
			Icon:     n.Icon,
		})
		if err != nil {
			return nil, err
		}
	}
	for _, e := range data.Edges {
		err := d.Connect(diagram.Edge{From: e.From, To: e.To, Style: diagram.EdgeStyle{
			Color: e.Color,
			Line:  diagram.LineStyle(e.Line),
			Label: e.Label,
			Both:  e.Both,
		}})
		if err != nil {
			return nil, err
		}
	}

	return d, nil
}

// ImportJSON reads a JSON file at path and returns the decoded diagram.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. Errors wrap the underlying cause with the file path for context.
func ImportJSON(path string) (*diagram.Diagram, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
