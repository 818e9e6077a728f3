package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cloudgram/cloudgram/pkg/diagram"
)

type document struct {
	Title    string    `json:"title"`
	Clusters []cluster `json:"clusters,omitempty"`
	Nodes    []node    `json:"nodes"`
	Edges    []edge    `json:"edges,omitempty"`
}

type cluster struct {
	ID     string `json:"id"`
	Label  string `json:"label,omitempty"`
	Parent string `json:"parent,omitempty"`
}

type node struct {
	ID       string `json:"id"`
	Label    string `json:"label,omitempty"`
	Category string `json:"category,omitempty"`
	Cluster  string `json:"cluster,omitempty"`
	Icon     string `json:"icon,omitempty"`
}

type edge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Color string `json:"color,omitempty"`
	Line  string `json:"line,omitempty"`
	Label string `json:"label,omitempty"`
	Both  bool   `json:"both,omitempty"`
}

// WriteJSON encodes a diagram as JSON and writes it to w.
// Clusters come out in parents-before-children order so the document can be
// re-imported with [ReadJSON]; nodes keep their declaration order.
func WriteJSON(d *diagram.Diagram, w io.Writer) error {
	out := document{Title: d.Title}

	var walk func(clusterID string)
	walk = func(clusterID string) {
		for _, id := range d.Children(clusterID) {
			c, _ := d.Cluster(id)
			out.Clusters = append(out.Clusters, cluster{ID: c.ID, Label: c.Label, Parent: c.Parent})
			walk(c.ID)
		}
	}
	walk("")

	for _, n := range d.NodesInOrder() {
		out.Nodes = append(out.Nodes, node{
			ID:       n.ID,
			Label:    n.Label,
			Category: n.Category,
			Cluster:  n.Cluster,
			Icon:     n.Icon,
		})
	}
	for _, e := range d.Edges() {
		out.Edges = append(out.Edges, edge{
			From:  e.From,
			To:    e.To,
			Color: e.Style.Color,
			Line:  string(e.Style.Line),
			Label: e.Style.Label,
			Both:  e.Style.Both,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a diagram to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(d *diagram.Diagram, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(d, f)
}
