package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cloudgram/cloudgram/pkg/diagram"
	"github.com/cloudgram/cloudgram/pkg/diagram/icons"
)

// Options configures DOT emission.
type Options struct {
	// Direction sets the Graphviz rankdir. Defaults to "LR" so data flows
	// left to right the way the architecture diagrams read.
	Direction string

	// FontName overrides the default font for nodes, edges and cluster
	// labels.
	FontName string

	// Theme selects the canvas palette. Defaults to ThemeLight.
	Theme string
}

const defaultFont = "Helvetica"

// Supported themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ValidTheme reports whether s names a supported theme.
// The empty string is valid and selects the default.
func ValidTheme(s string) bool {
	return s == "" || s == ThemeLight || s == ThemeDark
}

// theme holds the canvas-level palette for a theme. Node fills stay
// category-colored in both themes; only the canvas, cluster boxes and
// neutral strokes change.
type theme struct {
	bg           string
	fontColor    string
	edgeColor    string
	clusterLine  string
	clusterFills []string // cycled by nesting depth
}

var themes = map[string]theme{
	ThemeLight: {
		bg:           "white",
		fontColor:    "#1B2530",
		edgeColor:    "#7B8894",
		clusterLine:  "#AEB6BE",
		clusterFills: []string{"#F5F5F5", "#EBEBEB", "#E0E0E0", "#D6D6D6"},
	},
	ThemeDark: {
		bg:           "#1B2530",
		fontColor:    "#E8EDF2",
		edgeColor:    "#8BA0B5",
		clusterLine:  "#4A5866",
		clusterFills: []string{"#242F3B", "#2C3845", "#344150", "#3C4A5A"},
	},
}

// ToDOT converts a diagram to Graphviz DOT. Clusters become nested
// "subgraph cluster_*" blocks, nodes carry the style of their category from
// the icons catalog, and edge attributes map straight onto DOT edge attrs.
//
// Output is deterministic: clusters and nodes are emitted in declaration
// order, edges in connection order. Returns an error if a node category
// cannot be resolved or a custom icon file is missing, so rendering never
// starts on an unresolvable graph.
func ToDOT(d *diagram.Diagram, opts Options) (string, error) {
	if opts.Direction == "" {
		opts.Direction = "LR"
	}
	if opts.FontName == "" {
		opts.FontName = defaultFont
	}
	if opts.Theme == "" {
		opts.Theme = ThemeLight
	}
	th, ok := themes[opts.Theme]
	if !ok {
		return "", fmt.Errorf("unknown theme: %q", opts.Theme)
	}
	if err := d.Validate(); err != nil {
		return "", err
	}
	for _, n := range d.NodesInOrder() {
		if err := icons.Validate(n.Category, n.Icon); err != nil {
			return "", fmt.Errorf("node %q: %w", n.ID, err)
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  label=%q;\n", d.Title)
	buf.WriteString("  labelloc=t;\n")
	fmt.Fprintf(&buf, "  fontname=%q;\n  fontsize=20;\n", opts.FontName)
	fmt.Fprintf(&buf, "  fontcolor=%q;\n", th.fontColor)
	fmt.Fprintf(&buf, "  rankdir=%s;\n", opts.Direction)
	fmt.Fprintf(&buf, "  bgcolor=%q;\n", th.bg)
	buf.WriteString("  pad=0.5;\n")
	buf.WriteString("  ranksep=0.75;\n")
	buf.WriteString("  nodesep=0.5;\n")
	fmt.Fprintf(&buf, "  node [fontname=%q, fontsize=13, style=\"filled,rounded\", margin=\"0.25,0.15\"];\n", opts.FontName)
	fmt.Fprintf(&buf, "  edge [fontname=%q, fontsize=11, color=%q, fontcolor=%q];\n", opts.FontName, th.edgeColor, th.fontColor)
	buf.WriteString("\n")

	writeScope(&buf, d, "", 1, th)

	buf.WriteString("\n")
	for _, e := range d.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q%s;\n", e.From, e.To, edgeAttrs(e.Style))
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

// writeScope emits the nodes and child clusters owned by clusterID.
// The empty cluster ID is the diagram root.
func writeScope(buf *bytes.Buffer, d *diagram.Diagram, clusterID string, depth int, th theme) {
	indent := strings.Repeat("  ", depth)

	for _, id := range d.Members(clusterID) {
		n, _ := d.Node(id)
		fmt.Fprintf(buf, "%s%q [%s];\n", indent, n.ID, strings.Join(nodeAttrs(*n), ", "))
	}

	for _, id := range d.Children(clusterID) {
		c, _ := d.Cluster(id)
		fill := th.clusterFills[(depth-1)%len(th.clusterFills)]
		fmt.Fprintf(buf, "%ssubgraph \"cluster_%s\" {\n", indent, c.ID)
		fmt.Fprintf(buf, "%s  label=%q;\n", indent, c.DisplayLabel())
		fmt.Fprintf(buf, "%s  style=\"rounded,filled\";\n", indent)
		fmt.Fprintf(buf, "%s  fillcolor=%q;\n", indent, fill)
		fmt.Fprintf(buf, "%s  color=%q;\n", indent, th.clusterLine)
		fmt.Fprintf(buf, "%s  fontcolor=%q;\n", indent, th.fontColor)
		fmt.Fprintf(buf, "%s  fontsize=14;\n", indent)
		writeScope(buf, d, c.ID, depth+1, th)
		fmt.Fprintf(buf, "%s}\n", indent)
	}
}

// nodeAttrs builds the DOT attribute list for a node from its catalog style
// or custom icon. Validation already ran, so catalog misses fall back to the
// default style rather than erroring here.
func nodeAttrs(n diagram.Node) []string {
	attrs := []string{fmt.Sprintf("label=%q", n.DisplayLabel())}

	if n.Icon != "" {
		attrs = append(attrs,
			fmt.Sprintf("image=%q", n.Icon),
			"shape=none", "labelloc=b", "height=1.1", "imagescale=true")
		return attrs
	}

	style := icons.Fallback()
	if n.Category != "" {
		if s, err := icons.Style(n.Category); err == nil {
			style = s
		}
	}
	attrs = append(attrs,
		fmt.Sprintf("shape=%s", style.Shape),
		fmt.Sprintf("fillcolor=%q", style.FillColor),
		fmt.Sprintf("fontcolor=%q", style.FontColor))
	if style.Color != "" {
		attrs = append(attrs, fmt.Sprintf("color=%q", style.Color))
	}
	return attrs
}

// edgeAttrs renders an edge style as a DOT attribute suffix, or the empty
// string for an unstyled edge.
func edgeAttrs(s diagram.EdgeStyle) string {
	if s.IsZero() {
		return ""
	}
	var attrs []string
	if s.Color != "" {
		attrs = append(attrs, fmt.Sprintf("color=%q", s.Color))
		attrs = append(attrs, fmt.Sprintf("fontcolor=%q", s.Color))
	}
	if s.Line != "" && s.Line != diagram.LineSolid {
		attrs = append(attrs, fmt.Sprintf("style=%q", string(s.Line)))
	}
	if s.Label != "" {
		attrs = append(attrs, fmt.Sprintf("label=%q", s.Label))
	}
	if s.Both {
		attrs = append(attrs, "dir=both")
	}
	if len(attrs) == 0 {
		return ""
	}
	return " [" + strings.Join(attrs, ", ") + "]"
}
