// Package topology defines the declarative description format for
// architecture diagrams.
//
// A topology is a TOML document listing clusters, nodes and edges:
//
//	title = "AWS Observability Architecture"
//	format = "png"
//
//	[[clusters]]
//	id = "obs"
//	label = "Observability Stack"
//
//	[[nodes]]
//	id = "prometheus"
//	label = "Prometheus"
//	category = "monitoring"
//	cluster = "obs"
//
//	[[edges]]
//	from = "otel"
//	to = "prometheus"
//	color = "orange"
//	label = "metrics"
//
// Two pieces of sugar keep descriptions from repeating themselves the way
// hand-written diagram scripts tend to:
//
//   - a node entry may give ids = ["a", "b", ...] to stamp one spec across
//     many components of the same kind
//   - an edge entry may give from_all/to_all = "<cluster>" to connect every
//     node in a cluster subtree in one declaration
//
// [Spec.Build] turns a decoded topology into a validated *diagram.Diagram.
// Any validation failure aborts the whole build; there is no partial
// construction.
package topology

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/cloudgram/cloudgram/pkg/diagram"
	"github.com/cloudgram/cloudgram/pkg/diagram/icons"
	"github.com/cloudgram/cloudgram/pkg/errors"
)

// Spec is the top-level topology description.
type Spec struct {
	Title     string        `toml:"title"`
	Output    string        `toml:"output"`    // output file stem, defaults to a slug of Title
	Format    string        `toml:"format"`    // default output format (svg, png, pdf, dot)
	Direction string        `toml:"direction"` // Graphviz rankdir, defaults to LR
	Clusters  []ClusterSpec `toml:"clusters"`
	Nodes     []NodeSpec    `toml:"nodes"`
	Edges     []EdgeSpec    `toml:"edges"`
}

// ClusterSpec describes one grouping box. Parents must be declared before
// the clusters and nodes that reference them.
type ClusterSpec struct {
	ID     string `toml:"id"`
	Label  string `toml:"label"`
	Parent string `toml:"parent"`
}

// NodeSpec describes one component, or a batch of components of the same
// kind when IDs is used. Exactly one of ID and IDs must be set.
type NodeSpec struct {
	ID       string   `toml:"id"`
	IDs      []string `toml:"ids"` // stamp this spec across several components
	Label    string   `toml:"label"`
	Category string   `toml:"category"`
	Cluster  string   `toml:"cluster"`
	Icon     string   `toml:"icon"` // custom icon image path, overrides category
}

// EdgeSpec describes a directed edge, or a fan of edges when FromAll/ToAll
// name a cluster. Exactly one of From/FromAll and one of To/ToAll must be
// set; FromAll and ToAll expand to every node in the cluster's subtree.
type EdgeSpec struct {
	From    string `toml:"from"`
	FromAll string `toml:"from_all"`
	To      string `toml:"to"`
	ToAll   string `toml:"to_all"`
	Color   string `toml:"color"`
	Line    string `toml:"line"` // solid, dashed, dotted, bold
	Label   string `toml:"label"`
	Both    bool   `toml:"both"`
}

// validLines is the set of accepted edge line styles.
var validLines = map[string]diagram.LineStyle{
	"":       "",
	"solid":  diagram.LineSolid,
	"dashed": diagram.LineDashed,
	"dotted": diagram.LineDotted,
	"bold":   diagram.LineBold,
}

// Build constructs a validated diagram from the topology description.
// Construction is a single forward pass (clusters, then nodes, then edges)
// and the first failure aborts the whole build.
func (s *Spec) Build() (*diagram.Diagram, error) {
	if s.Title == "" {
		return nil, errors.New(errors.ErrCodeInvalidTopology, "topology has no title")
	}

	d := diagram.New(s.Title)

	for i, c := range s.Clusters {
		if err := errors.ValidateIdentifier(c.ID); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidTopology, err, "clusters[%d]", i)
		}
		if err := d.AddCluster(diagram.Cluster{ID: c.ID, Label: c.Label, Parent: c.Parent}); err != nil {
			return nil, wrapBuilder(err, "clusters[%d]", i)
		}
	}

	for i, n := range s.Nodes {
		ids, err := n.expand()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidTopology, err, "nodes[%d]", i)
		}
		if n.Category != "" && n.Icon == "" && !icons.Known(n.Category) {
			return nil, errors.New(errors.ErrCodeUnknownCategory, "nodes[%d]: unknown category %q", i, n.Category)
		}
		for _, id := range ids {
			if err := errors.ValidateIdentifier(id); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidTopology, err, "nodes[%d]", i)
			}
			label := n.Label
			if len(n.IDs) > 0 {
				// Batched nodes label themselves; a shared label would
				// render every component with the same text.
				label = ""
			}
			node := diagram.Node{ID: id, Label: label, Category: n.Category, Cluster: n.Cluster, Icon: n.Icon}
			if err := d.AddNode(node); err != nil {
				return nil, wrapBuilder(err, "nodes[%d]", i)
			}
		}
	}

	for i, e := range s.Edges {
		style, err := e.style()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidTopology, err, "edges[%d]", i)
		}
		froms, err := endpoints(d, e.From, e.FromAll, "from")
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidTopology, err, "edges[%d]", i)
		}
		tos, err := endpoints(d, e.To, e.ToAll, "to")
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidTopology, err, "edges[%d]", i)
		}
		for _, from := range froms {
			for _, to := range tos {
				if err := d.Connect(diagram.Edge{From: from, To: to, Style: style}); err != nil {
					return nil, wrapBuilder(err, "edges[%d]", i)
				}
			}
		}
	}

	return d, nil
}

// OutputStem returns the output file stem: the explicit Output field if set,
// otherwise a slug of the title ("AWS Fargate Architecture" →
// "aws-fargate-architecture").
func (s *Spec) OutputStem() string {
	if s.Output != "" {
		return s.Output
	}
	return Slug(s.Title)
}

// Slug converts a title to a filesystem-friendly stem: lowercase, runs of
// non-alphanumerics collapsed to single dashes.
func Slug(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// expand resolves a node spec to the list of IDs it declares.
func (n *NodeSpec) expand() ([]string, error) {
	switch {
	case n.ID != "" && len(n.IDs) > 0:
		return nil, fmt.Errorf("id and ids are mutually exclusive")
	case n.ID != "":
		return []string{n.ID}, nil
	case len(n.IDs) > 0:
		return n.IDs, nil
	default:
		return nil, fmt.Errorf("node needs an id or ids")
	}
}

// style resolves and validates the edge's visual attributes.
func (e *EdgeSpec) style() (diagram.EdgeStyle, error) {
	line, ok := validLines[e.Line]
	if !ok {
		return diagram.EdgeStyle{}, fmt.Errorf("invalid line style: %q (must be solid, dashed, dotted, or bold)", e.Line)
	}
	if err := errors.ValidateColor(e.Color); err != nil {
		return diagram.EdgeStyle{}, err
	}
	return diagram.EdgeStyle{Color: e.Color, Line: line, Label: e.Label, Both: e.Both}, nil
}

// endpoints resolves one side of an edge spec to concrete node IDs.
// A single ID passes through untouched (Connect validates it); a cluster
// reference expands to every node in the cluster's subtree.
func endpoints(d *diagram.Diagram, id, clusterID, side string) ([]string, error) {
	switch {
	case id != "" && clusterID != "":
		return nil, fmt.Errorf("%s and %s_all are mutually exclusive", side, side)
	case id != "":
		return []string{id}, nil
	case clusterID != "":
		if _, ok := d.Cluster(clusterID); !ok {
			return nil, fmt.Errorf("%s_all: unknown cluster %q", side, clusterID)
		}
		ids := subtreeNodes(d, clusterID)
		if len(ids) == 0 {
			return nil, fmt.Errorf("%s_all: cluster %q has no nodes", side, clusterID)
		}
		return ids, nil
	default:
		return nil, fmt.Errorf("edge needs %s or %s_all", side, side)
	}
}

// subtreeNodes collects the node IDs of a cluster and all clusters nested
// under it, in declaration order.
func subtreeNodes(d *diagram.Diagram, clusterID string) []string {
	ids := append([]string(nil), d.Members(clusterID)...)
	for _, child := range d.Children(clusterID) {
		ids = append(ids, subtreeNodes(d, child)...)
	}
	return ids
}

// wrapBuilder maps the diagram builder's sentinel errors onto structured
// error codes at the topology boundary.
func wrapBuilder(err error, format string, args ...any) error {
	code := errors.ErrCodeInvalidTopology
	switch {
	case stderrors.Is(err, diagram.ErrDuplicateID):
		code = errors.ErrCodeDuplicateID
	case stderrors.Is(err, diagram.ErrUnknownParent):
		code = errors.ErrCodeUnknownParent
	case stderrors.Is(err, diagram.ErrUnknownSourceNode), stderrors.Is(err, diagram.ErrUnknownTargetNode):
		code = errors.ErrCodeUnknownNode
	case stderrors.Is(err, diagram.ErrInvalidID):
		code = errors.ErrCodeInvalidID
	}
	return errors.Wrap(code, err, format, args...)
}
