package diagram

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	// ErrInvalidID is returned by [Diagram.AddNode] and [Diagram.AddCluster]
	// when the identifier is empty. All nodes and clusters must have
	// non-empty identifiers.
	ErrInvalidID = errors.New("identifier must not be empty")

	// ErrDuplicateID is returned by [Diagram.AddNode] and [Diagram.AddCluster]
	// when the identifier is already taken. Nodes and clusters share one
	// namespace so that DOT subgraph names can never collide with node names.
	ErrDuplicateID = errors.New("duplicate identifier")

	// ErrUnknownParent is returned by [Diagram.AddCluster] and
	// [Diagram.AddNode] when the referenced parent cluster does not exist.
	// Parents must be declared before their members, which is what makes
	// cluster nesting a tree by construction.
	ErrUnknownParent = errors.New("unknown parent cluster")

	// ErrUnknownSourceNode is returned by [Diagram.Connect] when the From
	// endpoint does not name an existing node.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Diagram.Connect] when the To
	// endpoint does not name an existing node.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrDanglingEdge is returned by [Diagram.Validate] when an edge
	// references a node that doesn't exist. This indicates the diagram was
	// corrupted after construction.
	ErrDanglingEdge = errors.New("edge references missing node")
)

// LineStyle controls how an edge is drawn.
type LineStyle string

// Supported edge line styles. The zero value renders as solid.
const (
	LineSolid  LineStyle = "solid"
	LineDashed LineStyle = "dashed"
	LineDotted LineStyle = "dotted"
	LineBold   LineStyle = "bold"
)

// EdgeStyle carries the optional visual attributes of an edge.
// The zero value renders as a plain directed arrow.
type EdgeStyle struct {
	Color string    // stroke color (Graphviz color name or #rrggbb)
	Line  LineStyle // solid (default), dashed, dotted, bold
	Label string    // text drawn along the edge
	Both  bool      // draw arrowheads on both ends (undirected association)
}

// IsZero reports whether the style carries no attributes.
func (s EdgeStyle) IsZero() bool {
	return s.Color == "" && s.Line == "" && s.Label == "" && !s.Both
}

// Node is one architectural component in a diagram: a service, database,
// queue and so on. The Category selects the icon/style it renders with.
//
// The zero value is not usable - ID must be set before adding to a Diagram.
type Node struct {
	ID       string // unique identifier, shared namespace with clusters
	Label    string // display label (defaults to ID)
	Category string // icon category, resolved through the icons catalog
	Cluster  string // owning cluster ID, empty for diagram root
	Icon     string // path to a custom icon image, overrides Category
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Cluster is a visual grouping box containing nodes and/or nested clusters.
// Clusters form a tree rooted at the diagram: each cluster names at most one
// parent, and the parent must already exist when the cluster is added, so a
// membership cycle can never be constructed.
type Cluster struct {
	ID     string // unique identifier, shared namespace with nodes
	Label  string // display label (defaults to ID)
	Parent string // parent cluster ID, empty for diagram root
}

// DisplayLabel returns the label if set, otherwise the ID.
func (c Cluster) DisplayLabel() string {
	if c.Label != "" {
		return c.Label
	}
	return c.ID
}

// Edge is a directed connection between two nodes, optionally styled.
type Edge struct {
	From  string // source node ID
	To    string // target node ID
	Style EdgeStyle
}

// Diagram is a validated node/cluster/edge graph ready for rendering.
// Construction is a single forward pass: declare clusters, declare nodes,
// declare edges. Every reference is checked at insertion time, so a Diagram
// that was built without errors never contains a dangling edge or an orphan
// cluster member.
//
// The zero value is not usable - use New. Diagram is not safe for concurrent
// use; the intended lifecycle is build once, render once.
type Diagram struct {
	Title string

	nodes    map[string]*Node
	clusters map[string]*Cluster
	edges    []Edge
	order    []string            // node IDs in insertion order
	members  map[string][]string // cluster ID -> member node IDs
	children map[string][]string // cluster ID -> child cluster IDs
}

// New creates an empty diagram with the given title.
func New(title string) *Diagram {
	return &Diagram{
		Title:    title,
		nodes:    make(map[string]*Node),
		clusters: make(map[string]*Cluster),
		members:  make(map[string][]string),
		children: make(map[string][]string),
	}
}

// AddCluster declares a grouping box. Returns ErrInvalidID for an empty ID,
// ErrDuplicateID if the ID is already taken by a node or cluster, or
// ErrUnknownParent if Parent names a cluster that has not been declared yet.
// A cluster cannot name itself as parent (that is an ErrUnknownParent, since
// the cluster does not exist until the call succeeds).
func (d *Diagram) AddCluster(c Cluster) error {
	if c.ID == "" {
		return ErrInvalidID
	}
	if d.taken(c.ID) {
		return fmt.Errorf("cluster %q: %w", c.ID, ErrDuplicateID)
	}
	if c.Parent != "" {
		if _, ok := d.clusters[c.Parent]; !ok {
			return fmt.Errorf("cluster %q parent %q: %w", c.ID, c.Parent, ErrUnknownParent)
		}
	}
	cluster := &c
	d.clusters[cluster.ID] = cluster
	d.children[cluster.Parent] = append(d.children[cluster.Parent], cluster.ID)
	return nil
}

// AddNode declares a component. Returns ErrInvalidID for an empty ID,
// ErrDuplicateID if the ID is already taken (regardless of differing label
// or category), or ErrUnknownParent if Cluster names a missing cluster.
func (d *Diagram) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidID
	}
	if d.taken(n.ID) {
		return fmt.Errorf("node %q: %w", n.ID, ErrDuplicateID)
	}
	if n.Cluster != "" {
		if _, ok := d.clusters[n.Cluster]; !ok {
			return fmt.Errorf("node %q cluster %q: %w", n.ID, n.Cluster, ErrUnknownParent)
		}
	}
	node := &n
	d.nodes[node.ID] = node
	d.order = append(d.order, node.ID)
	d.members[node.Cluster] = append(d.members[node.Cluster], node.ID)
	return nil
}

// Connect declares a directed edge between two existing nodes.
// Returns ErrUnknownSourceNode or ErrUnknownTargetNode if an endpoint is
// absent. Multiple edges between the same pair are allowed (the original
// architectures use parallel styled edges).
func (d *Diagram) Connect(e Edge) error {
	if _, ok := d.nodes[e.From]; !ok {
		return fmt.Errorf("edge %s->%s: %w", e.From, e.To, ErrUnknownSourceNode)
	}
	if _, ok := d.nodes[e.To]; !ok {
		return fmt.Errorf("edge %s->%s: %w", e.From, e.To, ErrUnknownTargetNode)
	}
	d.edges = append(d.edges, e)
	return nil
}

// taken reports whether id is already used by a node or a cluster.
func (d *Diagram) taken(id string) bool {
	if _, ok := d.nodes[id]; ok {
		return true
	}
	_, ok := d.clusters[id]
	return ok
}

// Node returns the node with the given ID and true, or nil and false.
func (d *Diagram) Node(id string) (*Node, bool) {
	n, ok := d.nodes[id]
	return n, ok
}

// Cluster returns the cluster with the given ID and true, or nil and false.
func (d *Diagram) Cluster(id string) (*Cluster, bool) {
	c, ok := d.clusters[id]
	return c, ok
}

// Nodes returns all nodes sorted by ID for deterministic iteration.
// The returned slice contains pointers to the actual node structs.
func (d *Diagram) Nodes() []*Node {
	nodes := make([]*Node, 0, len(d.nodes))
	for _, id := range slices.Sorted(maps.Keys(d.nodes)) {
		nodes = append(nodes, d.nodes[id])
	}
	return nodes
}

// NodesInOrder returns all nodes in insertion order. Rendering uses this so
// the DOT output follows the declaration order of the topology.
func (d *Diagram) NodesInOrder() []*Node {
	nodes := make([]*Node, 0, len(d.order))
	for _, id := range d.order {
		nodes = append(nodes, d.nodes[id])
	}
	return nodes
}

// Clusters returns all clusters sorted by ID.
func (d *Diagram) Clusters() []*Cluster {
	clusters := make([]*Cluster, 0, len(d.clusters))
	for _, id := range slices.Sorted(maps.Keys(d.clusters)) {
		clusters = append(clusters, d.clusters[id])
	}
	return clusters
}

// Edges returns a copy of all edges in insertion order.
func (d *Diagram) Edges() []Edge { return slices.Clone(d.edges) }

// Members returns the IDs of nodes directly owned by the cluster.
// Pass the empty string for nodes attached to the diagram root.
// The returned slice is a read-only view in insertion order.
func (d *Diagram) Members(clusterID string) []string { return d.members[clusterID] }

// Children returns the IDs of clusters directly nested in the cluster.
// Pass the empty string for top-level clusters.
func (d *Diagram) Children(clusterID string) []string { return d.children[clusterID] }

// Depth returns the nesting depth of the cluster: top-level clusters have
// depth 1. Returns 0 for the empty (root) ID or an unknown cluster.
func (d *Diagram) Depth(clusterID string) int {
	depth := 0
	for clusterID != "" {
		c, ok := d.clusters[clusterID]
		if !ok {
			return depth
		}
		depth++
		clusterID = c.Parent
	}
	return depth
}

// NodeCount returns the number of nodes in the diagram.
func (d *Diagram) NodeCount() int { return len(d.nodes) }

// ClusterCount returns the number of clusters in the diagram.
func (d *Diagram) ClusterCount() int { return len(d.clusters) }

// EdgeCount returns the number of edges in the diagram.
func (d *Diagram) EdgeCount() int { return len(d.edges) }

// Validate re-checks referential integrity: every edge endpoint and every
// cluster reference must resolve. A diagram built exclusively through
// AddCluster/AddNode/Connect always passes; Validate exists as a final guard
// before handing the graph to the rendering backend.
func (d *Diagram) Validate() error {
	for _, e := range d.edges {
		if _, ok := d.nodes[e.From]; !ok {
			return fmt.Errorf("edge %s->%s: %w", e.From, e.To, ErrDanglingEdge)
		}
		if _, ok := d.nodes[e.To]; !ok {
			return fmt.Errorf("edge %s->%s: %w", e.From, e.To, ErrDanglingEdge)
		}
	}
	for _, n := range d.nodes {
		if n.Cluster != "" {
			if _, ok := d.clusters[n.Cluster]; !ok {
				return fmt.Errorf("node %q cluster %q: %w", n.ID, n.Cluster, ErrUnknownParent)
			}
		}
	}
	for _, c := range d.clusters {
		if c.Parent != "" {
			if _, ok := d.clusters[c.Parent]; !ok {
				return fmt.Errorf("cluster %q parent %q: %w", c.ID, c.Parent, ErrUnknownParent)
			}
		}
	}
	return nil
}
