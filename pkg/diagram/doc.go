// Package diagram provides the core node/cluster/edge model for
// architecture diagrams.
//
// A [Diagram] is assembled in a single forward pass: declare clusters
// (parents before children), declare nodes, declare edges. Every reference
// is validated at insertion time, so a diagram that was built without
// errors is referentially sound by construction - no dangling edge
// endpoints, no orphan cluster members, and cluster nesting is always a
// tree because a parent must exist before a child can name it.
//
//	d := diagram.New("AWS Observability Architecture")
//	_ = d.AddCluster(diagram.Cluster{ID: "obs", Label: "Observability Stack"})
//	_ = d.AddNode(diagram.Node{ID: "grafana", Category: "dashboard", Cluster: "obs"})
//	_ = d.AddNode(diagram.Node{ID: "prometheus", Category: "monitoring", Cluster: "obs"})
//	_ = d.Connect(diagram.Edge{From: "prometheus", To: "grafana"})
//
// Rendering lives in the render package; the icon catalog that maps node
// categories to visual styles lives in the icons subpackage.
package diagram
