// Package io provides JSON export and import for diagrams.
//
// # Overview
//
// This package serializes a validated diagram (nodes, clusters, edges) to and
// from a simple JSON format. The format is designed for:
//
//   - Integration with external tools that consume architecture data
//   - Inspecting a topology without rendering it
//   - Round-trip preservation: a built diagram exports and re-imports identically
//
// # JSON Format
//
// The format has a title plus three arrays:
//
//	{
//	  "title": "Web Service",
//	  "clusters": [
//	    {"id": "vpc", "label": "VPC"}
//	  ],
//	  "nodes": [
//	    {"id": "api", "category": "compute", "cluster": "vpc"},
//	    {"id": "db", "category": "database", "cluster": "vpc"}
//	  ],
//	  "edges": [
//	    {"from": "api", "to": "db"}
//	  ]
//	}
//
// Optional node fields (label, icon) and edge style fields (color, line,
// label, both) are omitted when empty.
//
// Import validation is the diagram package's: duplicate IDs, unknown
// clusters, and unknown edge endpoints are rejected with the same sentinel
// errors the builder raises.
package io
