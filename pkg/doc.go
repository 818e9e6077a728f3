// Package pkg provides the core libraries for cloudgram diagram rendering.
//
// # Overview
//
// Cloudgram turns declarative descriptions of cloud architectures into
// static diagram images. The pkg directory is organized into five areas:
//
//  1. [topology] - The TOML description format and its builtin architectures
//  2. [diagram] - The validated node/cluster/edge model and icon catalog
//  3. [render] - DOT emission and the Graphviz rendering backend
//  4. [pipeline] - Orchestration (load → build → render) with artifact caching
//  5. [cache], [errors], [io], [observability] - Supporting infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	Topology file / builtin architecture
//	         ↓ topology.Load / builtin.Load
//	topology.Spec
//	         ↓ Spec.Build
//	diagram.Diagram (validated graph)
//	         ↓ render.ToDOT
//	Graphviz DOT source
//	         ↓ render.Render
//	SVG / PNG / PDF bytes
//	         ↓ render.WriteFile
//	Output file (atomic write)
//
// Validation is front-loaded: a topology that decodes and builds without
// errors renders without reference failures, and a render that fails never
// leaves partial output on disk.
//
// [topology]: github.com/cloudgram/cloudgram/pkg/topology
// [diagram]: github.com/cloudgram/cloudgram/pkg/diagram
// [render]: github.com/cloudgram/cloudgram/pkg/render
// [pipeline]: github.com/cloudgram/cloudgram/pkg/pipeline
// [cache]: github.com/cloudgram/cloudgram/pkg/cache
// [errors]: github.com/cloudgram/cloudgram/pkg/errors
// [io]: github.com/cloudgram/cloudgram/pkg/io
// [observability]: github.com/cloudgram/cloudgram/pkg/observability
package pkg
