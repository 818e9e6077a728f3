// Package render turns a validated diagram into an image file.
//
// The pipeline is linear: [ToDOT] emits deterministic Graphviz DOT with
// nested cluster subgraphs and category-styled nodes, [Render] hands the DOT
// to the Graphviz layout engine (SVG and PNG natively, PDF via rsvg-convert),
// and [RenderFile] writes the result atomically so a failed render never
// leaves a partial output file.
//
//	dot, err := render.ToDOT(d, render.Options{})
//	svg, err := render.RenderSVG(ctx, dot)
//
// All failures surfaced by the layout engine or the SVG converter wrap
// [ErrRenderBackend]; they are deterministic build failures, not transient
// faults, so nothing in this package retries.
package render
