package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ErrRenderBackend wraps every failure surfaced by the layout/rendering
// engine (Graphviz or the SVG converter). These are not recoverable locally
// and propagate to the caller.
var ErrRenderBackend = errors.New("render backend failure")

// Format is an output image format.
type Format string

// Supported output formats.
const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
	FormatDOT Format = "dot"
)

// Formats lists the supported output formats in display order.
var Formats = []Format{FormatSVG, FormatPNG, FormatPDF, FormatDOT}

// ValidFormat reports whether s names a supported format.
func ValidFormat(s string) bool {
	for _, f := range Formats {
		if string(f) == s {
			return true
		}
	}
	return false
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderGraphviz(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderGraphviz(ctx, dot, graphviz.PNG)
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return ToPDF(svg)
}

// Render renders a DOT graph in the given format.
// FormatDOT returns the DOT source unchanged, which is useful for debugging
// layouts or feeding other Graphviz tooling.
func Render(ctx context.Context, dot string, format Format) ([]byte, error) {
	switch format {
	case FormatSVG:
		return RenderSVG(ctx, dot)
	case FormatPNG:
		return RenderPNG(ctx, dot)
	case FormatPDF:
		return RenderPDF(ctx, dot)
	case FormatDOT:
		return []byte(dot), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// renderGraphviz runs the Graphviz layout engine over the DOT source.
// All engine failures are wrapped with ErrRenderBackend.
func renderGraphviz(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: init graphviz: %v", ErrRenderBackend, err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("%w: parse DOT: %v", ErrRenderBackend, err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("%w: render: %v", ErrRenderBackend, err)
	}
	return buf.Bytes(), nil
}
