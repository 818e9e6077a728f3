// Package icons maps node categories to the visual styles they render with.
//
// The catalog is intentionally flat: a category is a lowercase string such
// as "compute" or "database", and Style returns the Graphviz node attributes
// for it. Nodes can bypass the catalog entirely by carrying a custom icon
// image path, mirroring how the architectures this tool grew out of dropped
// in one-off icons for components without a stock glyph.
package icons

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
)

// ErrUnknownCategory is returned by [Style] and [Validate] when a category
// is not in the catalog. Raised at validation time, before any rendering
// attempt.
var ErrUnknownCategory = errors.New("unknown category")

// ErrMissingIcon is returned by [Validate] when a node references a custom
// icon file that does not exist on disk.
var ErrMissingIcon = errors.New("icon file not found")

// NodeStyle holds the Graphviz attributes a category renders with.
type NodeStyle struct {
	Shape     string // Graphviz shape (box, cylinder, ...)
	FillColor string // background fill
	FontColor string // label color
	Color     string // border color, empty for default
}

// catalog maps every known category to its style. Palette groups follow the
// service families of the architectures being described: orange for compute,
// blue for data stores, purple for networking, green for messaging, red for
// security, teal for observability.
var catalog = map[string]NodeStyle{
	// Compute
	"compute":   {Shape: "box", FillColor: "#ED7100", FontColor: "white"},
	"container": {Shape: "box", FillColor: "#ED7100", FontColor: "white"},
	"function":  {Shape: "box", FillColor: "#ED7100", FontColor: "white"},

	// Data stores
	"database": {Shape: "cylinder", FillColor: "#527FFF", FontColor: "white"},
	"cache":    {Shape: "cylinder", FillColor: "#C925D1", FontColor: "white"},
	"storage":  {Shape: "folder", FillColor: "#7AA116", FontColor: "white"},

	// Messaging
	"queue": {Shape: "box", FillColor: "#E7157B", FontColor: "white"},
	"topic": {Shape: "box", FillColor: "#E7157B", FontColor: "white"},

	// Networking
	"gateway":      {Shape: "box", FillColor: "#8C4FFF", FontColor: "white"},
	"loadbalancer": {Shape: "box", FillColor: "#8C4FFF", FontColor: "white"},
	"cdn":          {Shape: "box", FillColor: "#8C4FFF", FontColor: "white"},
	"network":      {Shape: "box", FillColor: "#8C4FFF", FontColor: "white"},
	"subnet":       {Shape: "box", FillColor: "#8C4FFF", FontColor: "white"},

	// Security
	"firewall": {Shape: "box", FillColor: "#DD344C", FontColor: "white"},
	"identity": {Shape: "box", FillColor: "#DD344C", FontColor: "white"},

	// Observability
	"monitoring": {Shape: "box", FillColor: "#E6522C", FontColor: "white"},
	"tracing":    {Shape: "box", FillColor: "#60D0E4", FontColor: "black"},
	"logging":    {Shape: "box", FillColor: "#F9B036", FontColor: "black"},
	"dashboard":  {Shape: "box", FillColor: "#F46800", FontColor: "white"},

	// Actors
	"client": {Shape: "box", FillColor: "#232F3E", FontColor: "white"},
	"users":  {Shape: "ellipse", FillColor: "#232F3E", FontColor: "white"},

	// Fallback for components without a stock glyph. Nodes usually pair
	// this with a custom icon path.
	"custom": {Shape: "box", FillColor: "white", FontColor: "black", Color: "#232F3E"},
}

// Style returns the node style for a category.
// Returns ErrUnknownCategory if the category is not in the catalog.
func Style(category string) (NodeStyle, error) {
	s, ok := catalog[category]
	if !ok {
		return NodeStyle{}, fmt.Errorf("%q: %w", category, ErrUnknownCategory)
	}
	return s, nil
}

// Known reports whether the category is in the catalog.
func Known(category string) bool {
	_, ok := catalog[category]
	return ok
}

// Categories returns all known categories in sorted order.
func Categories() []string {
	return slices.Sorted(maps.Keys(catalog))
}

// Validate checks that a node's visual inputs can be resolved before any
// rendering is attempted. When iconPath is non-empty it must point to an
// existing file; otherwise category must be in the catalog. An empty
// category is allowed and renders with the "custom" fallback style.
func Validate(category, iconPath string) error {
	if iconPath != "" {
		if _, err := os.Stat(iconPath); err != nil {
			return fmt.Errorf("%s: %w", iconPath, ErrMissingIcon)
		}
		return nil
	}
	if category == "" {
		return nil
	}
	if !Known(category) {
		return fmt.Errorf("%q: %w", category, ErrUnknownCategory)
	}
	return nil
}

// Fallback returns the style used for nodes with no category.
func Fallback() NodeStyle { return catalog["custom"] }
