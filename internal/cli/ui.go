package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal palette. 256-color codes chosen to stay readable on both light
// and dark terminal backgrounds.
var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

// Shared styles used across commands.
var (
	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleDim     = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

// statusGlyph pairs a marker character with its color so every status line
// renders consistently.
type statusGlyph struct {
	icon  string
	style lipgloss.Style
}

var (
	glyphSuccess = statusGlyph{"✓", lipgloss.NewStyle().Foreground(colorGreen)}
	glyphError   = statusGlyph{"✗", lipgloss.NewStyle().Foreground(colorRed)}
	glyphWarning = statusGlyph{"!", lipgloss.NewStyle().Foreground(colorYellow)}
	glyphInfo    = statusGlyph{"›", lipgloss.NewStyle().Foreground(colorGray)}
)

func (g statusGlyph) println(msg string) {
	fmt.Println(g.style.Render(g.icon) + " " + msg)
}

func printSuccess(format string, args ...any) {
	glyphSuccess.println(fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	glyphError.println(fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	glyphWarning.println(StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	glyphInfo.println(fmt.Sprintf(format, args...))
}

// printDetail prints an indented secondary line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints an output-file line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render("→") + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value with a fixed-width key column.
func printKeyValue(key, value string) {
	fmt.Println(styleKey.Render(key) + " " + StyleValue.Render(value))
}

// printStats prints diagram statistics on one dimmed line, ending with
// whether the artifact came from the cache.
func printStats(nodeCount, clusterCount, edgeCount int, cached bool) {
	var parts []string
	for _, p := range []struct {
		n    int
		unit string
	}{
		{nodeCount, "nodes"},
		{clusterCount, "clusters"},
		{edgeCount, "edges"},
	} {
		if p.n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", p.n, p.unit))
		}
	}

	origin := "fresh"
	originColor := colorGray
	if cached {
		origin = "cached"
		originColor = colorGreen
	}
	parts = append(parts, lipgloss.NewStyle().Foreground(originColor).Render(origin))

	fmt.Println("  " + StyleDim.Render(strings.Join(parts, " · ")))
}

func printNewline() {
	fmt.Println()
}
