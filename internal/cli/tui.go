package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cloudgram/cloudgram/pkg/topology"
	"github.com/cloudgram/cloudgram/pkg/topology/builtin"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// archEntry is one row in the architecture picker.
type archEntry struct {
	Name  string
	Title string
	Nodes int
	Edges int
}

// ArchListModel is the bubbletea model for interactive architecture selection.
type ArchListModel struct {
	Archs    []archEntry
	Cursor   int
	Selected string
}

// NewArchListModel creates a picker over the builtin architectures.
// Entries whose topology fails to decode are skipped; the embedded
// definitions are covered by tests, so this only guards a broken build.
func NewArchListModel() ArchListModel {
	var entries []archEntry
	for _, name := range builtin.Names() {
		spec, err := builtin.Load(name)
		if err != nil {
			continue
		}
		entries = append(entries, archEntry{
			Name:  name,
			Title: spec.Title,
			Nodes: countNodes(spec),
			Edges: len(spec.Edges),
		})
	}
	return ArchListModel{Archs: entries}
}

// countNodes counts the components a topology declares, including batched
// node entries.
func countNodes(s *topology.Spec) int {
	n := 0
	for _, node := range s.Nodes {
		if len(node.IDs) > 0 {
			n += len(node.IDs)
		} else {
			n++
		}
	}
	return n
}

func (m ArchListModel) Init() tea.Cmd {
	return nil
}

func (m ArchListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Archs)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = m.Archs[m.Cursor].Name
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ArchListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Architecture"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, a := range m.Archs {
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		line := fmt.Sprintf("%s%-28s %s", cursor, a.Name, listDimStyle.Render(
			fmt.Sprintf("%s · %d nodes · %d edges", a.Title, a.Nodes, a.Edges)))
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Archs))))

	return b.String()
}

// pickArchitecture runs the interactive picker and returns the chosen
// builtin architecture name, or the empty string if the user aborted.
func pickArchitecture() (string, error) {
	model := NewArchListModel()
	if len(model.Archs) == 0 {
		return "", fmt.Errorf("no builtin architectures available")
	}

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", fmt.Errorf("architecture picker: %w", err)
	}
	if m, ok := final.(ArchListModel); ok {
		return m.Selected, nil
	}
	return "", nil
}
