package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/cloudgram/cloudgram/pkg/diagram/icons"
	"github.com/cloudgram/cloudgram/pkg/topology/builtin"
)

// listCommand creates the list command showing builtin architectures and
// the node category catalog.
func (c *CLI) listCommand() *cobra.Command {
	var categories bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List builtin architectures",
		RunE: func(cmd *cobra.Command, args []string) error {
			if categories {
				return listCategories()
			}
			return listArchitectures()
		},
	}

	cmd.Flags().BoolVar(&categories, "categories", false, "list node categories instead of architectures")

	return cmd
}

func listArchitectures() error {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	var rows [][]string
	for _, name := range builtin.Names() {
		spec, err := builtin.Load(name)
		if err != nil {
			return err
		}
		d, err := spec.Build()
		if err != nil {
			return fmt.Errorf("architecture %s: %w", name, err)
		}
		rows = append(rows, []string{
			name,
			spec.Title,
			strconv.Itoa(d.NodeCount()),
			strconv.Itoa(d.ClusterCount()),
			strconv.Itoa(d.EdgeCount()),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Title", "Nodes", "Clusters", "Edges").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle()
		})

	fmt.Println(t.Render())
	printDetail("render one with: cloudgram render --arch <name>")
	return nil
}

func listCategories() error {
	printInfo("Node categories")
	for _, cat := range icons.Categories() {
		printDetail("%s", cat)
	}
	return nil
}
