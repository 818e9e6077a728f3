package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cloudgram/cloudgram/pkg/diagram"
	diagramio "github.com/cloudgram/cloudgram/pkg/io"
	"github.com/cloudgram/cloudgram/pkg/topology"
	"github.com/cloudgram/cloudgram/pkg/topology/builtin"
)

// showCommand creates the show command printing a topology summary without
// rendering it.
func (c *CLI) showCommand() *cobra.Command {
	var (
		arch   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "show [topology.toml]",
		Short: "Summarize a topology without rendering it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				spec *topology.Spec
				err  error
			)
			switch {
			case arch != "" && len(args) > 0:
				return fmt.Errorf("pass either a topology file or --arch, not both")
			case arch != "":
				spec, err = builtin.Load(arch)
			case len(args) > 0:
				spec, err = topology.Load(args[0])
			default:
				return fmt.Errorf("pass a topology file or --arch <name>")
			}
			if err != nil {
				return err
			}

			d, err := spec.Build()
			if err != nil {
				return err
			}

			if asJSON {
				return diagramio.WriteJSON(d, os.Stdout)
			}

			printInfo("%s", d.Title)
			printKeyValue("format", formatOrDefault(spec.Format))
			printKeyValue("direction", directionOrDefault(spec.Direction))
			printStats(d.NodeCount(), d.ClusterCount(), d.EdgeCount(), false)
			printNewline()
			showClusterTree(d)
			return nil
		},
	}

	cmd.Flags().StringVarP(&arch, "arch", "a", "", "builtin architecture name")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the built diagram as JSON")

	return cmd
}

func formatOrDefault(format string) string {
	if format == "" {
		return "png"
	}
	return format
}

func directionOrDefault(direction string) string {
	if direction == "" {
		return "LR"
	}
	return direction
}

// showClusterTree prints the cluster hierarchy with member nodes indented
// beneath their clusters. Top-level nodes come last.
func showClusterTree(d *diagram.Diagram) {
	var walk func(clusterID string, depth int)
	walk = func(clusterID string, depth int) {
		indent := strings.Repeat("  ", depth)
		if cl, ok := d.Cluster(clusterID); ok {
			printDetail("%s%s", indent, StyleTitle.Render(cl.Label))
			indent += "  "
		}
		for _, nodeID := range d.Members(clusterID) {
			if n, ok := d.Node(nodeID); ok {
				printDetail("%s%s", indent, n.DisplayLabel())
			}
		}
		for _, child := range d.Children(clusterID) {
			walk(child, depth+1)
		}
	}
	for _, cl := range d.Clusters() {
		if cl.Parent == "" {
			walk(cl.ID, 0)
		}
	}
	for _, nodeID := range d.Members("") {
		if n, ok := d.Node(nodeID); ok {
			printDetail("%s", n.DisplayLabel())
		}
	}
}
