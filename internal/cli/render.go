package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cloudgram/cloudgram/pkg/pipeline"
	"github.com/cloudgram/cloudgram/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	arch      string   // builtin architecture name
	output    string   // output file path (single format) or base path (multiple)
	formats   []string // output formats: svg, png, pdf, dot
	direction string   // Graphviz rankdir: LR, TB, RL, BT
	font      string   // font override
	theme     string   // canvas theme: light or dark
	noCache   bool     // disable the artifact cache
	refresh   bool     // bypass cached artifacts and re-render
}

// renderCommand creates the render command.
//
// The topology comes from a positional file argument or --arch for a
// builtin architecture. With neither, an interactive picker lists the
// builtin architectures.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [topology.toml]",
		Short: "Render a topology description to a diagram image",
		Long: `Render reads a declarative topology description (nodes, clusters, edges)
and produces a diagram image via Graphviz.

The topology is either a TOML file given as the argument, or a builtin
architecture selected with --arch. Run without either to pick a builtin
architecture interactively.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			if input == "" && opts.arch == "" {
				name, err := pickArchitecture()
				if err != nil {
					return err
				}
				if name == "" {
					return nil // user aborted the picker
				}
				opts.arch = name
			}
			return c.runRender(cmd.Context(), input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.arch, "arch", "a", "", "builtin architecture name (see 'cloudgram list')")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), svg, pdf, dot (comma-separated)")
	cmd.Flags().StringVarP(&opts.direction, "direction", "d", "", "layout direction: LR (default), TB, RL, BT")
	cmd.Flags().StringVar(&opts.font, "font", "", "font for node and cluster labels")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "canvas theme: light (default) or dark")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached artifacts and re-render")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// An empty flag returns nil so the topology's own format (or the default)
// applies.
func parseFormats(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// validateFormats checks that all requested formats are supported.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !render.ValidFormat(f) {
			return fmt.Errorf("invalid format: %s (must be 'svg', 'png', 'pdf', or 'dot')", f)
		}
	}
	return nil
}

// runRender executes the pipeline and writes the artifacts to disk.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	runner := c.newRunner(opts.noCache)

	pipeOpts := pipeline.Options{
		Input:        input,
		Architecture: opts.arch,
		Formats:      opts.formats,
		Direction:    opts.direction,
		FontName:     opts.font,
		Theme:        opts.theme,
		Refresh:      opts.refresh,
		Logger:       c.Logger,
	}

	p := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Laying out diagram...")
	spinner.Start()
	result, err := runner.Execute(ctx, pipeOpts)
	spinner.Stop()
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Rendered %q", result.Spec.Title))

	base := basePath(opts.output, input, result.Spec.OutputStem())
	cached := true
	for format, data := range result.Artifacts {
		path := fmt.Sprintf("%s.%s", base, format)
		if err := render.WriteFile(path, data); err != nil {
			return err
		}
		printFile(path)
		cached = cached && result.CacheInfo.Hits[format]
	}
	printStats(result.Stats.NodeCount, result.Stats.ClusterCount, result.Stats.EdgeCount, cached)
	return nil
}

// basePath derives the output file stem. An explicit --output wins (with any
// known format extension stripped); otherwise the topology's own stem is
// used, placed next to the input file when rendering from a file.
func basePath(output, input, stem string) string {
	if output != "" {
		ext := filepath.Ext(output)
		if render.ValidFormat(strings.TrimPrefix(ext, ".")) {
			return strings.TrimSuffix(output, ext)
		}
		return output
	}
	if input != "" {
		return filepath.Join(filepath.Dir(input), stem)
	}
	return stem
}
