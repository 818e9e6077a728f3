// Package cli implements the cloudgram command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cloudgram/cloudgram/pkg/buildinfo"
	"github.com/cloudgram/cloudgram/pkg/cache"
	"github.com/cloudgram/cloudgram/pkg/pipeline"
)

// appName names the binary and its cache directory.
const appName = "cloudgram"

// Log levels re-exported so main does not import charmbracelet/log directly.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI carries state shared by all subcommands.
type CLI struct {
	Logger *log.Logger
}

// New builds a CLI logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
	return &CLI{Logger: logger}
}

// SetLogLevel changes the logger's level after construction.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand assembles the root cobra command and its subcommands.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Cloudgram renders declarative architecture diagrams",
		Long:         `Cloudgram is a CLI tool that turns declarative topology descriptions of cloud architectures (nodes, clusters, edges) into static diagram images via Graphviz.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}
	root.SetVersionTemplate(buildinfo.Template())

	for _, sub := range []*cobra.Command{
		c.renderCommand(),
		c.listCommand(),
		c.showCommand(),
		c.cacheCommand(),
		c.completionCommand(),
	} {
		root.AddCommand(sub)
	}
	return root
}

func (c *CLI) newRunner(noCache bool) *pipeline.Runner {
	return pipeline.NewRunner(newCache(noCache), c.Logger)
}

// newCache picks the artifact cache backend. Any failure to set up the file
// cache degrades to no caching rather than failing the command.
func newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return fc
}

// cacheDir resolves the XDG cache directory for cloudgram.
func cacheDir() (string, error) {
	if base := os.Getenv("XDG_CACHE_HOME"); base != "" {
		return filepath.Join(base, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
