// Package builtin bundles ready-made architecture topologies with the
// binary. Each architecture is a TOML topology file embedded at build time;
// the definitions share one description format instead of repeating
// near-identical declarations per diagram.
package builtin

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/cloudgram/cloudgram/pkg/errors"
	"github.com/cloudgram/cloudgram/pkg/topology"
)

//go:embed *.toml
var definitions embed.FS

// Names returns the available architecture names in sorted order.
func Names() []string {
	entries, err := definitions.ReadDir(".")
	if err != nil {
		// The embedded FS is part of the binary; a read failure here is a
		// build defect, not a runtime condition.
		panic(fmt.Sprintf("builtin: read embedded definitions: %v", err))
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".toml"))
	}
	sort.Strings(names)
	return names
}

// Load returns the topology for the named builtin architecture.
// Returns an ARCHITECTURE_NOT_FOUND error listing the available names when
// the name is unknown.
func Load(name string) (*topology.Spec, error) {
	f, err := definitions.Open(name + ".toml")
	if err != nil {
		return nil, errors.New(errors.ErrCodeArchitectureNotFound,
			"unknown architecture %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	defer f.Close()
	return topology.Read(f)
}
