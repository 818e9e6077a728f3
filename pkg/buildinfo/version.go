// Package buildinfo exposes version metadata stamped in at build time:
//
//	go build -ldflags "\
//	    -X github.com/cloudgram/cloudgram/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/cloudgram/cloudgram/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/cloudgram/cloudgram/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

// Defaults apply to builds made without ldflags, e.g. go install from source.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String formats the build information for display.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
