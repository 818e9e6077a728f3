// Package cache stores rendered diagram artifacts keyed by topology content.
//
// Rendering is deterministic: the same topology and render options always
// produce the same image. The cache exploits that by keying artifacts on a
// SHA-256 hash of the topology plus the render options, so re-rendering an
// unchanged architecture skips the Graphviz layout entirely.
//
// Two implementations are provided: [FileCache] for CLI usage (XDG cache
// directory) and [NullCache] for disabling caching.
package cache

import (
	"context"
	"time"
)

// Cache is the artifact cache interface.
// Implementations must be safe for use from a single goroutine; the tool is
// single-threaded by design.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// ArtifactKeyOpts are the render options that participate in artifact keys.
// Any option that changes the rendered bytes must appear here, otherwise a
// stale artifact could be served for a changed configuration.
type ArtifactKeyOpts struct {
	Format    string
	Direction string
	FontName  string
	Theme     string
}

// ArtifactKey builds the cache key for a rendered artifact.
// topologyHash is the content hash of the topology description.
func ArtifactKey(topologyHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", topologyHash, opts)
}
