package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Miss before Set
	_, hit, err := c.Get(ctx, "artifact")
	if err != nil || hit {
		t.Fatalf("Get before Set = hit=%v err=%v", hit, err)
	}

	if err := c.Set(ctx, "artifact", []byte("svg bytes"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	data, hit, err := c.Get(ctx, "artifact")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit || string(data) != "svg bytes" {
		t.Errorf("Get = %q hit=%v", data, hit)
	}

	if err := c.Delete(ctx, "artifact"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "artifact"); hit {
		t.Error("Get after Delete should miss")
	}

	// Deleting a missing key is not an error
	if err := c.Delete(ctx, "never-set"); err != nil {
		t.Errorf("Delete missing key error: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Set(ctx, "short", []byte("x"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, hit, _ := c.Get(ctx, "short"); hit {
		t.Error("expired entry should be a miss")
	}

	// Zero TTL means no expiry
	if err := c.Set(ctx, "forever", []byte("x"), 0); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("zero-TTL entry should not expire")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	fc := c.(*FileCache)

	if err := c.Set(ctx, "key", []byte("good"), time.Hour); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(fc.path("key"), []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Corrupt entries report a miss, not an error, and get cleaned up.
	_, hit, err := c.Get(ctx, "key")
	if err != nil || hit {
		t.Errorf("corrupt entry Get = hit=%v err=%v, want miss", hit, err)
	}
	if _, err := os.Stat(fc.path("key")); !os.IsNotExist(err) {
		t.Error("corrupt entry should be removed")
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	fc := c.(*FileCache)

	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), time.Hour); err != nil {
			t.Fatal(err)
		}
	}
	if err := fc.Clear(); err != nil {
		t.Fatalf("Clear error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("directory not empty after Clear: %d entries", len(entries))
	}

	// Cache stays usable after Clear
	if err := c.Set(ctx, "again", []byte("x"), time.Hour); err != nil {
		t.Errorf("Set after Clear error: %v", err)
	}
}

func TestFileCacheSharding(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	fc := c.(*FileCache)

	p := fc.path("some-key")
	sub := filepath.Base(filepath.Dir(p))
	if len(sub) != 2 {
		t.Errorf("shard directory = %q, want 2 hash chars", sub)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestArtifactKey(t *testing.T) {
	k1 := ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg", Direction: "LR"})
	k2 := ArtifactKey("hash123", ArtifactKeyOpts{Format: "png", Direction: "LR"})
	if k1 == k2 {
		t.Error("different formats should produce different keys")
	}

	k3 := ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg", Direction: "LR"})
	if k1 != k3 {
		t.Error("identical inputs should produce identical keys")
	}

	k4 := ArtifactKey("other", ArtifactKeyOpts{Format: "svg", Direction: "LR"})
	if k1 == k4 {
		t.Error("different topology hashes should produce different keys")
	}
}
