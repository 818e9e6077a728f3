package cli

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRootCommand(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()

	if root.Use != "cloudgram" {
		t.Errorf("Use = %q, want cloudgram", root.Use)
	}

	want := map[string]bool{
		"render":     false,
		"list":       false,
		"show":       false,
		"cache":      false,
		"completion": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	if got := c.Logger.GetLevel(); got != log.InfoLevel {
		t.Fatalf("initial level = %v", got)
	}
	c.SetLogLevel(LogDebug)
	if got := c.Logger.GetLevel(); got != log.DebugLevel {
		t.Errorf("level after SetLogLevel = %v", got)
	}
}

func TestCacheDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-test")
	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir error: %v", err)
	}
	if dir != "/tmp/xdg-test/cloudgram" {
		t.Errorf("cacheDir = %q", dir)
	}
}

func TestNewCacheFallsBackToNull(t *testing.T) {
	if r := (&CLI{Logger: log.Default()}).newRunner(true); r.Cache == nil {
		t.Error("runner should always carry a cache")
	}
}
