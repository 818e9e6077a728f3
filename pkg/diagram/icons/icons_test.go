package icons

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestStyle(t *testing.T) {
	s, err := Style("database")
	if err != nil {
		t.Fatalf("Style(database) error: %v", err)
	}
	if s.Shape != "cylinder" {
		t.Errorf("database shape = %q, want cylinder", s.Shape)
	}

	if _, err := Style("mainframe"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("Style(mainframe) = %v, want ErrUnknownCategory", err)
	}
}

func TestCategories(t *testing.T) {
	cats := Categories()
	if !slices.IsSorted(cats) {
		t.Error("Categories should be sorted")
	}
	for _, want := range []string{"compute", "database", "queue", "custom"} {
		if !slices.Contains(cats, want) {
			t.Errorf("Categories missing %q", want)
		}
	}
	for _, c := range cats {
		if !Known(c) {
			t.Errorf("Known(%q) = false for listed category", c)
		}
	}
}

func TestValidate(t *testing.T) {
	// Known category, no icon
	if err := Validate("compute", ""); err != nil {
		t.Errorf("Validate(compute) = %v, want nil", err)
	}

	// Empty category falls back to the custom style
	if err := Validate("", ""); err != nil {
		t.Errorf("Validate empty category = %v, want nil", err)
	}

	// Unknown category without icon
	if err := Validate("mainframe", ""); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("Validate(mainframe) = %v, want ErrUnknownCategory", err)
	}

	// Custom icon path bypasses the catalog entirely
	icon := filepath.Join(t.TempDir(), "saga.png")
	if err := os.WriteFile(icon, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Validate("not-a-category", icon); err != nil {
		t.Errorf("Validate with existing icon = %v, want nil", err)
	}

	// Missing icon file
	if err := Validate("compute", filepath.Join(t.TempDir(), "nope.png")); !errors.Is(err, ErrMissingIcon) {
		t.Errorf("Validate missing icon = %v, want ErrMissingIcon", err)
	}
}

func TestFallback(t *testing.T) {
	s := Fallback()
	if s.Shape == "" || s.FillColor == "" {
		t.Errorf("Fallback style incomplete: %+v", s)
	}
}
