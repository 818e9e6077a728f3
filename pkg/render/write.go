package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/cloudgram/cloudgram/pkg/diagram"
)

// RenderFile renders a diagram and writes the image to path atomically.
// The bytes are first written to a uuid-suffixed temp file in the target
// directory and renamed into place only after the write succeeds, so a
// backend or disk failure never leaves a partial output file behind.
func RenderFile(ctx context.Context, d *diagram.Diagram, path string, format Format, opts Options) error {
	dot, err := ToDOT(d, opts)
	if err != nil {
		return err
	}
	data, err := Render(ctx, dot, format)
	if err != nil {
		return err
	}
	return WriteFile(path, data)
}

// WriteFile writes data to path atomically via a temp file and rename.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
