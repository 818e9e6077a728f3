package render

import (
	"bytes"
	"fmt"
	"os/exec"
)

// ToPDF converts SVG bytes to PDF by shelling out to rsvg-convert.
// librsvg must be installed (brew install librsvg / apt install librsvg2-bin).
func ToPDF(svg []byte) ([]byte, error) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, fmt.Errorf("%w: pdf export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", ErrRenderBackend)
	}

	var out, stderr bytes.Buffer
	cmd := exec.Command("rsvg-convert", "-f", "pdf")
	cmd.Stdin = bytes.NewReader(svg)
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: rsvg-convert: %v: %s", ErrRenderBackend, err, stderr.String())
	}
	return out.Bytes(), nil
}
