package topology

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/cloudgram/cloudgram/pkg/errors"
	"github.com/cloudgram/cloudgram/pkg/render"
)

// Read decodes a TOML topology from r.
// Decoding is strict about structure but does not validate references;
// that happens in [Spec.Build].
func Read(r io.Reader) (*Spec, error) {
	var s Spec
	if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTopology, err, "decode topology")
	}
	if s.Format != "" && !render.ValidFormat(s.Format) {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, dot)", s.Format)
	}
	return &s, nil
}

// Load reads a topology file at path.
func Load(path string) (*Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return Read(f)
}

// Marshal encodes a topology spec back to TOML. Round-tripping a loaded
// spec through Marshal and [Read] produces an equivalent topology.
func Marshal(s *Spec, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(s); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode topology")
	}
	return nil
}
