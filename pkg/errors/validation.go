package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// identifierRegex matches valid node/cluster identifiers: word characters,
// dots and dashes, starting with a letter or digit. Identifiers end up as
// DOT node names and as output file stems, so the set is conservative.
var identifierRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateIdentifier validates a node or cluster identifier.
//
// The validation rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters
//   - Maximum length of 128 characters
//   - Word characters, dots and dashes only
func ValidateIdentifier(id string) error {
	if id == "" {
		return New(ErrCodeInvalidID, "identifier cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidID, "identifier too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidID, "identifier contains invalid control characters")
		}
	}

	if !identifierRegex.MatchString(id) {
		return New(ErrCodeInvalidID, "invalid identifier: %q", id)
	}

	return nil
}

// ValidateOutputPath validates a user-supplied output file path.
// It prevents writing through null bytes or control characters and rejects
// unreasonably long paths; directory creation is left to the writer.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	return nil
}

// colorRegex matches #rgb/#rrggbb hex colors.
var colorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateColor validates an edge color: either a hex color or a Graphviz
// color name (lowercase letters only, e.g. "darkgreen"). An empty color is
// valid and renders with the default stroke.
func ValidateColor(color string) error {
	if color == "" {
		return nil
	}
	if colorRegex.MatchString(color) {
		return nil
	}
	if strings.IndexFunc(color, func(r rune) bool { return r < 'a' || r > 'z' }) == -1 {
		return nil
	}
	return New(ErrCodeInvalidInput, "invalid color: %q", color)
}
