package label

import (
	"fmt"
	"strings"
)

// DefaultColor is the color the tracker assigns when a label is created
// without one. Created labels with no declared color are tracked under this
// value so later diffs in the same run see what the store will report.
const DefaultColor = "ededed"

// NormalizeColor converts a color to canonical form: lowercase, six hex
// digits, no leading '#'. Three-digit shorthand is expanded by doubling each
// digit (f00 -> ff0000). The empty string passes through unchanged, keeping
// "no color declared" distinct from any explicit color.
//
// This is the permissive diff-path variant: it does not verify the input is
// hex. Manifest input goes through ParseColor first, and remote colors are
// canonical already.
func NormalizeColor(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(strings.TrimPrefix(s, "#"))
	if len(s) == 3 {
		var b strings.Builder
		b.Grow(6)
		for _, r := range s {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		return b.String()
	}
	return s
}

// ParseColor is the strict variant used when a manifest is authored. It
// normalizes like NormalizeColor but rejects anything that is not a 3- or
// 6-digit hex string (optionally prefixed with '#').
func ParseColor(s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("color must not be empty")
	}
	trimmed := strings.ToLower(strings.TrimPrefix(s, "#"))
	if len(trimmed) != 3 && len(trimmed) != 6 {
		return "", fmt.Errorf("invalid color %q: must be 3 or 6 hex digits", s)
	}
	for _, r := range trimmed {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return "", fmt.Errorf("invalid color %q: %q is not a hex digit", s, r)
		}
	}
	return NormalizeColor(trimmed), nil
}

// ColorsEqual compares a remote color against a desired canonical color.
// An empty desired color means no constraint was declared, which never
// counts as a difference.
func ColorsEqual(remote, desiredCanonical string) bool {
	if desiredCanonical == "" {
		return true
	}
	return strings.ToLower(remote) == desiredCanonical
}
