package errors

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// ValidatePattern validates an index glob pattern before it is evaluated.
//
// Patterns are resolved relative to the index root, so:
//   - No empty patterns
//   - No control characters
//   - No absolute paths
//   - No path traversal sequences (..)
//   - Must be well-formed glob syntax
func ValidatePattern(pattern string) error {
	if pattern == "" {
		return New(ErrCodeDiscovery, "index pattern cannot be empty")
	}

	for _, r := range pattern {
		if unicode.IsControl(r) {
			return New(ErrCodeDiscovery, "index pattern contains invalid control characters")
		}
	}

	if strings.HasPrefix(pattern, "/") {
		return New(ErrCodeDiscovery, "index pattern must be relative to the index root: %q", pattern)
	}

	for _, part := range strings.Split(pattern, "/") {
		if part == ".." {
			return New(ErrCodeDiscovery, "index pattern cannot contain path traversal sequences (..)")
		}
	}

	if _, err := filepath.Match(pattern, ""); err != nil {
		return Wrap(ErrCodeDiscovery, err, "malformed index pattern %q", pattern)
	}

	return nil
}

// namespaceRegex matches namespaces that are safe to use as a name prefix.
var namespaceRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ValidateNamespace validates the namespace that normalized names are placed in.
func ValidateNamespace(ns string) error {
	if ns == "" {
		return New(ErrCodeInvalidConfig, "namespace cannot be empty")
	}

	if !namespaceRegex.MatchString(ns) {
		return New(ErrCodeInvalidConfig, "invalid namespace: %q", ns)
	}

	return nil
}
