package errors

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// deckNameRegex matches catalog deck names: lowercase words joined by dashes.
var deckNameRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidateDeckName validates a deck name used to look up a builder in the catalog.
// Names double as file stems and URL path segments, so the rules are strict:
//   - No empty names
//   - Maximum length of 64 characters
//   - Lowercase ASCII letters, digits and single dashes only
func ValidateDeckName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "deck name cannot be empty")
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidInput, "deck name too long (max 64 characters)")
	}
	if !deckNameRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid deck name: %q", name)
	}
	return nil
}

// ValidateOutputPath validates the path an artifact is written to.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - The parent directory must not be traversed with ".." after cleaning
//     when the path is relative
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if !filepath.IsAbs(path) {
		clean := filepath.ToSlash(filepath.Clean(path))
		if clean == ".." || strings.HasPrefix(clean, "../") {
			return New(ErrCodeInvalidPath, "path cannot escape the working directory: %q", path)
		}
	}

	return nil
}

// ValidateCacheURL validates a remote cache URL.
// Only redis:// and rediss:// (TLS) schemes are accepted.
func ValidateCacheURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "cache URL cannot be empty")
	}
	if !strings.HasPrefix(rawURL, "redis://") && !strings.HasPrefix(rawURL, "rediss://") {
		return New(ErrCodeInvalidInput, "cache URL must use redis or rediss scheme")
	}
	return nil
}
