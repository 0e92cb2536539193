package provider

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// excluded reports whether the relative slash-path matches any of the
// exclude globs. Matching is case-insensitive; invalid patterns never match.
func excluded(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}

	normalizedPath := strings.ToLower(relPath)

	for _, pattern := range patterns {
		matched, err := doublestar.Match(strings.ToLower(pattern), normalizedPath)
		if err != nil {
			continue
		}

		if matched {
			return true
		}
	}

	return false
}

// ValidateExcludes checks that every exclude glob is syntactically valid.
func ValidateExcludes(patterns []string) error {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return &PatternError{Pattern: pattern}
		}
	}

	return nil
}

// PatternError reports a malformed exclude glob.
type PatternError struct {
	Pattern string
}

func (e *PatternError) Error() string {
	return "invalid exclude pattern: " + e.Pattern
}
