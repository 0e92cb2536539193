package errors

import "strings"

// PatternMatcher matches error messages to categories using string patterns.
type PatternMatcher interface {
	Match(errorMsg string) ErrorCategory
}

// NewPatternMatcher creates a new PatternMatcher with predefined patterns.
func NewPatternMatcher() PatternMatcher {
	return &patternMatcher{
		patterns: map[ErrorCategory][]string{
			CategoryPattern: {
				"error parsing regexp",
				"invalid filter pattern",
				"invalid exclude pattern",
			},
			CategoryDate: {
				"invalid date",
			},
			CategoryPermission: {
				"permission denied",
				"access denied",
				"operation not permitted",
			},
			CategoryPath: {
				"no such file or directory",
				"file not found",
				"path does not exist",
				"cannot find the path",
				"is not a directory",
			},
			CategoryConnection: {
				"connection refused",
				"connection reset",
				"unable to authenticate",
				"handshake failed",
				"no route to host",
				"failed to connect",
				"i/o timeout",
			},
			CategoryShell: {
				"powershell",
				"shell enumeration failed",
				"executable file not found",
			},
		},
	}
}

// patternMatcher is the concrete implementation of PatternMatcher.
type patternMatcher struct {
	patterns map[ErrorCategory][]string
}

// Match returns the error category based on pattern matching.
// Categories that carry the most specific guidance are checked first, since an
// error message can contain patterns from more than one category.
func (m *patternMatcher) Match(errorMsg string) ErrorCategory {
	lowerMsg := strings.ToLower(errorMsg)

	order := []ErrorCategory{
		CategoryPattern,
		CategoryDate,
		CategoryConnection,
		CategoryShell,
		CategoryPermission,
		CategoryPath,
	}

	for _, category := range order {
		for _, pattern := range m.patterns[category] {
			if strings.Contains(lowerMsg, pattern) {
				return category
			}
		}
	}

	return CategoryUnknown
}
