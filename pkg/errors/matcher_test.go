package errors_test

import (
	"testing"

	"github.com/joe/filter-files/pkg/errors"
)

func TestPatternMatcher_CaseInsensitive(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		errorMsg string
		expected errors.ErrorCategory
	}{
		{
			name:     "uppercase permission denied",
			errorMsg: "PERMISSION DENIED",
			expected: errors.CategoryPermission,
		},
		{
			name:     "mixed case connection refused",
			errorMsg: "Connection Refused by remote host",
			expected: errors.CategoryConnection,
		},
	}

	matcher := errors.NewPatternMatcher()

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			category := matcher.Match(testCase.errorMsg)
			if category != testCase.expected {
				t.Errorf("expected category %q, got %q for error: %q",
					testCase.expected, category, testCase.errorMsg)
			}
		})
	}
}

func TestPatternMatcher_MatchPatternErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		errorMsg string
		expected errors.ErrorCategory
	}{
		{
			name:     "regexp parse failure",
			errorMsg: "error parsing regexp: missing closing ]: `[`",
			expected: errors.CategoryPattern,
		},
		{
			name:     "wrapped filter pattern error",
			errorMsg: "invalid filter pattern: error parsing regexp: missing argument to repetition operator",
			expected: errors.CategoryPattern,
		},
		{
			name:     "exclude glob error",
			errorMsg: "invalid exclude pattern \"[bad\": syntax error in pattern",
			expected: errors.CategoryPattern,
		},
	}

	matcher := errors.NewPatternMatcher()

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			category := matcher.Match(testCase.errorMsg)
			if category != testCase.expected {
				t.Errorf("expected category %q, got %q for error: %q",
					testCase.expected, category, testCase.errorMsg)
			}
		})
	}
}

func TestPatternMatcher_MatchDateErrors(t *testing.T) {
	t.Parallel()

	matcher := errors.NewPatternMatcher()

	category := matcher.Match(`created from: invalid date "01/02/2022" (expected YYYY-MM-DD)`)
	if category != errors.CategoryDate {
		t.Errorf("expected category %q, got %q", errors.CategoryDate, category)
	}
}

func TestPatternMatcher_MatchConnectionErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		errorMsg string
		expected errors.ErrorCategory
	}{
		{
			name:     "connection refused",
			errorMsg: "dial tcp 10.0.0.5:22: connection refused",
			expected: errors.CategoryConnection,
		},
		{
			name:     "auth failure",
			errorMsg: "ssh: unable to authenticate, attempted methods [none publickey]",
			expected: errors.CategoryConnection,
		},
		{
			name:     "handshake failure",
			errorMsg: "ssh: handshake failed: EOF",
			expected: errors.CategoryConnection,
		},
		{
			name:     "connect wrapper",
			errorMsg: "failed to connect to joe@host:22: i/o timeout",
			expected: errors.CategoryConnection,
		},
	}

	matcher := errors.NewPatternMatcher()

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			category := matcher.Match(testCase.errorMsg)
			if category != testCase.expected {
				t.Errorf("expected category %q, got %q for error: %q",
					testCase.expected, category, testCase.errorMsg)
			}
		})
	}
}

func TestPatternMatcher_MatchShellErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		errorMsg string
		expected errors.ErrorCategory
	}{
		{
			name:     "powershell missing",
			errorMsg: "powershell is not available on this system",
			expected: errors.CategoryShell,
		},
		{
			name:     "exec lookup failure",
			errorMsg: `exec: "pwsh": executable file not found in $PATH`,
			expected: errors.CategoryShell,
		},
	}

	matcher := errors.NewPatternMatcher()

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			category := matcher.Match(testCase.errorMsg)
			if category != testCase.expected {
				t.Errorf("expected category %q, got %q for error: %q",
					testCase.expected, category, testCase.errorMsg)
			}
		})
	}
}

func TestPatternMatcher_MatchPathErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		errorMsg string
		expected errors.ErrorCategory
	}{
		{
			name:     "no such file or directory",
			errorMsg: "no such file or directory: /path/to/file.txt",
			expected: errors.CategoryPath,
		},
		{
			name:     "file not found",
			errorMsg: "file not found",
			expected: errors.CategoryPath,
		},
		{
			name:     "root validation failure",
			errorMsg: "root path does not exist: /missing",
			expected: errors.CategoryPath,
		},
		{
			name:     "root is a file",
			errorMsg: "root path is not a directory: /etc/hosts",
			expected: errors.CategoryPath,
		},
	}

	matcher := errors.NewPatternMatcher()

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			category := matcher.Match(testCase.errorMsg)
			if category != testCase.expected {
				t.Errorf("expected category %q, got %q for error: %q",
					testCase.expected, category, testCase.errorMsg)
			}
		})
	}
}

func TestPatternMatcher_MatchPermissionErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		errorMsg string
		expected errors.ErrorCategory
	}{
		{
			name:     "permission denied",
			errorMsg: "permission denied",
			expected: errors.CategoryPermission,
		},
		{
			name:     "access denied",
			errorMsg: "access denied to /path/file.txt",
			expected: errors.CategoryPermission,
		},
		{
			name:     "operation not permitted",
			errorMsg: "operation not permitted",
			expected: errors.CategoryPermission,
		},
	}

	matcher := errors.NewPatternMatcher()

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			category := matcher.Match(testCase.errorMsg)
			if category != testCase.expected {
				t.Errorf("expected category %q, got %q for error: %q",
					testCase.expected, category, testCase.errorMsg)
			}
		})
	}
}

func TestPatternMatcher_SpecificCategoryWinsOverlap(t *testing.T) {
	t.Parallel()

	matcher := errors.NewPatternMatcher()

	// A connection failure that also mentions a timeout should read as a
	// connection problem, not an unknown one
	category := matcher.Match("failed to connect to joe@host:22: ssh: handshake failed: read tcp: i/o timeout")
	if category != errors.CategoryConnection {
		t.Errorf("expected category %q, got %q", errors.CategoryConnection, category)
	}
}

func TestPatternMatcher_UnknownErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		errorMsg string
	}{
		{
			name:     "random error message",
			errorMsg: "something completely unexpected happened",
		},
		{
			name:     "generic error",
			errorMsg: "an error occurred",
		},
	}

	matcher := errors.NewPatternMatcher()

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			category := matcher.Match(testCase.errorMsg)
			if category != errors.CategoryUnknown {
				t.Errorf("expected category %q, got %q for error: %q",
					errors.CategoryUnknown, category, testCase.errorMsg)
			}
		})
	}
}
