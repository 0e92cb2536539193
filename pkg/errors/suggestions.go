package errors

import "fmt"

// SuggestionGenerator generates actionable suggestions based on error category.
type SuggestionGenerator interface {
	Generate(category ErrorCategory, affectedPath string) []string
}

// NewSuggestionGenerator creates a new SuggestionGenerator.
func NewSuggestionGenerator() SuggestionGenerator {
	return &suggestionGenerator{}
}

// suggestionGenerator is the concrete implementation of SuggestionGenerator.
type suggestionGenerator struct{}

// Generate returns actionable suggestions based on the error category and affected path.
func (g *suggestionGenerator) Generate(category ErrorCategory, affectedPath string) []string {
	switch category {
	case CategoryPattern:
		return g.generatePatternSuggestions()
	case CategoryDate:
		return g.generateDateSuggestions()
	case CategoryPermission:
		return g.generatePermissionSuggestions(affectedPath)
	case CategoryPath:
		return g.generatePathSuggestions(affectedPath)
	case CategoryConnection:
		return g.generateConnectionSuggestions()
	case CategoryShell:
		return g.generateShellSuggestions()
	case CategoryUnknown:
		return g.generateUnknownSuggestions(affectedPath)
	default:
		return g.generateUnknownSuggestions(affectedPath)
	}
}

func (g *suggestionGenerator) generatePatternSuggestions() []string {
	return []string{
		"Check the filter pattern for unbalanced brackets or parentheses",
		"Escape literal regex characters like '.' and '(' with a backslash",
		"Matching is case-insensitive, so letter case never needs special handling",
		"Leave the pattern empty to match every name",
	}
}

func (g *suggestionGenerator) generateDateSuggestions() []string {
	return []string{
		"Enter dates as YYYY-MM-DD, for example 2022-03-15",
		"Leave a date field empty to keep that bound open",
		"Both bounds are inclusive of the whole calendar day",
	}
}

func (g *suggestionGenerator) generateConnectionSuggestions() []string {
	return []string{
		"Verify the host and port in the sftp:// URL are reachable",
		"Check that your SSH key is loaded ('ssh-add -l') or present in ~/.ssh",
		"Try connecting manually with 'ssh user@host' to confirm credentials",
	}
}

func (g *suggestionGenerator) generateShellSuggestions() []string {
	return []string{
		"Check that PowerShell is installed and on the PATH",
		"Use '--provider walk' to scan without the shell call",
		"Shell enumeration is only expected on Windows hosts",
	}
}

func (g *suggestionGenerator) generatePathSuggestions(path string) []string {
	suggestions := []string{
		"Verify the root path exists and is spelled correctly",
	}

	if path != "" {
		suggestions = append(suggestions, "Check if the path exists: "+path)
		suggestions = append(suggestions, "Ensure the path names a directory, not a file")
	} else {
		suggestions = append(suggestions, "Ensure the path names a directory, not a file")
	}

	return suggestions
}

func (g *suggestionGenerator) generatePermissionSuggestions(path string) []string {
	suggestions := []string{
		"Ensure you have read permission for the directory tree",
	}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("Check permissions with 'ls -la %s'", path))
	} else {
		suggestions = append(suggestions, "Check permissions with 'ls -la' on the affected path")
	}

	suggestions = append(suggestions, "Try running with appropriate permissions or as a privileged user")

	return suggestions
}

func (g *suggestionGenerator) generateUnknownSuggestions(path string) []string {
	suggestions := []string{
		"Check the error message for more details",
		"Verify file and directory permissions",
		"Run with '--log' to capture scan diagnostics",
	}

	if path != "" {
		suggestions = append(suggestions, "Verify the path is accessible: "+path)
	}

	return suggestions
}
