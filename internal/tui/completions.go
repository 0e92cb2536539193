package tui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// dirCompletions returns possible completions for a root path being typed.
// Only directories are offered, since the root of a scan must be one.
// Remote sftp:// roots cannot be completed locally.
func dirCompletions(input string) []string {
	if strings.HasPrefix(input, "sftp://") {
		return nil
	}

	if input == "" {
		input = "."
	}

	// Expand ~ to home directory
	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			input = filepath.Join(home, input[1:])
		}
	}

	// Get the directory and prefix to search
	dir := filepath.Dir(input)
	prefix := filepath.Base(input)

	// If input ends with /, we're completing in that directory
	if strings.HasSuffix(input, string(filepath.Separator)) {
		dir = input
		prefix = ""
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var completions []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		name := entry.Name()

		// Skip hidden directories unless prefix starts with .
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(prefix, ".") {
			continue
		}

		if prefix == "" || strings.HasPrefix(name, prefix) {
			completions = append(completions, filepath.Join(dir, name)+string(filepath.Separator))
		}
	}

	sort.Strings(completions)

	return completions
}
