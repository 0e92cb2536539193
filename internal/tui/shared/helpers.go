package shared

import (
	"fmt"
	"time"
)

// ============================================================================
// Formatting Functions
// These are used by multiple views for consistent display
// ============================================================================

// FormatCount renders the filter status line: how many records the current
// filter keeps out of the full scan.
func FormatCount(shown, total int) string {
	return fmt.Sprintf("Results: %d of %d", shown, total)
}

// FormatDuration formats duration into human-readable format (e.g., "2m 30s")
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)
	hours := duration / time.Hour
	duration %= time.Hour
	minutes := duration / time.Minute
	duration %= time.Minute
	seconds := duration / time.Second

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	} else if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	return fmt.Sprintf("%ds", seconds)
}

// TruncatePath shortens a path from the left so its tail stays visible.
func TruncatePath(path string, width int) string {
	if width <= 0 || len(path) <= width {
		return path
	}

	const ellipsis = "..."
	if width <= len(ellipsis) {
		return path[len(path)-width:]
	}

	return ellipsis + path[len(path)-(width-len(ellipsis)):]
}
