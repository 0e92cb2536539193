// Package formatters provides display formatting for file metadata.
package formatters

import (
	"time"

	"github.com/dustin/go-humanize"
)

// cellTimeLayout is the timestamp format shown in result tables.
const cellTimeLayout = "2006-01-02 15:04:05"

// FormatBytes formats a byte count as a human-readable size (IEC units).
// Directories report no size.
func FormatBytes(bytes int64, isDir bool) string {
	if isDir {
		return "-"
	}

	return humanize.IBytes(uint64(bytes)) //nolint:gosec // Sizes come from the filesystem and are non-negative
}

// FormatTime formats a timestamp for a table cell. Zero timestamps render as
// a dash, since not every filesystem reports every timestamp.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return t.Format(cellTimeLayout)
}

// FormatRelative formats a timestamp as a humanized distance from now
// ("3 days ago"). Zero timestamps render as a dash.
func FormatRelative(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return humanize.Time(t)
}
