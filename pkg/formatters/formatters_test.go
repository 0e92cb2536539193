package formatters_test

import (
	"strings"
	"testing"
	"time"

	"github.com/joe/filter-files/pkg/formatters"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		isDir    bool
		expected string
	}{
		{"zero bytes", 0, false, "0 B"},
		{"small file", 512, false, "512 B"},
		{"one kibibyte", 1024, false, "1.0 KiB"},
		{"one mebibyte", 1024 * 1024, false, "1.0 MiB"},
		{"directory has no size", 4096, true, "-"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := formatters.FormatBytes(tt.bytes, tt.isDir); got != tt.expected {
				t.Errorf("FormatBytes(%d, %v) = %q, want %q", tt.bytes, tt.isDir, got, tt.expected)
			}
		})
	}
}

func TestFormatTime(t *testing.T) {
	t.Parallel()

	stamp := time.Date(2022, time.March, 15, 9, 30, 45, 0, time.Local)
	if got := formatters.FormatTime(stamp); got != "2022-03-15 09:30:45" {
		t.Errorf("FormatTime() = %q, want %q", got, "2022-03-15 09:30:45")
	}

	if got := formatters.FormatTime(time.Time{}); got != "-" {
		t.Errorf("FormatTime(zero) = %q, want %q", got, "-")
	}
}

func TestFormatRelative(t *testing.T) {
	t.Parallel()

	if got := formatters.FormatRelative(time.Time{}); got != "-" {
		t.Errorf("FormatRelative(zero) = %q, want %q", got, "-")
	}

	got := formatters.FormatRelative(time.Now().Add(-48 * time.Hour))
	if !strings.Contains(got, "ago") {
		t.Errorf("FormatRelative(past) = %q, want a relative phrase", got)
	}
}
