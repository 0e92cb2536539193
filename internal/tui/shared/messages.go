package shared

import (
	"github.com/joe/filter-files/internal/filterengine"
)

// ============================================================================
// Scan Messages
// These messages report scan lifecycle events to the browsing screen
// ============================================================================

// ScanStartedMsg is sent when a scan begins
type ScanStartedMsg struct {
	Root string
}

// ScanCompleteMsg is sent when a scan finishes with its captured records
type ScanCompleteMsg struct {
	Result *filterengine.ScanResult
}

// ScanFailedMsg is sent when every enumeration mechanism failed
type ScanFailedMsg struct {
	Root string
	Err  error
}

// ErrorMsg is sent when an error occurs outside the scan lifecycle
type ErrorMsg struct {
	Err error
}
