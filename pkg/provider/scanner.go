// Package provider enumerates filesystem entries and captures per-entry
// timestamp and size metadata. It supports local directory walks, native
// PowerShell enumeration on Windows, and remote directories over SFTP.
package provider

import (
	"time"
)

// Scanner is an iterator over the entries under a scan root.
// It provides a simple Next pattern for traversing the collected records.
type Scanner interface {
	// Next advances to the next record and returns it.
	// Returns (Record{}, false) when done or on error.
	// Check Err() after Next() returns false to distinguish between end-of-scan and error.
	Next() (Record, bool)

	// Err returns any error that occurred during scanning.
	// Should be checked after Next() returns false.
	Err() error
}

// Record is one filesystem entry's captured metadata snapshot.
// Timestamps are best-effort: their exact meaning is source-dependent
// (notably "creation time"), and a zero value means the source could not
// supply that timestamp.
type Record struct {
	// FullPath is the absolute path of the entry. Unique within one scan.
	FullPath string

	// Created is the creation (or inode change) time
	Created time.Time

	// Modified is the last modification time
	Modified time.Time

	// Accessed is the last access time
	Accessed time.Time

	// Size is the size in bytes. Only meaningful for files.
	Size int64

	// IsDir indicates if this entry is a directory
	IsDir bool
}

// Name returns the final path component of the record.
func (r Record) Name() string {
	return baseName(r.FullPath)
}

// baseName returns the last path component, treating both slash styles as
// separators so remote (always slash) and Windows paths behave the same.
func baseName(path string) string {
	end := len(path)
	// Ignore a single trailing separator
	for end > 0 && (path[end-1] == '/' || path[end-1] == '\\') {
		end--
	}

	start := end
	for start > 0 && path[start-1] != '/' && path[start-1] != '\\' {
		start--
	}

	return path[start:end]
}
