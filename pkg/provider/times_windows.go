//go:build windows

package provider

import (
	"os"
	"syscall"
	"time"
)

// extraTimes extracts the creation and access timestamps from the platform
// stat data.
func extraTimes(info os.FileInfo) (created, accessed time.Time) {
	attrs, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return time.Time{}, time.Time{}
	}

	created = time.Unix(0, attrs.CreationTime.Nanoseconds())
	accessed = time.Unix(0, attrs.LastAccessTime.Nanoseconds())

	return created, accessed
}
