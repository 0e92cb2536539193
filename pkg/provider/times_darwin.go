//go:build darwin

package provider

import (
	"os"
	"syscall"
	"time"
)

// extraTimes extracts the creation and access timestamps from the platform
// stat data. macOS records a true birth time.
func extraTimes(info os.FileInfo) (created, accessed time.Time) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, time.Time{}
	}

	created = time.Unix(int64(stat.Birthtimespec.Sec), int64(stat.Birthtimespec.Nsec))
	accessed = time.Unix(int64(stat.Atimespec.Sec), int64(stat.Atimespec.Nsec))

	return created, accessed
}
