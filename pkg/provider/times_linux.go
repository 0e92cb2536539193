//go:build linux

package provider

import (
	"os"
	"syscall"
	"time"
)

// extraTimes extracts the creation and access timestamps from the platform
// stat data. Linux has no birth time in the stat result, so the inode change
// time stands in for creation time (same best-effort behavior as Python's
// st_ctime).
func extraTimes(info os.FileInfo) (created, accessed time.Time) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, time.Time{}
	}

	created = time.Unix(int64(stat.Ctim.Sec), int64(stat.Ctim.Nsec))
	accessed = time.Unix(int64(stat.Atim.Sec), int64(stat.Atim.Nsec))

	return created, accessed
}
