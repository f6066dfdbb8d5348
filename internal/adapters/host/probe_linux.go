//go:build linux

package host

import (
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

func freeDisk(dir string) (uint64, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(dir, &st); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to stat filesystem"), "path", dir)
	}
	//nolint:gosec // block size is always positive
	return st.Bavail * uint64(st.Bsize), nil
}

func totalMemory() (uint64, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, zerr.Wrap(err, "failed to query system memory")
	}
	//nolint:unconvert // Totalram is 32 bits wide on some architectures
	return uint64(info.Totalram) * uint64(info.Unit), nil
}
