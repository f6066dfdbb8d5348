//go:build unix

package state

import (
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

// lockFile blocks until it holds an exclusive flock(2) on path+".lock".
func lockFile(path string) (func() error, error) {
	lockPath := path + ".lock"
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o750); err != nil {
		return nil, zerr.Wrap(err, "failed to create directory for run store")
	}

	//nolint:gosec // path is the configured run store location
	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open run store lock"), "path", lockPath)
	}

	for {
		err = unix.Flock(int(f.Fd()), unix.LOCK_EX)
		if !errors.Is(err, unix.EINTR) {
			break
		}
	}
	if err != nil {
		_ = f.Close()
		return nil, zerr.With(zerr.Wrap(err, "failed to lock run store"), "path", lockPath)
	}

	return func() error {
		unlockErr := unix.Flock(int(f.Fd()), unix.LOCK_UN)
		return errors.Join(unlockErr, f.Close())
	}, nil
}
