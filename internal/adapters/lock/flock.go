//go:build unix

// Package lock guards build directories against concurrent runs.
package lock

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/aospbuild/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

// FileLocker implements ports.Locker with advisory flock(2) locks.
type FileLocker struct{}

// NewFileLocker creates a new FileLocker.
func NewFileLocker() *FileLocker {
	return &FileLocker{}
}

// Acquire takes an exclusive lock on path without blocking.
// A lock held elsewhere fails with domain.ErrBuildDirLocked.
func (l *FileLocker) Acquire(path string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create lock directory"), "path", path)
	}

	//nolint:gosec // path is derived from the configured build directory
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open lock file"), "path", path)
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		_ = f.Close()
		if errors.Is(err, unix.EWOULDBLOCK) {
			return nil, zerr.With(zerr.Wrap(domain.ErrBuildDirLocked, "lock held"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to lock build directory"), "path", path)
	}

	return &held{file: f}, nil
}

type held struct {
	file *os.File
}

// Close releases the lock. The lock file itself is left in place.
func (h *held) Close() error {
	if h.file == nil {
		return nil
	}
	f := h.file
	h.file = nil
	unlockErr := unix.Flock(int(f.Fd()), unix.LOCK_UN)
	return errors.Join(unlockErr, f.Close())
}
