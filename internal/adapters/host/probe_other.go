//go:build !linux

package host

import (
	"errors"

	"go.trai.ch/zerr"
)

func freeDisk(dir string) (uint64, error) {
	return 0, zerr.With(zerr.Wrap(errors.ErrUnsupported, "disk probe unavailable"), "path", dir)
}

func totalMemory() (uint64, error) {
	return 0, zerr.Wrap(errors.ErrUnsupported, "memory probe unavailable")
}
