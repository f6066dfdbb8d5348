package ports

import "io"

// Locker guards a build directory against concurrent runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=lock.go -destination=mocks/mock_lock.go -package=mocks
type Locker interface {
	// Acquire takes the advisory lock at path without blocking. Closing the result releases it.
	Acquire(path string) (io.Closer, error)
}
