package ports

import "go.trai.ch/aospbuild/internal/core/domain"

// RunStore defines the interface for storing and retrieving run records.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RunStore interface {
	// Get retrieves the last run record for a build directory.
	// Returns nil, nil if not found.
	Get(buildDir string) (*domain.RunRecord, error)

	// Put stores the run record, replacing the previous one for its build directory.
	Put(record domain.RunRecord) error
}
