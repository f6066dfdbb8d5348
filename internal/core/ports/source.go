package ports

import (
	"context"

	"go.trai.ch/aospbuild/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks

// ToolInstaller makes the repo tool available.
type ToolInstaller interface {
	// EnsureRepo locates the repo tool, installing it if needed, and returns its path.
	EnsureRepo(ctx context.Context) (string, error)
}

// SourceTool drives the repo tool against a build directory.
type SourceTool interface {
	// IsInitialized reports whether dir carries the repo tracking marker.
	IsInitialized(dir string) bool
	// TrackedBranch returns the manifest branch dir follows, or "" if it cannot be determined.
	TrackedBranch(dir string) (string, error)
	// Init runs repo init for the workspace's manifest and branch.
	Init(ctx context.Context, ws domain.Workspace) error
	// Sync pulls every project of the manifest with the given parallelism.
	Sync(ctx context.Context, ws domain.Workspace, jobs int) error
}
