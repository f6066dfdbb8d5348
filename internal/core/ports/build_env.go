package ports

import (
	"context"
	"io"

	"go.trai.ch/aospbuild/internal/core/domain"
)

// BuildEnvironment drives the envsetup/lunch/m tooling of a synced tree.
//
//go:generate go run go.uber.org/mock/mockgen -source=build_env.go -destination=mocks/mock_build_env.go -package=mocks
type BuildEnvironment interface {
	// SetupScript returns the environment setup script for the workspace, relative to the build directory.
	SetupScript(ws domain.Workspace) (string, error)
	// SelectTarget checks that lunch accepts target.
	SelectTarget(ctx context.Context, ws domain.Workspace, target string) error
	// ListTargets writes the available lunch targets to w.
	ListTargets(ctx context.Context, ws domain.Workspace, w io.Writer) error
	// Compile builds target with the given parallelism, streaming output to the workspace output.
	Compile(ctx context.Context, ws domain.Workspace, target string, jobs int) error
}
