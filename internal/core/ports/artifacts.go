package ports

import (
	"context"

	"go.trai.ch/aospbuild/internal/core/domain"
)

// ArtifactUploader publishes diagnostics to the CI agent.
//
//go:generate go run go.uber.org/mock/mockgen -source=artifacts.go -destination=mocks/mock_artifacts.go -package=mocks
type ArtifactUploader interface {
	// Archive packs the directory src into a compressed tarball at dst.
	Archive(ctx context.Context, src, dst string) error
	// Upload hands the file at path to the CI agent.
	Upload(ctx context.Context, ci domain.CIConfig, path string) error
}
