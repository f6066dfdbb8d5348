package ports

import (
	"context"

	"go.trai.ch/aospbuild/internal/core/domain"
)

// Host exposes the facts about the machine the preconditions depend on.
//
//go:generate go run go.uber.org/mock/mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks
type Host interface {
	// OS returns the operating system family, as in runtime.GOOS.
	OS() string
	// CPUCount returns the number of usable CPUs.
	CPUCount() int
	// Probe measures disk, memory and runtime facts for a build rooted at dir.
	Probe(ctx context.Context, dir string) domain.HostReport
}
