package lock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/aospbuild/internal/core/ports"
)

// NodeID is the graft node that provides the build directory locker.
const NodeID graft.ID = "adapter.locker"

func init() {
	graft.Register(graft.Node[ports.Locker]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Locker, error) {
			return NewFileLocker(), nil
		},
	})
}
