package state

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/aospbuild/internal/core/ports"
)

// NodeID is the graft node that provides the run store.
const NodeID graft.ID = "adapter.run_store"

func init() {
	graft.Register(graft.Node[ports.RunStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RunStore, error) {
			return NewStore(DefaultPath())
		},
	})
}
