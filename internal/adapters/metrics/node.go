package metrics

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/aospbuild/internal/core/ports"
)

// NodeID is the graft node that provides the run metrics.
const NodeID graft.ID = "adapter.metrics"

func init() {
	graft.Register(graft.Node[ports.Metrics]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Metrics, error) {
			return NewRecorder(), nil
		},
	})
}
