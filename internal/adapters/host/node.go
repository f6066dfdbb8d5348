package host

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/aospbuild/internal/adapters/shell"
	"go.trai.ch/aospbuild/internal/core/ports"
)

// NodeID is the graft node that provides the host inspector.
const NodeID graft.ID = "adapter.host"

func init() {
	graft.Register(graft.Node[ports.Host]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.Host, error) {
			exec, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return New(exec), nil
		},
	})
}
