package lunch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/aospbuild/internal/adapters/shell"
	"go.trai.ch/aospbuild/internal/core/ports"
)

// NodeID is the graft node that provides the build environment.
const NodeID graft.ID = "adapter.build_environment"

func init() {
	graft.Register(graft.Node[ports.BuildEnvironment]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.BuildEnvironment, error) {
			exec, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewEnvironment(exec), nil
		},
	})
}
