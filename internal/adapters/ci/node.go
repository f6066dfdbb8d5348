package ci

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/aospbuild/internal/adapters/shell"
	"go.trai.ch/aospbuild/internal/core/ports"
)

// NodeID is the graft node that provides the artifact uploader.
const NodeID graft.ID = "adapter.artifact_uploader"

func init() {
	graft.Register(graft.Node[ports.ArtifactUploader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.ArtifactUploader, error) {
			exec, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewUploader(exec), nil
		},
	})
}
