package repo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/aospbuild/internal/adapters/logger"
	"go.trai.ch/aospbuild/internal/adapters/shell"
	"go.trai.ch/aospbuild/internal/core/ports"
)

const (
	// InstallerNodeID is the graft node that provides the repo installer.
	InstallerNodeID graft.ID = "adapter.repo_installer"
	// ToolNodeID is the graft node that provides the repo source tool.
	ToolNodeID graft.ID = "adapter.repo_tool"
)

func init() {
	graft.Register(graft.Node[ports.ToolInstaller]{
		ID:        InstallerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ToolInstaller, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewInstaller(log), nil
		},
	})

	graft.Register(graft.Node[ports.SourceTool]{
		ID:        ToolNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.SourceTool, error) {
			exec, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewTool(exec), nil
		},
	})
}
