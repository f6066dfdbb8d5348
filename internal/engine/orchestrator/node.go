package orchestrator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/aospbuild/internal/adapters/ci"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/aospbuild/internal/adapters/host"               //nolint:depguard // Wired in engine wiring
	"go.trai.ch/aospbuild/internal/adapters/lock"               //nolint:depguard // Wired in engine wiring
	"go.trai.ch/aospbuild/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/aospbuild/internal/adapters/lunch"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/aospbuild/internal/adapters/metrics"            //nolint:depguard // Wired in engine wiring
	"go.trai.ch/aospbuild/internal/adapters/repo"               //nolint:depguard // Wired in engine wiring
	"go.trai.ch/aospbuild/internal/adapters/state"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/aospbuild/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/aospbuild/internal/core/ports"
)

// NodeID is the unique identifier for the orchestrator Graft node.
const NodeID graft.ID = "engine.orchestrator"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			repo.InstallerNodeID,
			repo.ToolNodeID,
			lunch.NodeID,
			host.NodeID,
			ci.NodeID,
			lock.NodeID,
			progrock.NodeID,
			metrics.NodeID,
			state.NodeID,
		},
		Run: runNode,
	})
}

func runNode(ctx context.Context) (*Orchestrator, error) {
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	installer, err := graft.Dep[ports.ToolInstaller](ctx)
	if err != nil {
		return nil, err
	}

	source, err := graft.Dep[ports.SourceTool](ctx)
	if err != nil {
		return nil, err
	}

	buildEnv, err := graft.Dep[ports.BuildEnvironment](ctx)
	if err != nil {
		return nil, err
	}

	hostInfo, err := graft.Dep[ports.Host](ctx)
	if err != nil {
		return nil, err
	}

	artifacts, err := graft.Dep[ports.ArtifactUploader](ctx)
	if err != nil {
		return nil, err
	}

	locker, err := graft.Dep[ports.Locker](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	recorder, err := graft.Dep[ports.Metrics](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.RunStore](ctx)
	if err != nil {
		return nil, err
	}

	return New(Deps{
		Logger:    log,
		Installer: installer,
		Source:    source,
		BuildEnv:  buildEnv,
		Host:      hostInfo,
		Artifacts: artifacts,
		Locker:    locker,
		Telemetry: telemetry,
		Metrics:   recorder,
		Store:     store,
	}), nil
}
