// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/aospbuild/internal/adapters/ci"
	_ "go.trai.ch/aospbuild/internal/adapters/config"
	_ "go.trai.ch/aospbuild/internal/adapters/host"
	_ "go.trai.ch/aospbuild/internal/adapters/lock"
	_ "go.trai.ch/aospbuild/internal/adapters/logger"
	_ "go.trai.ch/aospbuild/internal/adapters/lunch"
	_ "go.trai.ch/aospbuild/internal/adapters/metrics"
	_ "go.trai.ch/aospbuild/internal/adapters/repo"
	_ "go.trai.ch/aospbuild/internal/adapters/shell"
	_ "go.trai.ch/aospbuild/internal/adapters/state"
	_ "go.trai.ch/aospbuild/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/aospbuild/internal/app"
	_ "go.trai.ch/aospbuild/internal/engine/orchestrator"
)
