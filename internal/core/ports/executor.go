// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/aospbuild/internal/core/domain"
)

// Executor defines the interface for running external tools.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command and waits for it to exit.
	//
	// The command's Env is merged over the process environment, with PATH
	// entries prepended to the inherited PATH.
	//
	// It returns an error carrying the exit code if the command fails.
	Execute(ctx context.Context, cmd *domain.Command) error
}
