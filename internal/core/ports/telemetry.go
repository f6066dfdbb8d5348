package ports

import (
	"context"
	"io"
	"time"

	"go.trai.ch/aospbuild/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the phases of a run.
type Telemetry interface {
	// Record starts a vertex for a unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents a single unit of work in the telemetry stream.
type Vertex interface {
	// Stdout returns a writer for the standard output of the work.
	Stdout() io.Writer
	// Stderr returns a writer for the error output of the work.
	Stderr() io.Writer
	// Log records a message associated with this vertex.
	Log(level domain.LogLevel, msg string)
	// Complete marks the vertex as finished, successfully or with an error.
	Complete(err error)
	// Cached marks the vertex as already satisfied.
	Cached()
}

// Metrics collects numeric facts about a run.
type Metrics interface {
	// ObservePhase records the outcome and duration of a phase.
	ObservePhase(phase domain.Phase, status domain.PhaseStatus, d time.Duration)
	// ObserveSyncAttempt records one sync attempt with its parallelism.
	ObserveSyncAttempt(jobs int, err error)
	// ObserveResult records the outcome of the whole run.
	ObserveResult(status domain.PhaseStatus)
	// Flush writes the collected metrics to path.
	Flush(path string) error
}

type vertexKey struct{}

// ContextWithVertex returns a copy of ctx carrying v.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex stored in ctx, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexKey{}).(Vertex)
	return v, ok
}
