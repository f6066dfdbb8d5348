package metrics

import (
	"time"

	"go.trai.ch/aospbuild/internal/core/domain"
)

// NoOp is a ports.Metrics that records nothing.
type NoOp struct{}

// ObservePhase does nothing.
func (NoOp) ObservePhase(domain.Phase, domain.PhaseStatus, time.Duration) {}

// ObserveSyncAttempt does nothing.
func (NoOp) ObserveSyncAttempt(int, error) {}

// ObserveResult does nothing.
func (NoOp) ObserveResult(domain.PhaseStatus) {}

// Flush does nothing.
func (NoOp) Flush(string) error { return nil }
