package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/aospbuild/internal/core/domain"
)

func TestPhaseStatus(t *testing.T) {
	tests := []struct {
		name       string
		status     domain.PhaseStatus
		isTerminal bool
	}{
		{"Pending", domain.PhaseStatusPending, false},
		{"Running", domain.PhaseStatusRunning, false},
		{"Completed", domain.PhaseStatusCompleted, true},
		{"Failed", domain.PhaseStatusFailed, true},
		{"Cached", domain.PhaseStatusCached, true},
		{"Skipped", domain.PhaseStatusSkipped, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isTerminal, tt.status.IsTerminal())
		})
	}
}

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    domain.LogLevel
		expected string
	}{
		{domain.LogLevelDebug, "DEBUG"},
		{domain.LogLevelInfo, "INFO"},
		{domain.LogLevelWarn, "WARN"},
		{domain.LogLevelError, "ERROR"},
		{domain.LogLevel(999), "INFO"}, // Default case
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}
