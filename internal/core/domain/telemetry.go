package domain

// Phase names one step of the orchestration sequence.
type Phase string

const (
	PhaseLock          Phase = "lock"
	PhaseClean         Phase = "clean"
	PhasePreconditions Phase = "preconditions"
	PhaseEnvironment   Phase = "environment"
	PhaseInit          Phase = "repo-init"
	PhaseSync          Phase = "repo-sync"
	PhaseLunch         Phase = "lunch"
	PhaseCompile       Phase = "compile"
	PhaseUpload        Phase = "upload"
	PhaseListTargets   Phase = "list-targets"
)

// PhaseStatus represents the lifecycle state of a phase or of a whole run.
type PhaseStatus string

const (
	// PhaseStatusPending indicates the phase has not started.
	PhaseStatusPending PhaseStatus = "pending"
	// PhaseStatusRunning indicates the phase is executing.
	PhaseStatusRunning PhaseStatus = "running"
	// PhaseStatusCompleted indicates the phase finished successfully.
	PhaseStatusCompleted PhaseStatus = "completed"
	// PhaseStatusFailed indicates the phase failed.
	PhaseStatusFailed PhaseStatus = "failed"
	// PhaseStatusCached indicates the phase was not needed because its result already existed.
	PhaseStatusCached PhaseStatus = "cached"
	// PhaseStatusSkipped indicates the phase did not apply to this run.
	PhaseStatusSkipped PhaseStatus = "skipped"
)

// IsTerminal checks if a status is a terminal state (Completed, Failed, Cached, Skipped).
func (s PhaseStatus) IsTerminal() bool {
	switch s {
	case PhaseStatusCompleted, PhaseStatusFailed, PhaseStatusCached, PhaseStatusSkipped:
		return true
	default:
		return false
	}
}

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
