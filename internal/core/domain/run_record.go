package domain

import "time"

// RunRecord describes the outcome of one invocation against a build directory.
type RunRecord struct {
	RunID           string      `json:"run_id,omitzero"`
	BuildDir        string      `json:"build_dir,omitzero"`
	Branch          string      `json:"branch,omitzero"`
	RequestedTarget string      `json:"requested_target,omitzero"`
	SelectedTarget  string      `json:"selected_target,omitzero"`
	Fingerprint     string      `json:"fingerprint,omitzero"`
	SyncAttempts    int         `json:"sync_attempts,omitzero"`
	Result          PhaseStatus `json:"result,omitzero"`
	FailedPhase     Phase       `json:"failed_phase,omitzero"`
	LogPath         string      `json:"log_path,omitzero"`
	StartedAt       time.Time   `json:"started_at,omitzero"`
	FinishedAt      time.Time   `json:"finished_at,omitzero"`
}

// Duration returns how long the run took, or zero if it has not finished.
func (r RunRecord) Duration() time.Duration {
	if r.FinishedAt.IsZero() || r.StartedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
