package domain

import "time"

const (
	// SyncAttempts is the total number of sync attempts before giving up.
	SyncAttempts = 3
	// SyncRetryDelay is the pause between two sync attempts.
	SyncRetryDelay = 30 * time.Second
	// SyncJobsCap limits sync parallelism on large hosts to avoid upstream rate limiting.
	SyncJobsCap = 4
	// SyncCapThreshold is the CPU count above which SyncJobsCap applies.
	SyncCapThreshold = 8
)

// ClampSyncJobs resolves the sync parallelism for a host with the given CPU count.
// The result never exceeds cpus, is at most SyncJobsCap on hosts with more than
// SyncCapThreshold CPUs, and is at least 1.
func ClampSyncJobs(requested, cpus int) int {
	jobs := requested
	if cpus > 0 && jobs > cpus {
		jobs = cpus
	}
	if cpus > SyncCapThreshold && jobs > SyncJobsCap {
		jobs = SyncJobsCap
	}
	return max(jobs, 1)
}

// NextSyncJobs halves the parallelism for the following attempt, never below 1.
func NextSyncJobs(jobs int) int {
	return max(jobs/2, 1)
}

// SyncSchedule returns the parallelism used by each attempt, starting at jobs.
func SyncSchedule(jobs, attempts int) []int {
	if attempts <= 0 {
		return nil
	}
	schedule := make([]int, attempts)
	schedule[0] = max(jobs, 1)
	for i := 1; i < attempts; i++ {
		schedule[i] = NextSyncJobs(schedule[i-1])
	}
	return schedule
}
