package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/aospbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// trackedBranch returns the branch the checkout follows, falling back to the
// branch recorded by the previous run when the manifest cannot be read.
func (r *run) trackedBranch() string {
	dir := r.cfg.BuildDir
	branch, err := r.Source.TrackedBranch(dir)
	if err != nil {
		r.Logger.Warn(fmt.Sprintf("could not read tracked branch: %v", err))
	}
	if branch != "" {
		return branch
	}

	prev, err := r.Store.Get(dir)
	if err != nil {
		r.Logger.Warn(fmt.Sprintf("could not read previous run: %v", err))
		return ""
	}
	if prev != nil {
		return prev.Branch
	}
	return ""
}

// init runs repo init when the checkout is missing or tracks another branch.
func (r *run) init(ctx context.Context) (domain.PhaseStatus, error) {
	initialized := r.Source.IsInitialized(r.cfg.BuildDir)
	tracked := ""
	if initialized {
		tracked = r.trackedBranch()
	}

	action := domain.PlanFetch(initialized, tracked, r.cfg.Branch)
	if !action.NeedsInit() {
		r.Logger.Info("checkout already tracks " + r.cfg.Branch + ", skipping init")
		return domain.PhaseStatusCached, nil
	}

	if action == domain.FetchReinit {
		from := tracked
		if from == "" {
			from = "an unknown branch"
		}
		r.Logger.Info(fmt.Sprintf("switching checkout from %s to %s", from, r.cfg.Branch))
	} else {
		r.Logger.Info(fmt.Sprintf("initializing %s from %s", r.cfg.Branch, r.cfg.ManifestURL))
	}

	if err := r.Source.Init(ctx, r.ws); err != nil {
		return "", errors.Join(domain.ErrInitFailed, err)
	}
	return domain.PhaseStatusCompleted, nil
}

// sync stages the helper script and pulls the tree, halving parallelism after
// every failed attempt.
func (r *run) sync(ctx context.Context) (domain.PhaseStatus, error) {
	if err := r.copyHelper(); err != nil {
		return "", err
	}

	jobs := domain.ClampSyncJobs(r.cfg.SyncJobs, r.Host.CPUCount())
	schedule := domain.SyncSchedule(jobs, domain.SyncAttempts)

	var lastErr error
	for i, j := range schedule {
		if i > 0 {
			r.Logger.Info(fmt.Sprintf("retrying sync in %s with -j%d", domain.SyncRetryDelay, j))
			if err := r.sleep(ctx, domain.SyncRetryDelay); err != nil {
				return "", zerr.Wrap(err, "sync retry interrupted")
			}
		}

		r.rec.SyncAttempts = i + 1
		r.Logger.Info(fmt.Sprintf("syncing sources (attempt %d of %d, -j%d)", i+1, len(schedule), j))
		err := r.Source.Sync(ctx, r.ws, j)
		r.Metrics.ObserveSyncAttempt(j, err)
		if err == nil {
			return domain.PhaseStatusCompleted, nil
		}
		r.Logger.Warn(fmt.Sprintf("sync attempt %d failed: %v", i+1, err))
		lastErr = err
	}

	return "", errors.Join(domain.ErrSyncExhausted, zerr.With(lastErr, "attempts", len(schedule)))
}
