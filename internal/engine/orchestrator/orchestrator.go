// Package orchestrator sequences the phases of an AOSP build run.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.trai.ch/aospbuild/internal/core/domain"
	"go.trai.ch/aospbuild/internal/core/ports"
)

// Deps are the collaborators of an Orchestrator.
type Deps struct {
	Logger    ports.Logger
	Installer ports.ToolInstaller
	Source    ports.SourceTool
	BuildEnv  ports.BuildEnvironment
	Host      ports.Host
	Artifacts ports.ArtifactUploader
	Locker    ports.Locker
	Telemetry ports.Telemetry
	Metrics   ports.Metrics
	Store     ports.RunStore
}

// Orchestrator drives a build directory from an empty or stale state to a compiled tree.
type Orchestrator struct {
	Deps

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates an Orchestrator.
func New(deps Deps) *Orchestrator {
	return &Orchestrator{
		Deps:  deps,
		now:   time.Now,
		sleep: sleepContext,
	}
}

// Request describes a single run.
type Request struct {
	Config domain.BuildConfig
	// RunID identifies the run in the stored record.
	RunID string
	// LogPath is the run's log file, uploaded as an artifact on CI.
	LogPath string
	// Output receives compiler output and the target listing. Nil means stdout.
	Output io.Writer
}

// run holds the state shared by the phases of one Run call.
type run struct {
	*Orchestrator

	cfg    domain.BuildConfig
	ws     domain.Workspace
	req    Request
	rec    *domain.RunRecord
	report domain.HostReport
}

// Run executes every phase in order and returns the record of the run.
// A compilation failure still lets the upload phase run; the returned error then
// wraps domain.ErrBuildFailed. Every other failure stops the run immediately.
func (o *Orchestrator) Run(ctx context.Context, req Request) (domain.RunRecord, error) {
	cfg := req.Config
	output := req.Output
	if output == nil {
		output = os.Stdout
	}

	rec := domain.RunRecord{
		RunID:           req.RunID,
		BuildDir:        cfg.BuildDir,
		Branch:          cfg.Branch,
		RequestedTarget: cfg.Target,
		Fingerprint:     cfg.Fingerprint(),
		LogPath:         req.LogPath,
		StartedAt:       o.now(),
	}
	r := &run{
		Orchestrator: o,
		cfg:          cfg,
		ws:           domain.Workspace{Config: cfg, Output: output},
		req:          req,
		rec:          &rec,
	}

	err := r.execute(ctx)
	r.finish(err)
	return rec, err
}

// step is one phase of the sequence.
type step struct {
	phase domain.Phase
	run   func(context.Context) (domain.PhaseStatus, error)
}

func (r *run) execute(ctx context.Context) error {
	unlock, err := r.lock(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := unlock.Close(); cerr != nil {
			r.Logger.Warn(fmt.Sprintf("failed to release build directory lock: %v", cerr))
		}
	}()

	err = r.sequence(ctx,
		step{domain.PhaseClean, r.clean},
		step{domain.PhasePreconditions, r.preconditions},
		step{domain.PhaseEnvironment, r.environment},
	)
	if err != nil {
		return err
	}

	if r.cfg.ListTargets {
		return r.phase(ctx, domain.PhaseListTargets, r.listTargets)
	}

	err = r.sequence(ctx,
		step{domain.PhaseInit, r.init},
		step{domain.PhaseSync, r.sync},
		step{domain.PhaseLunch, r.selectTarget},
	)
	if err != nil {
		return err
	}

	buildErr := r.phase(ctx, domain.PhaseCompile, r.compile)
	_ = r.phase(ctx, domain.PhaseUpload, r.upload)
	if buildErr != nil {
		return errors.Join(domain.ErrBuildFailed, buildErr)
	}
	return nil
}

// sequence runs steps in order and stops at the first failure.
func (r *run) sequence(ctx context.Context, steps ...step) error {
	for _, s := range steps {
		if err := r.phase(ctx, s.phase, s.run); err != nil {
			return err
		}
	}
	return nil
}

// phase runs fn as a telemetry vertex and records its outcome.
func (r *run) phase(ctx context.Context, p domain.Phase, fn func(context.Context) (domain.PhaseStatus, error)) error {
	start := r.now()
	pctx, vertex := r.Telemetry.Record(ctx, string(p))

	status, err := fn(pctx)
	switch {
	case err != nil:
		status = domain.PhaseStatusFailed
		r.rec.FailedPhase = p
		vertex.Log(domain.LogLevelError, err.Error())
		vertex.Complete(err)
	case status == domain.PhaseStatusCached:
		vertex.Cached()
		vertex.Complete(nil)
	default:
		vertex.Complete(nil)
	}

	r.Metrics.ObservePhase(p, status, r.now().Sub(start))
	return err
}

func (r *run) finish(err error) {
	r.rec.FinishedAt = r.now()
	r.rec.Result = domain.PhaseStatusCompleted
	if err != nil {
		r.rec.Result = domain.PhaseStatusFailed
	}
	r.Metrics.ObserveResult(r.rec.Result)

	// A failed lock belongs to another run; its record must stay intact.
	if errors.Is(err, domain.ErrBuildDirLocked) || r.cfg.ListTargets {
		return
	}
	if perr := r.Store.Put(*r.rec); perr != nil {
		r.Logger.Warn(fmt.Sprintf("failed to record run: %v", perr))
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
