package orchestrator

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/aospbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// ArchiveName is the file the CI log directory is archived into, inside the log directory.
const ArchiveName = "build-logs.tar.gz"

func (r *run) setupScript() error {
	script, err := r.BuildEnv.SetupScript(r.ws)
	if err != nil {
		return err
	}
	r.ws.SetupScript = script
	return nil
}

// selectTarget picks the requested lunch target or the first viable fallback.
func (r *run) selectTarget(ctx context.Context) (domain.PhaseStatus, error) {
	if err := r.setupScript(); err != nil {
		return "", err
	}

	err := r.BuildEnv.SelectTarget(ctx, r.ws, r.cfg.Target)
	if err == nil {
		r.rec.SelectedTarget = r.cfg.Target
		return domain.PhaseStatusCompleted, nil
	}

	r.Logger.Warn(fmt.Sprintf("target %s is not available: %v", r.cfg.Target, err))
	r.logListingPreview(ctx)

	selected, err := domain.FirstViable(r.cfg.FallbackTargets, func(target string) error {
		r.Logger.Info("trying fallback target " + target)
		return r.BuildEnv.SelectTarget(ctx, r.ws, target)
	})
	if err != nil {
		return "", err
	}

	r.Logger.Warn(fmt.Sprintf("building fallback target %s instead of %s", selected, r.cfg.Target))
	r.rec.SelectedTarget = selected
	return domain.PhaseStatusCompleted, nil
}

// logListingPreview logs the head of the target listing to help diagnose a rejected target.
func (r *run) logListingPreview(ctx context.Context) {
	var buf bytes.Buffer
	if err := r.BuildEnv.ListTargets(ctx, r.ws, &buf); err != nil {
		r.Logger.Warn(fmt.Sprintf("could not list available targets: %v", err))
		return
	}

	r.Logger.Info("available targets:")
	scanner := bufio.NewScanner(&buf)
	for n := 0; n < domain.TargetListingPreviewLines && scanner.Scan(); n++ {
		r.Logger.Info(scanner.Text())
	}
}

// listTargets writes the full target listing of an initialized tree.
func (r *run) listTargets(ctx context.Context) (domain.PhaseStatus, error) {
	if !r.Source.IsInitialized(r.cfg.BuildDir) {
		return "", zerr.With(zerr.Wrap(domain.ErrNotInitialized, "cannot list targets"), "path", r.cfg.BuildDir)
	}
	if err := r.setupScript(); err != nil {
		return "", err
	}
	if err := r.BuildEnv.ListTargets(ctx, r.ws, r.ws.Output); err != nil {
		return "", err
	}
	return domain.PhaseStatusCompleted, nil
}

// compile builds the selected target with one job per CPU.
func (r *run) compile(ctx context.Context) (domain.PhaseStatus, error) {
	target := r.rec.SelectedTarget
	jobs := domain.CompileJobs(r.Host.CPUCount())
	r.Logger.Info(fmt.Sprintf("building %s with -j%d", target, jobs))

	if err := r.BuildEnv.Compile(ctx, r.ws, target, jobs); err != nil {
		r.Logger.Error(err)
		return "", err
	}

	r.Logger.Info("build succeeded, products are in " + filepath.Join(r.cfg.BuildDir, domain.ProductOutSubdir))
	return domain.PhaseStatusCompleted, nil
}

// upload hands the build logs to the CI agent. Failures are only reported.
func (r *run) upload(ctx context.Context) (domain.PhaseStatus, error) {
	ci := r.cfg.CI
	if !ci.Enabled {
		return domain.PhaseStatusSkipped, nil
	}

	var artifacts []string
	src := filepath.Join(r.cfg.BuildDir, ci.LogSubdir)
	archive := filepath.Join(r.cfg.LogDir, ArchiveName)
	if err := r.Artifacts.Archive(ctx, src, archive); err != nil {
		r.Logger.Warn(fmt.Sprintf("failed to archive build logs: %v", err))
	} else {
		artifacts = append(artifacts, archive)
	}
	if r.req.LogPath != "" {
		artifacts = append(artifacts, r.req.LogPath)
	}

	failed := false
	for _, path := range artifacts {
		r.Logger.Info("uploading " + path)
		if err := r.Artifacts.Upload(ctx, ci, path); err != nil {
			r.Logger.Warn(fmt.Sprintf("failed to upload %s: %v", path, err))
			failed = true
		}
	}
	if failed {
		return domain.PhaseStatusFailed, nil
	}
	return domain.PhaseStatusCompleted, nil
}
