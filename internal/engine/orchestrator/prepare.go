package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"go.trai.ch/aospbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

func (r *run) lock(ctx context.Context) (io.Closer, error) {
	var held io.Closer
	err := r.phase(ctx, domain.PhaseLock, func(context.Context) (domain.PhaseStatus, error) {
		c, err := r.Locker.Acquire(domain.LockPath(r.cfg.BuildDir))
		if err != nil {
			return "", err
		}
		held = c
		return domain.PhaseStatusCompleted, nil
	})
	return held, err
}

// clean empties the build directory when requested and makes sure it exists.
// Listing targets reads the existing checkout, so it never cleans.
func (r *run) clean(context.Context) (domain.PhaseStatus, error) {
	dir := r.cfg.BuildDir
	status := domain.PhaseStatusSkipped

	if r.cfg.Clean && r.cfg.ListTargets {
		r.Logger.Warn("clean ignored when listing targets")
	} else if r.cfg.Clean {
		if _, err := os.Stat(dir); err == nil {
			r.Logger.Info("clean build requested, removing " + dir)
			if err := os.RemoveAll(dir); err != nil {
				return "", zerr.With(zerr.Wrap(err, "failed to remove build directory"), "path", dir)
			}
			status = domain.PhaseStatusCompleted
		}
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create build directory"), "path", dir)
	}
	return status, nil
}

// preconditions verifies the host, installs repo and warns about undersized machines.
func (r *run) preconditions(ctx context.Context) (domain.PhaseStatus, error) {
	if goos := r.Host.OS(); goos != domain.SupportedOS {
		return "", zerr.With(zerr.Wrap(domain.ErrUnsupportedOS, "AOSP only builds on "+domain.SupportedOS), "os", goos)
	}

	repoBin, err := r.Installer.EnsureRepo(ctx)
	if err != nil {
		return "", errors.Join(domain.ErrToolInstallFailed, err)
	}
	r.ws.RepoBin = repoBin
	r.ws.ToolDir = filepath.Dir(repoBin)
	r.Logger.Info("using repo at " + repoBin)

	r.report = r.Host.Probe(ctx, r.cfg.BuildDir)
	r.checkCapacity()
	return domain.PhaseStatusCompleted, nil
}

func (r *run) checkCapacity() {
	rep := r.report
	switch {
	case rep.DiskErr != nil:
		r.Logger.Warn(fmt.Sprintf("could not determine free disk space: %v", rep.DiskErr))
	case rep.FreeDiskBytes < domain.MinFreeDiskBytes:
		r.Logger.Warn(fmt.Sprintf("only %s free at %s, at least %s is recommended",
			humanize.IBytes(rep.FreeDiskBytes), r.cfg.BuildDir, humanize.IBytes(domain.MinFreeDiskBytes)))
	}

	switch {
	case rep.MemoryErr != nil:
		r.Logger.Warn(fmt.Sprintf("could not determine installed memory: %v", rep.MemoryErr))
	case rep.MemoryBytes < domain.MinMemoryBytes:
		r.Logger.Warn(fmt.Sprintf("only %s of RAM installed, at least %s is recommended",
			humanize.IBytes(rep.MemoryBytes), humanize.IBytes(domain.MinMemoryBytes)))
	}
}

// environment prepares the compiler cache and checks the python runtime. It never fails the run.
func (r *run) environment(context.Context) (domain.PhaseStatus, error) {
	cc := r.cfg.CCache
	if cc.Enabled {
		if err := os.MkdirAll(cc.Dir, 0o750); err != nil {
			r.Logger.Warn(fmt.Sprintf("failed to create compiler cache directory %s: %v", cc.Dir, err))
		} else {
			r.Logger.Info(fmt.Sprintf("compiler cache at %s (max %s)", cc.Dir, cc.MaxSize))
		}
	}
	if r.cfg.RemoteExecution {
		r.Logger.Info("remote build execution enabled")
	}

	switch rep := r.report; {
	case rep.PythonErr != nil:
		r.Logger.Warn(fmt.Sprintf("could not determine python3 version: %v", rep.PythonErr))
	case rep.PythonMajor < domain.MinPythonMajor:
		r.Logger.Warn(fmt.Sprintf("python3 reports major version %d, repo needs %d or newer", rep.PythonMajor, domain.MinPythonMajor))
	}
	return domain.PhaseStatusCompleted, nil
}

// copyHelper installs the helper script at the root of the build directory.
func (r *run) copyHelper() error {
	src := r.cfg.HelperScript
	//nolint:gosec // path comes from the resolved configuration
	in, err := os.Open(src)
	if errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(domain.ErrHelperScriptMissing, "cannot stage helper script"), "path", src)
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open helper script"), "path", src)
	}
	defer func() { _ = in.Close() }()

	dst := filepath.Join(r.cfg.BuildDir, filepath.Base(src))
	//nolint:gosec // the helper is executed by the build
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o755)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create helper script"), "path", dst)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to copy helper script"), "path", dst)
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to copy helper script"), "path", dst)
	}
	//nolint:gosec // the helper is executed by the build
	return os.Chmod(dst, 0o755)
}
