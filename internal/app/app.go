// Package app implements the application layer for aospbuild.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/aospbuild/internal/core/domain"
	"go.trai.ch/aospbuild/internal/core/ports"
	"go.trai.ch/aospbuild/internal/engine/orchestrator"
	"go.trai.ch/zerr"
)

const (
	// MetricsFile is the Prometheus textfile written into the log directory after every run.
	MetricsFile = "aospbuild.prom"
	// logTimeLayout names the per-run log file.
	logTimeLayout = "20060102_150405"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	orchestrator *orchestrator.Orchestrator
	store        ports.RunStore
	metrics      ports.Metrics
	telemetry    ports.Telemetry

	stdout io.Writer
	stderr io.Writer
	now    func() time.Time
	getwd  func() (string, error)
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	logger ports.Logger,
	orch *orchestrator.Orchestrator,
	store ports.RunStore,
	metrics ports.Metrics,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		logger:       logger,
		orchestrator: orch,
		store:        store,
		metrics:      metrics,
		telemetry:    telemetry,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		now:          time.Now,
		getwd:        os.Getwd,
	}
}

// WithOutput replaces the console streams. Tests use it to silence the run.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithWorkingDir pins the directory configuration is resolved against.
func (a *App) WithWorkingDir(dir string) *App {
	a.getwd = func() (string, error) { return dir, nil }
	return a
}

// RunOptions controls a single invocation.
type RunOptions struct {
	// ConfigFile is the configuration file; empty selects the default file name.
	ConfigFile string
	// Overrides are applied last, on top of the file and the environment.
	Overrides []domain.ConfigOverride
}

// Run resolves the configuration and drives one build.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	cfg, err := a.resolve(opts)
	if err != nil {
		return err
	}

	sink, logPath, err := openLogSink(cfg.LogDir, a.now())
	if err != nil {
		return err
	}
	defer func() { _ = sink.Close() }()

	a.logger.SetOutput(io.MultiWriter(a.stderr, sink))
	defer a.logger.SetOutput(a.stderr)
	a.logger.Info("logging to " + logPath)

	rec, runErr := a.orchestrator.Run(ctx, orchestrator.Request{
		Config:  cfg,
		RunID:   uuid.NewString(),
		LogPath: logPath,
		Output:  io.MultiWriter(a.stdout, sink),
	})

	if err := a.metrics.Flush(filepath.Join(cfg.LogDir, MetricsFile)); err != nil {
		a.logger.Warn(fmt.Sprintf("failed to write metrics: %v", err))
	}
	if err := a.telemetry.Close(); err != nil {
		a.logger.Warn(fmt.Sprintf("failed to close telemetry: %v", err))
	}

	if runErr != nil {
		err := zerr.With(zerr.Wrap(runErr, "run failed"), "log", logPath)
		a.logger.Error(err)
		return reportedError{err}
	}
	if !cfg.ListTargets {
		a.logger.Info(fmt.Sprintf("run finished in %s", rec.Duration().Round(time.Second)))
	}
	return nil
}

// reportedError is a run failure that has already been written to the log.
type reportedError struct{ error }

func (e reportedError) Unwrap() error { return e.error }

// Reported reports whether err was already logged by Run.
func Reported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}

// Status returns the last recorded run for the configured build directory.
func (a *App) Status(_ context.Context, opts RunOptions) (domain.RunRecord, error) {
	cfg, err := a.resolve(opts)
	if err != nil {
		return domain.RunRecord{}, err
	}

	rec, err := a.store.Get(cfg.BuildDir)
	if err != nil {
		return domain.RunRecord{}, zerr.Wrap(err, "failed to read run state")
	}
	if rec == nil {
		return domain.RunRecord{}, zerr.With(zerr.Wrap(domain.ErrNoRunRecorded, "status unavailable"), "path", cfg.BuildDir)
	}
	return *rec, nil
}

func (a *App) resolve(opts RunOptions) (domain.BuildConfig, error) {
	cwd, err := a.getwd()
	if err != nil {
		return domain.BuildConfig{}, zerr.Wrap(err, "failed to get working directory")
	}

	cfg, err := a.configLoader.Load(cwd, opts.ConfigFile)
	if err != nil {
		return domain.BuildConfig{}, zerr.Wrap(err, "failed to load configuration")
	}

	cfg = cfg.Apply(opts.Overrides...)
	if !filepath.IsAbs(cfg.BuildDir) {
		cfg.BuildDir = filepath.Join(cwd, cfg.BuildDir)
	}
	cfg.BuildDir = filepath.Clean(cfg.BuildDir)
	return cfg, nil
}

// openLogSink creates the append-only log file of a run started at t.
func openLogSink(dir string, t time.Time) (*os.File, string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, "", zerr.With(zerr.Wrap(err, "failed to create log directory"), "path", dir)
	}

	path := filepath.Join(dir, "build_"+t.Format(logTimeLayout)+".log")
	//nolint:gosec // path is built from the configured log directory
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, "", zerr.With(zerr.Wrap(err, "failed to open log file"), "path", path)
	}
	return f, path, nil
}
