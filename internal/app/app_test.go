package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/aospbuild/internal/adapters/logger"
	"go.trai.ch/aospbuild/internal/adapters/metrics"
	"go.trai.ch/aospbuild/internal/adapters/telemetry"
	"go.trai.ch/aospbuild/internal/app"
	"go.trai.ch/aospbuild/internal/core/domain"
	"go.trai.ch/aospbuild/internal/core/ports/mocks"
	"go.trai.ch/aospbuild/internal/engine/orchestrator"
	"go.uber.org/mock/gomock"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

type harness struct {
	cwd    string
	cfg    domain.BuildConfig
	loader *mocks.MockConfigLoader
	host   *mocks.MockHost
	inst   *mocks.MockToolInstaller
	source *mocks.MockSourceTool
	env    *mocks.MockBuildEnvironment
	store  *mocks.MockRunStore
	stdout bytes.Buffer
	app    *app.App
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	cwd := t.TempDir()

	h := &harness{
		cwd:    cwd,
		loader: mocks.NewMockConfigLoader(ctrl),
		host:   mocks.NewMockHost(ctrl),
		inst:   mocks.NewMockToolInstaller(ctrl),
		source: mocks.NewMockSourceTool(ctrl),
		env:    mocks.NewMockBuildEnvironment(ctrl),
		store:  mocks.NewMockRunStore(ctrl),
	}
	h.cfg = domain.DefaultBuildConfig(cwd, filepath.Join(cwd, "cache"))
	h.cfg.LogDir = filepath.Join(cwd, "logs")

	locker := mocks.NewMockLocker(ctrl)
	locker.EXPECT().Acquire(gomock.Any()).Return(nopCloser{}, nil).AnyTimes()
	h.host.EXPECT().CPUCount().Return(8).AnyTimes()

	log := logger.New()
	recorder := metrics.NewRecorder()
	tel := telemetry.NewNoOp()
	orch := orchestrator.New(orchestrator.Deps{
		Logger:    log,
		Installer: h.inst,
		Source:    h.source,
		BuildEnv:  h.env,
		Host:      h.host,
		Artifacts: mocks.NewMockArtifactUploader(ctrl),
		Locker:    locker,
		Telemetry: tel,
		Metrics:   recorder,
		Store:     h.store,
	})

	h.app = app.New(h.loader, log, orch, h.store, recorder, tel).
		WithOutput(&h.stdout, io.Discard).
		WithWorkingDir(cwd)
	return h
}

func (h *harness) logFile(t *testing.T) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(h.cfg.LogDir, "build_*.log"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	return string(data)
}

func TestApp_Run_FailureIsLoggedAndRecorded(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load(h.cwd, "custom.yaml").Return(h.cfg, nil)
	h.host.EXPECT().OS().Return("darwin")

	var saved domain.RunRecord
	h.store.EXPECT().Put(gomock.Any()).DoAndReturn(func(r domain.RunRecord) error {
		saved = r
		return nil
	})

	err := h.app.Run(context.Background(), app.RunOptions{
		ConfigFile: "custom.yaml",
		Overrides: []domain.ConfigOverride{
			domain.WithBuildDir("work/aosp"),
			domain.WithTarget("aosp_arm64-eng"),
		},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedOS))
	assert.True(t, app.Reported(err))

	assert.Equal(t, filepath.Join(h.cwd, "work", "aosp"), saved.BuildDir)
	assert.Equal(t, "aosp_arm64-eng", saved.RequestedTarget)
	assert.Equal(t, domain.PhaseStatusFailed, saved.Result)
	assert.NotEmpty(t, saved.RunID)
	assert.Contains(t, saved.LogPath, filepath.Join(h.cfg.LogDir, "build_"))

	log := h.logFile(t)
	assert.Contains(t, log, "logging to")
	assert.Contains(t, log, "run failed")
	assert.Contains(t, log, "unsupported operating system")

	prom, err := os.ReadFile(filepath.Join(h.cfg.LogDir, app.MetricsFile))
	require.NoError(t, err)
	assert.Contains(t, string(prom), "aospbuild_run_result")
}

func TestApp_Run_ListTargetsTeesOutput(t *testing.T) {
	h := newHarness(t)
	h.cfg.ListTargets = true
	h.loader.EXPECT().Load(h.cwd, "").Return(h.cfg, nil)
	h.host.EXPECT().OS().Return(domain.SupportedOS)
	h.inst.EXPECT().EnsureRepo(gomock.Any()).Return("/usr/bin/repo", nil)
	h.host.EXPECT().Probe(gomock.Any(), gomock.Any()).Return(domain.HostReport{
		FreeDiskBytes: 500 << 30,
		MemoryBytes:   64 << 30,
		PythonMajor:   3,
	})
	h.source.EXPECT().IsInitialized(h.cfg.BuildDir).Return(true)
	h.env.EXPECT().SetupScript(gomock.Any()).Return("build/envsetup.sh", nil)
	h.env.EXPECT().ListTargets(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Workspace, w io.Writer) error {
			_, err := io.WriteString(w, "1. aosp_cf_x86_64_phone-userdebug\n")
			return err
		})

	err := h.app.Run(context.Background(), app.RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, "1. aosp_cf_x86_64_phone-userdebug\n", h.stdout.String())
	assert.Contains(t, h.logFile(t), "aosp_cf_x86_64_phone-userdebug")
}

func TestApp_Run_ConfigError(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load(h.cwd, "broken.yaml").Return(domain.BuildConfig{}, errors.New("yaml: line 3"))

	err := h.app.Run(context.Background(), app.RunOptions{ConfigFile: "broken.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
	assert.NoDirExists(t, h.cfg.LogDir)
}

func TestApp_Status(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load(h.cwd, "").Return(h.cfg, nil).Times(2)

	want := domain.RunRecord{
		RunID:      "run-7",
		BuildDir:   h.cfg.BuildDir,
		Result:     domain.PhaseStatusCompleted,
		StartedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		FinishedAt: time.Date(2026, 1, 2, 5, 4, 5, 0, time.UTC),
	}
	gomock.InOrder(
		h.store.EXPECT().Get(h.cfg.BuildDir).Return(&want, nil),
		h.store.EXPECT().Get(h.cfg.BuildDir).Return(nil, nil),
	)

	got, err := h.app.Status(context.Background(), app.RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = h.app.Status(context.Background(), app.RunOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoRunRecorded))
}
