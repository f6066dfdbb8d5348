package commands

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/aospbuild/internal/core/domain"
)

func TestRunOptions_OnlyChangedFlagsOverride(t *testing.T) {
	base := domain.DefaultBuildConfig("/home/dev", "/home/dev/.cache")
	base.Branch = "android-13.0.0_r1"
	base.SyncJobs = 2
	base.Clean = true

	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, cfg domain.BuildConfig)
	}{
		{
			name: "no flags keep resolved values",
			check: func(t *testing.T, cfg domain.BuildConfig) {
				assert.Equal(t, "android-13.0.0_r1", cfg.Branch)
				assert.Equal(t, 2, cfg.SyncJobs)
				assert.Equal(t, domain.DefaultTarget, cfg.Target)
				assert.True(t, cfg.Clean)
			},
		},
		{
			name: "short flags",
			args: []string{"-b", "android-14.0.0_r2", "-t", "aosp_arm64-eng", "-j", "8", "-r", "-l", "-d", "/srv/aosp"},
			check: func(t *testing.T, cfg domain.BuildConfig) {
				assert.Equal(t, "android-14.0.0_r2", cfg.Branch)
				assert.Equal(t, "aosp_arm64-eng", cfg.Target)
				assert.Equal(t, 8, cfg.SyncJobs)
				assert.True(t, cfg.RemoteExecution)
				assert.True(t, cfg.ListTargets)
				assert.Equal(t, "/srv/aosp", cfg.BuildDir)
			},
		},
		{
			name: "clean from the environment survives an explicit false",
			args: []string{"--clean=false"},
			check: func(t *testing.T, cfg domain.BuildConfig) {
				assert.True(t, cfg.Clean)
			},
		},
		{
			name: "explicit default value still overrides",
			args: []string{"--branch", domain.DefaultBranch},
			check: func(t *testing.T, cfg domain.BuildConfig) {
				assert.Equal(t, domain.DefaultBranch, cfg.Branch)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(nil)
			require.NoError(t, c.rootCmd.ParseFlags(tt.args))

			opts := runOptions(c.rootCmd)
			tt.check(t, base.Apply(opts.Overrides...))
		})
	}
}

func TestRunOptions_ConfigFile(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.rootCmd.ParseFlags([]string{"--config", "ci.yaml"}))

	opts := runOptions(c.rootCmd)
	assert.Equal(t, "ci.yaml", opts.ConfigFile)
	assert.Empty(t, opts.Overrides)
}

func TestExecute_UnknownFlag(t *testing.T) {
	c := New(nil)
	var out bytes.Buffer
	c.SetOutput(&out)
	c.SetArgs([]string{"--frobnicate"})

	err := c.Execute(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidArguments))
	assert.Contains(t, err.Error(), "aospbuild --help")
}

func TestExecute_UnexpectedArgument(t *testing.T) {
	c := New(nil)
	c.SetOutput(&bytes.Buffer{})
	c.SetArgs([]string{"build"})

	require.Error(t, c.Execute(context.Background()))
}

func TestVersionCommand(t *testing.T) {
	c := New(nil)
	var out bytes.Buffer
	c.SetOutput(&out)
	c.SetArgs([]string{"version"})

	require.NoError(t, c.Execute(context.Background()))
	assert.Contains(t, out.String(), "aospbuild version dev")
}

func TestPrintRecord(t *testing.T) {
	finished := time.Now().Add(-2 * time.Hour)
	rec := domain.RunRecord{
		RunID:           "8d6f",
		BuildDir:        "/srv/aosp",
		Branch:          domain.DefaultBranch,
		RequestedTarget: domain.DefaultTarget,
		SelectedTarget:  "aosp_arm64-userdebug",
		SyncAttempts:    2,
		Result:          domain.PhaseStatusFailed,
		FailedPhase:     domain.PhaseCompile,
		StartedAt:       finished.Add(-90 * time.Minute),
		FinishedAt:      finished,
	}

	var out bytes.Buffer
	require.NoError(t, printRecord(&out, rec))

	got := out.String()
	assert.Contains(t, got, "Selected target:")
	assert.Contains(t, got, "aosp_arm64-userdebug")
	assert.Contains(t, got, "Failed phase:")
	assert.Contains(t, got, "compile")
	assert.Contains(t, got, "2 hours ago")
	assert.Contains(t, got, "1h30m0s")
	assert.NotContains(t, got, "Log:")
}
