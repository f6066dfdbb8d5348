package repo_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/aospbuild/internal/adapters/repo"
	"go.trai.ch/aospbuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const launcher = "#!/bin/sh\necho repo launcher\n"

func notFound(string) (string, error) { return "", exec.ErrNotFound }

func newInstaller(t *testing.T, url string) (*repo.Installer, string) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	home := t.TempDir()
	inst := repo.NewInstaller(log)
	inst.URL = url
	inst.ToolDir = filepath.Join(home, ".cache", "aospbuild", "bin")
	inst.Home = home
	inst.Shell = "/bin/bash"
	inst.LookPath = notFound
	return inst, home
}

func TestEnsureRepo_FoundOnPath(t *testing.T) {
	inst, home := newInstaller(t, "http://127.0.0.1:0/unused")
	inst.LookPath = func(file string) (string, error) {
		assert.Equal(t, "repo", file)
		return "/usr/bin/repo", nil
	}

	path, err := inst.EnsureRepo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/repo", path)
	assert.NoFileExists(t, filepath.Join(home, ".bashrc"))
}

func TestEnsureRepo_Downloads(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(launcher))
	}))
	defer srv.Close()

	inst, home := newInstaller(t, srv.URL)

	path, err := inst.EnsureRepo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(inst.ToolDir, "repo"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, launcher, string(content))

	profile, err := os.ReadFile(filepath.Join(home, ".bashrc"))
	require.NoError(t, err)
	assert.Contains(t, string(profile), repo.ExportLine(inst.ToolDir))

	// A second call reuses the cached launcher and does not duplicate the profile line.
	_, err = inst.EnsureRepo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())

	profile, err = os.ReadFile(filepath.Join(home, ".bashrc"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(profile), repo.ExportLine(inst.ToolDir)))
}

func TestEnsureRepo_PreservesExistingProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(launcher))
	}))
	defer srv.Close()

	inst, home := newInstaller(t, srv.URL)
	inst.Shell = "/usr/bin/zsh"
	require.NoError(t, os.WriteFile(filepath.Join(home, ".zshrc"), []byte("alias ll='ls -l'\n"), 0o600))

	_, err := inst.EnsureRepo(context.Background())
	require.NoError(t, err)

	profile, err := os.ReadFile(filepath.Join(home, ".zshrc"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(profile), "alias ll='ls -l'\n"))
	assert.Contains(t, string(profile), repo.ExportLine(inst.ToolDir))
}

func TestEnsureRepo_DownloadFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	inst, _ := newInstaller(t, srv.URL)

	_, err := inst.EnsureRepo(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected download status")
	assert.NoFileExists(t, filepath.Join(inst.ToolDir, "repo"))
}

func TestEnsureRepo_Cancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(launcher))
	}))
	defer srv.Close()

	inst, _ := newInstaller(t, srv.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := inst.EnsureRepo(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestProfileFor(t *testing.T) {
	tests := []struct {
		shell string
		want  string
	}{
		{"/bin/zsh", ".zshrc"},
		{"/usr/local/bin/bash", ".bashrc"},
		{"/bin/fish", ".profile"},
		{"", ".profile"},
	}
	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			assert.Equal(t, tt.want, repo.ProfileFor(tt.shell))
		})
	}
}
