package ci_test

import (
	"archive/tar"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/aospbuild/internal/adapters/ci"
	"go.trai.ch/aospbuild/internal/core/domain"
	"go.trai.ch/aospbuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func readArchive(t *testing.T, path string) map[string]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	gz, err := gzip.NewReader(f)
	require.NoError(t, err)
	tr := tar.NewReader(gz)

	entries := map[string]string{}
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(tr)
		require.NoError(t, err)
		entries[hdr.Name] = string(data)
	}
	return entries
}

func TestArchive(t *testing.T) {
	buildDir := t.TempDir()
	logs := filepath.Join(buildDir, "out", "logs")
	require.NoError(t, os.MkdirAll(filepath.Join(logs, "soong"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(logs, "verbose.log"), []byte("ninja: build stopped"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(logs, "soong", "soong.log"), []byte("soong"), 0o600))

	dst := filepath.Join(t.TempDir(), "logs", "build-logs.tar.gz")
	require.NoError(t, ci.NewUploader(nil).Archive(context.Background(), logs, dst))

	entries := readArchive(t, dst)
	assert.Equal(t, "ninja: build stopped", entries["logs/verbose.log"])
	assert.Equal(t, "soong", entries["logs/soong/soong.log"])
	assert.Contains(t, entries, "logs/")
	assert.Contains(t, entries, "logs/soong/")
}

func TestArchive_MissingSource(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "build-logs.tar.gz")

	err := ci.NewUploader(nil).Archive(context.Background(), filepath.Join(t.TempDir(), "out", "logs"), dst)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.NoFileExists(t, dst)
}

func TestArchive_Cancelled(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.log"), []byte("a"), 0o600))
	dst := filepath.Join(t.TempDir(), "build-logs.tar.gz")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ci.NewUploader(nil).Archive(ctx, src, dst)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.NoFileExists(t, dst)
}

func TestUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockExecutor(ctrl)

	exec.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cmd *domain.Command) error {
		assert.Equal(t, "buildkite-agent", cmd.Name)
		assert.Equal(t, []string{"artifact", "upload", "/work/logs/build.log"}, cmd.Args)
		assert.Equal(t, "/work/logs", cmd.Dir)
		return nil
	})

	cfg := domain.CIConfig{Enabled: true, Agent: "buildkite-agent"}
	require.NoError(t, ci.NewUploader(exec).Upload(context.Background(), cfg, "/work/logs/build.log"))
}

func TestUpload_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockExecutor(ctrl)
	exec.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(errors.New("agent not found"))

	err := ci.NewUploader(exec).Upload(context.Background(), domain.CIConfig{Agent: "buildkite-agent"}, "/work/build.log")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "artifact upload failed")
}
