package state_test

import (
	"os"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/aospbuild/internal/adapters/state"
	"go.trai.ch/aospbuild/internal/core/domain"
)

func sampleRecord(buildDir string) domain.RunRecord {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return domain.RunRecord{
		RunID:           "run-1",
		BuildDir:        buildDir,
		Branch:          "android-14.0.0_r1",
		RequestedTarget: "aosp_cf_x86_64_phone-userdebug",
		SelectedTarget:  "aosp_arm64-userdebug",
		SyncAttempts:    2,
		Result:          domain.PhaseStatusCompleted,
		StartedAt:       start,
		FinishedAt:      start.Add(90 * time.Minute),
	}
}

func TestStore_PutAndGet(t *testing.T) {
	store, err := state.NewStore(filepath.Join(t.TempDir(), "runs.json"))
	require.NoError(t, err)

	record := sampleRecord("/srv/aosp")
	require.NoError(t, store.Put(record))

	got, err := store.Get("/srv/aosp")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, record, *got)
}

func TestStore_GetMissing(t *testing.T) {
	store, err := state.NewStore(filepath.Join(t.TempDir(), "runs.json"))
	require.NoError(t, err)

	got, err := store.Get("/nowhere")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_KeyIsCleaned(t *testing.T) {
	store, err := state.NewStore(filepath.Join(t.TempDir(), "runs.json"))
	require.NoError(t, err)

	require.NoError(t, store.Put(sampleRecord("/srv/aosp/")))

	got, err := store.Get("/srv/./aosp")
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "runs.json")

	store1, err := state.NewStore(path)
	require.NoError(t, err)
	record := sampleRecord("/srv/aosp")
	require.NoError(t, store1.Put(record))

	store2, err := state.NewStore(path)
	require.NoError(t, err)
	got, err := store2.Get("/srv/aosp")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, record.SelectedTarget, got.SelectedTarget)
	assert.True(t, record.StartedAt.Equal(got.StartedAt))
	assert.Equal(t, 90*time.Minute, got.Duration())
}

func TestStore_PutReplaces(t *testing.T) {
	store, err := state.NewStore(filepath.Join(t.TempDir(), "runs.json"))
	require.NoError(t, err)

	first := sampleRecord("/srv/aosp")
	second := first
	second.RunID = "run-2"
	second.Result = domain.PhaseStatusFailed
	second.FailedPhase = domain.PhaseSync

	require.NoError(t, store.Put(first))
	require.NoError(t, store.Put(second))

	got, err := store.Get("/srv/aosp")
	require.NoError(t, err)
	assert.Equal(t, "run-2", got.RunID)
	assert.Equal(t, domain.PhaseSync, got.FailedPhase)
}

func TestStore_StoresSharingAFileKeepEachOthersRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.json")

	first, err := state.NewStore(path)
	require.NoError(t, err)
	second, err := state.NewStore(path)
	require.NoError(t, err)

	require.NoError(t, first.Put(sampleRecord("/work/one")))
	require.NoError(t, second.Put(sampleRecord("/work/two")))

	fresh, err := state.NewStore(path)
	require.NoError(t, err)
	for _, dir := range []string{"/work/one", "/work/two"} {
		got, err := fresh.Get(dir)
		require.NoError(t, err)
		require.NotNil(t, got, dir)
		assert.Equal(t, dir, got.BuildDir)
	}

	got, err := second.Get("/work/one")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestStore_ConcurrentPuts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.json")

	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := range writers {
		store, err := state.NewStore(path)
		require.NoError(t, err)
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- store.Put(sampleRecord(fmt.Sprintf("/work/%d", i)))
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	fresh, err := state.NewStore(path)
	require.NoError(t, err)
	for i := range writers {
		got, err := fresh.Get(fmt.Sprintf("/work/%d", i))
		require.NoError(t, err)
		assert.NotNil(t, got)
	}
}

func TestStore_RejectsUnfinishedRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.json")
	store, err := state.NewStore(path)
	require.NoError(t, err)

	record := sampleRecord("/srv/aosp")
	record.Result = domain.PhaseStatusRunning
	require.Error(t, store.Put(record))
	assert.NoFileExists(t, path)

	got, err := store.Get("/srv/aosp")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, err := state.NewStore(path)
	require.NoError(t, err)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := state.NewStore(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal run store")
}
