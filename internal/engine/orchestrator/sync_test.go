package orchestrator_test

import (
	"context"
	"errors"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/aospbuild/internal/core/domain"
	"go.trai.ch/aospbuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func (f *fixture) expectFreshInit() {
	f.expectHost()
	f.source.EXPECT().IsInitialized(f.cfg.BuildDir).Return(false)
	f.source.EXPECT().Init(gomock.Any(), gomock.Any()).Return(nil)
}

func TestRun_SyncExhaustsRetries(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.expectFreshInit()

		var jobs []int
		var at []time.Duration
		start := time.Now()
		f.source.EXPECT().Sync(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.Workspace, j int) error {
				jobs = append(jobs, j)
				at = append(at, time.Since(start))
				return errors.New("fetch timed out")
			}).Times(domain.SyncAttempts)

		rec, err := f.run(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrSyncExhausted))
		assert.Contains(t, err.Error(), "fetch timed out")

		assert.Equal(t, []int{4, 2, 1}, jobs)
		assert.Equal(t, []time.Duration{0, domain.SyncRetryDelay, 2 * domain.SyncRetryDelay}, at)
		assert.Equal(t, 2*domain.SyncRetryDelay, time.Since(start))
		assert.Equal(t, domain.SyncAttempts, rec.SyncAttempts)
		assert.Equal(t, domain.PhaseSync, rec.FailedPhase)
	})
}

func TestRun_SyncRecoversOnRetry(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.expectFreshInit()
		start := time.Now()

		gomock.InOrder(
			f.source.EXPECT().Sync(gomock.Any(), gomock.Any(), 4).Return(errors.New("connection reset")),
			f.source.EXPECT().Sync(gomock.Any(), gomock.Any(), 2).Return(nil),
		)
		f.expectLunch(domain.DefaultTarget)
		f.env.EXPECT().Compile(gomock.Any(), gomock.Any(), domain.DefaultTarget, hostCPUs).Return(nil)

		rec, err := f.run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, rec.SyncAttempts)
		assert.Equal(t, domain.SyncRetryDelay, time.Since(start))
	})
}

func TestRun_SyncJobsFollowHost(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		cpus      int
		want      []int
	}{
		{name: "large host is capped", requested: 16, cpus: 32, want: []int{4, 2, 1}},
		{name: "small host limits request", requested: 8, cpus: 2, want: []int{2, 1, 1}},
		{name: "single job stays at one", requested: 1, cpus: 8, want: []int{1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			synctest.Test(t, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				f := newFixture(t)
				f.cfg.SyncJobs = tt.requested
				host := mocks.NewMockHost(ctrl)
				host.EXPECT().OS().Return(domain.SupportedOS)
				host.EXPECT().Probe(gomock.Any(), gomock.Any()).Return(healthyReport())
				host.EXPECT().CPUCount().Return(tt.cpus).AnyTimes()
				f.host = host
				f.installer.EXPECT().EnsureRepo(gomock.Any()).Return(repoBin, nil)
				f.source.EXPECT().IsInitialized(gomock.Any()).Return(false)
				f.source.EXPECT().Init(gomock.Any(), gomock.Any()).Return(nil)

				var jobs []int
				f.source.EXPECT().Sync(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ domain.Workspace, j int) error {
						jobs = append(jobs, j)
						return errors.New("flaky mirror")
					}).Times(domain.SyncAttempts)

				_, err := f.run(context.Background())
				require.True(t, errors.Is(err, domain.ErrSyncExhausted))
				assert.Equal(t, tt.want, jobs)
			})
		})
	}
}

func TestRun_CancelDuringRetryDelay(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.expectFreshInit()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		start := time.Now()

		f.source.EXPECT().Sync(gomock.Any(), gomock.Any(), 4).DoAndReturn(
			func(context.Context, domain.Workspace, int) error {
				time.AfterFunc(10*time.Second, cancel)
				return errors.New("interrupted")
			})

		rec, err := f.run(ctx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
		assert.False(t, errors.Is(err, domain.ErrSyncExhausted))
		assert.Equal(t, 10*time.Second, time.Since(start))
		assert.Equal(t, 1, rec.SyncAttempts)
	})
}
