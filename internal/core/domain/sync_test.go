package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/aospbuild/internal/core/domain"
)

func TestClampSyncJobs(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		cpus      int
		expected  int
	}{
		{"below cpu count", 2, 4, 2},
		{"limited by cpu count", 8, 4, 4},
		{"exactly eight cpus is not capped", 8, 8, 8},
		{"large host caps above four", 16, 32, 4},
		{"large host keeps small request", 3, 32, 3},
		{"large host keeps four", 4, 16, 4},
		{"nine cpus caps", 9, 9, 4},
		{"zero request becomes one", 0, 4, 1},
		{"negative request becomes one", -3, 4, 1},
		{"unknown cpu count keeps request", 6, 0, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.ClampSyncJobs(tt.requested, tt.cpus))
		})
	}
}

func TestClampSyncJobs_Property(t *testing.T) {
	for cpus := 1; cpus <= 64; cpus++ {
		for jobs := 1; jobs <= 64; jobs++ {
			want := min(jobs, cpus)
			if cpus > domain.SyncCapThreshold && jobs > domain.SyncJobsCap {
				want = domain.SyncJobsCap
			}
			if got := domain.ClampSyncJobs(jobs, cpus); got != want {
				t.Fatalf("ClampSyncJobs(%d, %d) = %d, want %d", jobs, cpus, got, want)
			}
		}
	}
}

func TestNextSyncJobs(t *testing.T) {
	assert.Equal(t, 4, domain.NextSyncJobs(8))
	assert.Equal(t, 1, domain.NextSyncJobs(3))
	assert.Equal(t, 1, domain.NextSyncJobs(1))
	assert.Equal(t, 1, domain.NextSyncJobs(0))
}

func TestSyncSchedule(t *testing.T) {
	tests := []struct {
		jobs     int
		expected []int
	}{
		{8, []int{8, 4, 2}},
		{4, []int{4, 2, 1}},
		{3, []int{3, 1, 1}},
		{1, []int{1, 1, 1}},
		{0, []int{1, 1, 1}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, domain.SyncSchedule(tt.jobs, domain.SyncAttempts))
	}

	assert.Nil(t, domain.SyncSchedule(4, 0))
}
