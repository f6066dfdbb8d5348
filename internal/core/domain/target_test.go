package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/aospbuild/internal/core/domain"
)

func TestFirstViable_FirstSuccessWins(t *testing.T) {
	var tried []string
	selected, err := domain.FirstViable(domain.DefaultFallbackTargets, func(target string) error {
		tried = append(tried, target)
		if target == "aosp_arm64-user" || target == "aosp_x86_64-user" {
			return nil
		}
		return errors.New("rejected")
	})

	require.NoError(t, err)
	assert.Equal(t, "aosp_arm64-user", selected)
	assert.Equal(t, []string{"aosp_arm64-userdebug", "aosp_arm64-user"}, tried)
}

func TestFirstViable_AllRejected(t *testing.T) {
	var tried []string
	cause := errors.New("no such product")
	selected, err := domain.FirstViable(domain.DefaultFallbackTargets, func(target string) error {
		tried = append(tried, target)
		return cause
	})

	require.Error(t, err)
	assert.Empty(t, selected)
	assert.ErrorIs(t, err, domain.ErrNoViableTarget)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, []string{
		"aosp_arm64-userdebug",
		"aosp_arm64-user",
		"aosp_x86_64-userdebug",
		"aosp_x86_64-user",
	}, tried)
}

func TestFirstViable_NoCandidates(t *testing.T) {
	_, err := domain.FirstViable(nil, func(string) error { return nil })
	assert.ErrorIs(t, err, domain.ErrNoViableTarget)
}
