package local_test

import (
	"context"
	"testing"
	"time"

	"wfgraph/internal/adapters/backend/local"
	"wfgraph/internal/adapters/logger"
	"wfgraph/internal/core/domain"
	"wfgraph/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackend_SubmitRunsCommandAndReportsLiveness(t *testing.T) {
	backend := local.NewBackend(logger.New())

	target, err := domain.NewTarget("t", t.TempDir(), domain.NewPathList(nil), domain.NewPathList(nil), nil, "exit 0")
	require.NoError(t, err)

	require.NoError(t, backend.Submit(context.Background(), target, nil))

	assert.Eventually(t, func() bool {
		liveness, _ := backend.Liveness(context.Background(), target)
		return liveness == ports.LivenessDone
	}, 2*time.Second, 10*time.Millisecond)

	liveness, err := backend.Liveness(context.Background(), target)
	require.NoError(t, err)
	assert.Equal(t, ports.LivenessDone, liveness)
}

func TestBackend_SubmitSurfacesCommandFailure(t *testing.T) {
	backend := local.NewBackend(logger.New())

	target, err := domain.NewTarget("failing", t.TempDir(), domain.NewPathList(nil), domain.NewPathList(nil), nil, "exit 1")
	require.NoError(t, err)

	require.NoError(t, backend.Submit(context.Background(), target, nil))

	assert.Eventually(t, func() bool {
		liveness, _ := backend.Liveness(context.Background(), target)
		return liveness == ports.LivenessDone
	}, 2*time.Second, 10*time.Millisecond)

	_, err = backend.Liveness(context.Background(), target)
	assert.Error(t, err)
}

func TestBackend_LivenessAbsentForUnknownTarget(t *testing.T) {
	backend := local.NewBackend(logger.New())
	target, err := domain.NewTarget("never_submitted", t.TempDir(), domain.NewPathList(nil), domain.NewPathList(nil), nil, "")
	require.NoError(t, err)

	liveness, err := backend.Liveness(context.Background(), target)
	require.NoError(t, err)
	assert.Equal(t, ports.LivenessAbsent, liveness)
}
