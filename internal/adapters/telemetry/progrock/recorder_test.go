package progrock_test

import (
	"context"
	"testing"

	"wfgraph/internal/adapters/telemetry/progrock"
	"wfgraph/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_RecordAndComplete(t *testing.T) {
	recorder := progrock.New()
	require.NotNil(t, recorder)

	_, vertex := recorder.Record(context.Background(), "compile_a")
	require.NotNil(t, vertex)

	vertex.Log(domain.TargetStatusRunning, "started")
	vertex.Complete(nil)

	assert.NoError(t, recorder.Close())
}
