package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"wfgraph/internal/adapters/backend/local"
	"wfgraph/internal/adapters/config"
	"wfgraph/internal/adapters/filestat"
	"wfgraph/internal/adapters/logger"
	"wfgraph/internal/adapters/state"
	"wfgraph/internal/app"

	"github.com/stretchr/testify/require"
)

const workflow = `
working_dir: .
targets:
  a:
    outputs: ["a.out"]
    spec: "touch a.out"
  b:
    inputs: ["a.out"]
    outputs: ["b.out"]
    spec: "touch b.out"
`

func TestApp_RunSchedulesEndpointsByDefault(t *testing.T) {
	dir := t.TempDir()
	workflowPath := filepath.Join(dir, "workflow.yaml")
	require.NoError(t, os.WriteFile(workflowPath, []byte(workflow), 0o644))

	log := logger.New()
	loader := config.NewLoader(log)
	backend := local.NewBackend(log)
	store, err := state.NewStore(filepath.Join(dir, "state"))
	require.NoError(t, err)
	stat := filestat.New()

	a := app.New(loader, backend, store, stat, log, nil)

	results, err := a.Run(context.Background(), workflowPath, nil, true)
	require.NoError(t, err)
	require.Len(t, results, 1, "only b is an endpoint; a is b's dependency")
	require.True(t, results[0])
}

func TestApp_StatusReportsShouldRunWithoutSubmitting(t *testing.T) {
	dir := t.TempDir()
	workflowPath := filepath.Join(dir, "workflow.yaml")
	require.NoError(t, os.WriteFile(workflowPath, []byte(workflow), 0o644))

	log := logger.New()
	loader := config.NewLoader(log)
	backend := local.NewBackend(log)
	store, err := state.NewStore(filepath.Join(dir, "state"))
	require.NoError(t, err)
	stat := filestat.New()

	a := app.New(loader, backend, store, stat, log, nil)

	reports, err := a.Status(context.Background(), workflowPath, nil)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.Equal(t, "b", reports[0].Name)

	meta, err := store.GetTargetMeta("b")
	require.NoError(t, err)
	require.True(t, meta.IsUnknown(), "Status must not submit or mutate persisted state beyond propagated resets")
}

func TestApp_RunRejectsUnknownTarget(t *testing.T) {
	dir := t.TempDir()
	workflowPath := filepath.Join(dir, "workflow.yaml")
	require.NoError(t, os.WriteFile(workflowPath, []byte(workflow), 0o644))

	log := logger.New()
	loader := config.NewLoader(log)
	backend := local.NewBackend(log)
	store, err := state.NewStore(filepath.Join(dir, "state"))
	require.NoError(t, err)
	stat := filestat.New()

	a := app.New(loader, backend, store, stat, log, nil)

	_, err = a.Run(context.Background(), workflowPath, []string{"does_not_exist"}, true)
	require.Error(t, err)
}
