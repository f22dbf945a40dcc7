package commands_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"wfgraph/cmd/wfctl/commands"
	"wfgraph/internal/adapters/backend/local"
	"wfgraph/internal/adapters/config"
	"wfgraph/internal/adapters/filestat"
	"wfgraph/internal/adapters/logger"
	"wfgraph/internal/adapters/state"
	"wfgraph/internal/adapters/tui"
	"wfgraph/internal/app"

	"github.com/stretchr/testify/require"
)

const workflow = `
working_dir: .
targets:
  build:
    outputs: ["build.out"]
    spec: "touch build.out"
`

func newTestCLI(t *testing.T) (*commands.CLI, string) {
	t.Helper()
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
	return commands.New(a, tui.NewRendererAndChannel), workflowPath
}

func TestRun_Success(t *testing.T) {
	cli, workflowPath := newTestCLI(t)
	cli.SetArgs([]string{"run", "-f", workflowPath, "build"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestRun_NoTargetsSchedulesEndpoints(t *testing.T) {
	cli, workflowPath := newTestCLI(t)
	cli.SetArgs([]string{"run", "-f", workflowPath})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestStatus_Success(t *testing.T) {
	cli, workflowPath := newTestCLI(t)
	cli.SetArgs([]string{"status", "-f", workflowPath, "build"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestRoot_Help(t *testing.T) {
	cli, _ := newTestCLI(t)
	cli.SetArgs([]string{"--help"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestVersion(t *testing.T) {
	cli, _ := newTestCLI(t)
	cli.SetArgs([]string{"version"})
	require.NoError(t, cli.Execute(context.Background()))
}
