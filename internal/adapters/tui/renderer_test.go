package tui_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"wfgraph/internal/adapters/tui"
	"wfgraph/internal/core/domain"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestRenderer_QuitsOnceChannelCloses(t *testing.T) {
	renderer, updates := tui.NewRendererAndChannel(
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
	)

	require.NoError(t, renderer.Start(context.Background()))
	updates <- tui.StatusUpdate{Name: "compile_a", Status: domain.TargetStatusRunning}
	updates <- tui.StatusUpdate{Name: "compile_a", Status: domain.TargetStatusCompleted}
	close(updates)

	done := make(chan error, 1)
	go func() { done <- renderer.Wait() }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("renderer did not quit after its update channel closed")
	}
}
