package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Renderer wraps a Bubble Tea program running Model, started in the
// background and waited on once the caller has finished publishing updates
// on the channel Model was built with.
type Renderer struct {
	program *tea.Program
	errCh   chan error
}

// NewRenderer wraps model in a Bubble Tea program configured with opts.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	return &Renderer{
		program: tea.NewProgram(model, opts...),
		errCh:   make(chan error, 1),
	}
}

// Start runs the program in the background. The caller publishes
// StatusUpdates on the channel returned alongside this Renderer by Factory,
// then closes it so Model's Update loop quits once it has drained them.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
	return nil
}

// Wait blocks until the program has quit, returning any error bubbletea
// itself reported.
func (r *Renderer) Wait() error {
	return <-r.errCh
}
