package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grindlemire/graft"
)

// NodeID identifies this adapter's registration in the wiring graph.
const NodeID graft.ID = "adapter.tui"

// Factory builds a Renderer together with the channel its Model consumes.
// A Renderer is scoped to a single scheduling pass, so the node provides a
// constructor rather than a singleton the way the other adapters do.
type Factory func(opts ...tea.ProgramOption) (*Renderer, chan<- StatusUpdate)

func init() {
	graft.Register(graft.Node[Factory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (Factory, error) {
			return NewRendererAndChannel, nil
		},
	})
}

// NewRendererAndChannel is the concrete Factory: a fresh Model over a fresh
// channel, wrapped in a Renderer configured with opts.
func NewRendererAndChannel(opts ...tea.ProgramOption) (*Renderer, chan<- StatusUpdate) {
	updates := make(chan StatusUpdate)
	model := NewModel(updates)
	return NewRenderer(model, opts...), updates
}
