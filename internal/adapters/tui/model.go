// Package tui implements an optional, read-only live view of a scheduling
// pass: one line per target, updated as its TargetStatus changes.
package tui

import (
	"fmt"
	"strings"

	"wfgraph/internal/core/domain"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StatusUpdate reports a single target's new TargetStatus, published by the
// application layer as the scheduler observes it.
type StatusUpdate struct {
	Name   string
	Status domain.TargetStatus
}

type tapeEndedMsg struct{}

type vertexState struct {
	name   string
	status domain.TargetStatus
}

type styles struct {
	shouldRun lipgloss.Style
	running   lipgloss.Style
	completed lipgloss.Style
	failed    lipgloss.Style
	other     lipgloss.Style
}

// Model is the Bubble Tea model rendering a scheduling pass's progress.
// It is deliberately read-only: no navigation, no log panes, no verbosity
// controls (trimmed from the richer interactive TUI this is grounded on) —
// a pass is a short, linear event and doesn't warrant that surface here.
type Model struct {
	updates  <-chan StatusUpdate
	order    []string
	vertices map[string]*vertexState
	spinner  spinner.Model
	styles   styles
}

// NewModel creates a Model that renders StatusUpdates received on updates
// until the channel is closed.
func NewModel(updates <-chan StatusUpdate) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))

	return &Model{
		updates:  updates,
		vertices: make(map[string]*vertexState),
		spinner:  s,
		styles: styles{
			shouldRun: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			running:   lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")),
			completed: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			failed:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
			other:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		},
	}
}

func waitForUpdate(updates <-chan StatusUpdate) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-updates
		if !ok {
			return tapeEndedMsg{}
		}
		return u
	}
}

// Init starts reading status updates and the spinner's ticker.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(waitForUpdate(m.updates), m.spinner.Tick)
}

// Update handles incoming messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case StatusUpdate:
		m.apply(msg)
		return m, waitForUpdate(m.updates)
	case tapeEndedMsg:
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m *Model) apply(u StatusUpdate) {
	v, ok := m.vertices[u.Name]
	if !ok {
		v = &vertexState{name: u.Name}
		m.vertices[u.Name] = v
		m.order = append(m.order, u.Name)
	}
	v.status = u.Status
}

// View renders one line per observed target, in first-seen order.
func (m *Model) View() string {
	var b strings.Builder
	for _, name := range m.order {
		v := m.vertices[name]
		icon, style := m.renderStatus(v.status)
		fmt.Fprintf(&b, "%s %s\n", style.Render(icon), name)
	}
	return b.String()
}

func (m *Model) renderStatus(status domain.TargetStatus) (string, lipgloss.Style) {
	switch status {
	case domain.TargetStatusRunning:
		return m.spinner.View(), m.styles.running
	case domain.TargetStatusCompleted:
		return "✓", m.styles.completed
	case domain.TargetStatusFailed, domain.TargetStatusKilled, domain.TargetStatusCancelled:
		return "✗", m.styles.failed
	case domain.TargetStatusShouldRun, domain.TargetStatusSubmitted:
		return "…", m.styles.shouldRun
	default:
		return "?", m.styles.other
	}
}
