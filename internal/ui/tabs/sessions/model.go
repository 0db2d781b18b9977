// Package sessions provides the per-session history tab.
package sessions

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nvoss/ccdash/internal/app"
)

// keyMap defines the key bindings specific to the sessions tab.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous session"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next session"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "page down"),
		),
	}
}

// Model represents the sessions tab state.
type Model struct {
	state    *app.State
	width    int
	height   int
	keys     keyMap
	selected int
	offset   int
}

// New creates a new sessions model.
func New(state *app.State) *Model {
	return &Model{
		state: state,
		keys:  defaultKeyMap(),
	}
}

// Init initializes the sessions tab.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the sessions tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		count := len(m.state.Snapshot().Sessions)
		page := m.pageSize()
		switch {
		case key.Matches(msg, m.keys.Up):
			m.moveSelection(-1, count)
		case key.Matches(msg, m.keys.Down):
			m.moveSelection(1, count)
		case key.Matches(msg, m.keys.PageUp):
			m.moveSelection(-page, count)
		case key.Matches(msg, m.keys.PageDown):
			m.moveSelection(page, count)
		}
	case app.UsageLoadedMsg, app.TimeRangeChangedMsg:
		m.selected = 0
		m.offset = 0
	}
	return m, nil
}

func (m *Model) moveSelection(delta, count int) {
	if count == 0 {
		m.selected = 0
		m.offset = 0
		return
	}

	m.selected += delta
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected >= count {
		m.selected = count - 1
	}

	// Keep the selection in the visible window.
	page := m.pageSize()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+page {
		m.offset = m.selected - page + 1
	}
}

func (m *Model) pageSize() int {
	page := (m.height - 7) / 2
	if page < 3 {
		page = 3
	}
	return page
}

// SetSize sets the available size for the sessions tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Up, m.keys.Down, m.keys.PageUp, m.keys.PageDown}
}
