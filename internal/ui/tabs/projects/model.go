// Package projects provides the per-project cost breakdown tab.
package projects

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nvoss/ccdash/internal/app"
)

// keyMap defines the key bindings specific to the projects tab.
type keyMap struct {
	Up   key.Binding
	Down key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous project"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next project"),
		),
	}
}

// Model represents the projects tab state.
type Model struct {
	state    *app.State
	width    int
	height   int
	keys     keyMap
	selected int
}

// New creates a new projects model.
func New(state *app.State) *Model {
	return &Model{
		state: state,
		keys:  defaultKeyMap(),
	}
}

// Init initializes the projects tab.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the projects tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		count := len(m.state.Snapshot().Stats.ByProject)
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.selected > 0 {
				m.selected--
			}
		case key.Matches(msg, m.keys.Down):
			if m.selected < count-1 {
				m.selected++
			}
		}
	case app.UsageLoadedMsg, app.TimeRangeChangedMsg:
		m.clampSelection()
	}
	return m, nil
}

func (m *Model) clampSelection() {
	count := len(m.state.Snapshot().Stats.ByProject)
	if count == 0 {
		m.selected = 0
	} else if m.selected >= count {
		m.selected = count - 1
	}
}

// SetSize sets the available size for the projects tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Up, m.keys.Down}
}
