// Package overview provides the summary tab: totals, model breakdown,
// and the daily cost chart.
package overview

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nvoss/ccdash/internal/app"
)

// keyMap defines the key bindings specific to the overview tab.
type keyMap struct {
	Up   key.Binding
	Down key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
	}
}

// Model represents the overview tab state.
type Model struct {
	state    *app.State
	width    int
	height   int
	keys     keyMap
	viewport viewport.Model
}

// New creates a new overview model.
func New(state *app.State) *Model {
	return &Model{
		state:    state,
		keys:     defaultKeyMap(),
		viewport: viewport.New(0, 0),
	}
}

// Init initializes the overview tab.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the overview tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(keyMsg)
		return m, cmd
	}
	return m, nil
}

// SetSize sets the available size for the overview tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Up, m.keys.Down}
}
