package projects

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nvoss/ccdash/internal/app"
	"github.com/nvoss/ccdash/internal/models"
	"github.com/nvoss/ccdash/internal/services/usage"
)

func testState() *app.State {
	state := app.NewState(models.TimeRangeAllTime)
	state.SetSnapshot(usage.Snapshot{
		Range: models.TimeRangeAllTime,
		Stats: models.UsageStats{
			TotalCost: 3.0,
			ByProject: []models.ProjectUsage{
				{ProjectPath: "/home/u/alpha", ProjectName: "alpha", TotalCost: 2.0,
					TotalTokens: 1000, SessionCount: 2, LastUsed: "2025-08-02T10:00:00Z"},
				{ProjectPath: "/home/u/beta", ProjectName: "beta", TotalCost: 1.0,
					TotalTokens: 500, SessionCount: 1, LastUsed: "2025-08-01T10:00:00Z"},
			},
		},
	})
	return state
}

func TestView(t *testing.T) {
	m := New(testState())
	m.SetSize(100, 40)

	view := m.View()
	if !strings.Contains(view, "alpha") || !strings.Contains(view, "beta") {
		t.Error("missing project rows")
	}
	if !strings.Contains(view, "2025-08-02") {
		t.Error("missing last-used date")
	}
}

func TestViewEmpty(t *testing.T) {
	m := New(app.NewState(models.TimeRange7Days))
	m.SetSize(80, 24)

	if view := m.View(); !strings.Contains(view, "No usage recorded") {
		t.Errorf("empty state should say so:\n%s", view)
	}
}

func TestSelection(t *testing.T) {
	m := New(testState())
	m.SetSize(100, 40)

	if m.selected != 0 {
		t.Fatalf("initial selection = %d, want 0", m.selected)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.selected != 1 {
		t.Errorf("selection after down = %d, want 1", m.selected)
	}

	// Cannot move past the end.
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.selected != 1 {
		t.Errorf("selection past end = %d, want 1", m.selected)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.selected != 0 {
		t.Errorf("selection after up = %d, want 0", m.selected)
	}
}

func TestSelectionClampsOnReload(t *testing.T) {
	state := testState()
	m := New(state)
	m.SetSize(100, 40)
	m.selected = 1

	// Reload with fewer projects.
	state.SetSnapshot(usage.Snapshot{
		Range: models.TimeRangeAllTime,
		Stats: models.UsageStats{
			ByProject: []models.ProjectUsage{
				{ProjectPath: "/home/u/alpha", ProjectName: "alpha", TotalCost: 1},
			},
		},
	})
	m.Update(app.UsageLoadedMsg{})

	if m.selected != 0 {
		t.Errorf("selection after shrink = %d, want 0", m.selected)
	}
}
