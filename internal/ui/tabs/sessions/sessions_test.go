package sessions

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nvoss/ccdash/internal/app"
	"github.com/nvoss/ccdash/internal/models"
	"github.com/nvoss/ccdash/internal/services/usage"
)

func stateWithSessions(count int) *app.State {
	state := app.NewState(models.TimeRangeAllTime)
	sessions := make([]models.SessionUsage, count)
	for i := range sessions {
		sessions[i] = models.SessionUsage{
			SessionID:    fmt.Sprintf("sess-%02d", i),
			ProjectName:  "proj",
			ProjectPath:  "/home/u/proj",
			TotalCost:    0.5,
			TotalTokens:  1000,
			StartTime:    fmt.Sprintf("2025-08-%02dT10:00:00Z", 28-i),
			LastActivity: fmt.Sprintf("2025-08-%02dT11:30:00Z", 28-i),
			Models:       []string{"claude-sonnet-4-5"},
		}
	}
	state.SetSnapshot(usage.Snapshot{Range: models.TimeRangeAllTime, Sessions: sessions})
	return state
}

func TestView(t *testing.T) {
	m := New(stateWithSessions(2))
	m.SetSize(100, 40)

	view := m.View()
	if !strings.Contains(view, "proj") {
		t.Error("missing project name")
	}
	if !strings.Contains(view, "Claude Sonnet 4.5") {
		t.Error("missing model list")
	}
	if !strings.Contains(view, "1h 30m") {
		t.Errorf("missing session duration:\n%s", view)
	}
}

func TestViewEmpty(t *testing.T) {
	m := New(app.NewState(models.TimeRange7Days))
	m.SetSize(80, 24)

	if view := m.View(); !strings.Contains(view, "No sessions") {
		t.Error("empty state should say so")
	}
}

func TestPagingKeepsSelectionVisible(t *testing.T) {
	m := New(stateWithSessions(20))
	m.SetSize(100, 15)

	page := m.pageSize()
	for i := 0; i < page+2; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}

	if m.selected != page+2 {
		t.Errorf("selected = %d, want %d", m.selected, page+2)
	}
	if m.selected < m.offset || m.selected >= m.offset+page {
		t.Errorf("selection %d outside window [%d, %d)", m.selected, m.offset, m.offset+page)
	}
}

func TestReloadResetsSelection(t *testing.T) {
	m := New(stateWithSessions(5))
	m.SetSize(100, 40)
	m.Update(tea.KeyMsg{Type: tea.KeyDown})

	m.Update(app.TimeRangeChangedMsg{Range: models.TimeRange7Days})
	if m.selected != 0 || m.offset != 0 {
		t.Errorf("selection not reset: selected=%d offset=%d", m.selected, m.offset)
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		start, end string
		want       string
	}{
		{"2025-08-01T10:00:00Z", "2025-08-01T10:00:30Z", "<1m"},
		{"2025-08-01T10:00:00Z", "2025-08-01T10:45:00Z", "45m"},
		{"2025-08-01T10:00:00Z", "2025-08-01T12:05:00Z", "2h 05m"},
		{"garbage", "2025-08-01T10:00:00Z", "-"},
	}
	for _, tt := range tests {
		if got := duration(tt.start, tt.end); got != tt.want {
			t.Errorf("duration(%s, %s) = %q, want %q", tt.start, tt.end, got, tt.want)
		}
	}
}
