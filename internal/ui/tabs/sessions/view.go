package sessions

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/nvoss/ccdash/internal/models"
	"github.com/nvoss/ccdash/internal/pricing"
	"github.com/nvoss/ccdash/internal/ui/components"
	"github.com/nvoss/ccdash/internal/ui/styles"
)

// View renders the sessions tab.
func (m *Model) View() string {
	sessions := m.state.Snapshot().Sessions

	var sections []string
	title := styles.TitleStyle.Render("Sessions")
	subtitle := styles.HelpStyle.Render(
		fmt.Sprintf("%d sessions, most recent first", len(sessions)))
	sections = append(sections, lipgloss.JoinVertical(lipgloss.Left, title, subtitle, ""))

	if len(sessions) == 0 {
		sections = append(sections, styles.HelpStyle.Render("No sessions in this window"))
		return styles.DocStyle.Width(m.width).Height(m.height).Render(
			lipgloss.JoinVertical(lipgloss.Left, sections...))
	}

	page := m.pageSize()
	end := m.offset + page
	if end > len(sessions) {
		end = len(sessions)
	}

	for i := m.offset; i < end; i++ {
		sections = append(sections, m.renderSession(sessions[i], i == m.selected))
	}

	if end < len(sessions) || m.offset > 0 {
		sections = append(sections, styles.HelpStyle.Render(
			fmt.Sprintf("showing %d-%d of %d", m.offset+1, end, len(sessions))))
	}

	return styles.DocStyle.Width(m.width).Height(m.height).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *Model) renderSession(s models.SessionUsage, selected bool) string {
	header := fmt.Sprintf("%s  %s  %s",
		shortTime(s.StartTime),
		s.ProjectName,
		styles.GetCostStyle(s.TotalCost).Render(components.FormatCost(s.TotalCost)))

	names := make([]string, len(s.Models))
	for i, model := range s.Models {
		names[i] = pricing.DisplayName(model)
	}

	detail := fmt.Sprintf("    %s tokens | %s | %s",
		components.FormatTokens(s.TotalTokens),
		strings.Join(names, ", "),
		duration(s.StartTime, s.LastActivity))

	if selected {
		header = styles.SelectedListItemStyle.Render("") + header
		detail += "\n" + styles.HelpStyle.Render("    id "+s.SessionID)
	} else {
		header = styles.ListItemStyle.Render("") + header
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, styles.HelpStyle.Render(detail))
}

func shortTime(ts string) string {
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t.Local().Format("Jan 02 15:04")
	}
	if len(ts) >= 16 {
		return ts[:16]
	}
	return ts
}

// duration renders the span between first and last activity.
func duration(start, end string) string {
	st, err1 := time.Parse(time.RFC3339, start)
	et, err2 := time.Parse(time.RFC3339, end)
	if err1 != nil || err2 != nil || et.Before(st) {
		return "-"
	}

	d := et.Sub(st).Round(time.Minute)
	if d < time.Minute {
		return "<1m"
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	return fmt.Sprintf("%dh %02dm", int(d.Hours()), int(d.Minutes())%60)
}
