package overview

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/nvoss/ccdash/internal/pricing"
	"github.com/nvoss/ccdash/internal/ui/components"
	"github.com/nvoss/ccdash/internal/ui/styles"
)

// View renders the overview tab.
func (m *Model) View() string {
	var sections []string

	sections = append(sections, m.renderTitle())
	sections = append(sections, m.renderTotalsCard())
	sections = append(sections, m.renderModelCard())
	sections = append(sections, m.renderDailyChart())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderTitle() string {
	snap := m.state.Snapshot()
	title := styles.TitleStyle.Render("Usage Overview")
	subtitle := styles.HelpStyle.Render(fmt.Sprintf("Claude Code usage, %s", snap.Range))

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) cardWidth() int {
	w := m.width - 6
	if w < 50 {
		w = 50
	}
	if w > 90 {
		w = 90
	}
	return w
}

func (m *Model) renderTotalsCard() string {
	stats := m.state.Snapshot().Stats

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Totals"))
	rows = append(rows, "")
	rows = append(rows, m.renderRow("Cost",
		styles.GetCostStyle(stats.TotalCost).Render(components.FormatCost(stats.TotalCost))))
	rows = append(rows, m.renderRow("Tokens", components.FormatTokens(stats.TotalTokens)))
	rows = append(rows, m.renderRow("Input", components.FormatTokens(stats.InputTokens)))
	rows = append(rows, m.renderRow("Output", components.FormatTokens(stats.OutputTokens)))
	rows = append(rows, m.renderRow("Cache write", components.FormatTokens(stats.CacheCreationTokens)))
	rows = append(rows, m.renderRow("Cache read", components.FormatTokens(stats.CacheReadTokens)))
	rows = append(rows, m.renderRow("Sessions", fmt.Sprintf("%d", stats.TotalSessions)))

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderRow(label, value string) string {
	labelStyle := lipgloss.NewStyle().
		Width(14).
		Foreground(styles.TextMuted)

	return labelStyle.Render(label+":") + " " + value
}

func (m *Model) renderModelCard() string {
	stats := m.state.Snapshot().Stats

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("By Model"))
	rows = append(rows, "")

	if len(stats.ByModel) == 0 {
		rows = append(rows, styles.HelpStyle.Render("No usage recorded"))
	}

	width := m.cardWidth() - 6
	for _, mu := range stats.ByModel {
		line := components.SimpleCostBar(mu.TotalCost, stats.TotalCost, pricing.DisplayName(mu.Model), width)
		detail := styles.HelpStyle.Render(fmt.Sprintf("  %s tokens across %d sessions",
			components.FormatTokens(mu.TotalTokens), mu.SessionCount))
		rows = append(rows, line, detail)
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderDailyChart() string {
	stats := m.state.Snapshot().Stats

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Daily Cost"))
	rows = append(rows, "")

	if len(stats.ByDate) < 2 {
		rows = append(rows, styles.HelpStyle.Render("Not enough days to chart"))
	} else {
		costs := make([]float64, len(stats.ByDate))
		for i, d := range stats.ByDate {
			costs[i] = d.TotalCost
		}
		caption := fmt.Sprintf("%s .. %s (USD/day)",
			stats.ByDate[0].Date, stats.ByDate[len(stats.ByDate)-1].Date)
		rows = append(rows, components.RenderLineChart(costs, m.cardWidth()-14, 8, caption))
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}
