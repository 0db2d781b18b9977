package info

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/lipgloss"

	"github.com/nvoss/ccdash/internal/ui/styles"
	"github.com/nvoss/ccdash/internal/version"
)

// View renders the info tab.
func (m *Model) View() string {
	var sections []string

	// Title
	sections = append(sections, m.renderTitle())

	// Configuration card
	sections = append(sections, m.renderConfigCard())

	// About card
	sections = append(sections, m.renderAboutCard())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

// renderTitle renders the info tab title.
func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Info")
	subtitle := styles.HelpStyle.Render("Configuration and application information")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) cardWidth() int {
	cardWidth := m.width - 6
	if cardWidth < 50 {
		cardWidth = 50
	}
	if cardWidth > 80 {
		cardWidth = 80
	}
	return cardWidth
}

// renderConfigCard renders the configuration card.
func (m *Model) renderConfigCard() string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Configuration"))
	rows = append(rows, "")

	if m.config != nil {
		rows = append(rows, m.renderConfigRow("Log Root", m.config.LogRoot))
		rows = append(rows, m.renderConfigRow("Default Range", m.config.DefaultRange.String()))
		rows = append(rows, m.renderConfigRow("Watch Debounce", m.config.WatchDebounce.String()))
		alert := "disabled"
		if m.config.DailyCostAlert > 0 {
			alert = fmt.Sprintf("$%.2f/day", m.config.DailyCostAlert)
		}
		rows = append(rows, m.renderConfigRow("Cost Alert", alert))
	} else {
		rows = append(rows, styles.HelpStyle.Render("Configuration not loaded"))
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderConfigRow renders a configuration key-value row.
func (m *Model) renderConfigRow(label, value string) string {
	labelStyle := lipgloss.NewStyle().
		Width(18).
		Foreground(styles.TextMuted)

	valueStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary)

	return labelStyle.Render(label+":") + " " + valueStyle.Render(value)
}

// renderAboutCard renders the about/version information card.
func (m *Model) renderAboutCard() string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("About ccdash"))
	rows = append(rows, "")

	rows = append(rows, m.renderConfigRow("Version", version.GetVersion()))
	rows = append(rows, m.renderConfigRow("Build Date", version.GetDate()))
	rows = append(rows, m.renderConfigRow("Git Commit", version.GetCommit()))
	rows = append(rows, m.renderConfigRow("Go Version", runtime.Version()))
	rows = append(rows, m.renderConfigRow("Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)))
	rows = append(rows, "")

	stats := m.state.Snapshot().Stats
	rows = append(rows, fmt.Sprintf("Sessions in view: %s",
		styles.SuccessTextStyle.Render(fmt.Sprintf("%d", stats.TotalSessions))))

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}
