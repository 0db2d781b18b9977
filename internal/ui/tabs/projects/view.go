package projects

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nvoss/ccdash/internal/ui/components"
	"github.com/nvoss/ccdash/internal/ui/styles"
)

// View renders the projects tab.
func (m *Model) View() string {
	stats := m.state.Snapshot().Stats

	var sections []string
	title := styles.TitleStyle.Render("Projects")
	subtitle := styles.HelpStyle.Render(
		fmt.Sprintf("%d projects, sorted by cost", len(stats.ByProject)))
	sections = append(sections, lipgloss.JoinVertical(lipgloss.Left, title, subtitle, ""))

	if len(stats.ByProject) == 0 {
		sections = append(sections, styles.HelpStyle.Render("No usage recorded for this window"))
		return styles.DocStyle.Width(m.width).Height(m.height).Render(
			lipgloss.JoinVertical(lipgloss.Left, sections...))
	}

	barWidth := m.width - 10
	if barWidth < 40 {
		barWidth = 40
	}

	bar := components.NewCostBar()
	visible := m.visibleRows()

	for i, p := range stats.ByProject {
		if i >= visible {
			sections = append(sections, styles.HelpStyle.Render(
				fmt.Sprintf("… and %d more", len(stats.ByProject)-visible)))
			break
		}

		row := bar.View(p.TotalCost, stats.TotalCost, p.ProjectName, barWidth)
		detail := fmt.Sprintf("    %s tokens | %d sessions | last used %s",
			components.FormatTokens(p.TotalTokens), p.SessionCount, shortDate(p.LastUsed))

		if i == m.selected {
			row = styles.SelectedListItemStyle.Render("") + row
			detail += "\n" + styles.HelpStyle.Render("    "+p.ProjectPath)
		} else {
			row = styles.ListItemStyle.Render("") + row
		}

		sections = append(sections, row, styles.HelpStyle.Render(detail))
	}

	return styles.DocStyle.Width(m.width).Height(m.height).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// visibleRows caps the list so it fits the content area; each project
// takes two or three lines.
func (m *Model) visibleRows() int {
	rows := (m.height - 6) / 2
	if rows < 3 {
		rows = 3
	}
	return rows
}

func shortDate(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	if strings.TrimSpace(ts) == "" {
		return "never"
	}
	return ts
}
