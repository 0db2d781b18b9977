// Package styles defines the visual styling for the application.
package styles

import "github.com/charmbracelet/lipgloss"

// Color definitions for the ccdash theme.
var (
	// Primary colors
	ColorAccent = lipgloss.Color("208") // Claude orange
	Secondary   = lipgloss.Color("63")  // Purple
	Subtle      = lipgloss.Color("240") // Gray

	// Status colors
	Success = lipgloss.Color("42")  // Green
	Error   = lipgloss.Color("196") // Red
	Warning = lipgloss.Color("220") // Yellow
	Info    = lipgloss.Color("39")  // Blue

	// Background colors
	BgDark   = lipgloss.Color("235")
	BgLight  = lipgloss.Color("237")
	BgAccent = lipgloss.Color("236")

	// Text colors
	TextPrimary   = lipgloss.Color("252")
	TextSecondary = lipgloss.Color("245")
	TextMuted     = lipgloss.Color("240")

	// ToastStyle for floating notifications.
	ToastStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 1).
			MarginBottom(1)
)

// TitleStyle is used for main headings.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorAccent).
	MarginBottom(1)

// SubTitleStyle is used for section headings.
var SubTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Secondary).
	MarginBottom(1)

// DocStyle provides consistent document margins.
var DocStyle = lipgloss.NewStyle().
	Margin(1, 2).
	Padding(0, 1)

// CardStyle creates a bordered card container.
var CardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Subtle).
	Padding(1, 2).
	MarginBottom(1)

// CardTitleStyle styles card headers.
var CardTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorAccent).
	MarginBottom(1)

// HelpStyle is the base style for help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(TextMuted)

// HelpPanelStyle creates the help overlay panel.
var HelpPanelStyle = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	BorderForeground(ColorAccent).
	Padding(1, 3).
	Background(BgDark)

// ListItemStyle styles list items.
var ListItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedListItemStyle styles selected list items.
var SelectedListItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Foreground(ColorAccent).
	Bold(true).
	SetString("> ")

// TableHeaderStyle styles table headers.
var TableHeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorAccent).
	BorderStyle(lipgloss.NormalBorder()).
	BorderBottom(true).
	BorderForeground(Subtle)

// TableCellStyle styles table cells.
var TableCellStyle = lipgloss.NewStyle().
	Padding(0, 1)

// TableSelectedStyle styles selected table rows.
var TableSelectedStyle = lipgloss.NewStyle().
	Background(BgAccent).
	Foreground(TextPrimary).
	Bold(true)

// ProgressLabelStyle styles progress bar labels.
var ProgressLabelStyle = lipgloss.NewStyle().
	Foreground(TextSecondary).
	Width(20)

// ProgressPercentStyle styles the percentage display.
var ProgressPercentStyle = lipgloss.NewStyle().
	Foreground(TextPrimary).
	Width(6).
	Align(lipgloss.Right)

// CostLowStyle for small daily spend.
var CostLowStyle = lipgloss.NewStyle().
	Foreground(Success)

// CostMediumStyle for moderate daily spend.
var CostMediumStyle = lipgloss.NewStyle().
	Foreground(Warning)

// CostHighStyle for heavy daily spend.
var CostHighStyle = lipgloss.NewStyle().
	Foreground(Error).
	Bold(true)

// ErrorTextStyle for error messages.
var ErrorTextStyle = lipgloss.NewStyle().
	Foreground(Error)

// SuccessTextStyle for success messages.
var SuccessTextStyle = lipgloss.NewStyle().
	Foreground(Success)

// GetCostStyle returns the style for a dollar amount. The bands are
// rough markers for a single day of personal use, not billing tiers.
func GetCostStyle(cost float64) lipgloss.Style {
	switch {
	case cost >= 20:
		return CostHighStyle
	case cost >= 5:
		return CostMediumStyle
	default:
		return CostLowStyle
	}
}

// CenterHorizontal centers content horizontally within a given width.
func CenterHorizontal(content string, width int) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(content)
}

// CenterBoth centers content both horizontally and vertically.
func CenterBoth(content string, width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(content)
}
