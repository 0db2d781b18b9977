package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nvoss/ccdash/internal/logger"
	"github.com/nvoss/ccdash/internal/ui/styles"
)

// CostBar renders a share-of-total progress bar with label and amount.
// The gradient runs green to red: the bigger the share of total spend,
// the hotter the bar.
type CostBar struct {
	progress progress.Model
}

// NewCostBar creates a cost bar with gradient colors.
func NewCostBar() CostBar {
	p := progress.New(
		progress.WithScaledGradient("#51cf66", "#ff6b6b"),
		progress.WithWidth(30),
		progress.WithoutPercentage(),
	)

	return CostBar{progress: p}
}

// Init initializes the progress bar model.
func (c CostBar) Init() tea.Cmd {
	return nil
}

// Update handles progress bar animation messages.
func (c CostBar) Update(msg tea.Msg) (CostBar, tea.Cmd) {
	model, cmd := c.progress.Update(msg)
	c.progress = model.(progress.Model)
	return c, cmd
}

// SetWidth sets the progress bar width.
func (c *CostBar) SetWidth(width int) {
	c.progress.Width = width
}

// View renders one row: label, bar scaled to the share of total, and
// the dollar amount.
func (c CostBar) View(cost, total float64, label string, width int) string {
	share := 0.0
	if total > 0 {
		share = cost / total
	}

	barWidth := width - 32 // Reserve space for label and amount
	if barWidth < 10 {
		barWidth = 10
	}
	c.progress.Width = barWidth

	bar := c.progress.ViewAs(share)

	costStr := styles.GetCostStyle(cost).
		Width(9).
		Align(lipgloss.Right).
		Render(fmt.Sprintf("$%.2f", cost))

	labelStr := styles.ProgressLabelStyle.Render(truncateLabel(label, 20))

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		labelStr,
		bar,
		" ",
		costStr,
	)
}

// RenderGradientBar renders just the bar part with gradient colors.
func RenderGradientBar(percent float64, width int) string {
	if width < 1 {
		return ""
	}

	filled := int(float64(width) * percent / 100)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	var barChars []string
	for i := 0; i < width; i++ {
		if i < filled {
			t := float64(i) / float64(max(1, width-1))
			color := interpolateColor("#51cf66", "#ff6b6b", t)
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			barChars = append(barChars, style.Render("█"))
		} else {
			style := lipgloss.NewStyle().Foreground(styles.Subtle)
			barChars = append(barChars, style.Render("░"))
		}
	}

	return strings.Join(barChars, "")
}

// SimpleCostBar renders a plain ASCII share bar without a progress model.
func SimpleCostBar(cost, total float64, label string, width int) string {
	share := 0.0
	if total > 0 {
		share = cost / total * 100
	}

	labelWidth := len(label) + 1
	amountWidth := 9
	barWidth := width - labelWidth - amountWidth - 4

	if barWidth < 5 {
		barWidth = 5
	}

	bar := RenderGradientBar(share, barWidth)

	labelStr := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Render(label)

	costStr := styles.GetCostStyle(cost).
		Width(amountWidth).
		Align(lipgloss.Right).
		Render(fmt.Sprintf("$%.2f", cost))

	return fmt.Sprintf("%s [%s] %s", labelStr, bar, costStr)
}

func truncateLabel(label string, limit int) string {
	if len(label) <= limit {
		return label
	}
	if limit <= 1 {
		return label[:limit]
	}
	return label[:limit-1] + "…"
}

func interpolateColor(fromHex, toHex string, t float64) string {
	from := hexToRGB(fromHex)
	to := hexToRGB(toHex)

	r := int(float64(from[0]) + t*(float64(to[0])-float64(from[0])))
	g := int(float64(from[1]) + t*(float64(to[1])-float64(from[1])))
	b := int(float64(from[2]) + t*(float64(to[2])-float64(from[2])))

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func hexToRGB(hex string) [3]int {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		logger.Error("failed to parse hex color", "hex", hex, "error", err)
		return [3]int{0, 0, 0}
	}
	return [3]int{r, g, b}
}
