package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordgarden/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label     string
	Done      int
	Total     int
	ShowCount bool
	Width     int
}

// NewProgressBar creates a bar showing done out of total.
func NewProgressBar(label string, done, total int, width int) ProgressBar {
	return ProgressBar{
		Label:     label,
		Done:      done,
		Total:     total,
		ShowCount: true,
		Width:     width,
	}
}

// Percent returns Done/Total clamped to [0, 1].
func (p ProgressBar) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	return min(max(float64(p.Done)/float64(p.Total), 0), 1)
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	count := ""
	if p.ShowCount {
		count = fmt.Sprintf("  %d/%d", p.Done, p.Total)
	}

	barWidth := max(p.Width-lipgloss.Width(result)-len(count), 4)
	filled := int(float64(barWidth) * p.Percent())
	empty := barWidth - filled

	result += lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("█", filled))
	result += lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", empty))

	if count != "" {
		result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(count)
	}

	return result
}
