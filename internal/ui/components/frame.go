package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordgarden/internal/ui/theme"
)

// ContentWidth returns the uniform inner width of framed sections.
func ContentWidth(frameWidth int) int {
	// border (2) + padding (4)
	return min(max(frameWidth-6, 20), 64)
}

// GardenFrame wraps content in a rounded frame centered in width x height.
func GardenFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card wraps content in a bordered card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// Tile renders one selectable square, used for memory cards and
// sequence pieces.
func Tile(label string, selected, faded bool, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.Text)
	switch {
	case faded:
		style = style.Foreground(theme.TextDim).Faint(true)
	case selected:
		style = style.BorderForeground(theme.Gold).Bold(true)
	}
	return style.Render(label)
}

// Button renders a wide menu button.
func Button(label string, selected bool, width int) string {
	if selected {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.Gold).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Gold).
			Padding(0, 1).
			Render("▸ " + label)
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(label)
}
