package landing

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordgarden/internal/ui/theme"
)

const bannerArt = `
 █   █  ███  ████  ████      ████   ███  ████  ████  █████ █   █
 █   █ █   █ █   █ █   █    █      █   █ █   █ █   █ █     ██  █
 █ █ █ █   █ ████  █   █    █  ██  █████ ████  █   █ ████  █ █ █
 ██ ██ █   █ █  █  █   █    █   █  █   █ █  █  █   █ █     █  ██
 █   █  ███  █   █ ████      ████  █   █ █   █ ████  █████ █   █`

const bannerCompact = "W O R D   G A R D E N"

// RenderBanner returns the title banner, compact below 66 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 66 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
