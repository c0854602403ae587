package app

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordgarden/internal/progress"
	"github.com/abhisek/wordgarden/internal/reward"
	"github.com/abhisek/wordgarden/internal/ui/theme"
)

var (
	confettiRows = []string{
		"🎉  ✨  🎊  ✨  🎉",
		"  ✨  🎊  🎉  🎊  ",
	}
	fireworksRows = []string{
		"   🎆      🎇      🎆   ",
		"🎇     ✨   🎆   ✨     🎇",
		"   ✨      🎆      ✨   ",
	}
)

// Celebration renders the overlay for k. Calm mode and disabled animations
// get a still card without the burst.
func Celebration(k reward.Kind, s progress.AppSettings) string {
	headline := "Great job!"
	var burst []string
	switch k {
	case reward.Fireworks:
		headline = "Amazing!"
		burst = fireworksRows
	case reward.Confetti:
		burst = confettiRows
	}

	title := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true).Render("⭐ " + headline + " ⭐")
	if s.CalmMode || !s.EnableAnimations {
		return theme.Card.Render(title)
	}

	burstText := lipgloss.NewStyle().Foreground(theme.Accent).Render(strings.Join(burst, "\n"))
	return theme.Card.
		BorderForeground(theme.Gold).
		Align(lipgloss.Center).
		Render(burstText + "\n\n" + title + "\n\n" + burstText)
}
