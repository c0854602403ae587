// Package landing is the first screen: a short sprouting animation, then
// the entry menu.
package landing

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordgarden/internal/nav"
	"github.com/abhisek/wordgarden/internal/router"
	"github.com/abhisek/wordgarden/internal/screen"
	"github.com/abhisek/wordgarden/internal/ui/components"
	"github.com/abhisek/wordgarden/internal/ui/layout"
	"github.com/abhisek/wordgarden/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 2500 * time.Millisecond
)

// growth is the plant drawn at each phase.
var growth = []string{
	"\n\n\n  .  \n▔▔▔▔▔",
	"\n\n  🌱 \n  │  \n▔▔▔▔▔",
	"  🌼 \n \\│/ \n  │  \n  │  \n▔▔▔▔▔",
}

var sparkleFrames = []string{"✿", "❀"}

type tickMsg time.Time

// Screen shows the animation and the entry menu.
type Screen struct {
	menu      components.Menu
	labels    []string
	animate   bool
	elapsed   time.Duration
	tickCount int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the landing screen. With animate false, as in calm mode,
// everything is shown at once and nothing ticks.
func New(animate bool) *Screen {
	labels := []string{"Play", "Parents", "Quit"}
	items := []components.MenuItem{
		{Label: labels[0], Icon: "🌻", Action: func() tea.Cmd { return router.Navigate(nav.LanguageSelector) }},
		{Label: labels[1], Icon: "📊", Action: func() tea.Cmd { return router.Navigate(nav.ParentDashboard) }},
		{Label: labels[2], Icon: "👋", Action: func() tea.Cmd { return tea.Quit }},
	}
	s := &Screen{menu: components.NewMenu(items), labels: labels, animate: animate}
	if !animate {
		s.elapsed = totalDur
	}
	return s
}

func (s *Screen) ID() nav.Screen { return nav.Landing }

func (s *Screen) Title() string { return "" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Go"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *Screen) Init() tea.Cmd {
	if !s.animate {
		return nil
	}
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Ready reports whether the menu accepts input.
func (s *Screen) Ready() bool { return s.elapsed >= totalDur }

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		s.tickCount++
		if s.elapsed < totalDur {
			s.elapsed += tickInterval
			return s, tick()
		}
		return s, nil

	case tea.KeyPressMsg:
		// A key during the animation skips it.
		if !s.Ready() {
			s.elapsed = totalDur
			return s, nil
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	stage := 0
	switch {
	case s.elapsed >= phase2End:
		stage = 2
	case s.elapsed >= phase1End:
		stage = 1
	}
	plant := lipgloss.NewStyle().Foreground(theme.Primary).Render(growth[stage])

	if s.animate && stage == 2 {
		sp := sparkleFrames[s.tickCount%len(sparkleFrames)]
		lines := strings.Split(plant, "\n")
		lines[0] = lipgloss.NewStyle().Foreground(theme.Accent).Render(sp) + " " + lines[0] + " " +
			lipgloss.NewStyle().Foreground(theme.Secondary).Render(sp)
		plant = strings.Join(lines, "\n")
	}

	sections := []string{plant}
	if s.elapsed >= phase2End {
		sections = append(sections, "", RenderBanner(width), "",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Grow your words, one seed at a time."))
	}
	if s.Ready() {
		cw := components.ContentWidth(width)
		var buttons []string
		for i, label := range s.labels {
			buttons = append(buttons, components.Button(s.menu.Items[i].Icon+"  "+label, i == s.menu.Selected, cw/2))
		}
		sections = append(sections, "", lipgloss.JoinVertical(lipgloss.Center, buttons...))
	} else {
		sections = append(sections, "", theme.Hint.Render("press any key"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}
