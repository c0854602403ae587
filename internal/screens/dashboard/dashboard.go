// Package dashboard is the garden home: the mascot, the child's totals and
// the module list with lock state.
package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordgarden/internal/catalog"
	"github.com/abhisek/wordgarden/internal/nav"
	"github.com/abhisek/wordgarden/internal/router"
	"github.com/abhisek/wordgarden/internal/screen"
	"github.com/abhisek/wordgarden/internal/ui/components"
	"github.com/abhisek/wordgarden/internal/ui/layout"
	"github.com/abhisek/wordgarden/internal/ui/theme"
)

// Screen shows the modules of the catalog.
type Screen struct {
	deps    screen.Deps
	modules []catalog.Module
	menu    components.Menu
	notice  string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

func New(deps screen.Deps) *Screen {
	s := &Screen{deps: deps, modules: deps.Engine.Catalog().Modules}
	unlocked := deps.Engine.UnlockedModules()

	items := make([]components.MenuItem, len(s.modules))
	for i, m := range s.modules {
		items[i] = components.MenuItem{
			Label:    m.Title,
			Icon:     m.Icon,
			Disabled: !unlocked[i],
			Action:   s.open(m.ID),
		}
	}
	s.menu = components.NewMenu(items)
	s.menu.Numbered = true
	return s
}

func (s *Screen) open(id string) func() tea.Cmd {
	return func() tea.Cmd {
		if err := s.deps.Engine.SelectModule(id); err != nil {
			s.notice = err.Error()
			return nil
		}
		return router.Navigate(nav.ModuleOverview)
	}
}

func (s *Screen) ID() nav.Screen { return nav.Dashboard }

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string {
	if info, ok := s.deps.Engine.Catalog().Language(s.deps.Engine.Language()); ok {
		return info.Theme.Icon + " " + info.Theme.Scenario
	}
	return "Garden"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Play"},
		{Key: "S", Description: "Settings"},
		{Key: "A", Description: "Album"},
		{Key: "Esc", Description: "Language"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok {
		switch k.String() {
		case "s":
			return s, router.Navigate(nav.Settings)
		case "a":
			return s, router.Navigate(nav.Album)
		case "esc":
			return s, router.Back()
		}
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)
	stats := s.deps.Engine.Stats()
	mascot := s.deps.Engine.Mascot()

	var sections []string

	greeting := fmt.Sprintf("%s  %s", mascot.Emoji, mascot.Name)
	if mascot.Description != "" {
		greeting += theme.Hint.Render("  " + mascot.Description)
	}
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(greeting))

	sections = append(sections, lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("⭐ %d stars    📖 %d words    ⏱ %d min",
			stats.StarsEarned, len(stats.LearnedWordIDs), stats.TotalPracticeMinutes)))

	learned := stats.LearnedSet()
	var rows strings.Builder
	for i, line := range strings.Split(strings.TrimRight(s.menu.View(), "\n"), "\n") {
		m := s.modules[i]
		done := 0
		for _, id := range m.WordIDs {
			if _, ok := learned[id]; ok {
				done++
			}
		}
		bar := components.NewProgressBar("", done, len(m.WordIDs), 18)
		pad := max(cw-lipgloss.Width(line)-lipgloss.Width(bar.View()), 1)
		rows.WriteString(line + strings.Repeat(" ", pad) + bar.View() + "\n")
	}
	sections = append(sections, rows.String())

	if s.notice != "" {
		sections = append(sections, theme.Incorrect.Render(s.notice))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, sections...))
}
