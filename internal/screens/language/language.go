// Package language lets the child pick the language to learn.
package language

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordgarden/internal/catalog"
	"github.com/abhisek/wordgarden/internal/nav"
	"github.com/abhisek/wordgarden/internal/router"
	"github.com/abhisek/wordgarden/internal/screen"
	"github.com/abhisek/wordgarden/internal/speech"
	"github.com/abhisek/wordgarden/internal/ui/components"
	"github.com/abhisek/wordgarden/internal/ui/layout"
	"github.com/abhisek/wordgarden/internal/ui/theme"
)

// Screen lists the catalog languages.
type Screen struct {
	deps  screen.Deps
	langs []catalog.LanguageInfo
	menu  components.Menu
}

var _ screen.Screen = (*Screen)(nil)

func New(deps screen.Deps) *Screen {
	s := &Screen{deps: deps, langs: deps.Engine.Catalog().Languages}
	current := deps.Engine.Language()

	items := make([]components.MenuItem, len(s.langs))
	for i, l := range s.langs {
		items[i] = components.MenuItem{
			Label:  fmt.Sprintf("%-12s %s", l.Native, theme.Hint.Render(l.Theme.Scenario)),
			Icon:   l.Flag,
			Action: s.choose(l),
		}
	}
	s.menu = components.NewMenu(items)
	s.menu.Numbered = true
	for i, l := range s.langs {
		if l.Code == current {
			s.menu.Selected = i
		}
	}
	return s
}

func (s *Screen) choose(l catalog.LanguageInfo) func() tea.Cmd {
	return func() tea.Cmd {
		if err := s.deps.Engine.SetLanguage(l.Code); err != nil {
			return nil
		}
		mascot := s.deps.Engine.Mascot()
		return tea.Batch(
			s.deps.Say(speech.MascotLine(l.Theme.Welcome, l.Code, mascot.Name)),
			router.Navigate(nav.Dashboard),
		)
	}
}

func (s *Screen) ID() nav.Screen { return nav.LanguageSelector }

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Choose a language" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok && k.String() == "esc" {
		return s, router.Back()
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Which garden shall we visit?"))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())

	if s.menu.Selected < len(s.langs) {
		l := s.langs[s.menu.Selected]
		m, _ := s.deps.Engine.Catalog().Mascot(l.Theme.MascotID)
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(
			fmt.Sprintf("%s %s: %q", m.Emoji, m.Name, l.Theme.Welcome)))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		components.Card(b.String(), components.ContentWidth(width)))
}
