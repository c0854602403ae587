// Package overview shows one module's words and its four games.
package overview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordgarden/internal/catalog"
	"github.com/abhisek/wordgarden/internal/nav"
	"github.com/abhisek/wordgarden/internal/router"
	"github.com/abhisek/wordgarden/internal/screen"
	"github.com/abhisek/wordgarden/internal/session"
	"github.com/abhisek/wordgarden/internal/ui/components"
	"github.com/abhisek/wordgarden/internal/ui/layout"
	"github.com/abhisek/wordgarden/internal/ui/theme"
)

type gameEntry struct {
	game  session.Game
	label string
	icon  string
}

var gameEntries = []gameEntry{
	{session.GameAssociation, "Find the picture", "🖼"},
	{session.GameMemory, "Memory pairs", "🃏"},
	{session.GameRepetition, "Say it with me", "🗣"},
	{session.GameLogic, "Build the sentence", "🧩"},
}

// Screen lists the selected module's words and games.
type Screen struct {
	deps   screen.Deps
	module catalog.Module
	words  []catalog.WordItem
	menu   components.Menu
	err    error
}

var _ screen.Screen = (*Screen)(nil)

func New(deps screen.Deps) *Screen {
	s := &Screen{deps: deps}
	s.module, s.err = deps.Engine.Module()
	if s.err != nil {
		return s
	}
	cat := deps.Engine.Catalog()
	s.words = cat.ModuleWords(s.module)

	items := make([]components.MenuItem, len(gameEntries))
	for i, g := range gameEntries {
		items[i] = components.MenuItem{
			Label:    g.label,
			Icon:     g.icon,
			Disabled: g.game == session.GameLogic && len(cat.ModuleSequences(s.module)) == 0,
			Action:   s.start(g.game),
		}
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *Screen) start(g session.Game) func() tea.Cmd {
	return func() tea.Cmd { return router.Navigate(g.Screen()) }
}

func (s *Screen) ID() nav.Screen { return nav.ModuleOverview }

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string {
	if s.err != nil {
		return "Module"
	}
	return s.module.Icon + " " + s.module.Title
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Play"},
		{Key: "1-9", Description: "Hear a word"},
		{Key: "Esc", Description: "Garden"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	k, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	key := k.String()
	if key == "esc" {
		return s, router.Back()
	}
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		if i := int(key[0] - '1'); i < len(s.words) {
			return s, s.deps.SayWord(s.words[i])
		}
		return s, nil
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	if s.err != nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render("No module selected. Press Esc to go back."))
	}

	lang := s.deps.Engine.Language()
	stats := s.deps.Engine.Stats()

	var words strings.Builder
	for i, w := range s.words {
		mark := "  "
		if stats.HasLearned(w.ID) {
			mark = lipgloss.NewStyle().Foreground(theme.Success).Render("✓ ")
		}
		fmt.Fprintf(&words, "%s%d. %s %s\n", mark, i+1, w.Emoji, w.Text(lang))
	}

	cw := components.ContentWidth(width)
	content := lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render(s.module.Icon+"  "+s.module.Title),
		"",
		components.Card(strings.TrimRight(words.String(), "\n"), cw),
		"",
		s.menu.View(),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
