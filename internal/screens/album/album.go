// Package album shows the sticker collection, one page per module.
package album

import (
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordgarden/internal/catalog"
	"github.com/abhisek/wordgarden/internal/nav"
	"github.com/abhisek/wordgarden/internal/progress"
	"github.com/abhisek/wordgarden/internal/router"
	"github.com/abhisek/wordgarden/internal/screen"
	"github.com/abhisek/wordgarden/internal/ui/components"
	"github.com/abhisek/wordgarden/internal/ui/layout"
	"github.com/abhisek/wordgarden/internal/ui/theme"
)

const (
	lockedSticker = "❔"
	stickerWidth  = 14
	perRow        = 4
)

// Screen is the sticker album.
type Screen struct {
	deps screen.Deps
	page int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

func New(deps screen.Deps) *Screen {
	return &Screen{deps: deps}
}

func (s *Screen) ID() nav.Screen { return nav.Album }

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Sticker Album" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next page"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	k, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	n := len(s.deps.Engine.Catalog().Modules)
	switch k.String() {
	case "esc":
		return s, router.Back()
	case "tab", "right", "l":
		s.page = (s.page + 1) % n
	case "shift+tab", "left", "h":
		s.page = (s.page - 1 + n) % n
	}
	return s, nil
}

// Collected counts the stickers in stats that name catalog words.
func Collected(stats progress.UserStats, cat *catalog.Catalog) int {
	n := 0
	for _, id := range stats.UnlockedStickerIDs {
		if _, ok := cat.Word(id); ok {
			n++
		}
	}
	return n
}

func (s *Screen) View(width, height int) string {
	cat := s.deps.Engine.Catalog()
	stats := s.deps.Engine.Stats()
	lang := s.deps.Engine.Language()

	var b strings.Builder
	b.WriteString(theme.Title.Render("📒 Sticker Album"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%d of %d stickers", Collected(stats, cat), len(cat.Words))))
	b.WriteString("\n\n")

	if !s.deps.Engine.Settings().RewardEnabled(progress.RewardStickers) {
		b.WriteString(theme.Hint.Render("Stickers are switched off in settings."))
		b.WriteString("\n\n")
	}

	var tabs []string
	for i, m := range cat.Modules {
		label := m.Icon + " " + m.Title
		if i == s.page {
			tabs = append(tabs, theme.Selected.Render(label))
		} else {
			tabs = append(tabs, theme.Locked.Render(label))
		}
	}
	b.WriteString(strings.Join(tabs, "   "))
	b.WriteString("\n\n")

	m := cat.Modules[s.page]
	var rows []string
	var row []string
	for _, w := range cat.ModuleWords(m) {
		label := lockedSticker
		owned := slices.Contains(stats.UnlockedStickerIDs, w.ID)
		if owned {
			label = w.Emoji + " " + w.Text(lang)
		}
		row = append(row, components.Tile(label, false, !owned, stickerWidth))
		if len(row) == perRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	b.WriteString(strings.Join(rows, "\n"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
