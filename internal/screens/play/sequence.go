package play

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordgarden/internal/games"
	"github.com/abhisek/wordgarden/internal/nav"
	"github.com/abhisek/wordgarden/internal/screen"
	"github.com/abhisek/wordgarden/internal/speech"
	"github.com/abhisek/wordgarden/internal/ui/components"
	"github.com/abhisek/wordgarden/internal/ui/layout"
	"github.com/abhisek/wordgarden/internal/ui/theme"
)

// Sequence builds a sentence by picking its words in order.
type Sequence struct {
	base
	game   *games.Logic
	cursor int
	err    error
}

var _ screen.Screen = (*Sequence)(nil)

func NewSequence(deps screen.Deps) *Sequence {
	s := &Sequence{base: base{deps: deps}}
	m, err := deps.Engine.Module()
	if err == nil {
		s.game, err = games.NewLogic(deps.Engine.Catalog(), m, deps.Rng())
	}
	s.err = err
	return s
}

func (s *Sequence) ID() nav.Screen { return nav.GameLogic }

func (s *Sequence) Title() string { return "Build the sentence" }

func (s *Sequence) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Move"},
		{Key: "Enter", Description: "Place"},
		{Key: "Backspace", Description: "Undo"},
		{Key: "Esc", Description: "Stop"},
	}
}

func (s *Sequence) Init() tea.Cmd {
	if s.err != nil {
		return nil
	}
	return s.sayPhrase()
}

func (s *Sequence) sayPhrase() tea.Cmd {
	lang := s.deps.Engine.Language()
	return s.deps.Say(speech.Word(s.game.Sequence().PhraseTranslations[lang], lang, s.deps.Engine.Settings().AudioSpeed))
}

func (s *Sequence) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if cmd, ok := s.handleCommon(msg); ok {
		return s, cmd
	}
	k, ok := msg.(tea.KeyPressMsg)
	if !ok || s.err != nil || s.done {
		return s, nil
	}

	pool := s.game.Pool()
	switch k.String() {
	case "left", "h":
		if s.cursor > 0 {
			s.cursor--
		}
	case "right", "l":
		if s.cursor < len(pool)-1 {
			s.cursor++
		}
	case "backspace":
		s.game.Undo()
	case "r":
		return s, s.sayPhrase()
	case "enter", "space":
		if s.cursor >= len(pool) {
			return s, nil
		}
		return s, s.place(pool[s.cursor])
	}
	return s, nil
}

func (s *Sequence) place(p games.Piece) tea.Cmd {
	check, err := s.game.Pick(p.ID)
	if err != nil {
		return nil
	}
	s.cursor = min(s.cursor, max(len(s.game.Pool())-1, 0))

	switch check {
	case games.CheckWrong:
		s.cheer = ""
		s.note = "Almost! Listen again and try another order."
		return s.sayPhrase()
	case games.CheckCorrect:
		s.note = ""
		s.cursor = 0
		praise := s.deps.Praise("")
		if s.game.Done() {
			s.done = true
			return tea.Batch(praise, finish(s.game))
		}
		return tea.Batch(praise, s.sayPhrase())
	}
	w, _ := s.deps.Engine.Catalog().Word(p.WordID)
	return s.deps.SayWord(w)
}

func (s *Sequence) View(width, height int) string {
	if s.err != nil {
		return setupError(s.err, width, height)
	}
	cat := s.deps.Engine.Catalog()
	lang := s.deps.Engine.Language()

	label := func(p games.Piece) string {
		w, _ := cat.Word(p.WordID)
		return w.Emoji + " " + w.Text(lang)
	}

	var placed []string
	for _, p := range s.game.Order() {
		placed = append(placed, label(p))
	}
	slots := strings.Join(placed, "  →  ")
	if slots == "" {
		slots = theme.Hint.Render("pick the first word")
	}

	var pool []string
	for i, p := range s.game.Pool() {
		pool = append(pool, components.Tile(label(p), i == s.cursor, false, 16))
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		theme.Hint.Render(fmt.Sprintf("Sentence %d of %d", s.game.Round(), s.game.Rounds())),
		"",
		theme.Word(s.fontSize()).Render(slots),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, pool...),
		"",
		s.footer(),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
