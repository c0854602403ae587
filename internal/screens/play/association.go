package play

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordgarden/internal/games"
	"github.com/abhisek/wordgarden/internal/nav"
	"github.com/abhisek/wordgarden/internal/screen"
	"github.com/abhisek/wordgarden/internal/ui/components"
	"github.com/abhisek/wordgarden/internal/ui/layout"
	"github.com/abhisek/wordgarden/internal/ui/theme"
)

// Association hears a word and picks its picture.
type Association struct {
	base
	game   *games.Association
	choice components.MultiChoice
	err    error
}

var _ screen.Screen = (*Association)(nil)

func NewAssociation(deps screen.Deps) *Association {
	s := &Association{base: base{deps: deps}}
	m, err := deps.Engine.Module()
	if err == nil {
		s.game, err = games.NewAssociation(deps.Engine.Catalog(), m, deps.Rng())
	}
	s.err = err
	if err == nil {
		s.deal()
	}
	return s
}

func (s *Association) deal() {
	opts := s.game.Options()
	labels := make([]string, len(opts))
	for i, w := range opts {
		labels[i] = w.Emoji
	}
	s.choice = components.NewMultiChoice("Which picture is it?", labels)
}

func (s *Association) ID() nav.Screen { return nav.GameAssociation }

func (s *Association) Title() string { return "Find the picture" }

func (s *Association) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "1-3", Description: "Pick"},
		{Key: "R", Description: "Hear again"},
		{Key: "Esc", Description: "Stop"},
	}
}

func (s *Association) Init() tea.Cmd {
	if s.err != nil {
		return nil
	}
	return s.deps.SayWord(s.game.Target())
}

func (s *Association) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if cmd, ok := s.handleCommon(msg); ok {
		return s, cmd
	}
	k, ok := msg.(tea.KeyPressMsg)
	if !ok || s.err != nil || s.done {
		return s, nil
	}
	if k.String() == "r" {
		return s, s.deps.SayWord(s.game.Target())
	}

	s.choice, _ = s.choice.Update(msg)
	i, picked := s.choice.Take()
	if !picked {
		return s, nil
	}

	target := s.game.Target()
	correct, err := s.game.Choose(s.game.Options()[i].ID)
	if err != nil {
		return s, nil
	}
	if !correct {
		s.choice.MarkWrong(i)
		s.cheer = ""
		s.note = "Not this one. Try again."
		return s, nil
	}

	s.note = ""
	praise := s.deps.Praise(target.Text(s.deps.Engine.Language()))
	if s.game.Done() {
		s.done = true
		return s, tea.Batch(praise, finish(s.game))
	}
	s.deal()
	return s, tea.Batch(praise, s.deps.SayWord(s.game.Target()))
}

func (s *Association) View(width, height int) string {
	if s.err != nil {
		return setupError(s.err, width, height)
	}
	lang := s.deps.Engine.Language()
	word := theme.Word(s.fontSize()).Render(s.game.Target().Text(lang))

	content := lipgloss.JoinVertical(lipgloss.Center,
		theme.Hint.Render(fmt.Sprintf("Round %d of %d", s.game.Round(), s.game.Rounds())),
		"",
		word,
		"",
		s.choice.View(),
		s.footer(),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
