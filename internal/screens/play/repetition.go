package play

import (
	"fmt"

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

// Repetition plays each word slowly and asks the child to say it, then
// type it. Any non-empty answer counts.
type Repetition struct {
	base
	game  *games.Repetition
	input components.AnswerField
	err   error
}

var _ screen.Screen = (*Repetition)(nil)

func NewRepetition(deps screen.Deps) *Repetition {
	s := &Repetition{base: base{deps: deps}, input: components.NewAnswerField("type what you heard", 40)}
	m, err := deps.Engine.Module()
	if err == nil {
		s.game, err = games.NewRepetition(deps.Engine.Catalog(), m)
	}
	s.err = err
	return s
}

func (s *Repetition) ID() nav.Screen { return nav.GameRepetition }

func (s *Repetition) Title() string { return "Say it with me" }

func (s *Repetition) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "I said it"},
		{Key: "Tab", Description: "Hear again"},
		{Key: "Esc", Description: "Stop"},
	}
}

func (s *Repetition) Init() tea.Cmd {
	if s.err != nil {
		return nil
	}
	return tea.Batch(s.input.Focus(), s.guide())
}

// guide speaks the current word syllable by syllable.
func (s *Repetition) guide() tea.Cmd {
	lang := s.deps.Engine.Language()
	return s.deps.Say(speech.Guided(s.game.Current().Text(lang), lang))
}

func (s *Repetition) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if cmd, ok := s.handleCommon(msg); ok {
		return s, cmd
	}
	if s.err != nil || s.done {
		return s, nil
	}

	if k, ok := msg.(tea.KeyPressMsg); ok {
		switch k.String() {
		case "tab":
			return s, s.guide()
		case "enter":
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Repetition) submit() tea.Cmd {
	answer := s.input.Answer()
	if answer == "" {
		s.note = "Say the word, then type it and press Enter."
		return nil
	}
	lang := s.deps.Engine.Language()
	word := s.game.Current().Text(lang)
	exact := s.input.Check(word)
	s.cheer, s.note = "", ""
	if !exact {
		s.note = fmt.Sprintf("Nice try! It is %q.", word)
	}

	if err := s.game.Repeated(); err != nil {
		return nil
	}
	praise := s.deps.Praise(word)
	if s.game.Done() {
		s.done = true
		return tea.Batch(praise, finish(s.game))
	}
	return tea.Batch(praise, s.guide())
}

func (s *Repetition) View(width, height int) string {
	if s.err != nil {
		return setupError(s.err, width, height)
	}
	pos, total := s.game.Position()
	w := s.game.Current()

	content := lipgloss.JoinVertical(lipgloss.Center,
		components.NewProgressBar("Words", pos-1, total, 40).View(),
		"",
		lipgloss.NewStyle().Render(w.Emoji),
		theme.Word(s.fontSize()).Render(w.Text(s.deps.Engine.Language())),
		"",
		s.input.View(),
		"",
		s.footer(),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
