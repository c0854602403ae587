package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordgarden/internal/ui/theme"
)

type answerMark int

const (
	unmarked answerMark = iota
	matched
	missed
)

// AnswerField is the typing box of the repetition game. Check compares the
// typed text with the word and clears the box; the result mark stays on
// screen until the child types again.
type AnswerField struct {
	input textinput.Model
	mark  answerMark
}

func NewAnswerField(placeholder string, limit int) AnswerField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if limit > 0 {
		ti.CharLimit = limit
	}
	ti.Focus()
	return AnswerField{input: ti}
}

// Focus returns the cursor blink command.
func (f AnswerField) Focus() tea.Cmd {
	return f.input.Focus()
}

func (f AnswerField) Update(msg tea.Msg) (AnswerField, tea.Cmd) {
	if _, ok := msg.(tea.KeyPressMsg); ok {
		f.mark = unmarked
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

// Answer is the typed text with runs of spaces collapsed.
func (f AnswerField) Answer() string {
	return strings.Join(strings.Fields(f.input.Value()), " ")
}

// Check reports whether the answer spells word, ignoring case and spacing.
func (f *AnswerField) Check(word string) bool {
	ok := strings.EqualFold(f.Answer(), strings.Join(strings.Fields(word), " "))
	f.mark = missed
	if ok {
		f.mark = matched
	}
	f.input.Reset()
	return ok
}

func (f AnswerField) View() string {
	view := f.input.View()
	switch f.mark {
	case matched:
		view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	case missed:
		view += " " + lipgloss.NewStyle().Foreground(theme.TextDim).Render("·")
	}
	return view
}
