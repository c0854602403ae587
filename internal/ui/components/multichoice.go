package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordgarden/internal/ui/theme"
)

// MultiChoice is a picture-choice selector. Enter or a number key picks an
// option; the owner decides whether the pick was right and calls Retry or
// replaces the component.
type MultiChoice struct {
	Prompt   string
	Options  []string
	Selected int
	Chosen   int // -1 until a pick
	Wrong    map[int]bool
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(prompt string, options []string) MultiChoice {
	return MultiChoice{
		Prompt:  prompt,
		Options: options,
		Chosen:  -1,
		Wrong:   map[int]bool{},
	}
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k", "left", "h":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j", "right", "l":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter", "space":
		m.Chosen = m.Selected
	default:
		if len(key) == 1 && key[0] >= '1' && int(key[0]-'1') < len(m.Options) {
			m.Selected = int(key[0] - '1')
			m.Chosen = m.Selected
		}
	}

	return m, nil
}

// Take returns the pending pick and clears it.
func (m *MultiChoice) Take() (int, bool) {
	if m.Chosen < 0 {
		return 0, false
	}
	i := m.Chosen
	m.Chosen = -1
	return i, true
}

// MarkWrong dims option i.
func (m *MultiChoice) MarkWrong(i int) {
	m.Wrong[i] = true
}

// View renders the multiple-choice component.
func (m MultiChoice) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Prompt) + "\n\n"

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		switch {
		case m.Wrong[i]:
			s += theme.Locked.Render(line) + "\n"
		case i == m.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
