package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordgarden/internal/ui/theme"
)

// MenuItem is one choice. A Disabled item is a locked module or game.
type MenuItem struct {
	Label    string
	Icon     string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list of choices. Arrows move the cursor with
// wrap-around and skip locked items. A Numbered menu of at most nine items
// also takes the number keys, which choose an item directly.
type Menu struct {
	Items    []MenuItem
	Selected int
	Numbered bool
}

func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.move(1)
	if m.Selected < 0 {
		m.Selected = 0
	}
	return m
}

// move steps the cursor by dir to the next open item, wrapping at the
// ends. With nothing open the cursor stays put.
func (m *Menu) move(dir int) {
	n := len(m.Items)
	for step := 1; step <= n; step++ {
		i := ((m.Selected+dir*step)%n + n) % n
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

func (m Menu) choose(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) || m.Items[i].Disabled || m.Items[i].Action == nil {
		return nil
	}
	return m.Items[i].Action()
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch k := key.String(); k {
	case "up", "k":
		m.move(-1)
	case "down", "j", "tab":
		m.move(1)
	case "enter", "space":
		return m, m.choose(m.Selected)
	default:
		if m.numbered() && len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
			i := int(k[0] - '1')
			if i < len(m.Items) && !m.Items[i].Disabled {
				m.Selected = i
				return m, m.choose(i)
			}
		}
	}
	return m, nil
}

func (m Menu) numbered() bool { return m.Numbered && len(m.Items) <= 9 }

func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		label := item.Label
		if item.Icon != "" {
			label = item.Icon + "  " + label
		}
		if m.numbered() {
			label = fmt.Sprintf("%d. %s", i+1, label)
		}
		switch {
		case item.Disabled:
			b.WriteString(theme.Locked.Render("  🔒 " + label))
		case i == m.Selected:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  ▸ " + label))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("    " + label))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
