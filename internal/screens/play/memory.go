package play

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordgarden/internal/catalog"
	"github.com/abhisek/wordgarden/internal/games"
	"github.com/abhisek/wordgarden/internal/nav"
	"github.com/abhisek/wordgarden/internal/screen"
	"github.com/abhisek/wordgarden/internal/ui/components"
	"github.com/abhisek/wordgarden/internal/ui/layout"
	"github.com/abhisek/wordgarden/internal/ui/theme"
)

const (
	memoryColumns = 4
	tileWidth     = 12
	settleDelay   = 1200 * time.Millisecond
	calmDelay     = 2500 * time.Millisecond
)

// settleMsg turns a mismatched pair back down. gen ties it to the flip
// that scheduled it.
type settleMsg struct{ gen int }

// Memory is the pairs game: one picture card and one word card per word.
type Memory struct {
	base
	game   *games.Memory
	cursor int
	gen    int
	err    error
}

var _ screen.Screen = (*Memory)(nil)

func NewMemory(deps screen.Deps) *Memory {
	s := &Memory{base: base{deps: deps}}
	m, err := deps.Engine.Module()
	if err == nil {
		s.game, err = games.NewMemory(deps.Engine.Catalog(), m, deps.Engine.Language(), deps.Rng())
	}
	s.err = err
	return s
}

func (s *Memory) ID() nav.Screen { return nav.GameMemory }

func (s *Memory) Init() tea.Cmd { return nil }

func (s *Memory) Title() string { return "Memory pairs" }

func (s *Memory) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←↑↓→", Description: "Move"},
		{Key: "Enter", Description: "Flip"},
		{Key: "Esc", Description: "Stop"},
	}
}

func (s *Memory) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if cmd, ok := s.handleCommon(msg); ok {
		return s, cmd
	}
	if s.err != nil || s.done {
		return s, nil
	}

	switch msg := msg.(type) {
	case settleMsg:
		if msg.gen == s.gen {
			s.game.Settle()
		}
		return s, nil

	case tea.KeyPressMsg:
		n := len(s.game.Cards())
		switch msg.String() {
		case "left", "h":
			s.cursor = (s.cursor - 1 + n) % n
		case "right", "l":
			s.cursor = (s.cursor + 1) % n
		case "up", "k":
			if s.cursor-memoryColumns >= 0 {
				s.cursor -= memoryColumns
			}
		case "down", "j":
			if s.cursor+memoryColumns < n {
				s.cursor += memoryColumns
			}
		case "enter", "space":
			return s, s.flip()
		}
	}
	return s, nil
}

func (s *Memory) flip() tea.Cmd {
	if s.game.Pending() {
		// A third flip settles the shown pair at once.
		s.gen++
		s.game.Settle()
	}
	card := s.game.Cards()[s.cursor]
	res, err := s.game.Flip(s.cursor)
	if err != nil {
		if errors.Is(err, games.ErrNoSuchPick) {
			s.note = "That card is already open."
		}
		return nil
	}
	s.note = ""

	word, _ := s.deps.Engine.Catalog().Word(card.WordID)
	switch res {
	case games.FlipMatch:
		praise := s.deps.Praise(word.Text(s.deps.Engine.Language()))
		if s.game.Done() {
			s.done = true
			return tea.Batch(praise, finish(s.game))
		}
		return tea.Batch(s.deps.SayWord(word), praise)
	case games.FlipMismatch:
		s.cheer = ""
		s.gen++
		gen := s.gen
		delay := settleDelay
		if s.deps.Engine.Settings().CalmMode {
			delay = calmDelay
		}
		return tea.Tick(delay, func(time.Time) tea.Msg { return settleMsg{gen: gen} })
	}
	if card.Face == games.FaceText {
		return s.deps.SayWord(word)
	}
	return nil
}

// cardLabel is what a card shows.
func cardLabel(c games.Card, w catalog.WordItem) string {
	if !c.Up && !c.Matched {
		return "🌿"
	}
	if c.Face == games.FacePicture {
		return w.Emoji
	}
	return c.Content
}

func (s *Memory) View(width, height int) string {
	if s.err != nil {
		return setupError(s.err, width, height)
	}
	cat := s.deps.Engine.Catalog()
	cards := s.game.Cards()

	var rows []string
	for start := 0; start < len(cards); start += memoryColumns {
		var row []string
		for i := start; i < min(start+memoryColumns, len(cards)); i++ {
			w, _ := cat.Word(cards[i].WordID)
			row = append(row, components.Tile(cardLabel(cards[i], w), i == s.cursor, cards[i].Matched, tileWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	status := fmt.Sprintf("Pairs %d of %d   Moves %d", s.game.Matched(), s.game.Pairs(), s.game.Moves())
	content := lipgloss.JoinVertical(lipgloss.Center,
		theme.Hint.Render(status),
		"",
		strings.Join(rows, "\n"),
		"",
		s.footer(),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
