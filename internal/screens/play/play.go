// Package play hosts the four mini-games. Each screen drives one
// internal/games round engine and reports its outcome through the router
// when the game is done. Leaving early records nothing.
package play

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordgarden/internal/games"
	"github.com/abhisek/wordgarden/internal/nav"
	"github.com/abhisek/wordgarden/internal/router"
	"github.com/abhisek/wordgarden/internal/screen"
	"github.com/abhisek/wordgarden/internal/session"
	"github.com/abhisek/wordgarden/internal/ui/theme"
)

// New builds the game screen for id.
func New(deps screen.Deps, id nav.Screen) screen.Screen {
	g, _ := session.GameForScreen(id)
	switch g {
	case session.GameAssociation:
		return NewAssociation(deps)
	case session.GameMemory:
		return NewMemory(deps)
	case session.GameRepetition:
		return NewRepetition(deps)
	case session.GameLogic:
		return NewSequence(deps)
	}
	return &broken{id: id, err: fmt.Errorf("play: %s is not a game", id)}
}

// finish reports g's outcome.
func finish(g games.Game) tea.Cmd {
	o := g.Outcome()
	return func() tea.Msg { return router.OutcomeMsg{Outcome: o} }
}

// base carries what every game screen shares.
type base struct {
	deps  screen.Deps
	cheer string
	note  string
	done  bool
}

// handleCommon deals with esc and cheer lines. It reports whether msg was
// consumed.
func (b *base) handleCommon(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case screen.CheerMsg:
		b.cheer = msg.Text
		return nil, true
	case tea.KeyPressMsg:
		if msg.String() == "esc" {
			return router.Back(), true
		}
	}
	return nil, false
}

func (b *base) footer() string {
	switch {
	case b.cheer != "":
		return lipgloss.NewStyle().Foreground(theme.Gold).Bold(true).Render(b.cheer)
	case b.note != "":
		return theme.Hint.Render(b.note)
	}
	return ""
}

func (b *base) fontSize() string {
	return string(b.deps.Engine.Settings().FontSize)
}

// setupError renders a module that cannot host the game.
func setupError(err error, width, height int) string {
	msg := "This game cannot start: " + err.Error()
	if errors.Is(err, games.ErrEmpty) {
		msg = "This module has nothing to play here yet."
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Incorrect.Render(msg)+"\n\n"+theme.Hint.Render("Esc to go back"))
}

type broken struct {
	id  nav.Screen
	err error
}

func (s *broken) ID() nav.Screen { return s.id }
func (s *broken) Init() tea.Cmd  { return nil }
func (s *broken) Title() string  { return "Oops" }
func (s *broken) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok && k.String() == "esc" {
		return s, router.Back()
	}
	return s, nil
}
func (s *broken) View(width, height int) string { return setupError(s.err, width, height) }
