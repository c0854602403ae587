// Package router keeps the visible screen in step with the navigation state
// machine.
package router

import (
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordgarden/internal/nav"
	"github.com/abhisek/wordgarden/internal/screen"
	"github.com/abhisek/wordgarden/internal/session"
)

// NavigateMsg requests a move to To. Edges the state machine rejects are
// ignored.
type NavigateMsg struct {
	To nav.Screen
}

// BackMsg requests the parent screen.
type BackMsg struct{}

// OutcomeMsg reports a finished game. The app records it and returns to the
// module overview.
type OutcomeMsg struct {
	Outcome session.Outcome
}

// Navigator is the navigation state the router follows. *session.Engine
// implements it.
type Navigator interface {
	Current() nav.Screen
	Navigate(to nav.Screen) error
	Back() (nav.Screen, bool)
}

// Router hosts the screen for the navigator's current state.
type Router struct {
	nav     Navigator
	build   screen.Factory
	active  screen.Screen
	lastErr error
}

// New creates a Router showing the navigator's current screen.
func New(n Navigator, build screen.Factory) *Router {
	r := &Router{nav: n, build: build}
	r.active = build(n.Current())
	return r
}

// Active returns the hosted screen.
func (r *Router) Active() screen.Screen {
	return r.active
}

// Current returns the navigation state.
func (r *Router) Current() nav.Screen {
	return r.nav.Current()
}

// Err returns the last rejected navigation, if any.
func (r *Router) Err() error {
	return r.lastErr
}

// Navigate moves to to and builds its screen.
func (r *Router) Navigate(to nav.Screen) tea.Cmd {
	if err := r.nav.Navigate(to); err != nil {
		r.lastErr = err
		return nil
	}
	r.lastErr = nil
	return r.Sync()
}

// Back moves to the parent screen, if there is one.
func (r *Router) Back() tea.Cmd {
	if _, ok := r.nav.Back(); !ok {
		r.lastErr = errors.New("router: no parent screen")
		return nil
	}
	r.lastErr = nil
	return r.Sync()
}

// Sync rebuilds the hosted screen when the navigator moved without the
// router, as Engine.FinishGame does.
func (r *Router) Sync() tea.Cmd {
	cur := r.nav.Current()
	if r.active != nil && r.active.ID() == cur {
		return nil
	}
	r.active = r.build(cur)
	return r.active.Init()
}

// Update handles navigation messages and forwards everything else to the
// hosted screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NavigateMsg:
		return r.Navigate(msg.To)
	case BackMsg:
		return r.Back()
	}

	if r.active == nil {
		return nil
	}
	updated, cmd := r.active.Update(msg)
	r.active = updated
	return cmd
}

// View renders the hosted screen.
func (r *Router) View(width, height int) string {
	if r.active == nil {
		return ""
	}
	return r.active.View(width, height)
}

// Navigate returns a command emitting NavigateMsg{to}.
func Navigate(to nav.Screen) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{To: to} }
}

// Back returns a command emitting BackMsg.
func Back() tea.Cmd {
	return func() tea.Msg { return BackMsg{} }
}
