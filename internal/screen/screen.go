// Package screen defines the contract between the router and the views it
// hosts.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordgarden/internal/nav"
	"github.com/abhisek/wordgarden/internal/ui/layout"
)

// Screen is one top-level view. Each nav.Screen has exactly one
// implementation, built fresh on every visit.
type Screen interface {
	Init() tea.Cmd

	// Update handles messages and returns the updated screen.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area (header and footer excluded).
	View(width, height int) string

	// Title is shown in the header.
	Title() string

	// ID is the navigation state this view renders.
	ID() nav.Screen
}

// KeyHintProvider is implemented by screens with their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Factory builds the view for a navigation state.
type Factory func(id nav.Screen) Screen
