// Package nav is the screen state machine. It knows which screen may
// follow which, and nothing about how screens look.
package nav

import (
	"errors"
	"fmt"
	"sync"
)

// Screen identifies a top-level view.
type Screen string

const (
	Landing          Screen = "landing"
	LanguageSelector Screen = "language-selector"
	Dashboard        Screen = "dashboard"
	ModuleOverview   Screen = "module-overview"
	GameAssociation  Screen = "game-association"
	GameMemory       Screen = "game-memory"
	GameRepetition   Screen = "game-repetition"
	GameLogic        Screen = "game-logic-sequence"
	Settings         Screen = "settings"
	Album            Screen = "album"
	ParentDashboard  Screen = "parent-dashboard"
)

// Games lists the game screens in menu order.
var Games = []Screen{GameAssociation, GameMemory, GameRepetition, GameLogic}

// IsGame reports whether s is a game screen.
func (s Screen) IsGame() bool {
	switch s {
	case GameAssociation, GameMemory, GameRepetition, GameLogic:
		return true
	}
	return false
}

// ErrInvalidTransition is returned for an edge not in the table.
var ErrInvalidTransition = errors.New("nav: invalid transition")

// transitions is the full edge set, forward and back.
var transitions = map[Screen][]Screen{
	Landing:          {LanguageSelector, ParentDashboard},
	LanguageSelector: {Dashboard, Landing},
	Dashboard:        {ModuleOverview, Settings, Album, LanguageSelector},
	ModuleOverview:   {GameAssociation, GameMemory, GameRepetition, GameLogic, Dashboard},
	GameAssociation:  {ModuleOverview},
	GameMemory:       {ModuleOverview},
	GameRepetition:   {ModuleOverview},
	GameLogic:        {ModuleOverview},
	Settings:         {Dashboard},
	Album:            {Dashboard},
	ParentDashboard:  {Landing},
}

// parent is where Back goes from each screen.
var parent = map[Screen]Screen{
	LanguageSelector: Landing,
	Dashboard:        LanguageSelector,
	ModuleOverview:   Dashboard,
	GameAssociation:  ModuleOverview,
	GameMemory:       ModuleOverview,
	GameRepetition:   ModuleOverview,
	GameLogic:        ModuleOverview,
	Settings:         Dashboard,
	Album:            Dashboard,
	ParentDashboard:  Landing,
}

// Allowed reports whether from → to is a valid edge.
func Allowed(from, to Screen) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Next returns the screens reachable from s.
func Next(s Screen) []Screen {
	out := make([]Screen, len(transitions[s]))
	copy(out, transitions[s])
	return out
}

// Navigator holds the current screen. It is safe for concurrent use.
type Navigator struct {
	mu      sync.Mutex
	current Screen
}

// New returns a Navigator positioned at Landing.
func New() *Navigator {
	return &Navigator{current: Landing}
}

// Current returns the active screen.
func (n *Navigator) Current() Screen {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Go moves to to, or returns ErrInvalidTransition and stays put.
func (n *Navigator) Go(to Screen) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !Allowed(n.current, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, n.current, to)
	}
	n.current = to
	return nil
}

// Back moves to the parent screen and returns it. At Landing it stays
// and returns false.
func (n *Navigator) Back() (Screen, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	p, ok := parent[n.current]
	if !ok {
		return n.current, false
	}
	n.current = p
	return p, true
}
