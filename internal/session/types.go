package session

import (
	"context"
	"time"

	"github.com/abhisek/wordgarden/internal/nav"
	"github.com/abhisek/wordgarden/internal/progress"
	"github.com/abhisek/wordgarden/internal/store"
)

// DefaultTickInterval is the practice-time ticker period.
const DefaultTickInterval = 60 * time.Second

// Game names a game kind in outcomes and the journal.
type Game string

const (
	GameAssociation Game = "association"
	GameMemory      Game = "memory"
	GameRepetition  Game = "repetition"
	GameLogic       Game = "logic-sequence"
)

// Screen returns the navigation screen that hosts g.
func (g Game) Screen() nav.Screen {
	switch g {
	case GameAssociation:
		return nav.GameAssociation
	case GameMemory:
		return nav.GameMemory
	case GameRepetition:
		return nav.GameRepetition
	case GameLogic:
		return nav.GameLogic
	}
	return ""
}

// GameForScreen is the inverse of Game.Screen.
func GameForScreen(s nav.Screen) (Game, bool) {
	for _, g := range []Game{GameAssociation, GameMemory, GameRepetition, GameLogic} {
		if g.Screen() == s {
			return g, true
		}
	}
	return "", false
}

// Outcome is what a finished game reports.
type Outcome struct {
	Game     Game
	ModuleID string
	Points   int
	Learned  []string
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ProgressStore is the persistence the engine writes through to.
// *progress.Store implements it.
type ProgressStore interface {
	Load(ctx context.Context) (progress.UserStats, progress.AppSettings)
	SaveStats(ctx context.Context, stats progress.UserStats) error
	SaveSettings(ctx context.Context, settings progress.AppSettings) error
}

// Journal receives one event per recorded outcome. store.EventRepo
// implements it.
type Journal interface {
	AppendOutcome(ctx context.Context, data store.OutcomeEventData) error
}
