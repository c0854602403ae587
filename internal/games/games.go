// Package games holds the round logic of the four mini-games, free of any
// rendering. Each game is driven by child input and reports a
// session.Outcome once Done.
package games

import (
	"errors"
	"math/rand/v2"

	"github.com/abhisek/wordgarden/internal/session"
)

// Points per game.
const (
	AssociationPointsPerRound = 10
	MemoryPoints              = 50
	RepetitionPoints          = 30
	LogicPointsPerRound       = 15
)

// DistractorCount is how many wrong options an association round offers.
const DistractorCount = 2

var (
	ErrEmpty      = errors.New("games: module has nothing to play")
	ErrFinished   = errors.New("games: game is finished")
	ErrNoSuchPick = errors.New("games: no such option")
	ErrBusy       = errors.New("games: settle the previous pair first")
)

// Game is the common surface of every mini-game.
type Game interface {
	Kind() session.Game
	Done() bool
	Outcome() session.Outcome
}

// NewRand returns a generator seeded from seed. Tests pass a fixed seed;
// the app passes a random one.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func orRandom(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return NewRand(rand.Uint64())
}

// learnedSet keeps ids in first-seen order.
type learnedSet struct {
	seen map[string]struct{}
	ids  []string
}

func (l *learnedSet) add(id string) {
	if l.seen == nil {
		l.seen = map[string]struct{}{}
	}
	if _, ok := l.seen[id]; ok {
		return
	}
	l.seen[id] = struct{}{}
	l.ids = append(l.ids, id)
}

func (l *learnedSet) list() []string {
	out := make([]string, len(l.ids))
	copy(out, l.ids)
	return out
}
