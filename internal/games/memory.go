package games

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/wordgarden/internal/catalog"
	"github.com/abhisek/wordgarden/internal/session"
)

// Face is what a memory card shows when turned up.
type Face int

const (
	FacePicture Face = iota
	FaceText
)

// Card is one memory tile.
type Card struct {
	ID      string
	WordID  string
	Face    Face
	Content string
	Up      bool
	Matched bool
}

// FlipResult reports what a flip did.
type FlipResult int

const (
	FlipFirst FlipResult = iota
	FlipMatch
	FlipMismatch
)

// Memory is a pairs game: each word has a picture card and a text card.
type Memory struct {
	module  string
	cards   []Card
	open    []int
	pairs   int
	matched int
	moves   int
	learned learnedSet
}

// NewMemory deals two cards per module word, shuffled.
func NewMemory(c *catalog.Catalog, m catalog.Module, lang catalog.Language, rng *rand.Rand) (*Memory, error) {
	words := c.ModuleWords(m)
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	cards := make([]Card, 0, 2*len(words))
	for _, w := range words {
		cards = append(cards,
			Card{ID: w.ID + "-img", WordID: w.ID, Face: FacePicture, Content: w.Emoji},
			Card{ID: w.ID + "-txt", WordID: w.ID, Face: FaceText, Content: w.Text(lang)},
		)
	}
	orRandom(rng).Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
	return &Memory{module: m.ID, cards: cards, pairs: len(words)}, nil
}

func (g *Memory) Kind() session.Game { return session.GameMemory }

// Cards returns a snapshot of the board.
func (g *Memory) Cards() []Card {
	out := make([]Card, len(g.cards))
	copy(out, g.cards)
	return out
}

func (g *Memory) Pairs() int   { return g.pairs }
func (g *Memory) Matched() int { return g.matched }
func (g *Memory) Moves() int   { return g.moves }

// Pending reports whether a mismatched pair is still face up.
func (g *Memory) Pending() bool { return len(g.open) == 2 }

// Flip turns card i face up. The second flip of a pair either matches,
// learning the word, or leaves both cards up until Settle.
func (g *Memory) Flip(i int) (FlipResult, error) {
	if g.Done() {
		return 0, ErrFinished
	}
	if i < 0 || i >= len(g.cards) {
		return 0, fmt.Errorf("%w: card %d", ErrNoSuchPick, i)
	}
	if g.Pending() {
		return 0, ErrBusy
	}
	c := &g.cards[i]
	if c.Up || c.Matched {
		return 0, fmt.Errorf("%w: card %d is already up", ErrNoSuchPick, i)
	}
	c.Up = true
	g.open = append(g.open, i)
	if len(g.open) == 1 {
		return FlipFirst, nil
	}

	g.moves++
	a, b := &g.cards[g.open[0]], &g.cards[g.open[1]]
	if a.WordID != b.WordID {
		return FlipMismatch, nil
	}
	a.Matched, b.Matched = true, true
	g.open = g.open[:0]
	g.matched++
	g.learned.add(a.WordID)
	return FlipMatch, nil
}

// Settle turns a mismatched pair back down.
func (g *Memory) Settle() {
	for _, i := range g.open {
		g.cards[i].Up = false
	}
	g.open = g.open[:0]
}

func (g *Memory) Done() bool { return g.matched == g.pairs }

func (g *Memory) Outcome() session.Outcome {
	points := 0
	if g.Done() {
		points = MemoryPoints
	}
	return session.Outcome{
		Game:     session.GameMemory,
		ModuleID: g.module,
		Points:   points,
		Learned:  g.learned.list(),
	}
}
