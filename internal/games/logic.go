package games

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/abhisek/wordgarden/internal/catalog"
	"github.com/abhisek/wordgarden/internal/session"
)

// Piece is one movable part of a sequence round.
type Piece struct {
	ID     string
	WordID string
}

// Check is the state of a round after a pick.
type Check int

const (
	CheckIncomplete Check = iota
	CheckCorrect
	CheckWrong
)

// Logic asks the child to put the parts of each module sequence in order.
// A complete wrong order reshuffles the round.
type Logic struct {
	module    string
	sequences []catalog.LogicSequence
	rng       *rand.Rand
	round     int
	pool      []Piece
	order     []Piece
	mistakes  int
}

func NewLogic(c *catalog.Catalog, m catalog.Module, rng *rand.Rand) (*Logic, error) {
	seqs := c.ModuleSequences(m)
	if len(seqs) == 0 {
		return nil, ErrEmpty
	}
	for i := range seqs {
		parts := slices.Clone(seqs[i].Parts)
		slices.SortStableFunc(parts, func(a, b catalog.SequencePart) int { return a.Order - b.Order })
		seqs[i].Parts = parts
	}
	g := &Logic{module: m.ID, sequences: seqs, rng: orRandom(rng)}
	g.reset()
	return g, nil
}

func (g *Logic) reset() {
	parts := g.sequences[g.round].Parts
	pool := make([]Piece, len(parts))
	for i, p := range parts {
		pool[i] = Piece{ID: fmt.Sprintf("%s-%d", p.WordID, i), WordID: p.WordID}
	}
	g.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	g.pool = pool
	g.order = nil
}

func (g *Logic) Kind() session.Game { return session.GameLogic }

// Sequence is the current round's sequence.
func (g *Logic) Sequence() catalog.LogicSequence {
	return g.sequences[min(g.round, len(g.sequences)-1)]
}

func (g *Logic) Round() int  { return min(g.round+1, len(g.sequences)) }
func (g *Logic) Rounds() int { return len(g.sequences) }

// Mistakes counts wrong complete orders.
func (g *Logic) Mistakes() int { return g.mistakes }

// Pool is the pieces not yet placed.
func (g *Logic) Pool() []Piece { return slices.Clone(g.pool) }

// Order is the pieces placed so far.
func (g *Logic) Order() []Piece { return slices.Clone(g.order) }

// Pick moves a piece from the pool to the end of the order. When the
// order is complete it is checked: correct advances the round, wrong
// reshuffles it.
func (g *Logic) Pick(id string) (Check, error) {
	if g.Done() {
		return CheckIncomplete, ErrFinished
	}
	i := slices.IndexFunc(g.pool, func(p Piece) bool { return p.ID == id })
	if i < 0 {
		return CheckIncomplete, fmt.Errorf("%w: %s", ErrNoSuchPick, id)
	}
	g.order = append(g.order, g.pool[i])
	g.pool = slices.Delete(g.pool, i, i+1)
	if len(g.pool) > 0 {
		return CheckIncomplete, nil
	}

	want := g.sequences[g.round].Parts
	for k, p := range g.order {
		if p.WordID != want[k].WordID {
			g.mistakes++
			g.reset()
			return CheckWrong, nil
		}
	}
	g.round++
	if !g.Done() {
		g.reset()
	}
	return CheckCorrect, nil
}

// Undo returns the last placed piece to the pool.
func (g *Logic) Undo() bool {
	if len(g.order) == 0 || g.Done() {
		return false
	}
	last := g.order[len(g.order)-1]
	g.order = g.order[:len(g.order)-1]
	g.pool = append(g.pool, last)
	return true
}

func (g *Logic) Done() bool { return g.round >= len(g.sequences) }

// Outcome carries no learned words; ordering practices words already met.
func (g *Logic) Outcome() session.Outcome {
	return session.Outcome{
		Game:     session.GameLogic,
		ModuleID: g.module,
		Points:   g.round * LogicPointsPerRound,
	}
}
