package games

import (
	"math/rand/v2"

	"github.com/abhisek/wordgarden/internal/catalog"
	"github.com/abhisek/wordgarden/internal/session"
)

// Association shows a spoken word and asks the child to pick its picture
// among the target and DistractorCount other catalog words.
type Association struct {
	module  string
	words   []catalog.WordItem
	pool    []catalog.WordItem
	rng     *rand.Rand
	round   int
	options []catalog.WordItem
	misses  int
	learned learnedSet
}

// NewAssociation starts a game over the module's words. Distractors are
// drawn from the whole catalog.
func NewAssociation(c *catalog.Catalog, m catalog.Module, rng *rand.Rand) (*Association, error) {
	words := c.ModuleWords(m)
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	a := &Association{
		module: m.ID,
		words:  words,
		pool:   c.Words,
		rng:    orRandom(rng),
	}
	a.deal()
	return a, nil
}

func (a *Association) deal() {
	target := a.words[a.round]
	others := make([]catalog.WordItem, 0, len(a.pool))
	for _, w := range a.pool {
		if w.ID != target.ID {
			others = append(others, w)
		}
	}
	a.rng.Shuffle(len(others), func(i, j int) { others[i], others[j] = others[j], others[i] })
	if len(others) > DistractorCount {
		others = others[:DistractorCount]
	}
	opts := append([]catalog.WordItem{target}, others...)
	a.rng.Shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })
	a.options = opts
}

func (a *Association) Kind() session.Game { return session.GameAssociation }

// Round is the 1-based current round.
func (a *Association) Round() int { return min(a.round+1, len(a.words)) }

func (a *Association) Rounds() int { return len(a.words) }

// Target is the word to find this round.
func (a *Association) Target() catalog.WordItem {
	return a.words[min(a.round, len(a.words)-1)]
}

// Options are the choices for this round, in display order.
func (a *Association) Options() []catalog.WordItem {
	out := make([]catalog.WordItem, len(a.options))
	copy(out, a.options)
	return out
}

// Misses counts wrong picks over the whole game.
func (a *Association) Misses() int { return a.misses }

// Choose picks an option by word id. A correct pick learns the word and
// deals the next round; a wrong pick keeps the round open for a retry.
func (a *Association) Choose(id string) (bool, error) {
	if a.Done() {
		return false, ErrFinished
	}
	found := false
	for _, o := range a.options {
		if o.ID == id {
			found = true
			break
		}
	}
	if !found {
		return false, ErrNoSuchPick
	}
	target := a.words[a.round]
	if id != target.ID {
		a.misses++
		return false, nil
	}
	a.learned.add(target.ID)
	a.round++
	if !a.Done() {
		a.deal()
	}
	return true, nil
}

func (a *Association) Done() bool { return a.round >= len(a.words) }

func (a *Association) Outcome() session.Outcome {
	return session.Outcome{
		Game:     session.GameAssociation,
		ModuleID: a.module,
		Points:   a.round * AssociationPointsPerRound,
		Learned:  a.learned.list(),
	}
}
