package games

import (
	"github.com/abhisek/wordgarden/internal/catalog"
	"github.com/abhisek/wordgarden/internal/session"
)

// Repetition walks the module words in order; repeating each one learns it.
type Repetition struct {
	module  string
	words   []catalog.WordItem
	index   int
	learned learnedSet
}

func NewRepetition(c *catalog.Catalog, m catalog.Module) (*Repetition, error) {
	words := c.ModuleWords(m)
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return &Repetition{module: m.ID, words: words}, nil
}

func (g *Repetition) Kind() session.Game { return session.GameRepetition }

// Current is the word to repeat.
func (g *Repetition) Current() catalog.WordItem {
	return g.words[min(g.index, len(g.words)-1)]
}

// Position returns the 1-based word number and the total.
func (g *Repetition) Position() (int, int) {
	return min(g.index+1, len(g.words)), len(g.words)
}

// Repeated marks the current word as said and moves on.
func (g *Repetition) Repeated() error {
	if g.Done() {
		return ErrFinished
	}
	g.learned.add(g.words[g.index].ID)
	g.index++
	return nil
}

func (g *Repetition) Done() bool { return g.index >= len(g.words) }

func (g *Repetition) Outcome() session.Outcome {
	points := 0
	if g.Done() {
		points = RepetitionPoints
	}
	return session.Outcome{
		Game:     session.GameRepetition,
		ModuleID: g.module,
		Points:   points,
		Learned:  g.learned.list(),
	}
}
