// Package screentest builds screen dependencies over in-memory storage for
// screen tests.
package screentest

import (
	"context"
	"math/rand/v2"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordgarden/internal/catalog"
	"github.com/abhisek/wordgarden/internal/cheer"
	"github.com/abhisek/wordgarden/internal/progress"
	"github.com/abhisek/wordgarden/internal/screen"
	"github.com/abhisek/wordgarden/internal/session"
	"github.com/abhisek/wordgarden/internal/speech"
	"github.com/abhisek/wordgarden/internal/store"
)

// Voice records what was spoken.
type Voice struct {
	Said []speech.Utterance
}

func (v *Voice) Speak(_ context.Context, u speech.Utterance) error {
	v.Said = append(v.Said, u)
	return nil
}

// Deps returns dependencies over a fresh in-memory store, the default
// catalog, a seeded generator and a recording voice.
func Deps(t *testing.T) (screen.Deps, *Voice) {
	t.Helper()
	ctx := context.Background()
	eng, err := session.New(ctx, session.Options{
		Store:   progress.NewStore(store.NewMemoryKV(), nil),
		Catalog: catalog.Default(),
	})
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	t.Cleanup(eng.Close)

	voice := &Voice{}
	return screen.Deps{
		Ctx:    ctx,
		Engine: eng,
		Voice:  voice,
		Cheer:  cheer.New(nil, nil, cheer.WithRand(rand.New(rand.NewPCG(1, 1)))),
		Rand:   func() *rand.Rand { return rand.New(rand.NewPCG(7, 7)) },
	}, voice
}

// Learn records the words of module id as learned.
func Learn(t *testing.T, d screen.Deps, id string) {
	t.Helper()
	m, ok := d.Engine.Catalog().Module(id)
	if !ok {
		t.Fatalf("unknown module %s", id)
	}
	d.Engine.RecordOutcome(d.Ctx, session.Outcome{Game: session.GameRepetition, ModuleID: id, Points: 30, Learned: m.WordIDs})
}

// Key builds a key press for a printable key or a named one.
func Key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

// Drain runs cmd and any batched commands, returning every message.
func Drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, Drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}
