package screen

import (
	"context"
	"math/rand/v2"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordgarden/internal/catalog"
	"github.com/abhisek/wordgarden/internal/cheer"
	"github.com/abhisek/wordgarden/internal/session"
	"github.com/abhisek/wordgarden/internal/speech"
	"github.com/abhisek/wordgarden/internal/store"
)

// Deps are the collaborators every screen may use. Voice, Cheer and Events
// may be nil.
type Deps struct {
	Ctx    context.Context
	Engine *session.Engine
	Voice  speech.Speaker
	Cheer  *cheer.Service
	Events store.EventRepo
	Rand   func() *rand.Rand
}

// CheerMsg carries a praise line for the screen that asked for it.
type CheerMsg struct {
	Text string
}

func (d Deps) ctx() context.Context {
	if d.Ctx == nil {
		return context.Background()
	}
	return d.Ctx
}

// Rng returns a fresh generator for one game.
func (d Deps) Rng() *rand.Rand {
	if d.Rand == nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return d.Rand()
}

// Say speaks u off the UI goroutine. It returns nil without a voice.
func (d Deps) Say(u speech.Utterance) tea.Cmd {
	if d.Voice == nil || u.Text == "" {
		return nil
	}
	ctx := d.ctx()
	return func() tea.Msg {
		_ = d.Voice.Speak(ctx, u)
		return nil
	}
}

// SayWord speaks a catalog word in the session language at the preferred
// audio speed.
func (d Deps) SayWord(w catalog.WordItem) tea.Cmd {
	lang := d.Engine.Language()
	return d.Say(speech.Word(w.Text(lang), lang, d.Engine.Settings().AudioSpeed))
}

// Praise produces a cheer line for word, speaks it and delivers it as a
// CheerMsg.
func (d Deps) Praise(word string) tea.Cmd {
	if d.Cheer == nil {
		return nil
	}
	ctx := d.ctx()
	lang := d.Engine.Language()
	mascot := d.Engine.Mascot()
	voice := d.Voice
	return func() tea.Msg {
		line := d.Cheer.Next(ctx, lang, mascot, word)
		if voice != nil {
			_ = voice.Speak(ctx, speech.Feedback(line, lang))
		}
		return CheerMsg{Text: line}
	}
}
