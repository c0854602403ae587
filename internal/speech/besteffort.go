package speech

import (
	"context"
	"sync"

	"github.com/abhisek/wordgarden/internal/logger"
)

// AudioPlayer plays WAV bytes. *Player implements it.
type AudioPlayer interface {
	Play(ctx context.Context, wav []byte) error
}

// BestEffort chains the voices: synthesized audio first, then the local
// voice, then silence. Speak never returns an error.
type BestEffort struct {
	synth   Synthesizer
	player  AudioPlayer
	local   Speaker
	log     *logger.Logger
	enabled func() bool

	// mu serializes playback so words never overlap.
	mu sync.Mutex
}

// BestEffortOptions configures NewBestEffort. Any voice may be nil.
type BestEffortOptions struct {
	Synth  Synthesizer
	Player AudioPlayer
	Local  Speaker
	Log    *logger.Logger

	// Enabled gates all sound; nil means always on.
	Enabled func() bool
}

func NewBestEffort(opts BestEffortOptions) *BestEffort {
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}
	if opts.Enabled == nil {
		opts.Enabled = func() bool { return true }
	}
	return &BestEffort{
		synth:   opts.Synth,
		player:  opts.Player,
		local:   opts.Local,
		log:     opts.Log.With("component", "speech"),
		enabled: opts.Enabled,
	}
}

func (b *BestEffort) Speak(ctx context.Context, u Utterance) error {
	if !b.enabled() || u.Text == "" {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.synth != nil && b.player != nil {
		wav, err := b.synth.Synthesize(ctx, u)
		if err == nil {
			if err = b.player.Play(ctx, wav); err == nil {
				return nil
			}
		}
		b.log.Debug("primary voice failed", "style", u.Style, "lang", u.Lang, "error", err)
	}

	if b.local != nil {
		if err := b.local.Speak(ctx, u); err != nil {
			b.log.Debug("fallback voice failed", "lang", u.Lang, "error", err)
		}
	}
	return nil
}

// Prefetch synthesizes u ahead of time. Errors are logged only.
func (b *BestEffort) Prefetch(ctx context.Context, u Utterance) {
	if b.synth == nil || !b.enabled() || u.Text == "" {
		return
	}
	if _, err := b.synth.Synthesize(ctx, u); err != nil {
		b.log.Debug("prefetch failed", "lang", u.Lang, "error", err)
	}
}
