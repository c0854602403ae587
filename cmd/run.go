package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordgarden/internal/app"
	"github.com/abhisek/wordgarden/internal/cheer"
	"github.com/abhisek/wordgarden/internal/config"
	"github.com/abhisek/wordgarden/internal/llm"
	"github.com/abhisek/wordgarden/internal/logger"
	"github.com/abhisek/wordgarden/internal/reward"
	"github.com/abhisek/wordgarden/internal/speech"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the garden (the default command)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp builds the session and its collaborators and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	e, err := openEnv(cmd, true)
	if err != nil {
		return err
	}
	defer e.Close()

	display := reward.NewDisplay()
	engine, err := e.newEngine(ctx, display)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer engine.Close()

	voice := newVoice(ctx, e.cfg.Speech, e.log, func() bool {
		return engine.Settings().EnableSounds
	})

	provider, _, err := llm.NewFromEnv(ctx, e.events, e.log)
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		e.log.Info("no LLM configured, using built-in cheers")
	case err != nil:
		fmt.Fprintln(os.Stderr, "LLM provider unavailable:", err)
		fmt.Fprintln(os.Stderr, "Built-in cheers will be used.")
		provider = nil
	}

	return app.Run(ctx, app.Options{
		Engine:  engine,
		Display: display,
		Voice:   voice,
		Cheer:   cheer.New(provider, e.log),
		Events:  e.events,
		Log:     e.log,
	})
}

// newVoice chains Gemini speech, the local voice and silence. enabled is
// checked before every utterance.
func newVoice(ctx context.Context, cfg config.SpeechConfig, log *logger.Logger, enabled func() bool) speech.Speaker {
	if !cfg.Enabled {
		return speech.Silent{}
	}

	opts := speech.BestEffortOptions{Log: log, Enabled: enabled}
	if cfg.FallbackCmd != "" {
		opts.Local = speech.NewLocalVoice(cfg.FallbackCmd, nil)
	}
	if cfg.GeminiKey == "" {
		return speech.NewBestEffort(opts)
	}

	var cache *speech.Cache
	if dir, err := speech.DefaultCacheDir(); err == nil {
		if cache, err = speech.NewCache(dir); err != nil {
			log.Warn("speech cache on disk disabled", "error", err)
		}
	}
	if cache == nil {
		cache, _ = speech.NewCache("")
	}
	synth, err := speech.NewGeminiSynth(ctx, speech.GeminiOptions{
		APIKey: cfg.GeminiKey,
		Model:  cfg.Model,
		Voice:  cfg.Voice,
		Cache:  cache,
	})
	if err != nil {
		log.Warn("speech synthesis disabled", "error", err)
		return speech.NewBestEffort(opts)
	}
	opts.Synth = synth
	opts.Player = speech.NewPlayer(cfg.PlayerCmd, nil)
	return speech.NewBestEffort(opts)
}
