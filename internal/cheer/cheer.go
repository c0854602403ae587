// Package cheer picks the mascot's praise line after a correct answer:
// a generated one when a text model is configured, otherwise a stock
// phrase in the session language.
package cheer

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/abhisek/wordgarden/internal/catalog"
	"github.com/abhisek/wordgarden/internal/llm"
	"github.com/abhisek/wordgarden/internal/logger"
)

// phrases are the stock praise lines per language.
var phrases = map[catalog.Language][]string{
	catalog.Portuguese: {"Muito bem!", "Incrível!", "Você conseguiu!", "Excelente!"},
	catalog.English:    {"Great job!", "Amazing!", "You did it!", "Excellent!"},
	catalog.Spanish:    {"¡Excelente!", "¡Muy bien!", "¡Lo lograste!", "¡Fantástico!"},
	catalog.French:     {"C'est super!", "Très bien!", "Bravo!", "Magnifique!"},
	catalog.Italian:    {"Eccellente!", "Bravo!", "Ottimo lavoro!", "Fantastico!"},
	catalog.Mandarin:   {"太棒了！", "做得好！", "你成功了！", "真厉害！"},
}

// Phrases returns the stock lines for lang, falling back to English.
func Phrases(lang catalog.Language) []string {
	if p, ok := phrases[lang]; ok {
		return append([]string(nil), p...)
	}
	return append([]string(nil), phrases[catalog.English]...)
}

const systemPrompt = `You write praise lines for a vocabulary game played by autistic children aged 6 to 13.
Lines are calm, warm and literal. No sarcasm, no idioms, no exclamation chains, no emoji.`

// Service produces cheer lines. A nil provider uses stock phrases only.
type Service struct {
	provider llm.Provider
	log      *logger.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a Service.
type Option func(*Service)

// WithRand fixes the phrase generator.
func WithRand(r *rand.Rand) Option { return func(s *Service) { s.rng = r } }

func New(provider llm.Provider, log *logger.Logger, opts ...Option) *Service {
	if log == nil {
		log = logger.Nop()
	}
	s := &Service{
		provider: provider,
		log:      log.With("component", "cheer"),
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Static returns a random stock phrase for lang.
func (s *Service) Static(lang catalog.Language) string {
	p := Phrases(lang)
	s.mu.Lock()
	defer s.mu.Unlock()
	return p[s.rng.IntN(len(p))]
}

// Next returns a praise line in lang voiced by mascot. Any provider
// failure falls back to Static.
func (s *Service) Next(ctx context.Context, lang catalog.Language, mascot catalog.Mascot, word string) string {
	if s.provider == nil {
		return s.Static(lang)
	}

	reply, err := s.provider.Line(ctx, llm.Prompt{
		Purpose:     llm.PurposeCheer,
		Lang:        lang,
		System:      systemPrompt,
		Text:        prompt(lang, mascot, word),
		MaxTokens:   80,
		Temperature: 0.8,
	})
	if err != nil {
		s.log.Debug("generated cheer unavailable", "lang", lang, "error", err)
		return s.Static(lang)
	}
	return reply.Line
}

func prompt(lang catalog.Language, mascot catalog.Mascot, word string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are %s %s", mascot.Name, mascot.Emoji)
	if mascot.Personality != "" {
		fmt.Fprintf(&b, ", who is %s", mascot.Personality)
	}
	fmt.Fprintf(&b, ".\nWrite one praise line in language code %q", lang)
	if word != "" {
		fmt.Fprintf(&b, " for a child who just recognized the word %q", word)
	}
	b.WriteString(". Keep it under eight words.")
	return b.String()
}
