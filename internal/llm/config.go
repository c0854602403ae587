package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abhisek/wordgarden/internal/catalog"
	"github.com/abhisek/wordgarden/internal/logger"
)

// Backends accepted by Config.Provider.
const (
	ProviderGemini     = "gemini"
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
)

// ErrNotConfigured means no provider was chosen and no vendor key is set.
var ErrNotConfigured = errors.New("llm: no provider configured")

// defaultModels are small, fast models; a line is a few words.
var defaultModels = map[string]string{
	ProviderGemini:     "gemini-2.5-flash-lite",
	ProviderAnthropic:  "claude-haiku-4-5",
	ProviderOpenAI:     "gpt-4o-mini",
	ProviderOpenRouter: "google/gemini-2.5-flash-lite",
}

// vendorKeys are tried in order when WORDGARDEN_LLM_PROVIDER is unset.
var vendorKeys = []struct {
	provider string
	env      string
}{
	{ProviderGemini, "GEMINI_API_KEY"},
	{ProviderOpenAI, "OPENAI_API_KEY"},
	{ProviderAnthropic, "ANTHROPIC_API_KEY"},
	{ProviderOpenRouter, "OPENROUTER_API_KEY"},
}

var languages = []catalog.Language{
	catalog.English, catalog.Spanish, catalog.French,
	catalog.Italian, catalog.Mandarin, catalog.Portuguese,
}

// Config selects the backend for mascot lines.
type Config struct {
	Provider string
	APIKey   string
	BaseURL  string
	Models   ModelSet

	Attempts int
	Pause    time.Duration
	// Budget bounds one line including retries.
	Budget time.Duration
}

// FromEnv reads WORDGARDEN_LLM_* and the vendors' own key variables.
// WORDGARDEN_LLM_MODEL_<LANG> (e.g. WORDGARDEN_LLM_MODEL_ZH) overrides the
// model for one language.
func FromEnv() (Config, error) {
	cfg := Config{
		Provider: env("WORDGARDEN_LLM_PROVIDER"),
		APIKey:   env("WORDGARDEN_LLM_API_KEY"),
		BaseURL:  env("WORDGARDEN_LLM_BASE_URL"),
		Attempts: 2,
		Pause:    300 * time.Millisecond,
		Budget:   6 * time.Second,
	}

	for _, v := range vendorKeys {
		if cfg.Provider != "" && cfg.Provider != v.provider {
			continue
		}
		if key := env(v.env); key != "" {
			cfg.Provider = v.provider
			if cfg.APIKey == "" {
				cfg.APIKey = key
			}
			break
		}
	}
	if cfg.Provider == "" {
		return cfg, ErrNotConfigured
	}
	model, ok := defaultModels[cfg.Provider]
	if !ok {
		return cfg, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if cfg.APIKey == "" {
		return cfg, fmt.Errorf("the %s provider needs WORDGARDEN_LLM_API_KEY", cfg.Provider)
	}

	cfg.Models = ModelSet{Default: model, ByLang: map[catalog.Language]string{}}
	if m := env("WORDGARDEN_LLM_MODEL"); m != "" {
		cfg.Models.Default = m
	}
	for _, lang := range languages {
		if m := env("WORDGARDEN_LLM_MODEL_" + strings.ToUpper(string(lang))); m != "" {
			cfg.Models.ByLang[lang] = m
		}
	}
	if cfg.Provider == ProviderOpenRouter && cfg.BaseURL == "" {
		cfg.BaseURL = OpenRouterBaseURL
	}
	if d, err := time.ParseDuration(env("WORDGARDEN_LLM_TIMEOUT")); err == nil && d > 0 {
		cfg.Budget = d
	}
	return cfg, nil
}

func env(key string) string { return strings.TrimSpace(os.Getenv(key)) }

// New builds the backend for cfg wrapped as retry → journal → backend, so
// every attempt is journaled. journal may be nil.
func New(ctx context.Context, cfg Config, journal Journal, log *logger.Logger) (Provider, error) {
	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderGemini:
		base, err = NewGemini(ctx, cfg.APIKey, cfg.Models)
	case ProviderAnthropic:
		base, err = NewAnthropic(cfg.APIKey, cfg.Models)
	case ProviderOpenAI, ProviderOpenRouter:
		base, err = NewOpenAI(cfg.APIKey, cfg.BaseURL, cfg.Models)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}
	return WithRetry(WithJournal(base, cfg.Provider, journal, log), cfg.Attempts, cfg.Pause, cfg.Budget), nil
}

// NewFromEnv is FromEnv followed by New.
func NewFromEnv(ctx context.Context, journal Journal, log *logger.Logger) (Provider, Config, error) {
	cfg, err := FromEnv()
	if err != nil {
		return nil, cfg, err
	}
	p, err := New(ctx, cfg, journal, log)
	return p, cfg, err
}
