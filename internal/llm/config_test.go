package llm

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wordgarden/internal/catalog"
)

func clearLLMEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"WORDGARDEN_LLM_PROVIDER", "WORDGARDEN_LLM_API_KEY", "WORDGARDEN_LLM_BASE_URL",
		"WORDGARDEN_LLM_MODEL", "WORDGARDEN_LLM_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
	for _, lang := range languages {
		t.Setenv("WORDGARDEN_LLM_MODEL_"+strings.ToUpper(string(lang)), "")
	}
	for _, v := range vendorKeys {
		t.Setenv(v.env, "")
	}
}

func TestFromEnvNotConfigured(t *testing.T) {
	clearLLMEnv(t)
	_, err := FromEnv()
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, _, err = NewFromEnv(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestFromEnvDiscoversVendorKeysInOrder(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "a")
	t.Setenv("OPENAI_API_KEY", "o")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "o", cfg.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.Models.Default)

	t.Setenv("GEMINI_API_KEY", "g")
	cfg, err = FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "g", cfg.APIKey)
}

func TestFromEnvExplicitProvider(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("GEMINI_API_KEY", "g")
	t.Setenv("WORDGARDEN_LLM_PROVIDER", "openrouter")
	t.Setenv("OPENROUTER_API_KEY", "or")
	t.Setenv("WORDGARDEN_LLM_MODEL", "meta-llama/llama-3.1-8b-instruct")
	t.Setenv("WORDGARDEN_LLM_MODEL_ZH", "qwen/qwen-2.5-7b-instruct")
	t.Setenv("WORDGARDEN_LLM_TIMEOUT", "3s")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenRouter, cfg.Provider)
	assert.Equal(t, "or", cfg.APIKey, "the chosen provider's vendor key wins over other vendors")
	assert.Equal(t, OpenRouterBaseURL, cfg.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Budget)
	assert.Equal(t, "qwen/qwen-2.5-7b-instruct", cfg.Models.For(catalog.Mandarin))
	assert.Equal(t, "meta-llama/llama-3.1-8b-instruct", cfg.Models.For(catalog.Spanish))
}

func TestFromEnvErrors(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("WORDGARDEN_LLM_PROVIDER", "anthropic")
	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WORDGARDEN_LLM_API_KEY")

	t.Setenv("WORDGARDEN_LLM_PROVIDER", "parrot")
	t.Setenv("WORDGARDEN_LLM_API_KEY", "k")
	_, err = FromEnv()
	assert.ErrorContains(t, err, "unknown LLM provider")
}

func TestNewBuildsEveryBackend(t *testing.T) {
	models := ModelSet{Default: "m"}
	for _, provider := range []string{ProviderAnthropic, ProviderOpenAI, ProviderOpenRouter} {
		p, err := New(context.Background(), Config{Provider: provider, APIKey: "k", Models: models, Attempts: 1}, nil, nil)
		require.NoError(t, err, provider)
		assert.Equal(t, "m", p.ModelID())
	}

	_, err := New(context.Background(), Config{Provider: ProviderAnthropic, Models: models}, nil, nil)
	assert.ErrorContains(t, err, "API key is required")

	_, err = New(context.Background(), Config{Provider: "parrot"}, nil, nil)
	assert.Error(t, err)
}
