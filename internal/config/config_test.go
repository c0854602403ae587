package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{
		"WORDGARDEN_STORE", "WORDGARDEN_DB", "WORDGARDEN_PROFILE",
		"WORDGARDEN_SPEECH", "GEMINI_API_KEY", "WORDGARDEN_GEMINI_API_KEY",
		"WORDGARDEN_SES_FROM", "AWS_REGION", "WORDGARDEN_SES_REGION", "WORDGARDEN_LOCALE",
	} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()
	assert.Equal(t, BackendSQLite, cfg.Store.Backend)
	assert.Equal(t, "wordgarden_", cfg.KeyPrefix())
	assert.True(t, cfg.Speech.Enabled)
	assert.Equal(t, "Kore", cfg.Speech.Voice)
	assert.Equal(t, "us-east-1", cfg.Email.Region)
	assert.Equal(t, "pt-BR", cfg.Locale)
	assert.NoError(t, cfg.Validate())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("WORDGARDEN_STORE", "redis")
	t.Setenv("WORDGARDEN_REDIS_ADDR", "cache:6380")
	t.Setenv("WORDGARDEN_REDIS_DB", "3")
	t.Setenv("WORDGARDEN_PROFILE", "ana")
	t.Setenv("WORDGARDEN_SPEECH", "false")
	t.Setenv("WORDGARDEN_GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("WORDGARDEN_LOCALE", "fr-FR")

	cfg := FromEnv()
	assert.Equal(t, BackendRedis, cfg.Store.Backend)
	assert.Equal(t, "cache:6380", cfg.Store.RedisAddr)
	assert.Equal(t, 3, cfg.Store.RedisDB)
	assert.Equal(t, "wordgarden_ana_", cfg.KeyPrefix())
	assert.False(t, cfg.Speech.Enabled)
	assert.Equal(t, "g-key", cfg.Speech.GeminiKey)
	assert.Equal(t, "fr-FR", cfg.Locale)
	assert.NoError(t, cfg.Validate())
}

func TestFromEnvIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("WORDGARDEN_REDIS_DB", "three")
	t.Setenv("WORDGARDEN_SPEECH", "maybe")

	cfg := FromEnv()
	assert.Equal(t, 0, cfg.Store.RedisDB)
	assert.True(t, cfg.Speech.Enabled)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"memory", func(c *Config) { c.Store.Backend = BackendMemory }, false},
		{"unknown backend", func(c *Config) { c.Store.Backend = "etcd" }, true},
		{"redis without addr", func(c *Config) { c.Store.Backend = BackendRedis; c.Store.RedisAddr = "" }, true},
		{"blank profile", func(c *Config) { c.Profile = "  " }, true},
		{"english weekdays", func(c *Config) { c.Locale = "en-US" }, false},
		{"unknown locale", func(c *Config) { c.Locale = "pt-PT" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
