// Package config collects runtime settings from WORDGARDEN_* environment
// variables over built-in defaults. Command-line flags override it.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/abhisek/wordgarden/internal/progress"
)

// Store backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds application configuration.
type Config struct {
	Store   StoreConfig
	Log     LogConfig
	Speech  SpeechConfig
	Email   EmailConfig
	Profile string
	// Locale names the weekdays that label progress history.
	Locale string
}

// StoreConfig selects and configures the progress store backend.
type StoreConfig struct {
	Backend       string // sqlite | redis | memory
	DBPath        string // empty means store.DefaultDBPath
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	KeyPrefix     string
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Mode  string // dev | prod
	Level string
	Path  string // empty means logger.DefaultLogPath for the TUI
}

// SpeechConfig configures text-to-speech.
type SpeechConfig struct {
	Enabled     bool
	GeminiKey   string
	Model       string
	Voice       string
	PlayerCmd   string
	FallbackCmd string
}

// EmailConfig configures the parent report mailer.
type EmailConfig struct {
	Region   string
	From     string
	FromName string
}

// Default returns a Config with built-in defaults.
func Default() Config {
	return Config{
		Store: StoreConfig{
			Backend:   BackendSQLite,
			RedisAddr: "localhost:6379",
			KeyPrefix: "wordgarden_",
		},
		Log: LogConfig{
			Mode:  "dev",
			Level: "info",
		},
		Speech: SpeechConfig{
			Enabled:     true,
			Model:       "gemini-2.5-flash-preview-tts",
			Voice:       "Kore",
			FallbackCmd: "espeak-ng",
		},
		Email: EmailConfig{
			Region:   "us-east-1",
			FromName: "Word Garden",
		},
		Profile: "default",
		Locale:  progress.DefaultLocale,
	}
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func FromEnv() Config {
	cfg := Default()

	cfg.Store.Backend = getEnv("WORDGARDEN_STORE", cfg.Store.Backend)
	cfg.Store.DBPath = getEnv("WORDGARDEN_DB", cfg.Store.DBPath)
	cfg.Store.RedisAddr = getEnv("WORDGARDEN_REDIS_ADDR", cfg.Store.RedisAddr)
	cfg.Store.RedisPassword = getEnv("WORDGARDEN_REDIS_PASSWORD", cfg.Store.RedisPassword)
	cfg.Store.RedisDB = getEnvInt("WORDGARDEN_REDIS_DB", cfg.Store.RedisDB)
	cfg.Store.KeyPrefix = getEnv("WORDGARDEN_KEY_PREFIX", cfg.Store.KeyPrefix)
	cfg.Profile = getEnv("WORDGARDEN_PROFILE", cfg.Profile)
	cfg.Locale = getEnv("WORDGARDEN_LOCALE", cfg.Locale)

	cfg.Log.Mode = getEnv("WORDGARDEN_LOG_MODE", cfg.Log.Mode)
	cfg.Log.Level = getEnv("WORDGARDEN_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Path = getEnv("WORDGARDEN_LOG_FILE", cfg.Log.Path)

	cfg.Speech.Enabled = getEnvBool("WORDGARDEN_SPEECH", cfg.Speech.Enabled)
	cfg.Speech.GeminiKey = getEnv("WORDGARDEN_GEMINI_API_KEY", getEnv("GEMINI_API_KEY", ""))
	cfg.Speech.Model = getEnv("WORDGARDEN_TTS_MODEL", cfg.Speech.Model)
	cfg.Speech.Voice = getEnv("WORDGARDEN_TTS_VOICE", cfg.Speech.Voice)
	cfg.Speech.PlayerCmd = getEnv("WORDGARDEN_AUDIO_PLAYER", cfg.Speech.PlayerCmd)
	cfg.Speech.FallbackCmd = getEnv("WORDGARDEN_FALLBACK_VOICE", cfg.Speech.FallbackCmd)

	cfg.Email.Region = getEnv("WORDGARDEN_SES_REGION", getEnv("AWS_REGION", cfg.Email.Region))
	cfg.Email.From = getEnv("WORDGARDEN_SES_FROM", cfg.Email.From)
	cfg.Email.FromName = getEnv("WORDGARDEN_SES_FROM_NAME", cfg.Email.FromName)

	return cfg
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendSQLite, BackendMemory:
	case BackendRedis:
		if c.Store.RedisAddr == "" {
			return fmt.Errorf("WORDGARDEN_REDIS_ADDR is required for the redis store")
		}
	default:
		return fmt.Errorf("unknown store backend: %q", c.Store.Backend)
	}
	if strings.TrimSpace(c.Profile) == "" {
		return fmt.Errorf("profile name must not be empty")
	}
	if !progress.KnownLocale(c.Locale) {
		return fmt.Errorf("unknown locale %q (want one of %s)", c.Locale, strings.Join(progress.Locales(), ", "))
	}
	return nil
}

// KeyPrefix returns the KV key prefix for the active profile. The default
// profile uses the bare prefix.
func (c Config) KeyPrefix() string {
	if c.Profile == "" || c.Profile == "default" {
		return c.Store.KeyPrefix
	}
	return c.Store.KeyPrefix + c.Profile + "_"
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
