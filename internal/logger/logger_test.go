package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitizeKVsRedactsSecrets(t *testing.T) {
	got := sanitizeKVs([]interface{}{
		"api_key", "sk-123",
		"to_email", "parent@example.com",
		"input_tokens", 42,
		"module", "fruits",
		"dangling",
	})
	want := []interface{}{
		"api_key", "[REDACTED]",
		"to_email", "[REDACTED]",
		"input_tokens", 42,
		"module", "fruits",
		"dangling",
	}
	assert.Equal(t, want, got)
}

func TestLoggerWritesStructuredFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("component", "progress").Warn("write failed", "key", "stats", "attempt", 2)

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		ctx := entries[0].ContextMap()
		assert.Equal(t, "write failed", entries[0].Message)
		assert.Equal(t, "progress", ctx["component"])
		assert.Equal(t, "stats", ctx["key"])
		assert.Equal(t, int64(2), ctx["attempt"])
	}
}

func TestNewWithOptionsRejectsBadLevel(t *testing.T) {
	_, err := NewWithOptions(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestNopDiscards(t *testing.T) {
	l := Nop()
	l.Info("ignored", "k", "v")
	l.Sync()
}
