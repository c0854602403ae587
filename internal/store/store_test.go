package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil database handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestFileStoreUsesWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wal.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	var mode string
	require.NoError(t, s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

// kvContract runs the behavior every KV backend must share.
func kvContract(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	_, err := kv.Get(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound), "expected ErrNotFound, got %v", err)

	require.NoError(t, kv.Set(ctx, "settings", `{"calmMode":true}`))
	v, err := kv.Get(ctx, "settings")
	require.NoError(t, err)
	assert.Equal(t, `{"calmMode":true}`, v)

	require.NoError(t, kv.Set(ctx, "settings", `{}`))
	v, err = kv.Get(ctx, "settings")
	require.NoError(t, err)
	assert.Equal(t, `{}`, v, "set must overwrite")

	require.NoError(t, kv.Delete(ctx, "settings"))
	_, err = kv.Get(ctx, "settings")
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, kv.Delete(ctx, "settings"), "deleting a missing key is not an error")
}

func TestSQLiteKV(t *testing.T) {
	kvContract(t, openTestStore(t).KV())
}

func TestMemoryKV(t *testing.T) {
	kvContract(t, NewMemoryKV())
}

func TestRedisKV(t *testing.T) {
	addr := os.Getenv("WORDGARDEN_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("WORDGARDEN_TEST_REDIS_ADDR not set")
	}
	kv, err := NewRedisKV(context.Background(), RedisOptions{
		Addr:      addr,
		Namespace: fmt.Sprintf("wordgarden-test-%d", time.Now().UnixNano()),
	})
	require.NoError(t, err)
	defer kv.Close()

	kvContract(t, kv)
}

func TestNewRedisKVRequiresAddr(t *testing.T) {
	_, err := NewRedisKV(context.Background(), RedisOptions{})
	assert.Error(t, err)
}

func TestSQLiteKVPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.KV().Set(ctx, "stats", `{"starsEarned":15}`))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	v, err := s.KV().Get(ctx, "stats")
	require.NoError(t, err)
	assert.Equal(t, `{"starsEarned":15}`, v)
}

func TestSequenceIsSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendOutcome(ctx, OutcomeEventData{
		SessionID: "s1", Game: "association", ModuleID: "fruits", Language: "pt",
		Points: 20, Learned: []string{"apple", "banana"}, Reward: "confetti",
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "cheer", Success: true,
	}))
	require.NoError(t, repo.AppendOutcome(ctx, OutcomeEventData{
		SessionID: "s2", Game: "memory", ModuleID: "fruits", Language: "en", Points: 50,
	}))

	outcomes, err := repo.QueryOutcomes(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.Equal(t, int64(3), outcomes[0].Sequence, "newest first")
	assert.Equal(t, int64(1), outcomes[1].Sequence)
	assert.Equal(t, []string{"apple", "banana"}, outcomes[1].Learned)
	assert.Empty(t, outcomes[0].Learned)

	llm, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, llm, 1)
	assert.Equal(t, int64(2), llm[0].Sequence)
	assert.True(t, llm[0].Success)
}

func TestQueryOutcomesFilters(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, sid := range []string{"a", "b", "a", "a"} {
		require.NoError(t, repo.AppendOutcome(ctx, OutcomeEventData{
			SessionID: sid, Game: "repetition", ModuleID: "fruits", Language: "pt", Points: 30 + i,
		}))
	}

	got, err := repo.QueryOutcomes(ctx, QueryOpts{SessionID: "a", Limit: 2})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 33, got[0].Points)
	assert.Equal(t, 32, got[1].Points)

	got, err = repo.QueryOutcomes(ctx, QueryOpts{After: 1, Before: 4})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestLLMEventsAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "m", Purpose: "cheer", InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: true},
		{Provider: "gemini", Model: "m", Purpose: "cheer", InputTokens: 20, OutputTokens: 5, LatencyMs: 300, Success: true},
		{Provider: "gemini", Model: "m", Purpose: "report", InputTokens: 1, OutputTokens: 1, LatencyMs: 50, ErrorMessage: "boom"},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendLLMRequest(ctx, e))
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, usage, 2)
	assert.Equal(t, LLMUsage{Purpose: "cheer", Calls: 2, InputTokens: 30, OutputTokens: 10, AvgLatencyMs: 200}, usage[0])
	assert.Equal(t, "report", usage[1].Purpose)

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	assert.Equal(t, []LLMModelUsage{{Model: "m", Calls: 3, InputTokens: 31, OutputTokens: 11}}, byModel)

	list, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	require.Len(t, list, 1)

	e, err := repo.GetLLMEvent(ctx, list[0].ID)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "boom", e.ErrorMessage)
	assert.False(t, e.Success)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
