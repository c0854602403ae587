package llm

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wordgarden/internal/catalog"
	"github.com/abhisek/wordgarden/internal/store"
)

type recordingJournal struct {
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (j *recordingJournal) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.events = append(j.events, data)
	return j.err
}

func TestJournalRecordsEachAttempt(t *testing.T) {
	s := NewScripted(
		Scripts{Reply: Reply{Line: "Muito bem!", Model: "gemini-2.5-flash-lite", InputTokens: 12, OutputTokens: 4}},
		Fail(&Error{Kind: KindUnavailable, Err: errors.New("503")}),
	)
	j := &recordingJournal{}
	p := WithJournal(s, ProviderGemini, j, nil)
	tick := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	p.now = func() time.Time {
		tick = tick.Add(150 * time.Millisecond)
		return tick
	}
	prompt := Prompt{Purpose: PurposeCheer, Lang: catalog.Portuguese, System: "Be calm.", Text: "Praise the cat."}

	reply, err := p.Line(context.Background(), prompt)
	require.NoError(t, err)
	assert.Equal(t, "Muito bem!", reply.Line)
	_, err = p.Line(context.Background(), prompt)
	require.Error(t, err)

	require.Len(t, j.events, 2)
	ok, failed := j.events[0], j.events[1]
	assert.True(t, ok.Success)
	assert.Equal(t, PurposeCheer, ok.Purpose)
	assert.Equal(t, ProviderGemini, ok.Provider)
	assert.Equal(t, "gemini-2.5-flash-lite", ok.Model)
	assert.Equal(t, 12, ok.InputTokens)
	assert.Equal(t, int64(150), ok.LatencyMs)
	assert.Equal(t, "Muito bem!", ok.ResponseBody)
	assert.Contains(t, ok.RequestBody, "[lang pt]")
	assert.Contains(t, ok.RequestBody, "Be calm.")
	assert.Contains(t, ok.RequestBody, "Praise the cat.")

	assert.False(t, failed.Success)
	assert.Equal(t, "scripted", failed.Model, "falls back to the provider's model")
	assert.Contains(t, failed.ErrorMessage, "503")
}

func TestJournalFailureDoesNotFailTheLine(t *testing.T) {
	p := WithJournal(NewScripted(Say("Bravo!")), ProviderOpenAI, &recordingJournal{err: errors.New("database is locked")}, nil)
	reply, err := p.Line(context.Background(), Prompt{})
	require.NoError(t, err)
	assert.Equal(t, "Bravo!", reply.Line)
}

func TestRetryJournalsEveryAttempt(t *testing.T) {
	j := &recordingJournal{}
	s := NewScripted(Fail(&Error{Kind: KindUnavailable}), Say("Bravo!"))
	r := WithRetry(WithJournal(s, ProviderAnthropic, j, nil), 2, 0, 0)

	_, err := r.Line(context.Background(), Prompt{Purpose: PurposeCheer})
	require.NoError(t, err)
	require.Len(t, j.events, 2)
	assert.False(t, j.events[0].Success)
	assert.True(t, j.events[1].Success)
}
