package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/wordgarden/internal/logger"
	"github.com/abhisek/wordgarden/internal/store"
)

// Journal stores one event per call. store.EventRepo implements it.
type Journal interface {
	AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error
}

// Journaled records every attempt in the journal and the log. Journal
// failures are logged and never fail the call.
type Journaled struct {
	inner    Provider
	provider string
	journal  Journal
	log      *logger.Logger
	now      func() time.Time
}

// WithJournal wraps p. A nil journal only logs.
func WithJournal(p Provider, provider string, journal Journal, log *logger.Logger) *Journaled {
	if log == nil {
		log = logger.Nop()
	}
	return &Journaled{
		inner:    p,
		provider: provider,
		journal:  journal,
		log:      log.With("component", "llm", "provider", provider),
		now:      time.Now,
	}
}

func (j *Journaled) Line(ctx context.Context, p Prompt) (Reply, error) {
	start := j.now()
	reply, err := j.inner.Line(ctx, p)

	ev := store.LLMRequestEventData{
		Provider:     j.provider,
		Model:        reply.Model,
		Purpose:      p.Purpose,
		InputTokens:  reply.InputTokens,
		OutputTokens: reply.OutputTokens,
		LatencyMs:    j.now().Sub(start).Milliseconds(),
		Success:      err == nil,
		RequestBody:  fmt.Sprintf("[lang %s]\n[system]\n%s\n\n[user]\n%s\n", p.Lang, system(p), p.Text),
		ResponseBody: reply.Line,
	}
	if ev.Model == "" {
		ev.Model = j.inner.ModelID()
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
		j.log.Warn("line request failed", "purpose", p.Purpose, "lang", p.Lang, "model", ev.Model, "error", err)
	} else {
		j.log.Debug("line request", "purpose", p.Purpose, "lang", p.Lang, "model", ev.Model,
			"latency_ms", ev.LatencyMs, "input_tokens", ev.InputTokens, "output_tokens", ev.OutputTokens)
	}

	if j.journal != nil {
		if jerr := j.journal.AppendLLMRequest(ctx, ev); jerr != nil {
			j.log.Warn("line request not journaled", "error", jerr)
		}
	}
	return reply, err
}

func (j *Journaled) ModelID() string { return j.inner.ModelID() }
