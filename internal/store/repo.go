package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit     int       // max results (0 = unlimited)
	After     int64     // sequence > After
	Before    int64     // sequence < Before
	From      time.Time // timestamp >= From
	To        time.Time // timestamp <= To
	SessionID string    // exact match when set
}

// OutcomeEventData captures one finished game.
type OutcomeEventData struct {
	SessionID string
	Game      string
	ModuleID  string
	Language  string
	Points    int
	Learned   []string
	Reward    string
}

// OutcomeEvent is a stored OutcomeEventData.
type OutcomeEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	OutcomeEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLMRequestEventData.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates LLM calls for one purpose.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM calls for one model, for cost estimates.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendOutcome records a finished game.
	AppendOutcome(ctx context.Context, data OutcomeEventData) error

	// QueryOutcomes returns outcome events, newest first.
	QueryOutcomes(ctx context.Context, opts QueryOpts) ([]OutcomeEvent, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single LLM event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
