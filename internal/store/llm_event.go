package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

var llmEventColumns = []string{
	"id", "sequence", "timestamp", "provider", "model", "purpose",
	"input_tokens", "output_tokens", "latency_ms", "success",
	"error_message", "request_body", "response_body",
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert("llm_events").
		Columns(llmEventColumns[1:]...).
		Values(seqNum, time.Now().UnixMilli(), data.Provider, data.Model, data.Purpose,
			data.InputTokens, data.OutputTokens, data.LatencyMs, data.Success,
			data.ErrorMessage, data.RequestBody, data.ResponseBody).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(llmEventColumns...).
		From(entsql.Table("llm_events"))
	query, args := applyQueryOpts(sel, opts).Query()
	return r.scanLLMEvents(ctx, query, args)
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(llmEventColumns...).
		From(entsql.Table("llm_events")).
		Where(entsql.EQ("id", id)).
		Query()

	events, err := r.scanLLMEvents(ctx, query, args)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, nil
	}
	return &events[0], nil
}

func (r *eventRepo) scanLLMEvents(ctx context.Context, query string, args []any) ([]LLMEvent, error) {
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	defer rows.Close()

	var out []LLMEvent
	for rows.Next() {
		var (
			e  LLMEvent
			ts int64
		)
		if err := rows.Scan(&e.ID, &e.Sequence, &ts, &e.Provider, &e.Model, &e.Purpose,
			&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &e.Success,
			&e.ErrorMessage, &e.RequestBody, &e.ResponseBody); err != nil {
			return nil, fmt.Errorf("scan LLM event: %w", err)
		}
		e.Timestamp = fromMillis(ts)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate LLM events: %w", err)
	}
	return out, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(
			"purpose",
			entsql.Count("*"),
			entsql.Sum("input_tokens"),
			entsql.Sum("output_tokens"),
			entsql.Avg("latency_ms"),
		).
		From(entsql.Table("llm_events")).
		GroupBy("purpose").
		OrderBy("purpose").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query LLM usage: %w", err)
	}
	defer rows.Close()

	var out []LLMUsage
	for rows.Next() {
		var (
			u   LLMUsage
			avg float64
		)
		if err := rows.Scan(&u.Purpose, &u.Calls, &u.InputTokens, &u.OutputTokens, &avg); err != nil {
			return nil, fmt.Errorf("scan LLM usage: %w", err)
		}
		u.AvgLatencyMs = int64(avg)
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate LLM usage: %w", err)
	}
	return out, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(
			"model",
			entsql.Count("*"),
			entsql.Sum("input_tokens"),
			entsql.Sum("output_tokens"),
		).
		From(entsql.Table("llm_events")).
		GroupBy("model").
		OrderBy("model").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query LLM model usage: %w", err)
	}
	defer rows.Close()

	var out []LLMModelUsage
	for rows.Next() {
		var u LLMModelUsage
		if err := rows.Scan(&u.Model, &u.Calls, &u.InputTokens, &u.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan LLM model usage: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate LLM model usage: %w", err)
	}
	return out, nil
}
