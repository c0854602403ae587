package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendOutcome(ctx context.Context, data OutcomeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	learned := data.Learned
	if learned == nil {
		learned = []string{}
	}
	learnedJSON, err := json.Marshal(learned)
	if err != nil {
		return fmt.Errorf("marshal learned words: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert("outcome_events").
		Columns("sequence", "timestamp", "session_id", "game", "module_id",
			"language", "points", "learned_words", "reward").
		Values(seqNum, time.Now().UnixMilli(), data.SessionID, data.Game, data.ModuleID,
			data.Language, data.Points, string(learnedJSON), data.Reward).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save outcome event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryOutcomes(ctx context.Context, opts QueryOpts) ([]OutcomeEvent, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select("id", "sequence", "timestamp", "session_id", "game", "module_id",
			"language", "points", "learned_words", "reward").
		From(entsql.Table("outcome_events"))
	if opts.SessionID != "" {
		sel.Where(entsql.EQ("session_id", opts.SessionID))
	}
	query, args := applyQueryOpts(sel, opts).Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query outcome events: %w", err)
	}
	defer rows.Close()

	var out []OutcomeEvent
	for rows.Next() {
		var (
			e           OutcomeEvent
			ts          int64
			learnedJSON string
		)
		if err := rows.Scan(&e.ID, &e.Sequence, &ts, &e.SessionID, &e.Game, &e.ModuleID,
			&e.Language, &e.Points, &learnedJSON, &e.Reward); err != nil {
			return nil, fmt.Errorf("scan outcome event: %w", err)
		}
		e.Timestamp = fromMillis(ts)
		if err := json.Unmarshal([]byte(learnedJSON), &e.Learned); err != nil {
			return nil, fmt.Errorf("decode learned words for event %d: %w", e.ID, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outcome events: %w", err)
	}
	return out, nil
}
