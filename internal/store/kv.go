package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// ErrNotFound is returned by KV.Get when the key has no value.
var ErrNotFound = errors.New("store: key not found")

// KV is a string key-value store with get/set semantics.
type KV interface {
	// Get returns the value for key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set overwrites the value for key.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// sqliteKV implements KV over the kv table.
type sqliteKV struct {
	drv *entsql.Driver
}

func (s *sqliteKV) Get(ctx context.Context, key string) (string, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("value").
		From(entsql.Table("kv")).
		Where(entsql.EQ("key", key)).
		Query()

	var rows entsql.Rows
	if err := s.drv.Query(ctx, query, args, &rows); err != nil {
		return "", fmt.Errorf("query %q: %w", key, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return "", fmt.Errorf("query %q: %w", key, err)
		}
		return "", ErrNotFound
	}
	var value string
	if err := rows.Scan(&value); err != nil {
		return "", fmt.Errorf("scan %q: %w", key, err)
	}
	return value, nil
}

func (s *sqliteKV) Set(ctx context.Context, key, value string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert("kv").
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UnixMilli()).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if err := s.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (s *sqliteKV) Delete(ctx context.Context, key string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete("kv").
		Where(entsql.EQ("key", key)).
		Query()

	if err := s.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}
