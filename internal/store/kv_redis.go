package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RedisOptions configures a Redis-backed KV.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int

	// Namespace is prepended to every key, separated by a colon.
	Namespace string
}

// RedisKV implements KV with plain GET/SET/DEL.
type RedisKV struct {
	rdb *goredis.Client
	ns  string
}

// NewRedisKV connects to Redis and verifies the connection with a ping.
func NewRedisKV(ctx context.Context, opts RedisOptions) (*RedisKV, error) {
	addr := strings.TrimSpace(opts.Addr)
	if addr == "" {
		return nil, fmt.Errorf("missing redis address")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisKV{rdb: rdb, ns: opts.Namespace}, nil
}

func (r *RedisKV) key(k string) string {
	if r.ns == "" {
		return k
	}
	return r.ns + ":" + k
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, error) {
	v, err := r.rdb.Get(ctx, r.key(key)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get %q: %w", key, err)
	}
	return v, nil
}

func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	if err := r.rdb.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

func (r *RedisKV) Delete(ctx context.Context, key string) error {
	if err := r.rdb.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del %q: %w", key, err)
	}
	return nil
}

// Close releases the connection pool.
func (r *RedisKV) Close() error {
	return r.rdb.Close()
}
