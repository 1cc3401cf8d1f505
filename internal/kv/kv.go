// Package kv provides the key-value store adapter used for all
// persistence: a single Get/Set interface with in-memory, Upstash REST,
// and Postgres implementations.
package kv

import (
	"context"
	"errors"
	"fmt"

	"eventease/config"
)

// ErrNotFound is returned by Get when the key has never been set.
// Callers treat it as a valid empty state, not a failure.
var ErrNotFound = errors.New("key not found")

// Store is the minimal contract the repositories need from the
// underlying key-value service.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// New creates a Store from config. Backend "upstash" uses the Upstash
// Redis REST API, "postgres" a single-table Postgres store, and
// "memory" (the default) an in-process map.
func New(cfg *config.Config) (Store, error) {
	switch cfg.KVBackend {
	case "upstash":
		if cfg.UpstashURL == "" || cfg.UpstashToken == "" {
			return nil, fmt.Errorf("upstash backend requires UPSTASH_REDIS_REST_URL and UPSTASH_REDIS_REST_TOKEN")
		}
		return NewUpstashStore(cfg.UpstashURL, cfg.UpstashToken, nil), nil
	case "postgres":
		return NewPostgresStoreFromURL(cfg.DBUrl)
	case "memory", "":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown kv backend %q", cfg.KVBackend)
	}
}
