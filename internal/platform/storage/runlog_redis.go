// Package storage provides durable sinks for dispatch run summaries.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rushilshah11/automated-financial-data-pipeline/internal/feature/digest/usecase"
)

// defaultRetention is how long run summaries are kept when no retention is
// configured. One summary per day means this bounds the keyspace.
const defaultRetention = 90 * 24 * time.Hour

// RunLogRedis implements usecase.RunLogSink using Redis.
// Summaries are stored as JSON values under the object key, namespaced by a
// prefix, with a retention TTL.
type RunLogRedis struct {
	client    *redis.Client
	prefix    string
	retention time.Duration
}

var _ usecase.RunLogSink = (*RunLogRedis)(nil)

// NewRunLogRedis creates a new RunLogRedis instance.
// If retention is 0, it defaults to 90 days. If prefix is empty, it uses "runlog".
func NewRunLogRedis(client *redis.Client, prefix string, retention time.Duration) *RunLogRedis {
	if retention <= 0 {
		retention = defaultRetention
	}
	if prefix == "" {
		prefix = "runlog"
	}
	return &RunLogRedis{client: client, prefix: prefix, retention: retention}
}

// storageKey returns the namespaced Redis key for an object key.
func (r *RunLogRedis) storageKey(key string) string {
	return fmt.Sprintf("%s:%s", r.prefix, key)
}

// Write stores the summary bytes under the given key and returns its location.
func (r *RunLogRedis) Write(ctx context.Context, key string, data []byte) (string, error) {
	sk := r.storageKey(key)
	if err := r.client.Set(ctx, sk, data, r.retention).Err(); err != nil {
		return "", fmt.Errorf("redis set %s: %w", sk, err)
	}
	return fmt.Sprintf("redis://%s", sk), nil
}
