package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/light-bringer/shopfront-service/internal/app/shop/contracts"
	"github.com/light-bringer/shopfront-service/internal/pkg/clock"
)

// RedisCartSnapshots stores cart snapshots as JSON strings with a TTL.
type RedisCartSnapshots struct {
	client *redis.Client
	ttl    time.Duration
	clock  clock.Clock
}

// NewRedisCartSnapshots creates a store on client. Keys expire ttl after the
// last save.
func NewRedisCartSnapshots(client *redis.Client, ttl time.Duration, clk clock.Clock) *RedisCartSnapshots {
	return &RedisCartSnapshots{
		client: client,
		ttl:    ttl,
		clock:  clk,
	}
}

// SnapshotKey is the Redis key holding snapshotID.
func SnapshotKey(snapshotID string) string {
	return fmt.Sprintf("cart:snapshot:%s", snapshotID)
}

// Save writes snapshot, stamping SavedAt.
func (r *RedisCartSnapshots) Save(ctx context.Context, snapshot *contracts.CartSnapshot) error {
	snapshot.SavedAt = r.clock.Now().UTC()

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode cart snapshot: %w", err)
	}

	if err := r.client.Set(ctx, SnapshotKey(snapshot.SnapshotID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart snapshot: %w", err)
	}
	return nil
}

// Load returns contracts.ErrSnapshotNotFound for missing or expired keys.
func (r *RedisCartSnapshots) Load(ctx context.Context, snapshotID string) (*contracts.CartSnapshot, error) {
	data, err := r.client.Get(ctx, SnapshotKey(snapshotID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, contracts.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart snapshot: %w", err)
	}

	var snapshot contracts.CartSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode cart snapshot: %w", err)
	}
	return &snapshot, nil
}

// Delete removes a snapshot. Missing keys are ignored.
func (r *RedisCartSnapshots) Delete(ctx context.Context, snapshotID string) error {
	if err := r.client.Del(ctx, SnapshotKey(snapshotID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart snapshot: %w", err)
	}
	return nil
}

// NewRedisClient parses redisURL and verifies the connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}
