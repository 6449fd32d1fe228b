package repo

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/shopfront-service/internal/app/shop/contracts"
	"github.com/light-bringer/shopfront-service/internal/testutil"
)

func sampleSnapshot(id string) *contracts.CartSnapshot {
	return &contracts.CartSnapshot{
		SnapshotID: id,
		Lines: []contracts.CartSnapshotLine{
			{ProductID: 2, Quantity: 1},
			{ProductID: 1, Quantity: 3},
		},
	}
}

// exerciseSnapshotStore runs the behaviour every CartSnapshotStore shares.
func exerciseSnapshotStore(t *testing.T, store contracts.CartSnapshotStore) {
	ctx := context.Background()
	id := uuid.NewString()

	_, err := store.Load(ctx, id)
	assert.ErrorIs(t, err, contracts.ErrSnapshotNotFound)

	require.NoError(t, store.Save(ctx, sampleSnapshot(id)))

	got, err := store.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.SnapshotID)
	assert.Equal(t, sampleSnapshot(id).Lines, got.Lines)
	assert.False(t, got.SavedAt.IsZero())

	require.NoError(t, store.Delete(ctx, id))
	require.NoError(t, store.Delete(ctx, id))

	_, err = store.Load(ctx, id)
	assert.ErrorIs(t, err, contracts.ErrSnapshotNotFound)
}

func TestMemoryCartSnapshots(t *testing.T) {
	exerciseSnapshotStore(t, NewMemoryCartSnapshots(time.Hour, testutil.NewMockClock()))
}

func TestMemoryCartSnapshots_Expiry(t *testing.T) {
	ctx := context.Background()
	clk := testutil.NewMockClock()
	store := NewMemoryCartSnapshots(time.Minute, clk)

	require.NoError(t, store.Save(ctx, sampleSnapshot("s1")))

	clk.Advance(59 * time.Second)
	got, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, testutil.Epoch, got.SavedAt)

	clk.Advance(time.Second)
	_, err = store.Load(ctx, "s1")
	assert.ErrorIs(t, err, contracts.ErrSnapshotNotFound)
}

func TestMemoryCartSnapshots_SaveSweepsExpired(t *testing.T) {
	ctx := context.Background()
	clk := testutil.NewMockClock()
	store := NewMemoryCartSnapshots(time.Minute, clk)

	for _, id := range []string{"s1", "s2", "s3"} {
		require.NoError(t, store.Save(ctx, sampleSnapshot(id)))
	}
	require.Equal(t, 3, store.Len())

	clk.Advance(30 * time.Second)
	require.NoError(t, store.Save(ctx, sampleSnapshot("s2")))

	clk.Advance(30 * time.Second)
	require.NoError(t, store.Save(ctx, sampleSnapshot("s4")))

	assert.Equal(t, 2, store.Len())
	_, err := store.Load(ctx, "s2")
	assert.NoError(t, err)
	_, err = store.Load(ctx, "s4")
	assert.NoError(t, err)
}

func TestMemoryCartSnapshots_NoTTL(t *testing.T) {
	ctx := context.Background()
	clk := testutil.NewMockClock()
	store := NewMemoryCartSnapshots(0, clk)

	require.NoError(t, store.Save(ctx, sampleSnapshot("s1")))
	clk.Advance(365 * 24 * time.Hour)

	_, err := store.Load(ctx, "s1")
	assert.NoError(t, err)
}

func TestMemoryCartSnapshots_StoresCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCartSnapshots(0, testutil.NewMockClock())

	snap := sampleSnapshot("s1")
	require.NoError(t, store.Save(ctx, snap))
	snap.Lines[0].Quantity = 99

	got, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Lines[0].Quantity)

	got.Lines[0].Quantity = 42
	again, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, again.Lines[0].Quantity)
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *RedisCartSnapshots, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client, err := NewRedisClient(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewRedisCartSnapshots(client, time.Minute, testutil.NewMockClock()), client
}

func TestRedisCartSnapshots(t *testing.T) {
	_, store, _ := newTestRedis(t)
	exerciseSnapshotStore(t, store)
}

func TestRedisCartSnapshots_TTL(t *testing.T) {
	ctx := context.Background()
	mr, store, client := newTestRedis(t)

	require.NoError(t, store.Save(ctx, sampleSnapshot("ttl-check")))
	ttl, err := client.TTL(ctx, SnapshotKey("ttl-check")).Result()
	require.NoError(t, err)
	assert.Equal(t, time.Minute, ttl)

	mr.FastForward(time.Minute)
	_, err = store.Load(ctx, "ttl-check")
	assert.ErrorIs(t, err, contracts.ErrSnapshotNotFound)
}

func TestRedisCartSnapshots_CorruptValue(t *testing.T) {
	mr, store, _ := newTestRedis(t)
	require.NoError(t, mr.Set(SnapshotKey("bad"), "{not json"))

	_, err := store.Load(context.Background(), "bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, contracts.ErrSnapshotNotFound)
}

func TestRedisCartSnapshots_Unavailable(t *testing.T) {
	mr, store, _ := newTestRedis(t)
	mr.Close()

	assert.Error(t, store.Save(context.Background(), sampleSnapshot("s1")))
}

func TestSnapshotKey(t *testing.T) {
	assert.Equal(t, "cart:snapshot:abc", SnapshotKey("abc"))
}

func TestNewRedisClient_InvalidURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "not a url")
	assert.Error(t, err)
}
