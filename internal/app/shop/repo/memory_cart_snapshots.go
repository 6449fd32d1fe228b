package repo

import (
	"context"
	"sync"
	"time"

	"github.com/light-bringer/shopfront-service/internal/app/shop/contracts"
	"github.com/light-bringer/shopfront-service/internal/pkg/clock"
)

type storedSnapshot struct {
	snapshot  contracts.CartSnapshot
	expiresAt time.Time
}

// MemoryCartSnapshots keeps cart snapshots in process. Entries expire ttl
// after their last save; a zero ttl keeps them forever.
type MemoryCartSnapshots struct {
	mu    sync.Mutex
	items map[string]storedSnapshot
	ttl   time.Duration
	clock clock.Clock
}

// NewMemoryCartSnapshots creates an empty store.
func NewMemoryCartSnapshots(ttl time.Duration, clk clock.Clock) *MemoryCartSnapshots {
	return &MemoryCartSnapshots{
		items: make(map[string]storedSnapshot),
		ttl:   ttl,
		clock: clk,
	}
}

// Save stores a copy of snapshot, stamping SavedAt. Expired entries are
// dropped on every save.
func (s *MemoryCartSnapshots) Save(ctx context.Context, snapshot *contracts.CartSnapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	now := s.clock.Now()
	snapshot.SavedAt = now

	stored := storedSnapshot{snapshot: copySnapshot(snapshot)}
	if s.ttl > 0 {
		stored.expiresAt = now.Add(s.ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked(now)
	s.items[snapshot.SnapshotID] = stored
	return nil
}

// Len reports the number of stored snapshots, expired or not.
func (s *MemoryCartSnapshots) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *MemoryCartSnapshots) sweepLocked(now time.Time) {
	for id, stored := range s.items {
		if !stored.expiresAt.IsZero() && !now.Before(stored.expiresAt) {
			delete(s.items, id)
		}
	}
}

// Load returns contracts.ErrSnapshotNotFound for unknown or expired ids.
func (s *MemoryCartSnapshots) Load(ctx context.Context, snapshotID string) (*contracts.CartSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.items[snapshotID]
	if !ok {
		return nil, contracts.ErrSnapshotNotFound
	}
	if !stored.expiresAt.IsZero() && !s.clock.Now().Before(stored.expiresAt) {
		delete(s.items, snapshotID)
		return nil, contracts.ErrSnapshotNotFound
	}

	out := copySnapshot(&stored.snapshot)
	return &out, nil
}

// Delete removes a snapshot. Unknown ids are ignored.
func (s *MemoryCartSnapshots) Delete(ctx context.Context, snapshotID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, snapshotID)
	return nil
}

func copySnapshot(in *contracts.CartSnapshot) contracts.CartSnapshot {
	out := *in
	out.Lines = append([]contracts.CartSnapshotLine(nil), in.Lines...)
	return out
}
