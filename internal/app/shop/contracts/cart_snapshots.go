package contracts

import (
	"context"
	"errors"
	"time"
)

// ErrSnapshotNotFound is returned by Load for unknown or expired snapshots.
var ErrSnapshotNotFound = errors.New("cart snapshot not found")

// CartSnapshotLine is a persisted line; products are re-resolved on restore.
type CartSnapshotLine struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CartSnapshot is the persisted form of a session cart.
type CartSnapshot struct {
	SnapshotID string             `json:"snapshot_id"`
	Lines      []CartSnapshotLine `json:"lines"`
	SavedAt    time.Time          `json:"saved_at"`
}

// CartSnapshotStore persists carts between sessions. It is optional
// plumbing around the cart; carts work without it.
type CartSnapshotStore interface {
	Save(ctx context.Context, snapshot *CartSnapshot) error
	Load(ctx context.Context, snapshotID string) (*CartSnapshot, error)
	Delete(ctx context.Context, snapshotID string) error
}
