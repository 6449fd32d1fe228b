// Package session keeps the live browsing sessions of the storefront. Each
// session owns one cart and the claims derived from its bearer token.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/light-bringer/shopfront-service/internal/app/shop/contracts"
	"github.com/light-bringer/shopfront-service/internal/app/shop/domain"
	"github.com/light-bringer/shopfront-service/internal/pkg/clock"
)

type entry struct {
	mu       sync.Mutex
	id       string
	cart     *domain.CartStore
	auth     domain.Session
	openedAt time.Time
	lastSeen time.Time
	restored bool
	closed   bool
}

func (e *entry) view() contracts.SessionView {
	return contracts.SessionView{
		ID:       e.id,
		Auth:     e.auth,
		Cart:     e.cart.View(),
		OpenedAt: e.openedAt,
		Restored: e.restored,
	}
}

// Registry is the in-process SessionStore. Carts are saved to the snapshot
// store after every change; a nil store keeps carts in memory only.
//
// Sessions idle for longer than the idle ttl are evicted by a sweep that
// runs from Open at most once per ttl. Eviction keeps the saved cart, so an
// evicted session can still be resumed from its snapshot.
type Registry struct {
	mu        sync.RWMutex
	sessions  map[string]*entry
	idleTTL   time.Duration
	lastSweep time.Time

	catalog   contracts.CatalogSource
	snapshots contracts.CartSnapshotStore
	clock     clock.Clock
	logger    *zap.Logger
}

var _ contracts.SessionStore = (*Registry)(nil)

// NewRegistry creates an empty registry. A zero idleTTL disables eviction.
func NewRegistry(
	catalog contracts.CatalogSource,
	snapshots contracts.CartSnapshotStore,
	clk clock.Clock,
	idleTTL time.Duration,
	logger *zap.Logger,
) *Registry {
	return &Registry{
		sessions:  make(map[string]*entry),
		idleTTL:   idleTTL,
		lastSweep: clk.Now(),
		catalog:   catalog,
		snapshots: snapshots,
		clock:     clk,
		logger:    logger.Named("session"),
	}
}

// Open resumes a live session, restores one from a saved cart, or starts a
// new one.
func (r *Registry) Open(ctx context.Context, resumeID string) (contracts.SessionView, error) {
	r.maybeSweep()

	if resumeID != "" {
		if view, err := r.Get(ctx, resumeID); err == nil {
			return view, nil
		}

		e, err := r.restore(ctx, resumeID)
		if err == nil {
			return r.register(e), nil
		}
		if !errors.Is(err, contracts.ErrSnapshotNotFound) {
			return contracts.SessionView{}, err
		}
	}

	id := uuid.NewString()
	now := r.clock.Now()
	e := &entry{
		id:       id,
		cart:     domain.NewCartStore(id),
		auth:     domain.Anonymous(),
		openedAt: now,
		lastSeen: now,
	}
	r.logger.Debug("session opened", zap.String("session_id", id))
	return r.register(e), nil
}

// register adds e unless a concurrent Open already registered the id.
func (r *Registry) register(e *entry) contracts.SessionView {
	r.mu.Lock()
	if existing, ok := r.sessions[e.id]; ok {
		existing.mu.Lock()
		live := !existing.closed
		existing.mu.Unlock()
		if live {
			e = existing
		}
	}
	r.sessions[e.id] = e
	r.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.view()
}

// restore rebuilds a session from its saved cart. Lines whose product left
// the catalog are dropped.
func (r *Registry) restore(ctx context.Context, id string) (*entry, error) {
	if r.snapshots == nil {
		return nil, contracts.ErrSnapshotNotFound
	}

	snapshot, err := r.snapshots.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	cart := domain.NewCartStore(id)
	for _, line := range snapshot.Lines {
		product, err := r.catalog.GetProductByID(ctx, line.ProductID)
		if errors.Is(err, domain.ErrProductNotFound) {
			r.logger.Warn("dropping restored line for unknown product",
				zap.String("session_id", id),
				zap.Int64("product_id", line.ProductID))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to restore cart %s: %w", id, err)
		}
		if err := cart.AddItem(product, line.Quantity); err != nil {
			r.logger.Warn("dropping invalid restored line",
				zap.String("session_id", id),
				zap.Int64("product_id", line.ProductID),
				zap.Error(err))
		}
	}
	cart.ClearEvents()

	r.logger.Info("session restored",
		zap.String("session_id", id),
		zap.Int("lines", len(cart.Lines())))

	now := r.clock.Now()
	return &entry{
		id:       id,
		cart:     cart,
		auth:     domain.Anonymous(),
		openedAt: now,
		lastSeen: now,
		restored: true,
	}, nil
}

func (r *Registry) lookup(id string) (*entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sessions[id]
	return e, ok
}

// acquire returns the locked live entry for id. Callers must unlock it.
func (r *Registry) acquire(ctx context.Context, id string) (*entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e, ok := r.lookup(id)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil, domain.ErrSessionNotFound
	}
	e.lastSeen = r.clock.Now()
	return e, nil
}

func (r *Registry) maybeSweep() {
	if r.idleTTL <= 0 {
		return
	}

	now := r.clock.Now()
	r.mu.RLock()
	due := now.Sub(r.lastSweep) >= r.idleTTL
	r.mu.RUnlock()
	if due {
		r.Sweep()
	}
}

// Sweep evicts sessions idle for at least the idle ttl and returns how many
// were removed. Saved carts are left in the snapshot store.
func (r *Registry) Sweep() int {
	if r.idleTTL <= 0 {
		return 0
	}

	now := r.clock.Now()
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, e := range r.sessions {
		e.mu.Lock()
		if now.Sub(e.lastSeen) >= r.idleTTL {
			e.closed = true
			delete(r.sessions, id)
			evicted++
		}
		e.mu.Unlock()
	}
	r.lastSweep = now

	if evicted > 0 {
		r.logger.Info("idle sessions evicted",
			zap.Int("evicted", evicted),
			zap.Int("live", len(r.sessions)))
	}
	return evicted
}

// Get returns a copy of the session.
func (r *Registry) Get(ctx context.Context, sessionID string) (contracts.SessionView, error) {
	e, err := r.acquire(ctx, sessionID)
	if err != nil {
		return contracts.SessionView{}, err
	}
	defer e.mu.Unlock()
	return e.view(), nil
}

// WithCart runs fn with exclusive access to the session cart. When fn
// changed the cart the new state is saved.
func (r *Registry) WithCart(ctx context.Context, sessionID string, fn func(cart *domain.CartStore) error) (domain.CartView, error) {
	e, err := r.acquire(ctx, sessionID)
	if err != nil {
		return domain.CartView{}, err
	}
	defer e.mu.Unlock()

	// Clear events on exit so a failed fn can't leak them into the next call
	defer e.cart.ClearEvents()

	if err := fn(e.cart); err != nil {
		return domain.CartView{}, err
	}

	events := e.cart.DomainEvents()
	if len(events) == 0 {
		return e.cart.View(), nil
	}

	for _, event := range events {
		r.logger.Debug("cart event",
			zap.String("session_id", sessionID),
			zap.String("event", event.EventType()),
			zap.Any("payload", event))
	}

	r.save(ctx, e)
	return e.cart.View(), nil
}

// save writes the cart snapshot. Failures are logged; the live cart stays
// authoritative.
func (r *Registry) save(ctx context.Context, e *entry) {
	if r.snapshots == nil {
		return
	}

	lines := e.cart.Lines()
	snapshot := &contracts.CartSnapshot{
		SnapshotID: e.id,
		Lines:      make([]contracts.CartSnapshotLine, 0, len(lines)),
	}
	for _, l := range lines {
		snapshot.Lines = append(snapshot.Lines, contracts.CartSnapshotLine{
			ProductID: l.Product().ID(),
			Quantity:  l.Quantity(),
		})
	}

	if err := r.snapshots.Save(ctx, snapshot); err != nil {
		r.logger.Warn("failed to save cart snapshot",
			zap.String("session_id", e.id),
			zap.Error(err))
	}
}

// Login derives the session claims from token. A token that cannot be
// decoded is discarded: the session becomes anonymous and the decode error
// is returned.
func (r *Registry) Login(ctx context.Context, sessionID, token string) (domain.Session, error) {
	e, err := r.acquire(ctx, sessionID)
	if err != nil {
		return domain.Session{}, err
	}
	defer e.mu.Unlock()

	auth, err := domain.DeriveSession(token)
	e.auth = auth
	if err != nil {
		r.logger.Info("discarding undecodable token",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return auth, err
	}

	r.logger.Debug("session login",
		zap.String("session_id", sessionID),
		zap.String("subject", auth.Subject),
		zap.Bool("admin", auth.IsAdmin))
	return auth, nil
}

// Logout clears the session claims. The cart is kept.
func (r *Registry) Logout(ctx context.Context, sessionID string) (domain.Session, error) {
	e, err := r.acquire(ctx, sessionID)
	if err != nil {
		return domain.Session{}, err
	}
	defer e.mu.Unlock()

	e.auth = domain.Anonymous()
	return e.auth, nil
}

// Close disposes the session and deletes its saved cart.
func (r *Registry) Close(ctx context.Context, sessionID string) error {
	e, err := r.acquire(ctx, sessionID)
	if err != nil {
		return err
	}
	e.closed = true
	e.mu.Unlock()

	r.mu.Lock()
	if r.sessions[sessionID] == e {
		delete(r.sessions, sessionID)
	}
	r.mu.Unlock()

	if r.snapshots != nil {
		if err := r.snapshots.Delete(ctx, sessionID); err != nil {
			return fmt.Errorf("failed to delete cart snapshot: %w", err)
		}
	}

	r.logger.Debug("session closed", zap.String("session_id", sessionID))
	return nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
