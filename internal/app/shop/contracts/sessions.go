package contracts

import (
	"context"
	"time"

	"github.com/light-bringer/shopfront-service/internal/app/shop/domain"
)

// SessionView is a point-in-time copy of a browsing session.
type SessionView struct {
	ID       string
	Auth     domain.Session
	Cart     domain.CartView
	OpenedAt time.Time
	Restored bool
}

// SessionStore owns browsing sessions. Every operation on one session is
// serialised; unknown ids return domain.ErrSessionNotFound.
type SessionStore interface {
	// Open resumes resumeID when it is live or has a saved cart, and
	// otherwise starts a new session under a fresh id
	Open(ctx context.Context, resumeID string) (SessionView, error)

	Get(ctx context.Context, sessionID string) (SessionView, error)

	// WithCart runs fn against the session cart and returns the cart after fn
	WithCart(ctx context.Context, sessionID string, fn func(cart *domain.CartStore) error) (domain.CartView, error)

	// Login replaces the session claims with those decoded from token.
	// A token that fails to decode leaves the session anonymous and
	// returns domain.ErrTokenDecode
	Login(ctx context.Context, sessionID, token string) (domain.Session, error)

	Logout(ctx context.Context, sessionID string) (domain.Session, error)

	// Close disposes the session and its saved cart
	Close(ctx context.Context, sessionID string) error
}
