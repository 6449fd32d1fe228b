package get_session

import (
	"context"

	"github.com/light-bringer/shopfront-service/internal/app/shop/contracts"
)

// Request identifies the session to read.
type Request struct {
	SessionID string
}

// Query handles the get session query use case.
type Query struct {
	sessions contracts.SessionStore
}

// NewQuery creates a new get session query.
func NewQuery(sessions contracts.SessionStore) *Query {
	return &Query{
		sessions: sessions,
	}
}

// Execute returns domain.ErrSessionNotFound for unknown or closed sessions.
func (q *Query) Execute(ctx context.Context, req *Request) (contracts.SessionView, error) {
	return q.sessions.Get(ctx, req.SessionID)
}
