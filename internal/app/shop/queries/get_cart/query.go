package get_cart

import (
	"context"

	"github.com/light-bringer/shopfront-service/internal/app/shop/contracts"
	"github.com/light-bringer/shopfront-service/internal/app/shop/domain"
)

// Request identifies the session whose cart is read.
type Request struct {
	SessionID string
}

// Query handles the get cart query use case.
type Query struct {
	sessions contracts.SessionStore
}

// NewQuery creates a new get cart query.
func NewQuery(sessions contracts.SessionStore) *Query {
	return &Query{
		sessions: sessions,
	}
}

// Execute returns the cart lines and freshly computed totals.
func (q *Query) Execute(ctx context.Context, req *Request) (domain.CartView, error) {
	view, err := q.sessions.Get(ctx, req.SessionID)
	if err != nil {
		return domain.CartView{}, err
	}
	return view.Cart, nil
}
