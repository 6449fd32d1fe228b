package clear_cart

import (
	"context"

	"github.com/light-bringer/shopfront-service/internal/app/shop/contracts"
	"github.com/light-bringer/shopfront-service/internal/app/shop/domain"
)

// Request identifies the session whose cart is emptied.
type Request struct {
	SessionID string
}

// Interactor handles the clear cart use case.
type Interactor struct {
	sessions contracts.SessionStore
}

// NewInteractor creates a new clear cart interactor.
func NewInteractor(sessions contracts.SessionStore) *Interactor {
	return &Interactor{
		sessions: sessions,
	}
}

// Execute empties the cart.
func (i *Interactor) Execute(ctx context.Context, req *Request) (domain.CartView, error) {
	return i.sessions.WithCart(ctx, req.SessionID, func(cart *domain.CartStore) error {
		cart.Clear()
		return nil
	})
}
