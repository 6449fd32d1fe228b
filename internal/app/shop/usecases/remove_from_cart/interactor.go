package remove_from_cart

import (
	"context"

	"github.com/light-bringer/shopfront-service/internal/app/shop/contracts"
	"github.com/light-bringer/shopfront-service/internal/app/shop/domain"
)

// Request identifies the line to remove.
type Request struct {
	SessionID string
	ProductID int64
}

// Interactor handles the remove from cart use case.
type Interactor struct {
	sessions contracts.SessionStore
}

// NewInteractor creates a new remove from cart interactor.
func NewInteractor(sessions contracts.SessionStore) *Interactor {
	return &Interactor{
		sessions: sessions,
	}
}

// Execute removes the line if present.
func (i *Interactor) Execute(ctx context.Context, req *Request) (domain.CartView, error) {
	return i.sessions.WithCart(ctx, req.SessionID, func(cart *domain.CartStore) error {
		cart.RemoveItem(req.ProductID)
		return nil
	})
}
