package update_cart_item

import (
	"context"
	"fmt"

	"github.com/light-bringer/shopfront-service/internal/app/shop/contracts"
	"github.com/light-bringer/shopfront-service/internal/app/shop/domain"
)

// Request sets a cart line's quantity. Zero or less removes the line.
type Request struct {
	SessionID string
	ProductID int64
	Quantity  int
}

// Interactor handles the update cart item use case.
type Interactor struct {
	sessions     contracts.SessionStore
	enforceStock bool
}

// NewInteractor creates a new update cart item interactor.
func NewInteractor(sessions contracts.SessionStore, enforceStock bool) *Interactor {
	return &Interactor{
		sessions:     sessions,
		enforceStock: enforceStock,
	}
}

// Execute sets the quantity. Products not in the cart are ignored.
func (i *Interactor) Execute(ctx context.Context, req *Request) (domain.CartView, error) {
	return i.sessions.WithCart(ctx, req.SessionID, func(cart *domain.CartStore) error {
		if i.enforceStock {
			if line, ok := cart.Line(req.ProductID); ok && req.Quantity > line.Product().Stock() {
				return fmt.Errorf("%w: %d of product %d in stock",
					domain.ErrInsufficientStock, line.Product().Stock(), req.ProductID)
			}
		}
		cart.UpdateQuantity(req.ProductID, req.Quantity)
		return nil
	})
}
