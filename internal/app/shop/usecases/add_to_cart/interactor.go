package add_to_cart

import (
	"context"
	"fmt"

	"github.com/light-bringer/shopfront-service/internal/app/shop/contracts"
	"github.com/light-bringer/shopfront-service/internal/app/shop/domain"
)

// Request contains the data needed to add a product to a session cart.
type Request struct {
	SessionID string
	ProductID int64
	Quantity  int
}

// Interactor handles the add to cart use case.
type Interactor struct {
	catalog      contracts.CatalogSource
	sessions     contracts.SessionStore
	enforceStock bool
}

// NewInteractor creates a new add to cart interactor. With enforceStock the
// resulting line may not exceed the product's stock.
func NewInteractor(catalog contracts.CatalogSource, sessions contracts.SessionStore, enforceStock bool) *Interactor {
	return &Interactor{
		catalog:      catalog,
		sessions:     sessions,
		enforceStock: enforceStock,
	}
}

// Execute resolves the product and adds it to the cart.
func (i *Interactor) Execute(ctx context.Context, req *Request) (domain.CartView, error) {
	if req.Quantity < 1 {
		return domain.CartView{}, domain.ErrInvalidQuantity
	}

	product, err := i.catalog.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return domain.CartView{}, err
	}

	return i.sessions.WithCart(ctx, req.SessionID, func(cart *domain.CartStore) error {
		if i.enforceStock {
			inCart := 0
			if line, ok := cart.Line(product.ID()); ok {
				inCart = line.Quantity()
			}
			if inCart+req.Quantity > product.Stock() {
				return fmt.Errorf("%w: %d of product %d in stock", domain.ErrInsufficientStock, product.Stock(), product.ID())
			}
		}
		return cart.AddItem(product, req.Quantity)
	})
}
