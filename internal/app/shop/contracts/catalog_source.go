package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/shopfront-service/internal/app/shop/domain"
)

// CatalogFilter narrows what a catalog source returns. Sources may push the
// category down to storage; the catalog query pipeline re-applies it anyway.
type CatalogFilter struct {
	Category    string
	InStockOnly bool
}

// CatalogSource supplies the products visible to the query pipeline, in
// catalog order.
type CatalogSource interface {
	// ListProducts returns products matching filter (nil means all)
	ListProducts(ctx context.Context, filter *CatalogFilter) ([]*domain.Product, error)

	// GetProductByID returns domain.ErrProductNotFound for unknown ids
	GetProductByID(ctx context.Context, productID int64) (*domain.Product, error)
}

// CatalogRepository builds write mutations for the products table.
// Repositories return mutations, they don't apply them.
type CatalogRepository interface {
	// UpsertMut creates an insert-or-update mutation for a product
	// Returns error if the price exceeds int64 bounds
	UpsertMut(product *domain.Product) (*spanner.Mutation, error)

	// DeleteMut creates a mutation removing a product
	DeleteMut(productID int64) *spanner.Mutation
}

// CatalogWriter applies single-product changes.
type CatalogWriter interface {
	// SaveProduct inserts the product or replaces the one with its id
	SaveProduct(ctx context.Context, product *domain.Product) error

	// DeleteProduct returns domain.ErrProductNotFound for unknown ids
	DeleteProduct(ctx context.Context, productID int64) error
}
