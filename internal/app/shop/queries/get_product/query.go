package get_product

import (
	"context"

	"github.com/light-bringer/shopfront-service/internal/app/shop/contracts"
	"github.com/light-bringer/shopfront-service/internal/app/shop/domain"
)

// Request identifies the product to load.
type Request struct {
	ProductID int64
}

// Query handles the get product query use case.
type Query struct {
	source contracts.CatalogSource
}

// NewQuery creates a new get product query.
func NewQuery(source contracts.CatalogSource) *Query {
	return &Query{
		source: source,
	}
}

// Execute returns domain.ErrProductNotFound for unknown ids.
func (q *Query) Execute(ctx context.Context, req *Request) (*domain.Product, error) {
	return q.source.GetProductByID(ctx, req.ProductID)
}
