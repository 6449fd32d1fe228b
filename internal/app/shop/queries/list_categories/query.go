package list_categories

import (
	"context"

	"github.com/light-bringer/shopfront-service/internal/app/shop/contracts"
	"github.com/light-bringer/shopfront-service/internal/app/shop/domain"
)

// Query lists the catalog categories, "All" first.
type Query struct {
	source contracts.CatalogSource
}

// NewQuery creates a new list categories query.
func NewQuery(source contracts.CatalogSource) *Query {
	return &Query{
		source: source,
	}
}

// Execute returns categories in the order they first appear in the catalog.
func (q *Query) Execute(ctx context.Context) ([]string, error) {
	products, err := q.source.ListProducts(ctx, nil)
	if err != nil {
		return nil, err
	}
	return domain.ListCategories(products), nil
}
