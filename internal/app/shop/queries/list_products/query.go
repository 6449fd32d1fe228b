package list_products

import (
	"context"

	"github.com/light-bringer/shopfront-service/internal/app/shop/contracts"
	"github.com/light-bringer/shopfront-service/internal/app/shop/domain"
)

// Request contains the listing options. A nil price bound is open.
type Request struct {
	Category    string
	Search      string
	PriceMin    *domain.Money
	PriceMax    *domain.Money
	Sort        domain.SortKey
	InStockOnly bool
}

// Response is the filtered, ordered listing.
type Response struct {
	Products []*domain.Product
	Total    int
}

// Query handles the list products query use case.
type Query struct {
	source contracts.CatalogSource
}

// NewQuery creates a new list products query.
func NewQuery(source contracts.CatalogSource) *Query {
	return &Query{
		source: source,
	}
}

// Execute loads the catalog and runs it through the catalog query pipeline.
func (q *Query) Execute(ctx context.Context, req *Request) (*Response, error) {
	category := req.Category
	if category == "" {
		category = domain.AllCategories
	}

	products, err := q.source.ListProducts(ctx, &contracts.CatalogFilter{
		Category:    category,
		InStockOnly: req.InStockOnly,
	})
	if err != nil {
		return nil, err
	}

	result := domain.ApplyCatalogQuery(products, domain.CatalogQuerySpec{
		Category: category,
		Query:    req.Search,
		PriceMin: req.PriceMin,
		PriceMax: req.PriceMax,
		Sort:     req.Sort,
	})

	return &Response{
		Products: result,
		Total:    len(result),
	}, nil
}
