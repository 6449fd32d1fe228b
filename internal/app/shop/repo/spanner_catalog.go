package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/shopfront-service/internal/app/shop/contracts"
	"github.com/light-bringer/shopfront-service/internal/app/shop/domain"
	"github.com/light-bringer/shopfront-service/internal/models/m_product"
	"github.com/light-bringer/shopfront-service/internal/pkg/query"
)

// SpannerCatalog implements CatalogSource and CatalogRepository for Spanner.
type SpannerCatalog struct {
	client *spanner.Client
	model  *m_product.Model
}

// NewSpannerCatalog creates a new SpannerCatalog.
func NewSpannerCatalog(client *spanner.Client) *SpannerCatalog {
	return &SpannerCatalog{
		client: client,
		model:  m_product.NewModel(),
	}
}

// ListStatement builds the listing query for filter. Catalog order is
// product id order. The read is unbounded because search, price and sort
// run over the full result.
func ListStatement(filter *contracts.CatalogFilter) spanner.Statement {
	if filter == nil {
		filter = &contracts.CatalogFilter{}
	}

	return query.From(m_product.TableName).
		Select(m_product.Columns...).
		WhereIf(filter.Category != "" && filter.Category != domain.AllCategories,
			query.Eq(m_product.Category, filter.Category)).
		WhereIf(filter.InStockOnly, query.Gt(m_product.Stock, int64(0))).
		OrderBy(m_product.ProductID, query.Asc).
		Build()
}

// ListProducts returns products matching filter in catalog order.
func (r *SpannerCatalog) ListProducts(ctx context.Context, filter *contracts.CatalogFilter) ([]*domain.Product, error) {
	iter := r.client.Single().Query(ctx, ListStatement(filter))
	defer iter.Stop()

	products := make([]*domain.Product, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}

		p, err := dataToDomain(&data)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}

// GetProductByID returns domain.ErrProductNotFound for unknown ids.
func (r *SpannerCatalog) GetProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	row, err := r.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	return dataToDomain(&data)
}

// UpsertMut creates an insert-or-update mutation for product.
func (r *SpannerCatalog) UpsertMut(product *domain.Product) (*spanner.Mutation, error) {
	data, err := domainToData(product)
	if err != nil {
		return nil, err
	}
	return r.model.UpsertMut(data), nil
}

// DeleteMut creates a mutation removing a product.
func (r *SpannerCatalog) DeleteMut(productID int64) *spanner.Mutation {
	return r.model.DeleteMut(productID)
}

// domainToData converts a domain Product to database Data.
func domainToData(product *domain.Product) (*m_product.Data, error) {
	price := product.Price()
	if !price.IsSafeForStorage() {
		return nil, fmt.Errorf("price of product %d exceeds storage capacity: %w", product.ID(), domain.ErrMoneyOverflow)
	}

	num, _ := price.Numerator()
	denom, _ := price.Denominator()

	return &m_product.Data{
		ProductID:        product.ID(),
		Name:             product.Name(),
		Description:      product.Description(),
		PriceNumerator:   num,
		PriceDenominator: denom,
		ImageURL:         product.ImageURL(),
		Category:         product.Category(),
		Stock:            int64(product.Stock()),
	}, nil
}

// dataToDomain converts database Data to a domain Product.
func dataToDomain(data *m_product.Data) (*domain.Product, error) {
	price, err := domain.NewMoney(data.PriceNumerator, data.PriceDenominator)
	if err != nil {
		return nil, fmt.Errorf("invalid price for product %d: %w", data.ProductID, err)
	}

	p, err := domain.NewProduct(
		data.ProductID,
		data.Name,
		data.Description,
		price,
		data.ImageURL,
		data.Category,
		int(data.Stock),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid product %d: %w", data.ProductID, err)
	}
	return p, nil
}
