package repo

import (
	"context"
	"slices"
	"sync"

	"github.com/light-bringer/shopfront-service/internal/app/shop/contracts"
	"github.com/light-bringer/shopfront-service/internal/app/shop/domain"
)

// MemoryCatalog is an in-process CatalogSource. Products keep the order
// they were given in.
type MemoryCatalog struct {
	mu       sync.RWMutex
	products []*domain.Product
	byID     map[int64]*domain.Product
}

// NewMemoryCatalog creates a catalog holding products. Later duplicates of
// an id replace the earlier entry in place.
func NewMemoryCatalog(products []*domain.Product) *MemoryCatalog {
	c := &MemoryCatalog{
		products: make([]*domain.Product, 0, len(products)),
		byID:     make(map[int64]*domain.Product, len(products)),
	}
	for _, p := range products {
		c.put(p)
	}
	return c
}

// NewSeededMemoryCatalog creates a catalog holding SeedProducts.
func NewSeededMemoryCatalog() *MemoryCatalog {
	return NewMemoryCatalog(SeedProducts())
}

func (c *MemoryCatalog) put(p *domain.Product) {
	if _, ok := c.byID[p.ID()]; ok {
		idx := slices.IndexFunc(c.products, func(existing *domain.Product) bool {
			return existing.ID() == p.ID()
		})
		c.products[idx] = p
	} else {
		c.products = append(c.products, p)
	}
	c.byID[p.ID()] = p
}

// ListProducts returns products matching filter in catalog order.
func (c *MemoryCatalog) ListProducts(ctx context.Context, filter *contracts.CatalogFilter) ([]*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*domain.Product, 0, len(c.products))
	for _, p := range c.products {
		if filter != nil {
			if filter.Category != "" && filter.Category != domain.AllCategories && p.Category() != filter.Category {
				continue
			}
			if filter.InStockOnly && !p.InStock() {
				continue
			}
		}
		out = append(out, p)
	}
	return out, nil
}

// GetProductByID returns domain.ErrProductNotFound for unknown ids.
func (c *MemoryCatalog) GetProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.byID[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

// Upsert adds or replaces products.
func (c *MemoryCatalog) Upsert(products ...*domain.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range products {
		c.put(p)
	}
}

// SaveProduct adds product or replaces the entry with its id in place.
func (c *MemoryCatalog) SaveProduct(ctx context.Context, product *domain.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.Upsert(product)
	return nil
}

// DeleteProduct removes a product, keeping the order of the rest.
func (c *MemoryCatalog) DeleteProduct(ctx context.Context, productID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byID[productID]; !ok {
		return domain.ErrProductNotFound
	}
	delete(c.byID, productID)
	c.products = slices.DeleteFunc(c.products, func(p *domain.Product) bool {
		return p.ID() == productID
	})
	return nil
}

// Len returns the number of products held.
func (c *MemoryCatalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}
