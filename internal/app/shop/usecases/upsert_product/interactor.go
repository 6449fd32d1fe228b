package upsert_product

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/light-bringer/shopfront-service/internal/app/shop/contracts"
	"github.com/light-bringer/shopfront-service/internal/app/shop/domain"
)

// Request carries the full product record. On create a zero ProductID takes
// the next free id; on update ProductID must exist.
type Request struct {
	Create      bool
	ProductID   int64
	Name        string
	Description string
	Price       string
	ImageURL    string
	Category    string
	Stock       int

	// Actor is the subject of the admin token, for the audit log
	Actor string
}

// Interactor handles the create and update product use cases.
type Interactor struct {
	catalog contracts.CatalogSource
	writer  contracts.CatalogWriter
	logger  *zap.Logger

	// serializes id allocation and the existence check with the write
	mu sync.Mutex
}

// NewInteractor creates a new upsert product interactor.
func NewInteractor(catalog contracts.CatalogSource, writer contracts.CatalogWriter, logger *zap.Logger) *Interactor {
	return &Interactor{
		catalog: catalog,
		writer:  writer,
		logger:  logger,
	}
}

// Execute validates the record and writes it.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Product, error) {
	price, err := domain.ParseMoney(req.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPrice, err)
	}
	if !price.IsSafeForStorage() {
		return nil, domain.ErrMoneyOverflow
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	id, err := i.resolveID(ctx, req)
	if err != nil {
		return nil, err
	}

	product, err := domain.NewProduct(id, req.Name, req.Description, price, req.ImageURL, req.Category, req.Stock)
	if err != nil {
		return nil, err
	}

	if err := i.writer.SaveProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to save product %d: %w", id, err)
	}

	i.logger.Info("product saved",
		zap.Int64("product_id", id),
		zap.Bool("created", req.Create),
		zap.String("actor", req.Actor))
	return product, nil
}

func (i *Interactor) resolveID(ctx context.Context, req *Request) (int64, error) {
	if !req.Create {
		if _, err := i.catalog.GetProductByID(ctx, req.ProductID); err != nil {
			return 0, err
		}
		return req.ProductID, nil
	}

	if req.ProductID == 0 {
		return i.nextID(ctx)
	}

	_, err := i.catalog.GetProductByID(ctx, req.ProductID)
	switch {
	case err == nil:
		return 0, fmt.Errorf("%w: %d", domain.ErrProductExists, req.ProductID)
	case errors.Is(err, domain.ErrProductNotFound):
		return req.ProductID, nil
	default:
		return 0, err
	}
}

func (i *Interactor) nextID(ctx context.Context) (int64, error) {
	products, err := i.catalog.ListProducts(ctx, nil)
	if err != nil {
		return 0, err
	}

	var maxID int64
	for _, p := range products {
		maxID = max(maxID, p.ID())
	}
	return maxID + 1, nil
}
