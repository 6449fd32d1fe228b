package delete_product

import (
	"context"

	"go.uber.org/zap"

	"github.com/light-bringer/shopfront-service/internal/app/shop/contracts"
)

// Request identifies the product to remove.
type Request struct {
	ProductID int64
	Actor     string
}

// Interactor handles the delete product use case.
type Interactor struct {
	writer contracts.CatalogWriter
	logger *zap.Logger
}

// NewInteractor creates a new delete product interactor.
func NewInteractor(writer contracts.CatalogWriter, logger *zap.Logger) *Interactor {
	return &Interactor{
		writer: writer,
		logger: logger,
	}
}

// Execute removes the product from the catalog. Carts holding it keep their
// line until the shopper removes it.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if err := i.writer.DeleteProduct(ctx, req.ProductID); err != nil {
		return err
	}

	i.logger.Info("product deleted",
		zap.Int64("product_id", req.ProductID),
		zap.String("actor", req.Actor))
	return nil
}
