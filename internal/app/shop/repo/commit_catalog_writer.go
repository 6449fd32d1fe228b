package repo

import (
	"context"

	"github.com/light-bringer/shopfront-service/internal/app/shop/contracts"
	"github.com/light-bringer/shopfront-service/internal/app/shop/domain"
	"github.com/light-bringer/shopfront-service/internal/pkg/committer"
)

// CommitCatalogWriter writes products through single-mutation commit plans.
type CommitCatalogWriter struct {
	source    contracts.CatalogSource
	repo      contracts.CatalogRepository
	committer committer.Applier
}

// NewCommitCatalogWriter creates a writer. source is read to report
// domain.ErrProductNotFound on delete.
func NewCommitCatalogWriter(source contracts.CatalogSource, repo contracts.CatalogRepository, applier committer.Applier) *CommitCatalogWriter {
	return &CommitCatalogWriter{
		source:    source,
		repo:      repo,
		committer: applier,
	}
}

// SaveProduct applies an insert-or-update mutation for product.
func (w *CommitCatalogWriter) SaveProduct(ctx context.Context, product *domain.Product) error {
	mut, err := w.repo.UpsertMut(product)
	if err != nil {
		return err
	}

	plan := committer.NewPlan()
	plan.Add(mut)
	return w.committer.Apply(ctx, plan)
}

// DeleteProduct applies a delete mutation for an existing product.
func (w *CommitCatalogWriter) DeleteProduct(ctx context.Context, productID int64) error {
	if _, err := w.source.GetProductByID(ctx, productID); err != nil {
		return err
	}

	plan := committer.NewPlan()
	plan.Add(w.repo.DeleteMut(productID))
	return w.committer.Apply(ctx, plan)
}
