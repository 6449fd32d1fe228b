package seed_catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/light-bringer/shopfront-service/internal/app/shop/contracts"
	"github.com/light-bringer/shopfront-service/internal/app/shop/domain"
	"github.com/light-bringer/shopfront-service/internal/pkg/committer"
)

// Request lists the products to write. Prune deletes the given ids first.
type Request struct {
	Products []*domain.Product
	Prune    []int64
}

// Interactor handles the seed catalog use case.
type Interactor struct {
	repo      contracts.CatalogRepository
	committer committer.Applier
	logger    *zap.Logger
}

// NewInteractor creates a new seed catalog interactor.
func NewInteractor(repo contracts.CatalogRepository, committer committer.Applier, logger *zap.Logger) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: committer,
		logger:    logger,
	}
}

// Execute writes every product in one commit and returns the number of
// mutations applied.
func (i *Interactor) Execute(ctx context.Context, req *Request) (int, error) {
	plan := committer.NewPlan()

	for _, id := range req.Prune {
		plan.Add(i.repo.DeleteMut(id))
	}

	for _, p := range req.Products {
		mut, err := i.repo.UpsertMut(p)
		if err != nil {
			return 0, fmt.Errorf("product %d: %w", p.ID(), err)
		}
		plan.Add(mut)
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return 0, err
	}

	i.logger.Info("catalog seeded",
		zap.Int("products", len(req.Products)),
		zap.Int("pruned", len(req.Prune)))
	return plan.Count(), nil
}
