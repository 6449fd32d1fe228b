package clear_cart

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/light-bringer/shopfront-service/internal/app/shop/domain"
	"github.com/light-bringer/shopfront-service/internal/app/shop/repo"
	"github.com/light-bringer/shopfront-service/internal/app/shop/session"
	"github.com/light-bringer/shopfront-service/internal/testutil"
)

func TestInteractor_Execute(t *testing.T) {
	ctx := context.Background()
	catalog := repo.NewSeededMemoryCatalog()
	snapshots := repo.NewMemoryCartSnapshots(time.Hour, testutil.NewMockClock())
	reg := session.NewRegistry(catalog, snapshots, testutil.NewMockClock(), 0, zap.NewNop())
	view, err := reg.Open(ctx, "")
	require.NoError(t, err)

	_, err = reg.WithCart(ctx, view.ID, func(cart *domain.CartStore) error {
		for _, id := range []int64{2, 4, 6} {
			p, err := catalog.GetProductByID(ctx, id)
			if err != nil {
				return err
			}
			if err := cart.AddItem(p, int(id)); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	cart, err := NewInteractor(reg).Execute(ctx, &Request{SessionID: view.ID})
	require.NoError(t, err)
	assert.Equal(t, 0, cart.Totals.TotalItems)
	assert.Equal(t, "0.00", cart.Totals.TotalPrice.String())

	saved, err := snapshots.Load(ctx, view.ID)
	require.NoError(t, err)
	assert.Empty(t, saved.Lines)

	cart, err = NewInteractor(reg).Execute(ctx, &Request{SessionID: view.ID})
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}
