package repo

import (
	"context"
	"math"
	"math/big"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/shopfront-service/internal/app/shop/contracts"
	"github.com/light-bringer/shopfront-service/internal/app/shop/domain"
	"github.com/light-bringer/shopfront-service/internal/models/m_product"
	"github.com/light-bringer/shopfront-service/internal/pkg/committer"
	"github.com/light-bringer/shopfront-service/internal/testutil"
)

func TestListStatement(t *testing.T) {
	t.Run("no filter", func(t *testing.T) {
		stmt := ListStatement(nil)
		assert.Contains(t, stmt.SQL, "FROM products")
		assert.NotContains(t, stmt.SQL, "WHERE")
		assert.Contains(t, stmt.SQL, "ORDER BY product_id ASC")
		assert.NotContains(t, stmt.SQL, "LIMIT")
		assert.NotContains(t, stmt.Params, "limit")
	})

	t.Run("All is not pushed down", func(t *testing.T) {
		stmt := ListStatement(&contracts.CatalogFilter{Category: domain.AllCategories})
		assert.NotContains(t, stmt.SQL, "WHERE")
	})

	t.Run("category and stock", func(t *testing.T) {
		stmt := ListStatement(&contracts.CatalogFilter{Category: "Books", InStockOnly: true})
		assert.Contains(t, stmt.SQL, "WHERE category = @p0 AND stock > @p1")
		assert.Equal(t, "Books", stmt.Params["p0"])
		assert.Equal(t, int64(0), stmt.Params["p1"])
		assert.NotContains(t, stmt.SQL, "LIMIT")
	})
}

func TestDataConversion(t *testing.T) {
	p := testutil.NewProduct(t, 4, "Coffee Maker", "79.95", "Home & Kitchen", 10)

	data, err := domainToData(p)
	require.NoError(t, err)
	assert.Equal(t, int64(1599), data.PriceNumerator)
	assert.Equal(t, int64(20), data.PriceDenominator)
	assert.Equal(t, int64(10), data.Stock)

	back, err := dataToDomain(data)
	require.NoError(t, err)
	assert.True(t, p.Price().Equals(back.Price()))
	assert.Equal(t, p.Name(), back.Name())
	assert.Equal(t, p.ImageURL(), back.ImageURL())
}

func TestDataConversion_Errors(t *testing.T) {
	huge := new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), 80))
	p, err := domain.NewProduct(1, "Big", "", domain.NewMoneyFromRat(huge), "", "X", 1)
	require.NoError(t, err)

	_, err = NewSpannerCatalog(nil).UpsertMut(p)
	assert.ErrorIs(t, err, domain.ErrMoneyOverflow)

	_, err = dataToDomain(&m_product.Data{ProductID: 1, Name: "x", Category: "X", PriceNumerator: 1, PriceDenominator: 0})
	assert.Error(t, err)

	_, err = dataToDomain(&m_product.Data{ProductID: 1, Name: "x", Category: "X", PriceNumerator: 1, PriceDenominator: 1, Stock: math.MinInt32})
	assert.ErrorIs(t, err, domain.ErrInvalidStock)
}

func TestSpannerCatalog_Integration(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	catalog := NewSpannerCatalog(client)

	plan := committer.NewPlan()
	for _, p := range SeedProducts() {
		mut, err := catalog.UpsertMut(p)
		require.NoError(t, err)
		plan.Add(mut)
	}
	require.NoError(t, committer.NewCommitter(client).Apply(ctx, plan))
	testutil.AssertRowCount(t, client, m_product.TableName, 12)

	books, err := catalog.ListProducts(ctx, &contracts.CatalogFilter{Category: "Books"})
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 7, 11}, productIDs(books))

	p, err := catalog.GetProductByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "799.99", p.Price().String())

	_, err = catalog.GetProductByID(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = client.Apply(ctx, []*spanner.Mutation{catalog.DeleteMut(5)})
	require.NoError(t, err)
	_, err = catalog.GetProductByID(ctx, 5)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
