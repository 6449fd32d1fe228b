package get_product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/shopfront-service/internal/app/shop/domain"
	"github.com/light-bringer/shopfront-service/internal/app/shop/repo"
)

func TestQuery_Execute(t *testing.T) {
	q := NewQuery(repo.NewSeededMemoryCatalog())

	p, err := q.Execute(context.Background(), &Request{ProductID: 6})
	require.NoError(t, err)
	assert.Equal(t, "Winter Jacket", p.Name())

	_, err = q.Execute(context.Background(), &Request{ProductID: 0})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
