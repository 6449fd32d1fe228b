package list_categories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/shopfront-service/internal/app/shop/repo"
)

func TestQuery_Execute(t *testing.T) {
	got, err := NewQuery(repo.NewSeededMemoryCatalog()).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"All", "Electronics", "Clothing", "Books", "Home & Kitchen"}, got)

	empty, err := NewQuery(repo.NewMemoryCatalog(nil)).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"All"}, empty)
}
