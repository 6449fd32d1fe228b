package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	price := MustMoney(9999, 100)

	t.Run("valid product", func(t *testing.T) {
		p, err := NewProduct(1, "Headphones", "desc", price, "https://img", "Electronics", 15)
		require.NoError(t, err)
		assert.Equal(t, int64(1), p.ID())
		assert.Equal(t, "Headphones", p.Name())
		assert.Equal(t, "99.99", p.Price().String())
		assert.Equal(t, "Electronics", p.Category())
		assert.Equal(t, 15, p.Stock())
		assert.True(t, p.InStock())
	})

	t.Run("zero price and stock allowed", func(t *testing.T) {
		p, err := NewProduct(2, "Sample", "", Zero(), "", "Books", 0)
		require.NoError(t, err)
		assert.False(t, p.InStock())
	})

	t.Run("validation", func(t *testing.T) {
		_, err := NewProduct(1, "", "", price, "", "Books", 1)
		assert.ErrorIs(t, err, ErrEmptyName)

		_, err = NewProduct(1, "x", "", price, "", "", 1)
		assert.ErrorIs(t, err, ErrInvalidCategory)

		_, err = NewProduct(1, "x", "", MustMoney(-1, 1), "", "Books", 1)
		assert.ErrorIs(t, err, ErrInvalidPrice)

		_, err = NewProduct(1, "x", "", nil, "", "Books", 1)
		assert.ErrorIs(t, err, ErrInvalidPrice)

		_, err = NewProduct(1, "x", "", price, "", "Books", -1)
		assert.ErrorIs(t, err, ErrInvalidStock)
	})

	t.Run("price is copied", func(t *testing.T) {
		p, err := NewProduct(1, "x", "", price, "", "Books", 1)
		require.NoError(t, err)
		_ = p.Price().Add(MustMoney(1, 1))
		assert.Equal(t, "99.99", p.Price().String())
	})
}
