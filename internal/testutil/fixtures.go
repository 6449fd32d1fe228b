package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/light-bringer/shopfront-service/internal/app/shop/domain"
	"github.com/light-bringer/shopfront-service/internal/pkg/clock"
)

// Epoch is the fixed start time used by test clocks.
var Epoch = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// NewMockClock creates a mock clock starting at Epoch.
func NewMockClock() *clock.MockClock {
	return clock.NewMockClock(Epoch)
}

// NewProduct builds a valid product priced from a decimal string.
func NewProduct(t *testing.T, id int64, name, price, category string, stock int) *domain.Product {
	t.Helper()

	m, err := domain.ParseMoney(price)
	require.NoError(t, err)

	p, err := domain.NewProduct(id, name, name+" description", m, "https://img.example/"+name, category, stock)
	require.NoError(t, err)
	return p
}
