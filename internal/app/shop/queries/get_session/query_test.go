package get_session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/light-bringer/shopfront-service/internal/app/shop/domain"
	"github.com/light-bringer/shopfront-service/internal/app/shop/repo"
	"github.com/light-bringer/shopfront-service/internal/app/shop/session"
	"github.com/light-bringer/shopfront-service/internal/testutil"
)

func TestQuery_Execute(t *testing.T) {
	ctx := context.Background()
	reg := session.NewRegistry(repo.NewSeededMemoryCatalog(), nil, testutil.NewMockClock(), 0, zap.NewNop())
	opened, err := reg.Open(ctx, "")
	require.NoError(t, err)

	q := NewQuery(reg)
	got, err := q.Execute(ctx, &Request{SessionID: opened.ID})
	require.NoError(t, err)
	assert.Equal(t, opened.ID, got.ID)
	assert.Equal(t, testutil.Epoch, got.OpenedAt)

	_, err = q.Execute(ctx, &Request{SessionID: "unknown"})
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
