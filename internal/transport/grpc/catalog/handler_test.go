package catalog

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/shopfront-service/internal/app/shop/domain"
	"github.com/light-bringer/shopfront-service/internal/app/shop/queries/get_product"
	"github.com/light-bringer/shopfront-service/internal/app/shop/queries/list_products"
	"github.com/light-bringer/shopfront-service/internal/app/shop/repo"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	catalog := repo.NewSeededMemoryCatalog()
	h := NewHandler(list_products.NewQuery(catalog), get_product.NewQuery(catalog), domain.MustMoney(1000, 1), zap.NewNop())

	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer(grpc.UnaryInterceptor(LoggingInterceptor(zap.NewNop())))
	Register(srv, h)
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewClient(conn)
}

func mustStruct(t *testing.T, m map[string]any) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(m)
	require.NoError(t, err)
	return s
}

func listedIDs(t *testing.T, resp *structpb.Struct) []int64 {
	t.Helper()
	items := resp.GetFields()["products"].GetListValue().GetValues()
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, int64(item.GetStructValue().GetFields()["product_id"].GetNumberValue()))
	}
	return ids
}

func TestListProducts(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  map[string]any
		want []int64
	}{
		{"empty request lists the catalog", map[string]any{}, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
		{"category and sort", map[string]any{"category": "Electronics", "sort": "price-asc"}, []int64{1, 9, 5}},
		{"search", map[string]any{"q": "novel"}, []int64{3, 11}},
		{"numeric bounds", map[string]any{"min": 60, "max": "90"}, []int64{4, 8, 10}},
		{"in stock", map[string]any{"in_stock": true, "category": "Books"}, []int64{3, 7, 11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := client.ListProducts(ctx, mustStruct(t, tt.req))
			require.NoError(t, err)
			assert.Equal(t, tt.want, listedIDs(t, resp))
			assert.Equal(t, float64(len(tt.want)), resp.GetFields()["total"].GetNumberValue())
		})
	}
}

func TestListProducts_InvalidArguments(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	for _, req := range []map[string]any{
		{"sort": "cheapest"},
		{"min": "abc"},
		{"max": true},
		{"category": 3},
		{"in_stock": "yes"},
	} {
		_, err := client.ListProducts(ctx, mustStruct(t, req))
		assert.Equal(t, codes.InvalidArgument, status.Code(err), "%v", req)
	}
}

func TestGetProduct(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	resp, err := client.GetProduct(ctx, mustStruct(t, map[string]any{"product_id": 5}))
	require.NoError(t, err)
	fields := resp.GetFields()
	assert.Equal(t, "Smartphone", fields["name"].GetStringValue())
	assert.Equal(t, "799.99", fields["price"].GetStringValue())
	assert.Equal(t, "Electronics", fields["category"].GetStringValue())
	assert.True(t, fields["in_stock"].GetBoolValue())

	_, err = client.GetProduct(ctx, mustStruct(t, map[string]any{"product_id": 404}))
	assert.Equal(t, codes.NotFound, status.Code(err))

	for _, req := range []map[string]any{
		{},
		{"product_id": "5"},
		{"product_id": 1.5},
		{"product_id": 0},
	} {
		_, err := client.GetProduct(ctx, mustStruct(t, req))
		assert.Equal(t, codes.InvalidArgument, status.Code(err), "%v", req)
	}
}

func TestMapDomainErrorToGRPC(t *testing.T) {
	assert.NoError(t, mapDomainErrorToGRPC(nil))
	assert.Equal(t, codes.NotFound, status.Code(mapDomainErrorToGRPC(domain.ErrProductNotFound)))
	assert.Equal(t, codes.InvalidArgument, status.Code(mapDomainErrorToGRPC(domain.ErrInvalidSortKey)))
	assert.Equal(t, codes.Canceled, status.Code(mapDomainErrorToGRPC(context.Canceled)))
	assert.Equal(t, codes.Internal, status.Code(mapDomainErrorToGRPC(assert.AnError)))
}
