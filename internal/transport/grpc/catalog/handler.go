// Package catalog serves the read-only product catalog over gRPC. Messages
// are google.protobuf.Struct values so the service needs no generated code.
package catalog

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/shopfront-service/internal/app/shop/domain"
	"github.com/light-bringer/shopfront-service/internal/app/shop/queries/get_product"
	"github.com/light-bringer/shopfront-service/internal/app/shop/queries/list_products"
)

const (
	ServiceName        = "shopfront.catalog.v1.CatalogService"
	ListProductsMethod = "/" + ServiceName + "/ListProducts"
	GetProductMethod   = "/" + ServiceName + "/GetProduct"
)

// CatalogServer is the server API of the catalog service.
type CatalogServer interface {
	ListProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// Handler implements CatalogServer on the catalog queries.
type Handler struct {
	listProducts    *list_products.Query
	getProduct      *get_product.Query
	defaultPriceMax *domain.Money
	logger          *zap.Logger
}

var _ CatalogServer = (*Handler)(nil)

// NewHandler creates a new gRPC catalog handler. defaultPriceMax caps
// listings that give no max; nil leaves them open.
func NewHandler(
	listProducts *list_products.Query,
	getProduct *get_product.Query,
	defaultPriceMax *domain.Money,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		listProducts:    listProducts,
		getProduct:      getProduct,
		defaultPriceMax: defaultPriceMax,
		logger:          logger.Named("grpc"),
	}
}

// ListProducts returns {"products": [...], "total": n}.
func (h *Handler) ListProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	listReq, err := parseListProductsRequest(req, h.defaultPriceMax)
	if err != nil {
		return nil, err
	}

	resp, err := h.listProducts.Execute(ctx, listReq)
	if err != nil {
		return nil, h.fail(ListProductsMethod, err)
	}

	out, err := productsToStruct(resp.Products)
	if err != nil {
		return nil, h.fail(ListProductsMethod, err)
	}
	return out, nil
}

// GetProduct returns one product by {"product_id": n}.
func (h *Handler) GetProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	getReq, err := parseGetProductRequest(req)
	if err != nil {
		return nil, err
	}

	p, err := h.getProduct.Execute(ctx, getReq)
	if err != nil {
		return nil, h.fail(GetProductMethod, err)
	}

	out, err := productToStruct(p)
	if err != nil {
		return nil, h.fail(GetProductMethod, err)
	}
	return out, nil
}

func (h *Handler) fail(method string, err error) error {
	st := mapDomainErrorToGRPC(err)
	if status.Code(st) == codes.Internal {
		h.logger.Error("rpc failed", zap.String("method", method), zap.Error(err))
	}
	return st
}

// Register adds the catalog service to s.
func Register(s grpc.ServiceRegistrar, srv CatalogServer) {
	s.RegisterService(&serviceDesc, srv)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListProducts",
			Handler:    unaryHandler(ListProductsMethod, CatalogServer.ListProducts),
		},
		{
			MethodName: "GetProduct",
			Handler:    unaryHandler(GetProductMethod, CatalogServer.GetProduct),
		},
	},
	Streams: []grpc.StreamDesc{},
}

type unaryMethod func(CatalogServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CatalogServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(CatalogServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Client calls the catalog service.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a client on cc.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// ListProducts calls CatalogService/ListProducts.
func (c *Client) ListProducts(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ListProductsMethod, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProduct calls CatalogService/GetProduct.
func (c *Client) GetProduct(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetProductMethod, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
