package catalog

import (
	"fmt"
	"math"
	"strconv"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/shopfront-service/internal/app/shop/domain"
	"github.com/light-bringer/shopfront-service/internal/app/shop/queries/get_product"
	"github.com/light-bringer/shopfront-service/internal/app/shop/queries/list_products"
)

// parseListProductsRequest reads the optional category, q, min, max, sort
// and in_stock fields. Price bounds are decimal strings.
func parseListProductsRequest(req *structpb.Struct, defaultMax *domain.Money) (*list_products.Request, error) {
	out := &list_products.Request{PriceMax: defaultMax}
	fields := req.GetFields()

	var err error
	if out.Category, err = stringField(fields, "category"); err != nil {
		return nil, err
	}
	if out.Search, err = stringField(fields, "q"); err != nil {
		return nil, err
	}

	sort, err := stringField(fields, "sort")
	if err != nil {
		return nil, err
	}
	if out.Sort, err = domain.ParseSortKey(sort); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if out.PriceMin, err = moneyField(fields, "min", nil); err != nil {
		return nil, err
	}
	if out.PriceMax, err = moneyField(fields, "max", defaultMax); err != nil {
		return nil, err
	}

	if v, ok := fields["in_stock"]; ok {
		b, isBool := v.GetKind().(*structpb.Value_BoolValue)
		if !isBool {
			return nil, status.Error(codes.InvalidArgument, "in_stock must be a bool")
		}
		out.InStockOnly = b.BoolValue
	}

	return out, nil
}

// parseGetProductRequest requires a positive integral product_id.
func parseGetProductRequest(req *structpb.Struct) (*get_product.Request, error) {
	v, ok := req.GetFields()["product_id"]
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "product_id is required")
	}

	n, isNumber := v.GetKind().(*structpb.Value_NumberValue)
	if !isNumber || n.NumberValue != math.Trunc(n.NumberValue) || n.NumberValue < 1 || n.NumberValue > math.MaxInt64 {
		return nil, status.Error(codes.InvalidArgument, "product_id must be a positive integer")
	}
	return &get_product.Request{ProductID: int64(n.NumberValue)}, nil
}

func stringField(fields map[string]*structpb.Value, name string) (string, error) {
	v, ok := fields[name]
	if !ok {
		return "", nil
	}
	s, isString := v.GetKind().(*structpb.Value_StringValue)
	if !isString {
		return "", status.Error(codes.InvalidArgument, fmt.Sprintf("%s must be a string", name))
	}
	return s.StringValue, nil
}

// moneyField accepts a decimal string or a number. Absent or empty values
// return fallback.
func moneyField(fields map[string]*structpb.Value, name string, fallback *domain.Money) (*domain.Money, error) {
	v, ok := fields[name]
	if !ok {
		return fallback, nil
	}

	var raw string
	switch kind := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		raw = kind.StringValue
	case *structpb.Value_NumberValue:
		raw = strconv.FormatFloat(kind.NumberValue, 'f', -1, 64)
	default:
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("%s must be a decimal string", name))
	}
	if raw == "" {
		return fallback, nil
	}

	m, err := domain.ParseMoney(raw)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid %s price", name))
	}
	return m, nil
}
