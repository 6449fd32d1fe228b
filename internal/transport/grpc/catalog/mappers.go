package catalog

import (
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/shopfront-service/internal/app/shop/domain"
)

func productToValue(p *domain.Product) map[string]any {
	return map[string]any{
		"product_id":  p.ID(),
		"name":        p.Name(),
		"description": p.Description(),
		"price":       p.Price().String(),
		"image_url":   p.ImageURL(),
		"category":    p.Category(),
		"stock":       p.Stock(),
		"in_stock":    p.InStock(),
	}
}

func productToStruct(p *domain.Product) (*structpb.Struct, error) {
	return structpb.NewStruct(productToValue(p))
}

func productsToStruct(products []*domain.Product) (*structpb.Struct, error) {
	items := make([]any, 0, len(products))
	for _, p := range products {
		items = append(items, productToValue(p))
	}
	return structpb.NewStruct(map[string]any{
		"products": items,
		"total":    len(products),
	})
}
