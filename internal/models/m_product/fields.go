package m_product

// Field name constants for the products table.
const (
	TableName = "products"

	ProductID        = "product_id"
	Name             = "name"
	Description      = "description"
	PriceNumerator   = "price_numerator"
	PriceDenominator = "price_denominator"
	ImageURL         = "image_url"
	Category         = "category"
	Stock            = "stock"
	CreatedAt        = "created_at"
	UpdatedAt        = "updated_at"
)

// Columns lists the readable columns in table order.
var Columns = []string{
	ProductID,
	Name,
	Description,
	PriceNumerator,
	PriceDenominator,
	ImageURL,
	Category,
	Stock,
	CreatedAt,
	UpdatedAt,
}
