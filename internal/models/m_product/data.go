package m_product

import (
	"time"
)

// Data represents the database model for the products table.
type Data struct {
	ProductID        int64     `spanner:"product_id"`
	Name             string    `spanner:"name"`
	Description      string    `spanner:"description"`
	PriceNumerator   int64     `spanner:"price_numerator"`
	PriceDenominator int64     `spanner:"price_denominator"`
	ImageURL         string    `spanner:"image_url"`
	Category         string    `spanner:"category"`
	Stock            int64     `spanner:"stock"`
	CreatedAt        time.Time `spanner:"created_at"`
	UpdatedAt        time.Time `spanner:"updated_at"`
}
