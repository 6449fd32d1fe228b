package m_product

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the products table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// UpsertMut creates a Spanner mutation writing a full product row.
// Both timestamps take the commit time; catalog rows are rewritten wholesale.
func (m *Model) UpsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
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
		},
		[]interface{}{
			data.ProductID,
			data.Name,
			data.Description,
			data.PriceNumerator,
			data.PriceDenominator,
			data.ImageURL,
			data.Category,
			data.Stock,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting a product (hard delete).
func (m *Model) DeleteMut(productID int64) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID})
}
