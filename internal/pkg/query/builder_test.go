package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_BasicSelect(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name", "category").
		Build()

	assert.Equal(t, "SELECT product_id, name, category FROM products", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SelectAllColumns(t *testing.T) {
	stmt := From("products").Build()

	assert.Equal(t, "SELECT * FROM products", stmt.SQL)
}

func TestBuilder_WhereConditions(t *testing.T) {
	stmt := From("products").
		Select("product_id").
		Where(Eq("category", "Books")).
		Where(Gt("stock", int64(0))).
		Build()

	assert.Equal(t, "SELECT product_id FROM products WHERE category = @p0 AND stock > @p1", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "Books",
		"p1": int64(0),
	}, stmt.Params)
}

func TestBuilder_WhereIf(t *testing.T) {
	base := From("products").Select("product_id")

	skipped := base.WhereIf(false, Eq("category", "Books")).Build()
	assert.Equal(t, "SELECT product_id FROM products", skipped.SQL)

	applied := base.WhereIf(true, Eq("category", "Books")).Build()
	assert.Equal(t, "SELECT product_id FROM products WHERE category = @p0", applied.SQL)
}

func TestBuilder_OrderAndLimit(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name").
		Where(Eq("category", "Electronics")).
		OrderBy("product_id", Asc).
		Limit(500).
		Build()

	assert.Equal(t, "SELECT product_id, name FROM products WHERE category = @p0 ORDER BY product_id ASC LIMIT @limit", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0":    "Electronics",
		"limit": int64(500),
	}, stmt.Params)

	desc := From("products").OrderBy("name", Desc).Build()
	assert.Equal(t, "SELECT * FROM products ORDER BY name DESC", desc.SQL)
}

func TestBuilder_Immutability(t *testing.T) {
	base := From("products").Select("product_id")

	stmt1 := base.Where(Eq("category", "Books")).Build()
	stmt2 := base.Where(Gt("stock", 0)).Build()

	assert.Contains(t, stmt1.SQL, "category = @p0")
	assert.NotContains(t, stmt1.SQL, "stock")
	assert.Contains(t, stmt2.SQL, "stock > @p0")
	assert.NotContains(t, stmt2.SQL, "category")
	assert.Equal(t, "SELECT product_id FROM products", base.Build().SQL)
}

func TestBuilder_String(t *testing.T) {
	str := From("products").Where(Eq("category", "Books")).String()
	require.NotEmpty(t, str)
	assert.Contains(t, str, "SQL:")
	assert.Contains(t, str, "Params:")
}

func TestCondition_ParamIndex(t *testing.T) {
	sql, params := Eq("category", "Books").SQL(5)

	assert.Equal(t, "category = @p5", sql)
	assert.Equal(t, map[string]interface{}{"p5": "Books"}, params)
}
