package query

import "fmt"

// Condition represents a WHERE clause condition.
// Implementations generate SQL fragments using Spanner named parameters (@p0, @p1, ...).
type Condition interface {
	// SQL returns the SQL fragment and parameter map for this condition.
	SQL(paramIndex int) (string, map[string]interface{})
}

// comparison implements a binary comparison (field <op> value).
type comparison struct {
	field string
	op    string
	value interface{}
}

// Eq creates a WHERE condition for equality comparison.
// Example: Eq("category", "Books") generates "category = @p0"
func Eq(field string, value interface{}) Condition {
	return &comparison{field: field, op: "=", value: value}
}

// Gt creates a WHERE condition for a strict greater-than comparison.
// Example: Gt("stock", 0) generates "stock > @p0"
func Gt(field string, value interface{}) Condition {
	return &comparison{field: field, op: ">", value: value}
}

// SQL generates the SQL fragment for the comparison.
func (c *comparison) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	return fmt.Sprintf("%s %s @%s", c.field, c.op, paramName), map[string]interface{}{
		paramName: c.value,
	}
}
