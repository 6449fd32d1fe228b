package domain

import "errors"

// Domain errors as sentinel values
var (
	// Product errors
	ErrProductNotFound = errors.New("product not found")
	ErrProductExists   = errors.New("product already exists")
	ErrEmptyName       = errors.New("product name cannot be empty")
	ErrInvalidPrice    = errors.New("product price cannot be negative")
	ErrInvalidCategory = errors.New("product category cannot be empty")
	ErrInvalidStock    = errors.New("product stock cannot be negative")
	ErrMoneyOverflow   = errors.New("money value exceeds int64 storage bounds")

	// Cart errors
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrInsufficientStock = errors.New("requested quantity exceeds available stock")

	// Catalog query errors
	ErrInvalidSortKey = errors.New("unknown sort key")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrTokenDecode     = errors.New("token could not be decoded")
	ErrNotAdmin        = errors.New("session is not an admin session")
)
