package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Product is an orderable catalog entry. It is immutable once loaded; the cart
// holds references to products, never copies.
type Product struct {
	id          int64
	name        string
	description string
	price       *Money
	imageURL    string
	category    string
	stock       int
}

// NewProduct creates a validated Product.
func NewProduct(id int64, name, description string, price *Money, imageURL, category string, stock int) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if category == "" {
		return nil, ErrInvalidCategory
	}

	if price == nil || price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	if stock < 0 {
		return nil, ErrInvalidStock
	}

	return &Product{
		id:          id,
		name:        name,
		description: description,
		price:       price.Copy(),
		imageURL:    imageURL,
		category:    category,
		stock:       stock,
	}, nil
}

// Getters
func (p *Product) ID() int64           { return p.id }
func (p *Product) Name() string        { return p.name }
func (p *Product) Description() string { return p.description }
func (p *Product) Price() *Money       { return p.price.Copy() }
func (p *Product) ImageURL() string    { return p.imageURL }
func (p *Product) Category() string    { return p.category }
func (p *Product) Stock() int          { return p.stock }

// InStock returns true if at least one unit can be ordered.
func (p *Product) InStock() bool {
	return p.stock > 0
}

// NormalizeCategory turns a route segment such as "electronics" into the
// stored category casing ("Electronics"). Only the first rune is changed.
func NormalizeCategory(segment string) string {
	segment = strings.TrimSpace(segment)
	if segment == "" {
		return segment
	}
	r, size := utf8.DecodeRuneInString(segment)
	return string(unicode.ToUpper(r)) + segment[size:]
}
