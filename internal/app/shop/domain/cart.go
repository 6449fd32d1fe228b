package domain

import "slices"

// CartLine pairs a catalog product with a quantity. Quantity is always >= 1.
type CartLine struct {
	product  *Product
	quantity int
}

func (l CartLine) Product() *Product { return l.product }
func (l CartLine) Quantity() int     { return l.quantity }

// LineTotal returns price × quantity, unrounded.
func (l CartLine) LineTotal() *Money {
	return l.product.price.MultiplyByInt(int64(l.quantity))
}

// Totals are derived from the current lines on every call.
type Totals struct {
	TotalItems int
	TotalPrice *Money
}

// CartView is a point-in-time copy of a cart for presentation.
type CartView struct {
	CartID string
	Lines  []CartLine
	Totals Totals
}

// CartStore owns the line items of one browsing session.
//
// It is not safe for concurrent use; a session drives it from a single
// thread of control. Lines keep insertion order and are indexed by product id.
type CartStore struct {
	id    string
	lines []*CartLine
	index map[int64]*CartLine

	events []DomainEvent
}

// NewCartStore creates an empty cart.
func NewCartStore(id string) *CartStore {
	return &CartStore{
		id:     id,
		lines:  make([]*CartLine, 0),
		index:  make(map[int64]*CartLine),
		events: make([]DomainEvent, 0),
	}
}

func (c *CartStore) ID() string                  { return c.id }
func (c *CartStore) DomainEvents() []DomainEvent { return c.events }

// AddItem adds quantity units of product. An existing line is incremented,
// otherwise a new line is appended. Quantities below 1 are rejected with
// ErrInvalidQuantity and leave the cart unchanged. Stock is not checked here.
func (c *CartStore) AddItem(product *Product, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	line, ok := c.index[product.ID()]
	if ok {
		line.quantity += quantity
	} else {
		line = &CartLine{product: product, quantity: quantity}
		c.lines = append(c.lines, line)
		c.index[product.ID()] = line
	}

	c.recordEvent(&CartItemAddedEvent{
		CartID:      c.id,
		ProductID:   product.ID(),
		Added:       quantity,
		NewQuantity: line.quantity,
	})

	return nil
}

// UpdateQuantity sets a line's quantity. Zero or negative removes the line;
// an unknown product id is a no-op.
func (c *CartStore) UpdateQuantity(productID int64, quantity int) {
	line, ok := c.index[productID]
	if !ok {
		return
	}

	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}

	if line.quantity == quantity {
		return
	}

	old := line.quantity
	line.quantity = quantity

	c.recordEvent(&CartItemQuantityChangedEvent{
		CartID:      c.id,
		ProductID:   productID,
		OldQuantity: old,
		NewQuantity: quantity,
	})
}

// RemoveItem deletes the line for productID if present.
func (c *CartStore) RemoveItem(productID int64) {
	if _, ok := c.index[productID]; !ok {
		return
	}

	delete(c.index, productID)
	c.lines = slices.DeleteFunc(c.lines, func(l *CartLine) bool {
		return l.product.ID() == productID
	})

	c.recordEvent(&CartItemRemovedEvent{
		CartID:    c.id,
		ProductID: productID,
	})
}

// Clear empties the cart.
func (c *CartStore) Clear() {
	removed := len(c.lines)
	c.lines = make([]*CartLine, 0)
	c.index = make(map[int64]*CartLine)

	if removed > 0 {
		c.recordEvent(&CartClearedEvent{CartID: c.id, LinesRemoved: removed})
	}
}

// Lines returns the lines in insertion order.
func (c *CartStore) Lines() []CartLine {
	out := make([]CartLine, 0, len(c.lines))
	for _, l := range c.lines {
		out = append(out, *l)
	}
	return out
}

// Line returns the line for productID, if any.
func (c *CartStore) Line(productID int64) (CartLine, bool) {
	line, ok := c.index[productID]
	if !ok {
		return CartLine{}, false
	}
	return *line, true
}

// IsEmpty reports whether the cart has no lines.
func (c *CartStore) IsEmpty() bool {
	return len(c.lines) == 0
}

// Totals recomputes item count and price from the current lines.
func (c *CartStore) Totals() Totals {
	totals := Totals{TotalPrice: Zero()}
	for _, l := range c.lines {
		totals.TotalItems += l.quantity
		totals.TotalPrice = totals.TotalPrice.Add(l.LineTotal())
	}
	return totals
}

// View returns a copy of lines and totals.
func (c *CartStore) View() CartView {
	return CartView{
		CartID: c.id,
		Lines:  c.Lines(),
		Totals: c.Totals(),
	}
}

// recordEvent adds a domain event to the list of events.
func (c *CartStore) recordEvent(event DomainEvent) {
	c.events = append(c.events, event)
}

// ClearEvents clears all recorded domain events (called after publishing).
func (c *CartStore) ClearEvents() {
	c.events = make([]DomainEvent, 0)
}
