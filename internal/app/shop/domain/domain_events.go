package domain

// DomainEvent is the base interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// CartItemAddedEvent is emitted when AddItem inserts or increments a line.
type CartItemAddedEvent struct {
	CartID      string
	ProductID   int64
	Added       int
	NewQuantity int
}

func (e *CartItemAddedEvent) EventType() string {
	return "cart.item.added"
}

func (e *CartItemAddedEvent) AggregateID() string {
	return e.CartID
}

// CartItemQuantityChangedEvent is emitted when a line quantity is set directly.
type CartItemQuantityChangedEvent struct {
	CartID      string
	ProductID   int64
	OldQuantity int
	NewQuantity int
}

func (e *CartItemQuantityChangedEvent) EventType() string {
	return "cart.item.quantity_changed"
}

func (e *CartItemQuantityChangedEvent) AggregateID() string {
	return e.CartID
}

// CartItemRemovedEvent is emitted when a line leaves the cart.
type CartItemRemovedEvent struct {
	CartID    string
	ProductID int64
}

func (e *CartItemRemovedEvent) EventType() string {
	return "cart.item.removed"
}

func (e *CartItemRemovedEvent) AggregateID() string {
	return e.CartID
}

// CartClearedEvent is emitted when Clear empties a non-empty cart.
type CartClearedEvent struct {
	CartID       string
	LinesRemoved int
}

func (e *CartClearedEvent) EventType() string {
	return "cart.cleared"
}

func (e *CartClearedEvent) AggregateID() string {
	return e.CartID
}
