package models

import "github.com/shopspring/decimal"

// Order represents one restaurant visit's collected line items for a group.
// Items accumulate while the group is ordering; a settlement is computed
// from the order once the bill arrives.
type Order struct {
	// ID is the unique identifier for the order (UUID format).
	ID string

	// GroupID is the group this order belongs to.
	GroupID string

	// CreatorID is the user who opened the order.
	CreatorID string

	// Restaurant is the restaurant's display name.
	Restaurant string

	// Items are the tagged line items, in insertion order.
	Items []OrderItem

	// CreatedAt is the Unix timestamp when the order was opened.
	CreatedAt int64
}

// OrderItem is one persisted line on an order.
type OrderItem struct {
	// ID is the unique identifier for the item (UUID format).
	ID string

	// ParticipantID is the user who added the item. For shared items this
	// is attribution only; the cost is pooled.
	ParticipantID string

	// Name is the menu item name.
	Name string

	// UnitPrice is the price per unit.
	UnitPrice decimal.Decimal

	// Quantity may be fractional (0.5 for a half portion).
	Quantity decimal.Decimal

	// Classification tags the item as personal, shared or excluded.
	Classification Classification
}

// LineTotal is UnitPrice × Quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(i.Quantity)
}
