package models

import "github.com/shopspring/decimal"

// Settlement is a persisted settlement computed for one order.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string

	// OrderID is the order this settlement was computed from.
	OrderID string

	// GroupID is the group the order belonged to.
	GroupID string

	// BillTotal is the reconcilable total (personal + shared line totals).
	BillTotal decimal.Decimal

	// ExcludedTotal is the informational total of excluded items.
	ExcludedTotal decimal.Decimal

	// TipAmount and TaxAmount are the resolved absolute amounts that were
	// distributed across the group.
	TipAmount decimal.Decimal
	TaxAmount decimal.Decimal

	// NumParticipants is the headcount used for the shared split.
	NumParticipants int

	// Shares are the per-participant breakdowns.
	Shares []SettlementShare

	// CreatedAt is the Unix timestamp when the settlement was recorded.
	CreatedAt int64
}

// SettlementShare is one participant's persisted share of a settlement.
type SettlementShare struct {
	ParticipantID   string
	ParticipantName string

	PersonalTotal    decimal.Decimal
	SharedShare      decimal.Decimal
	TipShare         decimal.Decimal
	TaxShare         decimal.Decimal
	GrandTotal       decimal.Decimal
	ConsumptionRatio decimal.Decimal
}
