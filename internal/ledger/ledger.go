// Package ledger holds the tagged line items for one settlement computation.
//
// A Ledger is built fresh per settlement from persisted order data, handed to
// the settlement calculator, and discarded. It is not safe for concurrent
// mutation; all AddItem calls must complete before the ledger is read.
package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/metonline/hesap-paylas/internal/models"
)

// ErrInvalidItem is returned by AddItem when a line item fails validation:
// negative unit price, non-positive quantity, or empty name. Invalid items
// never enter the ledger.
var ErrInvalidItem = errors.New("invalid line item")

// LineItem is one tagged line on the bill.
type LineItem struct {
	Name           string
	UnitPrice      decimal.Decimal
	Quantity       decimal.Decimal
	Classification models.Classification
}

// LineTotal is UnitPrice × Quantity.
func (i LineItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(i.Quantity)
}

// Ledger maps participants to their ordered line items.
type Ledger struct {
	order []models.Participant
	items map[string][]LineItem
	names map[string]models.Participant
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{
		items: make(map[string][]LineItem),
		names: make(map[string]models.Participant),
	}
}

// Register adds a participant with no items. A registered participant still
// counts toward the headcount divisor for shared items, so callers must
// register every group member before settling, even those who ordered
// nothing. Registering the same participant twice is a no-op.
func (l *Ledger) Register(p models.Participant) {
	if _, ok := l.names[p.ID]; ok {
		return
	}
	l.order = append(l.order, p)
	l.names[p.ID] = p
	l.items[p.ID] = nil
}

// AddItem validates item and appends it to p's sequence, registering p if
// absent. Returns ErrInvalidItem if the item fails validation.
func (l *Ledger) AddItem(p models.Participant, item LineItem) error {
	if item.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidItem)
	}
	if item.UnitPrice.IsNegative() {
		return fmt.Errorf("%w: negative unit price %s", ErrInvalidItem, item.UnitPrice)
	}
	if !item.Quantity.IsPositive() {
		return fmt.Errorf("%w: non-positive quantity %s", ErrInvalidItem, item.Quantity)
	}
	l.Register(p)
	l.items[p.ID] = append(l.items[p.ID], item)
	return nil
}

// PersonalTotal is the sum of line totals over participantID's personal
// items. Unknown participants have no items, so the total is zero.
func (l *Ledger) PersonalTotal(participantID string) decimal.Decimal {
	total := decimal.Zero
	for _, item := range l.items[participantID] {
		if item.Classification == models.Personal {
			total = total.Add(item.LineTotal())
		}
	}
	return total
}

// SharedTotal is the sum of line totals over all shared items across all
// participants. Shared consumption is a pool; who added an item does not
// matter.
func (l *Ledger) SharedTotal() decimal.Decimal {
	return l.totalFor(models.Shared)
}

// ExcludedTotal is the sum of line totals over all excluded items. Tracked
// for display only; excluded items never enter the settlement.
func (l *Ledger) ExcludedTotal() decimal.Decimal {
	return l.totalFor(models.Excluded)
}

func (l *Ledger) totalFor(c models.Classification) decimal.Decimal {
	total := decimal.Zero
	for _, items := range l.items {
		for _, item := range items {
			if item.Classification == c {
				total = total.Add(item.LineTotal())
			}
		}
	}
	return total
}

// Participants returns the participants in registration order.
func (l *Ledger) Participants() []models.Participant {
	out := make([]models.Participant, len(l.order))
	copy(out, l.order)
	return out
}

// Items returns participantID's line items in insertion order. Used for
// display; never for computation.
func (l *Ledger) Items(participantID string) []LineItem {
	items := l.items[participantID]
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
