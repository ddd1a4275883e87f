// Package settlement computes the fair-share settlement for one bill.
//
// Shared items are split evenly by headcount; tip and tax are distributed in
// proportion to each participant's consumption (personal + shared share).
// The sum of all grand totals reconciles to billTotal + tip + tax.
package settlement

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/metonline/hesap-paylas/internal/ledger"
	"github.com/metonline/hesap-paylas/internal/models"
)

// ErrEmptyGroup is returned by Settle when the ledger has no registered
// participants. A settlement with nobody in it is meaningless and must not
// silently produce zeros.
var ErrEmptyGroup = errors.New("settlement requires at least one participant")

// TipTaxConfig carries the resolved tip and tax amounts. Percentage-to-amount
// conversion happens at the caller's boundary; the engine only distributes
// absolute amounts. Both must be non-negative.
type TipTaxConfig struct {
	TipAmount decimal.Decimal
	TaxAmount decimal.Decimal
}

// ParticipantShare is one participant's computed share of the bill.
type ParticipantShare struct {
	Participant models.Participant

	// PersonalTotal is the sum of this participant's personal line totals.
	PersonalTotal decimal.Decimal

	// SharedShare is the even headcount split of the shared pool. Identical
	// for every participant.
	SharedShare decimal.Decimal

	// TipShare and TaxShare are weighted by ConsumptionRatio.
	TipShare decimal.Decimal
	TaxShare decimal.Decimal

	// GrandTotal = PersonalTotal + SharedShare + TipShare + TaxShare.
	GrandTotal decimal.Decimal

	// ConsumptionRatio is this participant's fraction of the reconcilable
	// bill: (PersonalTotal + SharedShare) / BillTotal. Zero on a zero bill.
	ConsumptionRatio decimal.Decimal
}

// Result is the full settlement breakdown for one bill.
type Result struct {
	// Shares are per-participant breakdowns in ledger registration order.
	Shares []ParticipantShare

	// BillTotal is the sum of personal and shared line totals. Excluded
	// items never enter it.
	BillTotal decimal.Decimal

	// ExcludedTotal is informational only.
	ExcludedTotal decimal.Decimal

	// TipAmount and TaxAmount are the amounts actually distributed. On a
	// zero bill nothing is distributed and both are zero.
	TipAmount decimal.Decimal
	TaxAmount decimal.Decimal

	// NumParticipants is the headcount used for the shared split.
	NumParticipants int
}

// GrandTotal is the full amount charged to the group:
// BillTotal + TipAmount + TaxAmount.
func (r *Result) GrandTotal() decimal.Decimal {
	return r.BillTotal.Add(r.TipAmount).Add(r.TaxAmount)
}

// Settle computes the per-participant settlement for the ledger.
//
// Returns ErrEmptyGroup if the ledger has no registered participants. A bill
// where every item is excluded (or the ledger holds no items) settles to
// zero for everyone regardless of tip and tax: there is nothing to
// distribute against, so nothing is charged.
func Settle(l *ledger.Ledger, cfg TipTaxConfig) (*Result, error) {
	participants := l.Participants()
	n := len(participants)
	if n == 0 {
		return nil, ErrEmptyGroup
	}

	billTotal := l.SharedTotal()
	for _, p := range participants {
		billTotal = billTotal.Add(l.PersonalTotal(p.ID))
	}

	res := &Result{
		BillTotal:       billTotal,
		ExcludedTotal:   l.ExcludedTotal(),
		NumParticipants: n,
		Shares:          make([]ParticipantShare, 0, n),
	}

	if billTotal.IsZero() {
		for _, p := range participants {
			res.Shares = append(res.Shares, ParticipantShare{Participant: p})
		}
		return res, nil
	}

	res.TipAmount = cfg.TipAmount
	res.TaxAmount = cfg.TaxAmount

	sharedPerPerson := l.SharedTotal().Div(decimal.NewFromInt(int64(n)))

	for _, p := range participants {
		personal := l.PersonalTotal(p.ID)
		consumption := personal.Add(sharedPerPerson)
		ratio := consumption.Div(billTotal)
		tipShare := cfg.TipAmount.Mul(ratio)
		taxShare := cfg.TaxAmount.Mul(ratio)

		res.Shares = append(res.Shares, ParticipantShare{
			Participant:      p,
			PersonalTotal:    personal,
			SharedShare:      sharedPerPerson,
			TipShare:         tipShare,
			TaxShare:         taxShare,
			GrandTotal:       consumption.Add(tipShare).Add(taxShare),
			ConsumptionRatio: ratio,
		})
	}

	return res, nil
}
