// Package summary renders a settlement into the text handed to the delivery
// channel. All amounts are rounded to two decimal places here and only here.
package summary

import (
	"fmt"
	"strings"

	"github.com/metonline/hesap-paylas/internal/settlement"
)

const divider = "════════════════════════════════════════"

// Render formats the settlement for delivery (SMS, email or link preview).
func Render(groupName, groupCode, restaurant string, res *settlement.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "GROUP BILL — %s (#%s)\n", groupName, groupCode)
	if restaurant != "" {
		fmt.Fprintf(&b, "Restaurant: %s\n", restaurant)
	}
	b.WriteString(divider + "\n\n")

	for _, s := range res.Shares {
		fmt.Fprintf(&b, "%s\n", s.Participant.Name)
		fmt.Fprintf(&b, "  Personal:  %s\n", s.PersonalTotal.StringFixed(2))
		fmt.Fprintf(&b, "  Shared:    %s\n", s.SharedShare.StringFixed(2))
		if !s.TipShare.IsZero() {
			fmt.Fprintf(&b, "  Tip:       %s\n", s.TipShare.StringFixed(2))
		}
		if !s.TaxShare.IsZero() {
			fmt.Fprintf(&b, "  Tax:       %s\n", s.TaxShare.StringFixed(2))
		}
		fmt.Fprintf(&b, "  TOTAL:     %s\n\n", s.GrandTotal.StringFixed(2))
	}

	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "Bill total:  %s\n", res.BillTotal.StringFixed(2))
	if !res.TipAmount.IsZero() {
		fmt.Fprintf(&b, "Tip:         %s\n", res.TipAmount.StringFixed(2))
	}
	if !res.TaxAmount.IsZero() {
		fmt.Fprintf(&b, "Tax:         %s\n", res.TaxAmount.StringFixed(2))
	}
	if !res.ExcludedTotal.IsZero() {
		fmt.Fprintf(&b, "Excluded (not settled): %s\n", res.ExcludedTotal.StringFixed(2))
	}
	fmt.Fprintf(&b, "GRAND TOTAL: %s\n", res.GrandTotal().StringFixed(2))
	fmt.Fprintf(&b, "Participants: %d\n", res.NumParticipants)

	return b.String()
}
