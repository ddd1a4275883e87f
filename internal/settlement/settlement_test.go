package settlement

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/metonline/hesap-paylas/internal/ledger"
	"github.com/metonline/hesap-paylas/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// tolerance for divisions that have no exact decimal representation.
var tolerance = dec("0.000000001")

func within(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(tolerance)
}

var (
	alice = models.Participant{ID: "u1", Name: "Alice"}
	bob   = models.Participant{ID: "u2", Name: "Bob"}
	carol = models.Participant{ID: "u3", Name: "Carol"}
)

func addItem(t *testing.T, l *ledger.Ledger, p models.Participant, name, price, qty string, c models.Classification) {
	t.Helper()
	err := l.AddItem(p, ledger.LineItem{
		Name:           name,
		UnitPrice:      dec(price),
		Quantity:       dec(qty),
		Classification: c,
	})
	if err != nil {
		t.Fatalf("AddItem(%s) failed: %v", name, err)
	}
}

func shareFor(t *testing.T, res *Result, p models.Participant) ParticipantShare {
	t.Helper()
	for _, s := range res.Shares {
		if s.Participant.ID == p.ID {
			return s
		}
	}
	t.Fatalf("no share for %s", p.Name)
	return ParticipantShare{}
}

// The worked scenario: A has a personal 50, B a personal 20, A added a shared
// 16. Tip 25, tax 12.5. Bill 86, shared per person 8, A consumes 58 of 86.
func TestSettleScenario(t *testing.T) {
	l := ledger.New()
	addItem(t, l, alice, "Kebap", "50", "1", models.Personal)
	addItem(t, l, bob, "Lahmacun", "20", "1", models.Personal)
	addItem(t, l, alice, "Mezze", "16", "1", models.Shared)

	res, err := Settle(l, TipTaxConfig{TipAmount: dec("25"), TaxAmount: dec("12.5")})
	if err != nil {
		t.Fatalf("Settle failed: %v", err)
	}

	if !res.BillTotal.Equal(dec("86")) {
		t.Errorf("BillTotal = %s, want 86", res.BillTotal)
	}
	if res.NumParticipants != 2 {
		t.Errorf("NumParticipants = %d, want 2", res.NumParticipants)
	}

	a := shareFor(t, res, alice)
	b := shareFor(t, res, bob)

	if !a.SharedShare.Equal(dec("8")) || !b.SharedShare.Equal(dec("8")) {
		t.Errorf("shared shares = %s, %s, want 8 each", a.SharedShare, b.SharedShare)
	}
	if !a.PersonalTotal.Equal(dec("50")) {
		t.Errorf("Alice personal = %s, want 50", a.PersonalTotal)
	}

	// Alice: ratio 58/86, tip 25×ratio, tax 12.5×ratio.
	if !within(a.ConsumptionRatio, dec("58").Div(dec("86"))) {
		t.Errorf("Alice ratio = %s, want 58/86", a.ConsumptionRatio)
	}
	if !within(a.TipShare, dec("16.86046511627907")) {
		t.Errorf("Alice tip = %s, want ≈16.8605", a.TipShare)
	}
	if !within(a.TaxShare, dec("8.430232558139535")) {
		t.Errorf("Alice tax = %s, want ≈8.4302", a.TaxShare)
	}
	if !within(b.TipShare, dec("8.13953488372093")) {
		t.Errorf("Bob tip = %s, want ≈8.1395", b.TipShare)
	}
	if !within(b.GrandTotal, dec("40.20930232558139")) {
		t.Errorf("Bob grand = %s, want ≈40.2093", b.GrandTotal)
	}

	sum := a.GrandTotal.Add(b.GrandTotal)
	if !within(sum, dec("123.5")) {
		t.Errorf("sum of grand totals = %s, want 123.5", sum)
	}
}

func TestSettleEmptyGroup(t *testing.T) {
	res, err := Settle(ledger.New(), TipTaxConfig{TipAmount: dec("10")})
	if !errors.Is(err, ErrEmptyGroup) {
		t.Fatalf("Settle() error = %v, want ErrEmptyGroup", err)
	}
	if res != nil {
		t.Error("no partial result may be produced on error")
	}
}

func TestSettleAllExcluded(t *testing.T) {
	l := ledger.New()
	addItem(t, l, alice, "Cigarettes", "40", "1", models.Excluded)
	addItem(t, l, bob, "Lottery", "20", "1", models.Excluded)
	l.Register(carol)

	res, err := Settle(l, TipTaxConfig{TipAmount: dec("10"), TaxAmount: dec("5")})
	if err != nil {
		t.Fatalf("Settle failed: %v", err)
	}

	if !res.BillTotal.IsZero() {
		t.Errorf("BillTotal = %s, want 0", res.BillTotal)
	}
	if !res.ExcludedTotal.Equal(dec("60")) {
		t.Errorf("ExcludedTotal = %s, want 60", res.ExcludedTotal)
	}
	if !res.TipAmount.IsZero() || !res.TaxAmount.IsZero() {
		t.Error("nothing may be distributed on a zero bill")
	}
	if len(res.Shares) != 3 {
		t.Fatalf("got %d shares, want 3", len(res.Shares))
	}
	for _, s := range res.Shares {
		if !s.GrandTotal.IsZero() {
			t.Errorf("%s grand total = %s, want 0", s.Participant.Name, s.GrandTotal)
		}
		if !s.ConsumptionRatio.IsZero() {
			t.Errorf("%s ratio = %s, want 0", s.Participant.Name, s.ConsumptionRatio)
		}
	}
}

func TestSharedShareIdenticalAcrossParticipants(t *testing.T) {
	l := ledger.New()
	addItem(t, l, alice, "Platter", "100", "1", models.Shared)
	addItem(t, l, bob, "Wine", "60", "1", models.Shared)
	addItem(t, l, carol, "Salad", "25", "1", models.Personal)

	res, err := Settle(l, TipTaxConfig{})
	if err != nil {
		t.Fatalf("Settle failed: %v", err)
	}

	first := res.Shares[0].SharedShare
	for _, s := range res.Shares[1:] {
		if !s.SharedShare.Equal(first) {
			t.Errorf("shared share differs: %s vs %s", s.SharedShare, first)
		}
	}
	// 160 split 3 ways.
	if !within(first, dec("160").Div(dec("3"))) {
		t.Errorf("shared share = %s, want 160/3", first)
	}
}

// Changing another participant's shared or excluded items must never move
// someone's personal total.
func TestPersonalIsolation(t *testing.T) {
	build := func(extra ledger.LineItem) *Result {
		l := ledger.New()
		addItem(t, l, bob, "Güveç", "45", "1", models.Personal)
		if extra.Name != "" {
			if err := l.AddItem(alice, extra); err != nil {
				t.Fatalf("AddItem failed: %v", err)
			}
		} else {
			l.Register(alice)
		}
		res, err := Settle(l, TipTaxConfig{TipAmount: dec("9")})
		if err != nil {
			t.Fatalf("Settle failed: %v", err)
		}
		return res
	}

	base := shareFor(t, build(ledger.LineItem{}), bob)
	withShared := shareFor(t, build(ledger.LineItem{
		Name: "Mezze", UnitPrice: dec("30"), Quantity: dec("1"), Classification: models.Shared,
	}), bob)
	withExcluded := shareFor(t, build(ledger.LineItem{
		Name: "Raki", UnitPrice: dec("70"), Quantity: dec("1"), Classification: models.Excluded,
	}), bob)

	for name, got := range map[string]ParticipantShare{"shared": withShared, "excluded": withExcluded} {
		if !got.PersonalTotal.Equal(base.PersonalTotal) {
			t.Errorf("adding a %s item for Alice changed Bob's personal total: %s vs %s",
				name, got.PersonalTotal, base.PersonalTotal)
		}
	}
}

func TestHeadcountSensitivity(t *testing.T) {
	settleWith := func(extra ...models.Participant) *Result {
		l := ledger.New()
		addItem(t, l, alice, "Platter", "90", "1", models.Shared)
		l.Register(bob)
		for _, p := range extra {
			l.Register(p)
		}
		res, err := Settle(l, TipTaxConfig{})
		if err != nil {
			t.Fatalf("Settle failed: %v", err)
		}
		return res
	}

	two := settleWith()
	three := settleWith(carol)

	if !two.Shares[0].SharedShare.Equal(dec("45")) {
		t.Errorf("two-person shared share = %s, want 45", two.Shares[0].SharedShare)
	}
	if !three.Shares[0].SharedShare.Equal(dec("30")) {
		t.Errorf("three-person shared share = %s, want 30", three.Shares[0].SharedShare)
	}

	// n/(n+1) scaling.
	want := two.Shares[0].SharedShare.Mul(dec("2")).Div(dec("3"))
	if !within(three.Shares[0].SharedShare, want) {
		t.Errorf("shared share = %s, want %s", three.Shares[0].SharedShare, want)
	}
}

func TestReconciliation(t *testing.T) {
	tests := []struct {
		name string
		fill func(t *testing.T, l *ledger.Ledger)
		cfg  TipTaxConfig
	}{
		{
			name: "fractional quantities and uneven split",
			fill: func(t *testing.T, l *ledger.Ledger) {
				addItem(t, l, alice, "İskender", "185.5", "1", models.Personal)
				addItem(t, l, bob, "Pide", "120", "0.5", models.Personal)
				addItem(t, l, carol, "Künefe", "95", "1.5", models.Shared)
				addItem(t, l, alice, "Çay", "12.25", "3", models.Shared)
			},
			cfg: TipTaxConfig{TipAmount: dec("37.77"), TaxAmount: dec("18.9")},
		},
		{
			name: "zero tip and tax",
			fill: func(t *testing.T, l *ledger.Ledger) {
				addItem(t, l, alice, "Soup", "33.33", "1", models.Personal)
				addItem(t, l, bob, "Mezze", "10", "1", models.Shared)
			},
			cfg: TipTaxConfig{},
		},
		{
			name: "zero-order participant in headcount",
			fill: func(t *testing.T, l *ledger.Ledger) {
				addItem(t, l, alice, "Platter", "100", "1", models.Shared)
				l.Register(bob)
				l.Register(carol)
			},
			cfg: TipTaxConfig{TipAmount: dec("15")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ledger.New()
			tt.fill(t, l)

			res, err := Settle(l, tt.cfg)
			if err != nil {
				t.Fatalf("Settle failed: %v", err)
			}

			sum := decimal.Zero
			ratios := decimal.Zero
			for _, s := range res.Shares {
				sum = sum.Add(s.GrandTotal)
				ratios = ratios.Add(s.ConsumptionRatio)
			}

			if want := res.GrandTotal(); !within(sum, want) {
				t.Errorf("sum of grand totals = %s, want %s", sum, want)
			}
			if !within(ratios, dec("1")) {
				t.Errorf("ratios sum to %s, want 1", ratios)
			}
		})
	}
}
