package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/metonline/hesap-paylas/internal/ledger"
	"github.com/metonline/hesap-paylas/internal/models"
	"github.com/metonline/hesap-paylas/internal/notify"
	"github.com/metonline/hesap-paylas/internal/settlement"
	"github.com/metonline/hesap-paylas/internal/storage"
	"github.com/metonline/hesap-paylas/internal/summary"
)

// ExtraCharge is a tip or tax input: either a flat amount or a percentage of
// the bill total. Percentages are resolved to absolute amounts here, at the
// boundary; the engine only ever sees resolved amounts.
type ExtraCharge struct {
	Amount  decimal.Decimal
	Percent decimal.Decimal
}

func (e ExtraCharge) resolve(billTotal decimal.Decimal) (decimal.Decimal, error) {
	if e.Amount.IsNegative() || e.Percent.IsNegative() {
		return decimal.Zero, fmt.Errorf("tip/tax must not be negative")
	}
	if !e.Percent.IsZero() {
		return billTotal.Mul(e.Percent).Div(decimal.NewFromInt(100)), nil
	}
	return e.Amount, nil
}

// SettlementService computes, persists and announces settlements.
type SettlementService struct {
	store    storage.Store
	notifier notify.Notifier
}

// NewSettlementService creates a new SettlementService.
func NewSettlementService(store storage.Store, notifier notify.Notifier) *SettlementService {
	return &SettlementService{store: store, notifier: notifier}
}

// SettleOrder loads the order, builds a fresh ledger with every group member
// registered, settles it, persists the result and hands the rendered summary
// to the notification channel.
func (s *SettlementService) SettleOrder(ctx context.Context, orderID string, tip, tax ExtraCharge) (*models.Settlement, error) {
	order, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	group, err := s.store.GetGroup(ctx, order.GroupID)
	if err != nil {
		return nil, err
	}

	l, err := buildLedger(group, order)
	if err != nil {
		return nil, err
	}

	// Resolve percentages against the reconcilable bill total.
	billTotal := l.SharedTotal()
	for _, p := range l.Participants() {
		billTotal = billTotal.Add(l.PersonalTotal(p.ID))
	}
	cfg := settlement.TipTaxConfig{}
	if cfg.TipAmount, err = tip.resolve(billTotal); err != nil {
		return nil, err
	}
	if cfg.TaxAmount, err = tax.resolve(billTotal); err != nil {
		return nil, err
	}

	res, err := settlement.Settle(l, cfg)
	if err != nil {
		return nil, err
	}

	st := toModel(order, res)
	if err := s.store.CreateSettlement(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to persist settlement: %w", err)
	}

	text := summary.Render(group.Name, group.Code, order.Restaurant, res)
	if err := s.notifier.SendSummary(ctx, group.ID, text); err != nil {
		// Settlement is already persisted; delivery failure is not fatal.
		slog.Warn("Failed to deliver settlement summary", "settlement_id", st.ID, "error", err)
	}

	slog.Info("Order settled",
		"settlement_id", st.ID,
		"order_id", orderID,
		"bill_total", st.BillTotal,
		"participants", st.NumParticipants,
	)
	return st, nil
}

// GetSettlement retrieves a persisted settlement.
func (s *SettlementService) GetSettlement(ctx context.Context, id string) (*models.Settlement, error) {
	return s.store.GetSettlement(ctx, id)
}

// buildLedger registers every group member (zero-order members stay in the
// headcount divisor) and adds the order's items.
func buildLedger(group *models.Group, order *models.Order) (*ledger.Ledger, error) {
	l := ledger.New()
	members := make(map[string]models.Participant, len(group.Members))
	for _, m := range group.Members {
		l.Register(m)
		members[m.ID] = m
	}

	for _, item := range order.Items {
		owner, ok := members[item.ParticipantID]
		if !ok {
			return nil, fmt.Errorf("order item %s belongs to non-member %s", item.ID, item.ParticipantID)
		}
		err := l.AddItem(owner, ledger.LineItem{
			Name:           item.Name,
			UnitPrice:      item.UnitPrice,
			Quantity:       item.Quantity,
			Classification: item.Classification,
		})
		if err != nil {
			return nil, err
		}
	}
	return l, nil
}

func toModel(order *models.Order, res *settlement.Result) *models.Settlement {
	st := &models.Settlement{
		OrderID:         order.ID,
		GroupID:         order.GroupID,
		BillTotal:       res.BillTotal,
		ExcludedTotal:   res.ExcludedTotal,
		TipAmount:       res.TipAmount,
		TaxAmount:       res.TaxAmount,
		NumParticipants: res.NumParticipants,
		Shares:          make([]models.SettlementShare, 0, len(res.Shares)),
	}
	for _, sh := range res.Shares {
		st.Shares = append(st.Shares, models.SettlementShare{
			ParticipantID:    sh.Participant.ID,
			ParticipantName:  sh.Participant.Name,
			PersonalTotal:    sh.PersonalTotal,
			SharedShare:      sh.SharedShare,
			TipShare:         sh.TipShare,
			TaxShare:         sh.TaxShare,
			GrandTotal:       sh.GrandTotal,
			ConsumptionRatio: sh.ConsumptionRatio,
		})
	}
	return st
}
