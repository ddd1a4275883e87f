package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/metonline/hesap-paylas/internal/ledger"
	"github.com/metonline/hesap-paylas/internal/models"
	"github.com/metonline/hesap-paylas/internal/storage"
)

// OrderService manages the line items collected for a group's restaurant
// visit.
type OrderService struct {
	store storage.Store
}

// NewOrderService creates a new OrderService with the given storage backend.
func NewOrderService(store storage.Store) *OrderService {
	return &OrderService{store: store}
}

// CreateOrder validates and persists a new order. Every item must pass
// ledger validation and belong to a group member; an invalid item rejects
// the whole order so the store never holds data the engine would refuse.
func (s *OrderService) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	group, err := s.store.GetGroup(ctx, order.GroupID)
	if err != nil {
		return nil, err
	}

	members := make(map[string]models.Participant, len(group.Members))
	for _, m := range group.Members {
		members[m.ID] = m
	}

	probe := ledger.New()
	for _, item := range order.Items {
		owner, ok := members[item.ParticipantID]
		if !ok {
			return nil, fmt.Errorf("participant %s is not a member of group %s", item.ParticipantID, group.ID)
		}
		err := probe.AddItem(owner, ledger.LineItem{
			Name:           item.Name,
			UnitPrice:      item.UnitPrice,
			Quantity:       item.Quantity,
			Classification: item.Classification,
		})
		if err != nil {
			return nil, err
		}
	}

	if err := s.store.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	slog.Info("Order created", "order_id", order.ID, "group_id", order.GroupID, "items", len(order.Items))
	return order, nil
}

// GetOrder retrieves an order with its items.
func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	return s.store.GetOrder(ctx, orderID)
}
