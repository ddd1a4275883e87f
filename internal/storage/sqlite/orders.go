package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/metonline/hesap-paylas/internal/models"
)

// CreateOrder persists a new order with its line items.
func (s *SQLiteStore) CreateOrder(ctx context.Context, order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.CreatedAt == 0 {
		order.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO orders (id, group_id, creator_id, restaurant, created_at) VALUES (?, ?, ?, ?, ?)",
		order.ID, order.GroupID, order.CreatorID, order.Restaurant, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for i := range order.Items {
		item := &order.Items[i]
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO order_items (id, order_id, participant_id, name, unit_price, quantity, classification, position) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			item.ID, order.ID, item.ParticipantID, item.Name,
			item.UnitPrice.String(), item.Quantity.String(), string(item.Classification), i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetOrder retrieves an order with all its items in insertion order.
func (s *SQLiteStore) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	order := &models.Order{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, group_id, creator_id, restaurant, created_at FROM orders WHERE id = ?",
		orderID,
	).Scan(&order.ID, &order.GroupID, &order.CreatorID, &order.Restaurant, &order.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("order not found: %s", orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, participant_id, name, unit_price, quantity, classification FROM order_items WHERE order_id = ? ORDER BY position",
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		var price, qty, class string
		if err := rows.Scan(&item.ID, &item.ParticipantID, &item.Name, &price, &qty, &class); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		if item.UnitPrice, err = scanDecimal(price); err != nil {
			return nil, err
		}
		if item.Quantity, err = scanDecimal(qty); err != nil {
			return nil, err
		}
		if item.Classification, err = models.ParseClassification(class); err != nil {
			return nil, fmt.Errorf("corrupt classification column: %w", err)
		}
		order.Items = append(order.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order items: %w", err)
	}

	return order, nil
}
