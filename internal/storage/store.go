// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/metonline/hesap-paylas/internal/models"
)

// Store defines the persistence interface for Hesap Paylaş. The settlement
// engine itself is a pure function; the store only keeps its inputs (users,
// groups, orders) and outputs (settlements). The abstraction allows swapping
// backends without changing the service layer.
type Store interface {
	// CreateUser persists a new user account.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email, used for login.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// CreateGroup persists a new group, assigning it an ID and a unique
	// 6-digit join code.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group with its members by ID.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// GetGroupByCode retrieves a group by its join code.
	GetGroupByCode(ctx context.Context, code string) (*models.Group, error)

	// AddGroupMember adds a participant to a group. Adding an existing
	// member is a no-op.
	AddGroupMember(ctx context.Context, groupID string, p models.Participant) error

	// CreateOrder persists a new order with its line items.
	CreateOrder(ctx context.Context, order *models.Order) error

	// GetOrder retrieves an order with all its items.
	GetOrder(ctx context.Context, orderID string) (*models.Order, error)

	// CreateSettlement persists a computed settlement with its shares.
	CreateSettlement(ctx context.Context, s *models.Settlement) error

	// GetSettlement retrieves a settlement with its shares.
	GetSettlement(ctx context.Context, id string) (*models.Settlement, error)

	// Close releases any resources held by the store.
	Close() error
}
