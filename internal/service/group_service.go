// Package service wires the settlement engine to its collaborators: the
// store, the identity provider and the notification channel.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/metonline/hesap-paylas/internal/models"
	"github.com/metonline/hesap-paylas/internal/storage"
)

// GroupService manages dining groups.
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// CreateGroup creates a group with the creator as its first member.
// The store assigns the unique join code.
func (s *GroupService) CreateGroup(ctx context.Context, creator *models.User, name, description string) (*models.Group, error) {
	if name == "" {
		return nil, fmt.Errorf("group name is required")
	}

	group := &models.Group{
		Name:        name,
		Description: description,
		CreatedBy:   creator.ID,
		Members: []models.Participant{
			{ID: creator.ID, Name: creator.DisplayName()},
		},
	}

	if err := s.store.CreateGroup(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	slog.Info("Group created", "group_id", group.ID, "code", group.Code)
	return group, nil
}

// GetGroup retrieves a group with its members.
func (s *GroupService) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	return s.store.GetGroup(ctx, groupID)
}

// JoinGroup adds the user to the group identified by the join code.
func (s *GroupService) JoinGroup(ctx context.Context, code string, user *models.User) (*models.Group, error) {
	group, err := s.store.GetGroupByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	p := models.Participant{ID: user.ID, Name: user.DisplayName()}
	if err := s.store.AddGroupMember(ctx, group.ID, p); err != nil {
		return nil, fmt.Errorf("failed to join group: %w", err)
	}

	slog.Info("Member joined group", "group_id", group.ID, "user_id", user.ID)
	return s.store.GetGroup(ctx, group.ID)
}
