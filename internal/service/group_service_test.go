package service

import (
	"context"
	"testing"

	"github.com/metonline/hesap-paylas/internal/models"
)

func TestGroupLifecycle(t *testing.T) {
	store := newTestStore(t)
	svc := NewGroupService(store)
	ctx := context.Background()

	creator := &models.User{ID: "u1", FirstName: "Ayşe", LastName: "Yılmaz"}

	group, err := svc.CreateGroup(ctx, creator, "Friday Dinner", "weekly meetup")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	if group.Code == "" {
		t.Error("expected a join code")
	}
	if len(group.Members) != 1 || group.Members[0].ID != "u1" {
		t.Errorf("creator must be the first member, got %v", group.Members)
	}

	t.Run("empty name rejected", func(t *testing.T) {
		if _, err := svc.CreateGroup(ctx, creator, "", ""); err == nil {
			t.Error("expected error for empty group name")
		}
	})

	t.Run("join by code", func(t *testing.T) {
		joiner := &models.User{ID: "u2", FirstName: "Mehmet"}
		got, err := svc.JoinGroup(ctx, group.Code, joiner)
		if err != nil {
			t.Fatalf("JoinGroup failed: %v", err)
		}
		if len(got.Members) != 2 {
			t.Errorf("got %d members, want 2", len(got.Members))
		}
	})

	t.Run("join with unknown code", func(t *testing.T) {
		joiner := &models.User{ID: "u3", FirstName: "Zeynep"}
		if _, err := svc.JoinGroup(ctx, "000000", joiner); err == nil {
			t.Error("expected error for unknown code")
		}
	})

	t.Run("rejoin is idempotent", func(t *testing.T) {
		joiner := &models.User{ID: "u2", FirstName: "Mehmet"}
		got, err := svc.JoinGroup(ctx, group.Code, joiner)
		if err != nil {
			t.Fatalf("JoinGroup failed: %v", err)
		}
		if len(got.Members) != 2 {
			t.Errorf("got %d members after rejoin, want 2", len(got.Members))
		}
	})
}
