package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/metonline/hesap-paylas/internal/models"
)

// codeAttempts bounds the join-code collision retry loop. With 900000
// possible codes a handful of attempts is plenty.
const codeAttempts = 10

// generateJoinCode returns a random 6-digit code.
func generateJoinCode() string {
	return fmt.Sprintf("%06d", rand.IntN(900000)+100000)
}

// CreateGroup persists a new group, assigning a unique 6-digit join code.
// On a code collision a fresh code is generated and the insert retried.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	inserted := false
	for attempt := 0; attempt < codeAttempts; attempt++ {
		group.Code = generateJoinCode()

		var exists int
		err := tx.QueryRowContext(ctx,
			"SELECT COUNT(1) FROM groups WHERE code = ?", group.Code,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check join code: %w", err)
		}
		if exists > 0 {
			continue
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO groups (id, code, name, description, created_by, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			group.ID, group.Code, group.Name, group.Description, group.CreatedBy, group.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert group: %w", err)
		}
		inserted = true
		break
	}
	if !inserted {
		return fmt.Errorf("failed to allocate a unique join code after %d attempts", codeAttempts)
	}

	for _, m := range group.Members {
		if err := insertMember(ctx, tx, group.ID, m); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func insertMember(ctx context.Context, tx *sql.Tx, groupID string, p models.Participant) error {
	_, err := tx.ExecContext(ctx,
		"INSERT OR IGNORE INTO group_members (group_id, participant_id, name) VALUES (?, ?, ?)",
		groupID, p.ID, p.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group member: %w", err)
	}
	return nil
}

// AddGroupMember adds a participant to a group. Re-adding a member is a no-op.
func (s *SQLiteStore) AddGroupMember(ctx context.Context, groupID string, p models.Participant) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO group_members (group_id, participant_id, name) VALUES (?, ?, ?)",
		groupID, p.ID, p.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to add group member: %w", err)
	}
	return nil
}

// GetGroup retrieves a group with its members by ID.
func (s *SQLiteStore) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	return s.getGroup(ctx, "id = ?", groupID)
}

// GetGroupByCode retrieves a group by its join code.
func (s *SQLiteStore) GetGroupByCode(ctx context.Context, code string) (*models.Group, error) {
	return s.getGroup(ctx, "code = ?", code)
}

func (s *SQLiteStore) getGroup(ctx context.Context, where string, arg any) (*models.Group, error) {
	group := &models.Group{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, code, name, description, created_by, created_at FROM groups WHERE "+where,
		arg,
	).Scan(&group.ID, &group.Code, &group.Name, &group.Description, &group.CreatedBy, &group.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("group not found: %v", arg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT participant_id, name FROM group_members WHERE group_id = ? ORDER BY rowid",
		group.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get group members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan group member: %w", err)
		}
		group.Members = append(group.Members, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate group members: %w", err)
	}

	return group, nil
}
