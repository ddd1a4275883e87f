package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/metonline/hesap-paylas/internal/models"
)

// CreateSettlement persists a computed settlement with its per-participant
// shares.
func (s *SQLiteStore) CreateSettlement(ctx context.Context, st *models.Settlement) error {
	if st.ID == "" {
		st.ID = uuid.New().String()
	}
	if st.CreatedAt == 0 {
		st.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO settlements (id, order_id, group_id, bill_total, excluded_total, tip_amount, tax_amount, num_participants, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		st.ID, st.OrderID, st.GroupID,
		st.BillTotal.String(), st.ExcludedTotal.String(),
		st.TipAmount.String(), st.TaxAmount.String(),
		st.NumParticipants, st.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert settlement: %w", err)
	}

	for i, share := range st.Shares {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO settlement_shares (settlement_id, participant_id, participant_name, personal_total, shared_share, tip_share, tax_share, grand_total, consumption_ratio, position)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			st.ID, share.ParticipantID, share.ParticipantName,
			share.PersonalTotal.String(), share.SharedShare.String(),
			share.TipShare.String(), share.TaxShare.String(),
			share.GrandTotal.String(), share.ConsumptionRatio.String(), i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert settlement share: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetSettlement retrieves a settlement with its shares.
func (s *SQLiteStore) GetSettlement(ctx context.Context, id string) (*models.Settlement, error) {
	st := &models.Settlement{}
	var bill, excluded, tip, tax string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, order_id, group_id, bill_total, excluded_total, tip_amount, tax_amount, num_participants, created_at FROM settlements WHERE id = ?",
		id,
	).Scan(&st.ID, &st.OrderID, &st.GroupID, &bill, &excluded, &tip, &tax, &st.NumParticipants, &st.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("settlement not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settlement: %w", err)
	}

	totals := []struct {
		raw string
		dst *decimal.Decimal
	}{
		{bill, &st.BillTotal},
		{excluded, &st.ExcludedTotal},
		{tip, &st.TipAmount},
		{tax, &st.TaxAmount},
	}
	for _, c := range totals {
		if *c.dst, err = scanDecimal(c.raw); err != nil {
			return nil, err
		}
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT participant_id, participant_name, personal_total, shared_share, tip_share, tax_share, grand_total, consumption_ratio
		 FROM settlement_shares WHERE settlement_id = ? ORDER BY position`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get settlement shares: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var share models.SettlementShare
		var personal, shared, tipShare, taxShare, grand, ratio string
		if err := rows.Scan(&share.ParticipantID, &share.ParticipantName,
			&personal, &shared, &tipShare, &taxShare, &grand, &ratio); err != nil {
			return nil, fmt.Errorf("failed to scan settlement share: %w", err)
		}
		cols := []struct {
			raw string
			dst *decimal.Decimal
		}{
			{personal, &share.PersonalTotal},
			{shared, &share.SharedShare},
			{tipShare, &share.TipShare},
			{taxShare, &share.TaxShare},
			{grand, &share.GrandTotal},
			{ratio, &share.ConsumptionRatio},
		}
		for _, c := range cols {
			if *c.dst, err = scanDecimal(c.raw); err != nil {
				return nil, err
			}
		}
		st.Shares = append(st.Shares, share)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settlement shares: %w", err)
	}

	return st, nil
}
