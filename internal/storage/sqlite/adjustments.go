package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/splitter/internal/models"
)

// SetAdjustment inserts the adjustment or replaces the amount of the existing
// one with the same key.
func (s *SQLiteStore) SetAdjustment(ctx context.Context, adjustment *models.Adjustment) error {
	if adjustment.ID == "" {
		adjustment.ID = uuid.New().String()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO receipt_meta (id, receipt_id, key, amount) VALUES (?, ?, ?, ?)
		 ON CONFLICT (receipt_id, key) DO UPDATE SET amount = excluded.amount`,
		adjustment.ID, adjustment.ReceiptID, adjustment.Key, adjustment.Amount,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert adjustment: %w", err)
	}
	// Report the id of the row that actually holds the key.
	if err := tx.QueryRowContext(ctx,
		"SELECT id FROM receipt_meta WHERE receipt_id = ? AND key = ?", adjustment.ReceiptID, adjustment.Key,
	).Scan(&adjustment.ID); err != nil {
		return fmt.Errorf("failed to read adjustment id: %w", err)
	}
	if err := touch(ctx, tx, adjustment.ReceiptID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteAdjustment removes the adjustment with the given key.
func (s *SQLiteStore) DeleteAdjustment(ctx context.Context, receiptID, key string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM receipt_meta WHERE receipt_id = ? AND key = ?", receiptID, key)
	if err != nil {
		return fmt.Errorf("failed to delete adjustment: %w", err)
	}
	return expectOne(res, "adjustment", key)
}

func queryAdjustments(ctx context.Context, q querier, receiptID string) ([]models.Adjustment, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT id, receipt_id, key, amount FROM receipt_meta WHERE receipt_id = ? ORDER BY key",
		receiptID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get adjustments: %w", err)
	}
	defer rows.Close()

	var adjustments []models.Adjustment
	for rows.Next() {
		var adj models.Adjustment
		if err := rows.Scan(&adj.ID, &adj.ReceiptID, &adj.Key, &adj.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan adjustment: %w", err)
		}
		adjustments = append(adjustments, adj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate adjustments: %w", err)
	}
	return adjustments, nil
}
