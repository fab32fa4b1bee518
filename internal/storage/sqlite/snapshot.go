package sqlite

import (
	"context"
	"fmt"

	"github.com/mmynk/splitter/internal/allocation"
	"github.com/mmynk/splitter/internal/models"
)

// LoadSnapshot reads the items, assignments and adjustments of a receipt
// inside one read transaction, so a concurrent edit never yields a mixed
// snapshot.
func (s *SQLiteStore) LoadSnapshot(ctx context.Context, receiptID string) (*allocation.Snapshot, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM receipts WHERE id = ?", receiptID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check receipt existence: %w", err)
	}
	if exists == 0 {
		return nil, notFound("receipt", receiptID)
	}

	items, err := queryItems(ctx, tx, receiptID)
	if err != nil {
		return nil, err
	}
	assignments, err := queryAssignments(ctx, tx, receiptID)
	if err != nil {
		return nil, err
	}
	adjustments, err := queryAdjustments(ctx, tx, receiptID)
	if err != nil {
		return nil, err
	}

	snapshot := models.Snapshot(items, assignments, adjustments)
	return &snapshot, nil
}
