package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/splitter/internal/models"
	"github.com/mmynk/splitter/internal/storage"
)

// AddAssignments inserts assignments in one transaction. Rows keep their
// insertion order through the seq column so that snapshots replay credits
// in the order they were made.
func (s *SQLiteStore) AddAssignments(ctx context.Context, assignments []models.Assignment) ([]models.Assignment, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var seq int64
	if err := tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(seq), 0) FROM assignments").Scan(&seq); err != nil {
		return nil, fmt.Errorf("failed to read assignment sequence: %w", err)
	}

	touched := make(map[string]bool)
	out := make([]models.Assignment, len(assignments))
	for i, a := range assignments {
		if a.ID == "" {
			a.ID = uuid.New().String()
		}
		seq++
		_, err = tx.ExecContext(ctx,
			`INSERT INTO assignments (id, item_id, participant_id, share_type, portion, amount, seq)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			a.ID, a.ItemID, a.ParticipantID, a.ShareType, a.Portion, a.Amount, seq,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert assignment: %w", err)
		}

		var receiptID string
		if err := tx.QueryRowContext(ctx,
			"SELECT receipt_id FROM receipt_items WHERE id = ?", a.ItemID,
		).Scan(&receiptID); err != nil {
			return nil, fmt.Errorf("failed to resolve receipt for item %s: %w", a.ItemID, err)
		}
		touched[receiptID] = true
		out[i] = a
	}

	for receiptID := range touched {
		if err := touch(ctx, tx, receiptID); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return out, nil
}

// GetAssignment retrieves an assignment by ID.
func (s *SQLiteStore) GetAssignment(ctx context.Context, assignmentID string) (*models.Assignment, error) {
	a := &models.Assignment{}
	var portion, amount sql.NullFloat64
	err := s.db.QueryRowContext(ctx,
		"SELECT id, item_id, participant_id, share_type, portion, amount FROM assignments WHERE id = ?",
		assignmentID,
	).Scan(&a.ID, &a.ItemID, &a.ParticipantID, &a.ShareType, &portion, &amount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("assignment %s: %w", assignmentID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	a.Portion = floatPtr(portion)
	a.Amount = floatPtr(amount)
	return a, nil
}

// RemoveAssignment deletes a single assignment.
func (s *SQLiteStore) RemoveAssignment(ctx context.Context, assignmentID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM assignments WHERE id = ?", assignmentID)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	return expectOne(res, "assignment", assignmentID)
}

func queryAssignments(ctx context.Context, q querier, receiptID string) ([]models.Assignment, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT a.id, a.item_id, a.participant_id, a.share_type, a.portion, a.amount
		 FROM assignments a JOIN receipt_items i ON i.id = a.item_id
		 WHERE i.receipt_id = ? ORDER BY a.seq`,
		receiptID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}
	defer rows.Close()

	var assignments []models.Assignment
	for rows.Next() {
		var a models.Assignment
		var portion, amount sql.NullFloat64
		if err := rows.Scan(&a.ID, &a.ItemID, &a.ParticipantID, &a.ShareType, &portion, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		a.Portion = floatPtr(portion)
		a.Amount = floatPtr(amount)
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assignments: %w", err)
	}
	return assignments, nil
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
