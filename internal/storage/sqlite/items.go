package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/splitter/internal/models"
	"github.com/mmynk/splitter/internal/money"
	"github.com/mmynk/splitter/internal/storage"
)

// AddItems inserts the items for a receipt in one transaction. Missing line
// indexes continue after the receipt's current last line.
func (s *SQLiteStore) AddItems(ctx context.Context, receiptID string, items []models.ReceiptItem) ([]models.ReceiptItem, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM receipts WHERE id = ?", receiptID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("receipt %s: %w", receiptID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check receipt existence: %w", err)
	}

	var lastLine int
	if err := tx.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(line_index), 0) FROM receipt_items WHERE receipt_id = ?", receiptID,
	).Scan(&lastLine); err != nil {
		return nil, fmt.Errorf("failed to read last line index: %w", err)
	}

	out := make([]models.ReceiptItem, len(items))
	for i, item := range items {
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.ReceiptID = receiptID
		if item.LineIndex <= 0 {
			lastLine++
			item.LineIndex = lastLine
		} else if item.LineIndex > lastLine {
			lastLine = item.LineIndex
		}
		item.Subtotal = money.LineSubtotal(item.Quantity, item.UnitPrice)

		_, err = tx.ExecContext(ctx,
			`INSERT INTO receipt_items (id, receipt_id, line_index, description, quantity, unit_price, subtotal)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			item.ID, item.ReceiptID, item.LineIndex, item.Description, item.Quantity, item.UnitPrice, item.Subtotal,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert item: %w", err)
		}
		out[i] = item
	}

	if err := touch(ctx, tx, receiptID); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return out, nil
}

// GetItem retrieves an item by ID.
func (s *SQLiteStore) GetItem(ctx context.Context, itemID string) (*models.ReceiptItem, error) {
	item := &models.ReceiptItem{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, receipt_id, line_index, description, quantity, unit_price, subtotal
		 FROM receipt_items WHERE id = ?`,
		itemID,
	).Scan(&item.ID, &item.ReceiptID, &item.LineIndex, &item.Description, &item.Quantity, &item.UnitPrice, &item.Subtotal)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("item %s: %w", itemID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

// UpdateItem updates the editable fields of an item and recomputes its subtotal.
func (s *SQLiteStore) UpdateItem(ctx context.Context, item *models.ReceiptItem) error {
	item.Subtotal = money.LineSubtotal(item.Quantity, item.UnitPrice)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE receipt_items SET line_index = ?, description = ?, quantity = ?, unit_price = ?, subtotal = ?
		 WHERE id = ?`,
		item.LineIndex, item.Description, item.Quantity, item.UnitPrice, item.Subtotal, item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	if err := expectOne(res, "item", item.ID); err != nil {
		return err
	}
	if err := touch(ctx, tx, item.ReceiptID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteItem removes an item and, by cascade, its assignments.
func (s *SQLiteStore) DeleteItem(ctx context.Context, itemID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM receipt_items WHERE id = ?", itemID)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return expectOne(res, "item", itemID)
}

func queryItems(ctx context.Context, q querier, receiptID string) ([]models.ReceiptItem, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, receipt_id, line_index, description, quantity, unit_price, subtotal
		 FROM receipt_items WHERE receipt_id = ? ORDER BY line_index, id`,
		receiptID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	defer rows.Close()

	var items []models.ReceiptItem
	for rows.Next() {
		var item models.ReceiptItem
		if err := rows.Scan(&item.ID, &item.ReceiptID, &item.LineIndex, &item.Description,
			&item.Quantity, &item.UnitPrice, &item.Subtotal); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}
	return items, nil
}
