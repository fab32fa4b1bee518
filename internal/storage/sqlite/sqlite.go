// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/splitter/internal/models"
	"github.com/mmynk/splitter/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

const defaultTitle = "New receipt"

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Pragmas in the DSN apply to every pooled connection.
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection serializes writers; queries never nest.
	db.SetMaxOpenConns(1)

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateReceipt persists a new receipt to the database.
func (s *SQLiteStore) CreateReceipt(ctx context.Context, receipt *models.Receipt) error {
	if receipt.ID == "" {
		receipt.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if receipt.CreatedAt == 0 {
		receipt.CreatedAt = now
	}
	receipt.UpdatedAt = receipt.CreatedAt
	if receipt.Title == "" {
		receipt.Title = defaultTitle
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO receipts (id, owner_id, title, vendor, purchased_at, currency, image_path, total,
		 share_token, share_enabled, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		receipt.ID, receipt.OwnerID, receipt.Title, nullString(receipt.Vendor), nullInt(receipt.PurchasedAt),
		nullString(receipt.Currency), nullString(receipt.ImagePath), receipt.Total,
		nullString(receipt.ShareToken), receipt.ShareEnabled, receipt.CreatedAt, receipt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert receipt: %w", err)
	}
	return nil
}

const receiptColumns = `id, owner_id, title, vendor, purchased_at, currency, image_path, total,
	share_token, share_enabled, created_at, updated_at`

func scanReceipt(row interface{ Scan(...any) error }) (*models.Receipt, error) {
	r := &models.Receipt{}
	var (
		vendor, currency, imagePath, shareToken sql.NullString
		purchasedAt                             sql.NullInt64
		total                                   sql.NullFloat64
	)
	if err := row.Scan(&r.ID, &r.OwnerID, &r.Title, &vendor, &purchasedAt, &currency, &imagePath, &total,
		&shareToken, &r.ShareEnabled, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	r.Vendor = vendor.String
	r.PurchasedAt = purchasedAt.Int64
	r.Currency = currency.String
	r.ImagePath = imagePath.String
	r.ShareToken = shareToken.String
	if total.Valid {
		t := total.Float64
		r.Total = &t
	}
	return r, nil
}

// GetReceipt retrieves a receipt header by ID.
func (s *SQLiteStore) GetReceipt(ctx context.Context, receiptID string) (*models.Receipt, error) {
	r, err := scanReceipt(s.db.QueryRowContext(ctx,
		"SELECT "+receiptColumns+" FROM receipts WHERE id = ?", receiptID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("receipt %s: %w", receiptID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}
	return r, nil
}

// GetReceiptByShareToken retrieves a receipt by its public view token.
func (s *SQLiteStore) GetReceiptByShareToken(ctx context.Context, token string) (*models.Receipt, error) {
	if token == "" {
		return nil, fmt.Errorf("empty share token: %w", storage.ErrNotFound)
	}
	r, err := scanReceipt(s.db.QueryRowContext(ctx,
		"SELECT "+receiptColumns+" FROM receipts WHERE share_token = ?", token))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("share token: %w", storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt by share token: %w", err)
	}
	return r, nil
}

// GetReceiptDetail retrieves a receipt with all of its rows.
func (s *SQLiteStore) GetReceiptDetail(ctx context.Context, receiptID string) (*models.ReceiptDetail, error) {
	receipt, err := s.GetReceipt(ctx, receiptID)
	if err != nil {
		return nil, err
	}
	detail := &models.ReceiptDetail{Receipt: receipt}

	if detail.Items, err = queryItems(ctx, s.db, receiptID); err != nil {
		return nil, err
	}
	if detail.Participants, err = queryParticipants(ctx, s.db, receiptID); err != nil {
		return nil, err
	}
	if detail.Assignments, err = queryAssignments(ctx, s.db, receiptID); err != nil {
		return nil, err
	}
	if detail.Adjustments, err = queryAdjustments(ctx, s.db, receiptID); err != nil {
		return nil, err
	}
	return detail, nil
}

// ListReceiptsByOwner returns summaries of the owner's receipts, newest first.
func (s *SQLiteStore) ListReceiptsByOwner(ctx context.Context, ownerID string) ([]models.ReceiptSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT r.id, r.title, COALESCE(r.image_path, ''), r.created_at,
		        COALESCE((SELECT SUM(i.subtotal) FROM receipt_items i WHERE i.receipt_id = r.id), 0),
		        (SELECT COUNT(*) FROM participants p WHERE p.receipt_id = r.id)
		 FROM receipts r WHERE r.owner_id = ? ORDER BY r.created_at DESC, r.id`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	defer rows.Close()

	var summaries []models.ReceiptSummary
	for rows.Next() {
		var sum models.ReceiptSummary
		if err := rows.Scan(&sum.ID, &sum.Title, &sum.ImagePath, &sum.CreatedAt, &sum.ItemsTotal, &sum.ParticipantCount); err != nil {
			return nil, fmt.Errorf("failed to scan receipt summary: %w", err)
		}
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate receipts: %w", err)
	}
	return summaries, nil
}

// UpdateReceipt updates the header fields and share settings of a receipt.
func (s *SQLiteStore) UpdateReceipt(ctx context.Context, receipt *models.Receipt) error {
	receipt.UpdatedAt = time.Now().Unix()
	if receipt.Title == "" {
		receipt.Title = defaultTitle
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE receipts SET title = ?, vendor = ?, purchased_at = ?, currency = ?, image_path = ?, total = ?,
		 share_token = ?, share_enabled = ?, updated_at = ? WHERE id = ?`,
		receipt.Title, nullString(receipt.Vendor), nullInt(receipt.PurchasedAt), nullString(receipt.Currency),
		nullString(receipt.ImagePath), receipt.Total, nullString(receipt.ShareToken), receipt.ShareEnabled,
		receipt.UpdatedAt, receipt.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update receipt: %w", err)
	}
	return expectOne(res, "receipt", receipt.ID)
}

// DeleteReceipt removes a receipt and all of its rows.
func (s *SQLiteStore) DeleteReceipt(ctx context.Context, receiptID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM receipts WHERE id = ?", receiptID)
	if err != nil {
		return fmt.Errorf("failed to delete receipt: %w", err)
	}
	return expectOne(res, "receipt", receiptID)
}

// touch bumps a receipt's updated_at after one of its rows changed.
func touch(ctx context.Context, ex execer, receiptID string) error {
	if _, err := ex.ExecContext(ctx, "UPDATE receipts SET updated_at = ? WHERE id = ?", time.Now().Unix(), receiptID); err != nil {
		return fmt.Errorf("failed to touch receipt: %w", err)
	}
	return nil
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, storage.ErrNotFound)
}

func expectOne(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return notFound(kind, id)
	}
	return nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullInt(v int64) any {
	if v == 0 {
		return nil
	}
	return v
}
