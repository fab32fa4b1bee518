// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/splitter/internal/allocation"
	"github.com/mmynk/splitter/internal/models"
)

// ErrNotFound is returned (wrapped) when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for receipt storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	ReceiptStore
	UserStore

	// LoadSnapshot fetches everything the allocation engine needs for one
	// receipt in a single consistent read.
	LoadSnapshot(ctx context.Context, receiptID string) (*allocation.Snapshot, error)

	// Close releases any resources held by the store.
	Close() error
}

// ReceiptStore covers receipts and the rows that hang off them.
type ReceiptStore interface {
	// CreateReceipt persists a new receipt. ID, timestamps and a default
	// title are filled in by the store.
	CreateReceipt(ctx context.Context, receipt *models.Receipt) error

	// GetReceipt retrieves a receipt without its rows.
	GetReceipt(ctx context.Context, receiptID string) (*models.Receipt, error)

	// GetReceiptDetail retrieves a receipt with items, participants,
	// assignments and adjustments.
	GetReceiptDetail(ctx context.Context, receiptID string) (*models.ReceiptDetail, error)

	// GetReceiptByShareToken retrieves a receipt by its public view token.
	GetReceiptByShareToken(ctx context.Context, token string) (*models.Receipt, error)

	// ListReceiptsByOwner returns summaries, newest first.
	ListReceiptsByOwner(ctx context.Context, ownerID string) ([]models.ReceiptSummary, error)

	// UpdateReceipt updates the receipt header fields and share settings.
	UpdateReceipt(ctx context.Context, receipt *models.Receipt) error

	// DeleteReceipt removes a receipt and, by cascade, all of its rows.
	DeleteReceipt(ctx context.Context, receiptID string) error

	// AddItems inserts items in one transaction and computes their subtotals.
	AddItems(ctx context.Context, receiptID string, items []models.ReceiptItem) ([]models.ReceiptItem, error)

	GetItem(ctx context.Context, itemID string) (*models.ReceiptItem, error)

	// UpdateItem updates an item and recomputes its subtotal.
	UpdateItem(ctx context.Context, item *models.ReceiptItem) error

	DeleteItem(ctx context.Context, itemID string) error

	AddParticipant(ctx context.Context, participant *models.Participant) error

	GetParticipant(ctx context.Context, participantID string) (*models.Participant, error)

	// RemoveParticipant removes a participant and their assignments.
	RemoveParticipant(ctx context.Context, participantID string) error

	// AddAssignments inserts assignments in one transaction. Duplicates are
	// stored as separate rows.
	AddAssignments(ctx context.Context, assignments []models.Assignment) ([]models.Assignment, error)

	GetAssignment(ctx context.Context, assignmentID string) (*models.Assignment, error)

	RemoveAssignment(ctx context.Context, assignmentID string) error

	// SetAdjustment inserts or replaces the adjustment with the same key.
	SetAdjustment(ctx context.Context, adjustment *models.Adjustment) error

	DeleteAdjustment(ctx context.Context, receiptID, key string) error
}

// UserStore defines user persistence operations.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail returns nil, nil when no user has the email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID returns nil, nil when the user does not exist.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}
