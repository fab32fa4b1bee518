// Package realtime fans receipt change notifications out to in-process
// subscribers. A notification carries no data: subscribers re-read the full
// receipt when they receive one.
package realtime

import (
	"log/slog"
	"sync"
)

// Tables whose rows feed an allocation.
const (
	TableItems        = "items"
	TableAssignments  = "assignments"
	TableAdjustments  = "adjustments"
	TableParticipants = "participants"
	TableReceipt      = "receipt"
)

// Change announces that rows of Table under ReceiptID were modified.
type Change struct {
	ReceiptID string
	Table     string
}

// Hub is a per-receipt pub/sub. The zero value is not usable; call NewHub.
type Hub struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[string]map[uint64]chan Change
	logger *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		subs:   make(map[string]map[uint64]chan Change),
		logger: logger,
	}
}

// Subscribe registers for changes to a receipt. The channel holds at most one
// pending change; a newer change replaces an unread one. Call cancel to
// unsubscribe, after which the channel is closed.
func (h *Hub) Subscribe(receiptID string) (<-chan Change, func()) {
	ch := make(chan Change, 1)

	h.mu.Lock()
	h.nextID++
	id := h.nextID
	if h.subs[receiptID] == nil {
		h.subs[receiptID] = make(map[uint64]chan Change)
	}
	h.subs[receiptID][id] = ch
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs[receiptID], id)
			if len(h.subs[receiptID]) == 0 {
				delete(h.subs, receiptID)
			}
			close(ch)
		})
	}
	return ch, cancel
}

// Publish notifies every subscriber of c.ReceiptID. It never blocks.
func (h *Hub) Publish(c Change) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs[c.ReceiptID] {
		select {
		case ch <- c:
		default:
			// Drop the stale pending change so the newest one is delivered.
			select {
			case <-ch:
			default:
			}
			ch <- c
		}
	}
	h.logger.Debug("Published change", "receipt_id", c.ReceiptID, "table", c.Table, "subscribers", len(h.subs[c.ReceiptID]))
}

// Subscribers returns the number of subscribers for a receipt.
func (h *Hub) Subscribers(receiptID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[receiptID])
}
