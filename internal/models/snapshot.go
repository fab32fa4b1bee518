package models

import "github.com/mmynk/splitter/internal/allocation"

// Record converts the assignment to its wire record.
func (a Assignment) Record() allocation.AssignmentRecord {
	return allocation.AssignmentRecord{
		ItemID:        a.ItemID,
		ParticipantID: a.ParticipantID,
		ShareType:     a.ShareType,
		Portion:       a.Portion,
		Amount:        a.Amount,
	}
}

// Snapshot builds the allocation input from stored rows. Assignments with
// an unknown share type are dropped.
func Snapshot(items []ReceiptItem, assignments []Assignment, adjustments []Adjustment) allocation.Snapshot {
	r := allocation.Records{
		Items:       make([]allocation.ItemRecord, len(items)),
		Assignments: make([]allocation.AssignmentRecord, len(assignments)),
		Adjustments: make([]allocation.AdjustmentRecord, len(adjustments)),
	}
	for i, it := range items {
		r.Items[i] = allocation.ItemRecord{ID: it.ID, Subtotal: it.Subtotal}
	}
	for i, a := range assignments {
		r.Assignments[i] = a.Record()
	}
	for i, adj := range adjustments {
		r.Adjustments[i] = allocation.AdjustmentRecord{Key: adj.Key, Amount: adj.Amount}
	}
	return r.Snapshot()
}

// Snapshot builds the allocation input for the receipt.
func (d *ReceiptDetail) Snapshot() allocation.Snapshot {
	return Snapshot(d.Items, d.Assignments, d.Adjustments)
}
