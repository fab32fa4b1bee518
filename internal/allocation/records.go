package allocation

// ItemRecord is the stored shape of an item.
type ItemRecord struct {
	ID       string  `json:"id"`
	Subtotal float64 `json:"subtotal"`
}

// AssignmentRecord is the stored shape of an assignment. Portion and Amount
// are nullable and only one of them is meaningful for a given share type.
type AssignmentRecord struct {
	ItemID        string   `json:"item_id"`
	ParticipantID string   `json:"participant_id"`
	ShareType     string   `json:"share_type"`
	Portion       *float64 `json:"portion,omitempty"`
	Amount        *float64 `json:"amount,omitempty"`
}

// AdjustmentRecord is the stored shape of an adjustment.
type AdjustmentRecord struct {
	Key    string  `json:"key"`
	Amount float64 `json:"amount"`
}

// Records is a snapshot as fetched from the owning application's data store.
type Records struct {
	Items       []ItemRecord       `json:"items"`
	Assignments []AssignmentRecord `json:"assignments"`
	Adjustments []AdjustmentRecord `json:"adjustments"`
}

// Assignment converts the record. It reports false for an unknown share
// type; such records take no part in the allocation.
func (r AssignmentRecord) Assignment() (Assignment, bool) {
	t, ok := ParseShareType(r.ShareType)
	if !ok {
		return Assignment{}, false
	}
	return Assignment{
		ItemID:        r.ItemID,
		ParticipantID: r.ParticipantID,
		Share:         NewShare(t, r.Portion, r.Amount),
	}, true
}

// Snapshot converts the records, dropping assignments with an unknown share
// type.
func (r Records) Snapshot() Snapshot {
	s := Snapshot{
		Items:       make([]Item, 0, len(r.Items)),
		Assignments: make([]Assignment, 0, len(r.Assignments)),
		Adjustments: make([]Adjustment, 0, len(r.Adjustments)),
	}
	for _, it := range r.Items {
		s.Items = append(s.Items, Item{ID: it.ID, Subtotal: it.Subtotal})
	}
	for _, ar := range r.Assignments {
		if a, ok := ar.Assignment(); ok {
			s.Assignments = append(s.Assignments, a)
		}
	}
	for _, adj := range r.Adjustments {
		s.Adjustments = append(s.Adjustments, Adjustment{Key: adj.Key, Amount: adj.Amount})
	}
	return s
}
