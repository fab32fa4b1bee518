// Package allocation turns a receipt snapshot (items, assignments and
// bill-level adjustments) into the amount each participant owes.
//
// The engine is a pure function. It performs no I/O, keeps no state between
// calls and never returns an error: anomalous input degrades to the policies
// documented in policy.go. Callers that receive change notifications should
// re-fetch a full snapshot and call Compute again; there is no delta path.
package allocation

import (
	"math"
	"sort"
)

// Item is one priced line on a receipt. The engine never mutates it.
type Item struct {
	ID       string
	Subtotal float64
}

// Assignment links an item to a participant with a sharing mode.
// A nil Share contributes nothing.
type Assignment struct {
	ItemID        string
	ParticipantID string
	Share         Share
}

// Adjustment is a bill-level amount (tax, tip, fee, or a negative discount)
// redistributed across participants in proportion to their item spend.
type Adjustment struct {
	Key    string
	Amount float64
}

// Snapshot is the full input of one allocation.
type Snapshot struct {
	Items       []Item
	Assignments []Assignment
	Adjustments []Adjustment
}

// Allocation maps participant id to owed amount. Participants that were not
// credited for any item have no entry.
type Allocation map[string]float64

// Participants returns the participant ids in lexical order.
func (a Allocation) Participants() []string {
	ids := make([]string, 0, len(a))
	for id := range a {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Total returns the sum of all owed amounts.
func (a Allocation) Total() float64 {
	var sum float64
	for _, id := range a.Participants() {
		sum += a[id]
	}
	return sum
}

// ItemShare is the amount credited to a participant for a single item.
type ItemShare struct {
	ItemID string
	Amount float64
}

// PersonShare is one participant's part of the bill.
type PersonShare struct {
	ParticipantID string

	// Subtotal is the sum of item-level credits.
	Subtotal float64

	// Adjustment is this participant's proportional share of the
	// adjustment pool: pool × (Subtotal / item total).
	Adjustment float64

	// Total is Subtotal + Adjustment.
	Total float64

	// Items lists every credit in the order it was made. A duplicated
	// assignment shows up as two lines for the same item.
	Items []ItemShare
}

// Breakdown is the detailed result of Compute.
type Breakdown struct {
	// People is ordered by first credit.
	People []PersonShare

	// ItemTotal is the sum of all item-level credits.
	ItemTotal float64

	// AdjustmentTotal is the sum of all adjustment amounts.
	AdjustmentTotal float64

	// AdjustmentsApplied is false when the pool was skipped because nobody
	// had item spend or the pool was zero.
	AdjustmentsApplied bool
}

// Totals returns a fresh participant → total mapping.
func (b *Breakdown) Totals() Allocation {
	out := make(Allocation, len(b.People))
	for _, p := range b.People {
		out[p.ParticipantID] = p.Total
	}
	return out
}

// Person returns the share for a participant, if one was credited.
func (b *Breakdown) Person(participantID string) (PersonShare, bool) {
	for _, p := range b.People {
		if p.ParticipantID == participantID {
			return p, true
		}
	}
	return PersonShare{}, false
}

// Allocate computes what each participant owes.
func Allocate(items []Item, assignments []Assignment, adjustments []Adjustment) Allocation {
	return Compute(Snapshot{
		Items:       items,
		Assignments: assignments,
		Adjustments: adjustments,
	}).Totals()
}

// Compute runs the allocation and returns the per-participant breakdown.
//
// Items are processed in order and independently of each other. For each
// item, explicit amounts are taken out first, portion assignees then split
// the remainder by weight, and equal assignees split whatever portions left.
// Amount assignees are credited their raw amount. After the item loop the
// adjustment pool is spread in proportion to each participant's item spend.
func Compute(s Snapshot) *Breakdown {
	l := &ledger{index: make(map[string]int)}

	byItem := make(map[string][]Assignment, len(s.Items))
	for _, a := range s.Assignments {
		byItem[a.ItemID] = append(byItem[a.ItemID], a)
	}

	for _, item := range s.Items {
		assignments := byItem[item.ID]
		if len(assignments) == 0 {
			continue
		}
		l.allocateItem(item, assignments)
	}

	return l.finish(s.Adjustments)
}

type claim struct {
	participantID string
	magnitude     float64
}

// ledger accumulates credits for a single Compute call.
type ledger struct {
	index  map[string]int
	people []PersonShare
}

func (l *ledger) credit(participantID, itemID string, amount float64) {
	i, ok := l.index[participantID]
	if !ok {
		i = len(l.people)
		l.index[participantID] = i
		l.people = append(l.people, PersonShare{ParticipantID: participantID})
	}
	p := &l.people[i]
	p.Subtotal += amount
	p.Items = append(p.Items, ItemShare{ItemID: itemID, Amount: amount})
}

func (l *ledger) allocateItem(item Item, assignments []Assignment) {
	var equal []string
	var portions, amounts []claim
	for _, a := range assignments {
		switch s := a.Share.(type) {
		case Equal:
			equal = append(equal, a.ParticipantID)
		case Portion:
			portions = append(portions, claim{a.ParticipantID, orZero(s.Weight)})
		case Amount:
			amounts = append(amounts, claim{a.ParticipantID, orZero(s.Value)})
		}
	}

	var explicit float64
	for _, c := range amounts {
		explicit += c.magnitude
	}
	remainingAfterAmounts := clipRemainder(item.Subtotal, explicit)

	var portionTotal float64
	for _, c := range portions {
		portionTotal += c.magnitude
	}
	remaining := remainingAfterAmounts
	if portionTotal > 0 {
		for _, c := range portions {
			part := orZero(remainingAfterAmounts * (c.magnitude / portionTotal))
			l.credit(c.participantID, item.ID, part)
			remaining -= part
		}
	}

	// Rounding residue from the portion step is not reconciled; equal
	// assignees split exactly what is left.
	if n := len(equal); n > 0 {
		each := remaining / float64(n)
		for _, id := range equal {
			l.credit(id, item.ID, each)
		}
	}

	for _, c := range amounts {
		l.credit(c.participantID, item.ID, c.magnitude)
	}
}

func (l *ledger) finish(adjustments []Adjustment) *Breakdown {
	b := &Breakdown{People: l.people}
	for _, p := range b.People {
		b.ItemTotal += p.Subtotal
	}
	for _, adj := range adjustments {
		b.AdjustmentTotal += orZero(adj.Amount)
	}

	if distributesAdjustments(b.ItemTotal, b.AdjustmentTotal) {
		b.AdjustmentsApplied = true
		for i := range b.People {
			p := &b.People[i]
			p.Adjustment = b.AdjustmentTotal * (p.Subtotal / b.ItemTotal)
		}
	}
	for i := range b.People {
		p := &b.People[i]
		p.Total = p.Subtotal + p.Adjustment
	}
	return b
}

// orZero maps NaN to zero, the same treatment a missing magnitude gets.
func orZero(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
