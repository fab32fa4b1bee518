package allocation

import "math"

// The allocation engine carries several drop-on-conflict policies from the
// product as it shipped. They read like bugs and are easy to "fix" by
// accident, so each one is stated here and pinned by a test.
//
// Amount clipping: amount-type assignments are credited in full, but the
// remainder left for portion and equal assignees is max(0, subtotal -
// explicit amounts). Over-assignment by amount silently clips; the excess is
// neither reported nor taken from anyone else.
//
// Unclaimed remainder: when an item has no portion and no equal assignees,
// whatever amounts leave over is never allocated to anyone.
//
// Duplicate assignments: the same participant listed more than once on an
// item with the same share type is not deduplicated. Each listing earns its
// own slot: two equal shares, two portion weights, two amounts.
//
// No-spend exclusion: participants with no item-level credit get no entry in
// the result and no share of adjustments, even when they are named on the
// receipt.
//
// Adjustment skip: the adjustment pool is distributed only when the item
// total is positive and the pool is non-zero. Otherwise it is ignored.
//
// No clamping: a discount can push a participant's total below zero; totals
// are never clamped.

// clipRemainder returns what is left of an item's subtotal for portion and
// equal assignees once explicit amounts are taken out. Never negative.
func clipRemainder(subtotal, explicit float64) float64 {
	return math.Max(0, subtotal-explicit)
}

// distributesAdjustments reports whether the adjustment pool is spread at all.
func distributesAdjustments(itemTotal, pool float64) bool {
	return itemTotal > 0 && pool != 0
}
