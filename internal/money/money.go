// Package money holds the small amount of exact arithmetic the service does
// outside the allocation engine: receipt line subtotals and listing totals.
// Values are kept as float64 at the edges, matching storage and the wire.
package money

import "github.com/shopspring/decimal"

// LineSubtotal returns quantity × unitPrice computed in decimal, so that
// 3 × 0.10 is stored as 0.3 rather than 0.30000000000000004.
func LineSubtotal(quantity, unitPrice float64) float64 {
	q := decimal.NewFromFloat(quantity)
	p := decimal.NewFromFloat(unitPrice)
	f, _ := q.Mul(p).Float64()
	return f
}

// Sum adds values in decimal.
func Sum(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	f, _ := total.Float64()
	return f
}
