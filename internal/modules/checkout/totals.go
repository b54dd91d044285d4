package checkout

import "math"

// TaxRate is the flat 5% applied to every order. Not configurable.
const TaxRate = 0.05

// Currency for every processor line item.
const Currency = "USD"

type Totals struct {
	SubtotalCents int64
	TaxCents      int64
	TotalCents    int64
}

// UnitAmountCents converts a dollar price to minor units (cents).
func UnitAmountCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

// LineTotalCents is the unit amount times quantity for one cart entry.
func LineTotalCents(it CartItem) int64 {
	return UnitAmountCents(it.Price) * int64(it.Quantity)
}

// ComputeTotals derives subtotal, tax and total from the cart. An empty
// cart yields all zeros. Totals are derived on every call, never stored.
func ComputeTotals(items []CartItem) Totals {
	var subtotal int64
	for _, it := range items {
		subtotal += LineTotalCents(it)
	}
	tax := int64(math.Round(float64(subtotal) * TaxRate))
	return Totals{
		SubtotalCents: subtotal,
		TaxCents:      tax,
		TotalCents:    subtotal + tax,
	}
}
