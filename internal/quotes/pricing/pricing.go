// Package pricing computes quote totals from line-item dimensions.
package pricing

import "github.com/quotecraft/quotecraft-backend/internal/quotes/domain"

// Area returns the square footage of a line item. Dimensions are entered as
// whole feet plus inches, so inches are folded in at 1/12 of a foot.
func Area(item domain.LineItem) float64 {
	length := item.LengthFeet + item.LengthInches/12
	width := item.WidthFeet + item.WidthInches/12
	return length * width
}

// LineTotal returns the price of a single line item: its area times the
// per-square-foot price captured when the product was selected.
func LineTotal(item domain.LineItem) float64 {
	return Area(item) * item.Price
}

// Total sums the line totals of all items. An empty list totals zero.
// Inputs are assumed non-negative; the HTTP binding layer enforces that
// before a request reaches any pricing code. No rounding is applied here:
// rounding to cents is a display concern, the stored total stays exact.
func Total(items []domain.LineItem) float64 {
	var total float64
	for _, item := range items {
		total += LineTotal(item)
	}
	return total
}
