package cart

import "hustl/internal/catalog"

// Pricing is pure integer arithmetic over cents. The only rounding point
// left is the tax step, done half-up.

const (
	// taxRateBasisPoints is the flat 7% tax rate.
	taxRateBasisPoints = 700
	// feesCents is a policy constant, currently $0 fees.
	feesCents = 0
)

// LineTotal prices one cart line: base price plus the deltas of every
// selected option, times quantity. Selections pointing at unknown groups
// or options contribute nothing; stale ids are never an error.
func LineTotal(menuItem catalog.MenuItem, selections Selections, quantity int) int64 {
	unit := menuItem.BasePriceCents

	for _, group := range menuItem.ModifierGroups {
		selected := selections[group.ID]
		if len(selected) == 0 {
			continue
		}
		chosen := make(map[string]bool, len(selected))
		for _, optionID := range selected {
			chosen[optionID] = true
		}
		for _, option := range group.Options {
			if chosen[option.ID] {
				unit += option.PriceCents
			}
		}
	}

	return unit * int64(quantity)
}

// CartTotals derives the cart-level amounts from scratch. Totals are
// always recomputed in full after a mutation, never adjusted
// incrementally, so they cannot drift from the items they describe.
func CartTotals(items []Item) Totals {
	var subtotal int64
	for _, item := range items {
		subtotal += item.LineTotalCents
	}

	tax := roundHalfUp(subtotal*taxRateBasisPoints, 10000)

	return Totals{
		SubtotalCents: subtotal,
		TaxCents:      tax,
		FeesCents:     feesCents,
		TotalCents:    subtotal + tax + feesCents,
	}
}

// roundHalfUp divides num by den rounding halves up. Subtotals are never
// negative, so plain integer arithmetic is enough.
func roundHalfUp(num, den int64) int64 {
	return (num + den/2) / den
}
