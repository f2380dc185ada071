package pricing

import "github.com/shopspring/decimal"

// DiscountTier is a (minimum quantity, percent off) pair from a shop rate card.
type DiscountTier struct {
	ID          int64
	Name        string
	MinQuantity int
	Percent     decimal.Decimal
}

// ResolveDiscount selects the tier with the highest minimum quantity the order meets.
// Tiers sharing a minimum quantity resolve to the larger percent. No qualifying tier
// yields nil.
func ResolveDiscount(tiers []DiscountTier, quantity int) *DiscountTier {
	var selected *DiscountTier
	for i := range tiers {
		tier := tiers[i]
		if tier.MinQuantity > quantity {
			continue
		}
		if selected == nil ||
			tier.MinQuantity > selected.MinQuantity ||
			(tier.MinQuantity == selected.MinQuantity && tier.Percent.GreaterThan(selected.Percent)) {
			chosen := tier
			selected = &chosen
		}
	}
	return selected
}

// DiscountPercent is ResolveDiscount reduced to the percentage, zero when nothing applies.
func DiscountPercent(tiers []DiscountTier, quantity int) decimal.Decimal {
	if tier := ResolveDiscount(tiers, quantity); tier != nil {
		return tier.Percent
	}
	return decimal.Zero
}
