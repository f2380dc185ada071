package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func pct(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func TestDiscountPercentSelectsClosestTierFromBelow(t *testing.T) {
	t.Parallel()

	tiers := []DiscountTier{
		{ID: 2, MinQuantity: 500, Percent: pct("10")},
		{ID: 1, MinQuantity: 100, Percent: pct("5")},
	}

	cases := []struct {
		qty  int
		want string
	}{
		{qty: 50, want: "0"},
		{qty: 99, want: "0"},
		{qty: 100, want: "5"},
		{qty: 499, want: "5"},
		{qty: 500, want: "10"},
		{qty: 10000, want: "10"},
	}
	for _, tc := range cases {
		if got := DiscountPercent(tiers, tc.qty); !got.Equal(pct(tc.want)) {
			t.Fatalf("quantity %d expected %s%% got %s%%", tc.qty, tc.want, got)
		}
	}
}

func TestResolveDiscountTieBreaksOnHigherPercent(t *testing.T) {
	t.Parallel()

	tiers := []DiscountTier{
		{ID: 1, MinQuantity: 100, Percent: pct("5")},
		{ID: 2, MinQuantity: 100, Percent: pct("7.5")},
		{ID: 3, MinQuantity: 100, Percent: pct("6")},
	}
	for i := 0; i < 3; i++ {
		tier := ResolveDiscount(tiers, 150)
		if tier == nil || tier.ID != 2 {
			t.Fatalf("expected tier 2, got %+v", tier)
		}
	}
}

func TestResolveDiscountNoTiers(t *testing.T) {
	t.Parallel()

	if tier := ResolveDiscount(nil, 1000); tier != nil {
		t.Fatalf("expected no tier, got %+v", tier)
	}
	if got := DiscountPercent(nil, 1000); !got.IsZero() {
		t.Fatalf("expected zero discount, got %s", got)
	}
}

func TestResolveDiscountReturnsCopy(t *testing.T) {
	t.Parallel()

	tiers := []DiscountTier{{ID: 1, MinQuantity: 1, Percent: pct("5")}}
	tier := ResolveDiscount(tiers, 10)
	tier.Percent = pct("99")
	if !tiers[0].Percent.Equal(pct("5")) {
		t.Fatalf("resolver must not alias catalog tiers")
	}
}
