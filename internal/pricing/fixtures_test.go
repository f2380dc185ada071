package pricing

import (
	"errors"
	"testing"

	"github.com/printhub/printhub-backend/pkg/enums"
	pkgerrors "github.com/printhub/printhub-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func decPtr(v string) *decimal.Decimal {
	d := dec(v)
	return &d
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func sizePtr(v enums.SheetSize) *enums.SheetSize           { return &v }
func sidesPtr(v enums.PrintSides) *enums.PrintSides        { return &v }
func paperPtr(v enums.PaperType) *enums.PaperType          { return &v }
func materialPtr(v enums.MaterialType) *enums.MaterialType { return &v }
func unitPtr(v enums.MaterialUnit) *enums.MaterialUnit     { return &v }

func sampleRateCard() RateCard {
	return RateCard{
		ShopID:   7,
		ShopSlug: "lagos-print",
		Currency: "NGN",
		Printing: []PrintingPrice{
			{ID: 1, MachineID: int64Ptr(1), MachineName: "Konica C3070", SheetSize: enums.SheetSizeA4, ColorMode: enums.ColorModeColor, PerSide: dec("0.50"), DuplexPerSheet: decPtr("0.80"), BuyingPerSide: decPtr("0.20")},
			{ID: 2, MachineID: int64Ptr(2), MachineName: "Xerox 7855", SheetSize: enums.SheetSizeA4, ColorMode: enums.ColorModeColor, PerSide: dec("0.40")},
			{ID: 3, MachineID: int64Ptr(1), MachineName: "Konica C3070", SheetSize: enums.SheetSizeA4, ColorMode: enums.ColorModeBW, PerSide: dec("0.10"), DuplexPerSheet: decPtr("0.15")},
		},
		Papers: []PaperPrice{
			{ID: 10, SheetSize: enums.SheetSizeA4, GSM: 300, PaperType: enums.PaperTypeGloss, SellingPrice: dec("0.30"), BuyingPrice: decPtr("0.10")},
			{ID: 11, SheetSize: enums.SheetSizeA4, GSM: 80, PaperType: enums.PaperTypeBond, SellingPrice: dec("0.05")},
		},
		Materials: []MaterialPrice{
			{ID: 20, MaterialType: enums.MaterialTypeVinyl, Unit: enums.MaterialUnitSQM, SellingPrice: dec("12.00"), BuyingPrice: decPtr("5.00")},
			{ID: 21, MaterialType: enums.MaterialTypeBanner, Unit: enums.MaterialUnitSheetA3, SellingPrice: dec("3.00")},
		},
		Finishings: []Finishing{
			{ID: 30, Name: "Lamination", Category: enums.FinishingCategoryLamination, ChargeBasis: enums.ChargeBasisPerSheet, Price: dec("0.20")},
			{ID: 31, Name: "Guillotine cut", Category: enums.FinishingCategoryCutting, ChargeBasis: enums.ChargeBasisPerJob, Price: dec("5.00"), IsMandatory: true},
			{ID: 32, Name: "Half fold", Category: enums.FinishingCategoryFolding, ChargeBasis: enums.ChargeBasisPerPiece, Price: dec("0.05"), IsDefault: true},
			{ID: 33, Name: "Hand sorting", Category: enums.FinishingCategoryOther, ChargeBasis: enums.ChargeBasis("PER_HOUR"), Price: dec("1.00")},
		},
		Discounts: []DiscountTier{
			{ID: 40, MinQuantity: 100, Percent: dec("5")},
			{ID: 41, MinQuantity: 500, Percent: dec("10")},
		},
		Capabilities: []PaperCapability{
			{SheetSize: enums.SheetSizeA4, MinGSM: 80, MaxGSM: 300},
		},
	}
}

func digitalJob(qty int) JobSpec {
	return JobSpec{
		Quantity:     qty,
		SheetSize:    sizePtr(enums.SheetSizeA4),
		GSM:          intPtr(300),
		PaperType:    paperPtr(enums.PaperTypeGloss),
		MachineID:    int64Ptr(1),
		FinishingIDs: []int64{},
	}
}

func sampleTemplate() Template {
	return Template{
		ID:               3,
		Slug:             "business-cards",
		Title:            "Business cards",
		BasePrice:        dec("0.50"),
		MinQuantity:      50,
		DefaultSheetSize: enums.SheetSizeA4,
		DefaultGSM:       300,
		DefaultPaperType: enums.PaperTypeGloss,
		DefaultSides:     enums.PrintSidesSimplex,
		Finishings: []TemplateFinishing{
			{ID: 1, Name: "Trim", PriceDelta: dec("0.02"), IsMandatory: true},
			{ID: 2, Name: "Round corners", PriceDelta: dec("0.05")},
		},
		Options: []TemplateOption{
			{ID: 5, Group: "packaging", Label: "Gift box", PriceModifier: dec("3.00")},
		},
		Adjustments: []TemplateAdjustment{
			{Dimension: enums.AdjustmentDimensionPaperType, Value: "MATTE", Mode: enums.AdjustmentModeAdd, Amount: dec("0.01")},
			{Dimension: enums.AdjustmentDimensionSheetSize, Value: "A3", Mode: enums.AdjustmentModeMultiply, Amount: dec("2")},
		},
	}
}

func requireMoney(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if got.StringFixed(2) != want {
		t.Fatalf("%s: expected %s got %s", name, want, got.StringFixed(2))
	}
}

func requireCode(t *testing.T, err error, want pkgerrors.Code) *pkgerrors.Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", want)
	}
	var typed *pkgerrors.Error
	if !errors.As(err, &typed) {
		t.Fatalf("expected typed error, got %T: %v", err, err)
	}
	if typed.Code() != want {
		t.Fatalf("expected code %s got %s (%s)", want, typed.Code(), typed.Message())
	}
	return typed
}

func detail(t *testing.T, err *pkgerrors.Error, key string) any {
	t.Helper()
	details, ok := err.Details().(map[string]any)
	if !ok {
		t.Fatalf("expected map details, got %T", err.Details())
	}
	return details[key]
}

func hasAnomaly(b Breakdown, kind AnomalyKind) bool {
	for _, a := range b.Anomalies {
		if a.Kind == kind {
			return true
		}
	}
	return false
}
