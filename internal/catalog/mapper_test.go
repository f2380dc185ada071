package catalog

import (
	"strings"
	"testing"

	"github.com/printhub/printhub-backend/pkg/db/models"
	"github.com/printhub/printhub-backend/pkg/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapRateCardDropsInvalidRowsAndReportsThem(t *testing.T) {
	t.Parallel()

	card := MapRateCard(RateCardRows{
		Shop: models.Shop{ID: 1, Slug: "lagos-print", Currency: "NGN"},
		Printing: []models.PrintingPrice{
			{ID: 1, SheetSize: "a4", ColorMode: "color", SellingPricePerSide: d("0.50"), SellingPriceDuplex: nd("0.80")},
			{ID: 2, SheetSize: "B2", ColorMode: "SEPIA", SellingPricePerSide: d("0.50")},
		},
		Papers: []models.PaperPrice{
			{ID: 10, SheetSize: "A4", GSM: 300, PaperType: "GLOSS", SellingPrice: d("0.30")},
			{ID: 11, SheetSize: "A4", GSM: 0, PaperType: "GLOSS", SellingPrice: d("0.30")},
			{ID: 12, SheetSize: "A4", GSM: 90, PaperType: "GLOSS", SellingPrice: d("-1")},
		},
		Materials: []models.MaterialPrice{
			{ID: 20, MaterialType: "vinyl", Unit: "sqm", SellingPrice: d("12")},
			{ID: 21, MaterialType: "CANVAS", Unit: "SQM", SellingPrice: d("12")},
		},
		Finishings: []models.FinishingService{
			{ID: 30, Name: "Hand sorting", Category: "mystery", ChargeBy: "per_hour", Price: d("1")},
		},
		Discounts: []models.VolumeDiscount{
			{ID: 40, MinQuantity: 100, DiscountPercent: d("5")},
			{ID: 41, MinQuantity: 100, DiscountPercent: d("150")},
		},
		Capabilities: []models.ShopPaperCapability{
			{ID: 50, SheetSize: "A4", MinGSM: 80, MaxGSM: 300},
		},
	})

	require.Len(t, card.Printing, 1)
	assert.Equal(t, enums.SheetSizeA4, card.Printing[0].SheetSize)
	assert.Equal(t, enums.ColorModeColor, card.Printing[0].ColorMode)
	require.NotNil(t, card.Printing[0].DuplexPerSheet)
	assert.Nil(t, card.Printing[0].BuyingPerSide)

	assert.Len(t, card.Papers, 1)
	require.Len(t, card.Materials, 1)
	assert.Equal(t, enums.MaterialUnitSQM, card.Materials[0].Unit)

	require.Len(t, card.Finishings, 1)
	assert.Equal(t, enums.ChargeBasis("PER_HOUR"), card.Finishings[0].ChargeBasis)
	assert.Equal(t, enums.FinishingCategoryOther, card.Finishings[0].Category)

	assert.Len(t, card.Discounts, 1)
	assert.Len(t, card.Capabilities, 1)

	require.Len(t, card.Anomalies, 5)
	joined := strings.Join(card.Anomalies, "\n")
	for _, want := range []string{"printing_prices row 2", "paper_prices row 11", "paper_prices row 12", "material_prices row 21", "volume_discounts row 41"} {
		assert.Contains(t, joined, want)
	}
}

func TestMapTemplate(t *testing.T) {
	t.Parallel()

	shopID := int64(4)
	tpl, anomalies, err := MapTemplate(models.PrintTemplate{
		ID:               3,
		Slug:             "business-cards",
		ShopID:           &shopID,
		BasePrice:        d("0.50"),
		MinQuantity:      50,
		DefaultSheetSize: "a4",
		DefaultGSM:       300,
		DefaultPaperType: "gloss",
		DefaultSides:     "simplex",
		AllowedGSM:       []int64{300, 350},
		FinalWidthMM:     nd("90"),
		DuplexMultiplier: nd("1.5"),
		Adjustments: []models.TemplateAdjustment{
			{ID: 1, Dimension: "PAPER_TYPE", Value: "matte", Mode: "add", Amount: d("0.01")},
			{ID: 2, Dimension: "finish", Value: "soft", Mode: "ADD", Amount: d("0.01")},
		},
		MaterialRates: []models.TemplateMaterialRate{
			{ID: 5, MaterialType: "VINYL", PricePerSqm: d("15")},
			{ID: 6, MaterialType: "CANVAS", PricePerSqm: d("15")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, enums.SheetSizeA4, tpl.DefaultSheetSize)
	assert.Equal(t, enums.PaperTypeGloss, tpl.DefaultPaperType)
	assert.Equal(t, enums.PrintSidesSimplex, tpl.DefaultSides)
	assert.Equal(t, []int{300, 350}, tpl.AllowedGSM)
	require.NotNil(t, tpl.FinalWidthMM)
	assert.Nil(t, tpl.FinalHeightMM)
	assert.True(t, tpl.DuplexMultiplier.Equal(d("1.5")))
	assert.Nil(t, tpl.GSMStepPercent)

	require.Len(t, tpl.Adjustments, 1)
	assert.Equal(t, "MATTE", tpl.Adjustments[0].Value)
	assert.Equal(t, enums.AdjustmentModeAdd, tpl.Adjustments[0].Mode)
	assert.Len(t, tpl.MaterialRates, 1)
	assert.Len(t, anomalies, 2)
}

func TestMapTemplateRejectsInvalidDefaults(t *testing.T) {
	t.Parallel()

	_, _, err := MapTemplate(models.PrintTemplate{Slug: "broken", DefaultSheetSize: "B7", DefaultPaperType: "SATIN"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}
