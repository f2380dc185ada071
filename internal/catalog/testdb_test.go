package catalog

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/printhub/printhub-backend/pkg/db/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	conn, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(models.Catalog()...))
	return conn
}

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func nd(v string) decimal.NullDecimal {
	return decimal.NewNullDecimal(d(v))
}

type seeded struct {
	shop     models.Shop
	other    models.Shop
	machine  models.Machine
	template models.PrintTemplate
	owned    models.PrintTemplate
}

func seedCatalog(t *testing.T, db *gorm.DB) seeded {
	t.Helper()

	shop := models.Shop{Slug: "lagos-print", Name: "Lagos Print", Currency: "NGN", IsActive: true}
	require.NoError(t, db.Create(&shop).Error)
	other := models.Shop{Slug: "nairobi-press", Name: "Nairobi Press", Currency: "KES", IsActive: true}
	require.NoError(t, db.Create(&other).Error)
	closed := models.Shop{Slug: "closed-shop", Name: "Closed", Currency: "KES", IsActive: false}
	require.NoError(t, db.Create(&closed).Error)

	machine := models.Machine{ShopID: shop.ID, Name: "Konica C3070", IsActive: true}
	require.NoError(t, db.Create(&machine).Error)

	require.NoError(t, db.Create(&[]models.PrintingPrice{
		{ShopID: shop.ID, MachineID: &machine.ID, SheetSize: "A4", ColorMode: "COLOR", SellingPricePerSide: d("0.50"), SellingPriceDuplex: nd("0.80"), IsActive: true},
		{ShopID: shop.ID, SheetSize: "A4", ColorMode: "BW", SellingPricePerSide: d("0.10"), IsActive: true},
		{ShopID: shop.ID, SheetSize: "A4", ColorMode: "SEPIA", SellingPricePerSide: d("0.10"), IsActive: true},
		{ShopID: shop.ID, SheetSize: "A3", ColorMode: "COLOR", SellingPricePerSide: d("0.90"), IsActive: false},
		{ShopID: other.ID, SheetSize: "A4", ColorMode: "COLOR", SellingPricePerSide: d("0.45"), IsActive: true},
	}).Error)

	require.NoError(t, db.Create(&[]models.PaperPrice{
		{ShopID: shop.ID, SheetSize: "A4", GSM: 300, PaperType: "GLOSS", SellingPrice: d("0.30"), BuyingPrice: nd("0.10"), IsActive: true},
		{ShopID: shop.ID, SheetSize: "A4", GSM: 80, PaperType: "bond", SellingPrice: d("0.05"), IsActive: true},
	}).Error)

	require.NoError(t, db.Create(&[]models.MaterialPrice{
		{ShopID: shop.ID, MaterialType: "VINYL", Unit: "SQM", SellingPrice: d("12.00"), IsActive: true},
	}).Error)

	require.NoError(t, db.Create(&[]models.FinishingService{
		{ShopID: shop.ID, Name: "Lamination", Category: "LAMINATION", ChargeBy: "per_sheet", Price: d("0.20"), IsActive: true},
		{ShopID: shop.ID, Name: "Cut", Category: "CUTTING", ChargeBy: "PER_JOB", Price: d("5.00"), IsMandatory: true, IsActive: true},
	}).Error)

	require.NoError(t, db.Create(&[]models.VolumeDiscount{
		{ShopID: shop.ID, MinQuantity: 500, DiscountPercent: d("10"), IsActive: true},
		{ShopID: shop.ID, MinQuantity: 100, DiscountPercent: d("5"), IsActive: true},
	}).Error)

	require.NoError(t, db.Create(&models.ShopPaperCapability{ShopID: shop.ID, SheetSize: "A4", MinGSM: 80, MaxGSM: 300}).Error)

	template := models.PrintTemplate{
		Slug:             "business-cards",
		Title:            "Business cards",
		BasePrice:        d("0.50"),
		MinQuantity:      50,
		DefaultSheetSize: "A4",
		DefaultGSM:       300,
		DefaultPaperType: "GLOSS",
		DefaultSides:     "SIMPLEX",
		AllowedGSM:       pq.Int64Array{300, 350},
		IsActive:         true,
		Finishings: []models.TemplateFinishing{
			{Name: "Trim", PriceDelta: d("0.02"), IsMandatory: true},
		},
		Options: []models.TemplateOption{
			{OptionGroup: "packaging", Label: "Gift box", PriceModifier: d("3.00"), DisplayOrder: 2},
			{OptionGroup: "packaging", Label: "Sleeve", PriceModifier: d("1.00"), DisplayOrder: 1},
		},
		Adjustments: []models.TemplateAdjustment{
			{Dimension: "paper_type", Value: "matte", Mode: "ADD", Amount: d("0.01")},
			{Dimension: "finish", Value: "soft", Mode: "ADD", Amount: d("0.01")},
		},
	}
	require.NoError(t, db.Create(&template).Error)

	owned := models.PrintTemplate{
		Slug:          "nairobi-banner",
		Title:         "Banner",
		ShopID:        &other.ID,
		BasePrice:     d("10"),
		MinQuantity:   1,
		IsActive:      true,
		IsLargeFormat: true,
		MaterialRates: []models.TemplateMaterialRate{
			{MaterialType: "VINYL", PricePerSqm: d("15")},
		},
	}
	require.NoError(t, db.Create(&owned).Error)

	return seeded{shop: shop, other: other, machine: machine, template: template, owned: owned}
}
