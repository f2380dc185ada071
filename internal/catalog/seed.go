package catalog

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/printhub/printhub-backend/pkg/db/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DemoShopSlug and DemoTemplateSlug identify the rows written by SeedDemo.
const (
	DemoShopSlug     = "demo-print"
	DemoTemplateSlug = "demo-business-cards"
)

// SeedDemo writes a small working catalog: one shop with digital and
// large-format rates plus a global business card template. It is a no-op when
// the demo shop already exists.
func SeedDemo(ctx context.Context, tx *gorm.DB) error {
	var count int64
	if err := tx.WithContext(ctx).Model(&models.Shop{}).Where("slug = ?", DemoShopSlug).Count(&count).Error; err != nil {
		return fmt.Errorf("checking demo shop: %w", err)
	}
	if count > 0 {
		return nil
	}

	shop := models.Shop{Slug: DemoShopSlug, Name: "Demo Print", Currency: "KES", IsActive: true}
	if err := tx.WithContext(ctx).Create(&shop).Error; err != nil {
		return fmt.Errorf("creating demo shop: %w", err)
	}
	machine := models.Machine{ShopID: shop.ID, Name: "Digital Press 1", IsActive: true}
	if err := tx.WithContext(ctx).Create(&machine).Error; err != nil {
		return fmt.Errorf("creating demo machine: %w", err)
	}

	money := decimal.RequireFromString
	nullMoney := func(v string) decimal.NullDecimal { return decimal.NewNullDecimal(money(v)) }

	rows := []any{
		&[]models.PrintingPrice{
			{ShopID: shop.ID, MachineID: &machine.ID, SheetSize: "A4", ColorMode: "COLOR", SellingPricePerSide: money("10"), SellingPriceDuplex: nullMoney("18"), BuyingPricePerSide: nullMoney("4"), IsActive: true},
			{ShopID: shop.ID, MachineID: &machine.ID, SheetSize: "A4", ColorMode: "BW", SellingPricePerSide: money("3"), BuyingPricePerSide: nullMoney("1"), IsActive: true},
			{ShopID: shop.ID, MachineID: &machine.ID, SheetSize: "A3", ColorMode: "COLOR", SellingPricePerSide: money("20"), IsActive: true},
			{ShopID: shop.ID, MachineID: &machine.ID, SheetSize: "SRA3", ColorMode: "COLOR", SellingPricePerSide: money("24"), SellingPriceDuplex: nullMoney("44"), IsActive: true},
		},
		&[]models.PaperPrice{
			{ShopID: shop.ID, SheetSize: "A4", GSM: 80, PaperType: "BOND", SellingPrice: money("1"), BuyingPrice: nullMoney("0.5"), IsActive: true},
			{ShopID: shop.ID, SheetSize: "A4", GSM: 300, PaperType: "GLOSS", SellingPrice: money("6"), BuyingPrice: nullMoney("3"), IsActive: true},
			{ShopID: shop.ID, SheetSize: "A3", GSM: 150, PaperType: "MATTE", SellingPrice: money("5"), IsActive: true},
			{ShopID: shop.ID, SheetSize: "SRA3", GSM: 300, PaperType: "GLOSS", SellingPrice: money("14"), BuyingPrice: nullMoney("7"), IsActive: true},
		},
		&[]models.MaterialPrice{
			{ShopID: shop.ID, MaterialType: "BANNER", Unit: "SQM", SellingPrice: money("650"), BuyingPrice: nullMoney("300"), IsActive: true},
			{ShopID: shop.ID, MaterialType: "VINYL", Unit: "SQM", SellingPrice: money("900"), IsActive: true},
		},
		&[]models.FinishingService{
			{ShopID: shop.ID, Name: "Lamination", Category: "LAMINATION", ChargeBy: "PER_SHEET", Price: money("8"), IsActive: true},
			{ShopID: shop.ID, Name: "Trimming", Category: "CUTTING", ChargeBy: "PER_JOB", Price: money("50"), IsDefault: true, IsActive: true},
			{ShopID: shop.ID, Name: "Corner rounding", Category: "CUTTING", ChargeBy: "PER_PIECE", Price: money("0.5"), IsActive: true},
		},
		&[]models.VolumeDiscount{
			{ShopID: shop.ID, Name: "Bulk", MinQuantity: 100, DiscountPercent: money("5"), IsActive: true},
			{ShopID: shop.ID, Name: "Wholesale", MinQuantity: 500, DiscountPercent: money("10"), IsActive: true},
		},
		&[]models.ShopPaperCapability{
			{ShopID: shop.ID, SheetSize: "A4", MinGSM: 60, MaxGSM: 300},
			{ShopID: shop.ID, SheetSize: "SRA3", MinGSM: 80, MaxGSM: 350},
		},
	}
	for _, batch := range rows {
		if err := tx.WithContext(ctx).Create(batch).Error; err != nil {
			return fmt.Errorf("creating demo rate card: %w", err)
		}
	}

	template := models.PrintTemplate{
		Slug:             DemoTemplateSlug,
		Title:            "Business cards",
		BasePrice:        money("5"),
		MinQuantity:      100,
		DefaultSheetSize: "SRA3",
		DefaultGSM:       300,
		DefaultPaperType: "GLOSS",
		DefaultSides:     "SIMPLEX",
		AllowedGSM:       pq.Int64Array{300, 350},
		FinalWidthMM:     nullMoney("90"),
		FinalHeightMM:    nullMoney("55"),
		IsActive:         true,
		Finishings: []models.TemplateFinishing{
			{Name: "Matte lamination", PriceDelta: money("1")},
		},
		Options: []models.TemplateOption{
			{OptionGroup: "Delivery", Label: "Express", PriceModifier: money("300"), DisplayOrder: 1},
		},
		Adjustments: []models.TemplateAdjustment{
			{Dimension: "print_sides", Value: "DUPLEX", Mode: "MULTIPLY", Amount: money("1.4")},
		},
	}
	if err := tx.WithContext(ctx).Create(&template).Error; err != nil {
		return fmt.Errorf("creating demo template: %w", err)
	}
	return nil
}
