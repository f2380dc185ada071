package catalog

import (
	"fmt"

	"github.com/printhub/printhub-backend/internal/pricing"
	"github.com/printhub/printhub-backend/pkg/db/models"
	"github.com/printhub/printhub-backend/pkg/enums"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

// RateCardRows is the raw catalog read for one shop.
type RateCardRows struct {
	Shop         models.Shop
	Printing     []models.PrintingPrice
	Papers       []models.PaperPrice
	Materials    []models.MaterialPrice
	Finishings   []models.FinishingService
	Discounts    []models.VolumeDiscount
	Capabilities []models.ShopPaperCapability
}

// MapRateCard validates raw rows into a strict rate card. Rows that cannot be
// interpreted are dropped and described in RateCard.Anomalies. Finishing rows keep
// unrecognised charge bases so pricing can reject them when they are actually used.
func MapRateCard(rows RateCardRows) pricing.RateCard {
	card := pricing.RateCard{
		ShopID:       rows.Shop.ID,
		ShopSlug:     rows.Shop.Slug,
		Currency:     rows.Shop.Currency,
		Printing:     make([]pricing.PrintingPrice, 0, len(rows.Printing)),
		Papers:       make([]pricing.PaperPrice, 0, len(rows.Papers)),
		Materials:    make([]pricing.MaterialPrice, 0, len(rows.Materials)),
		Finishings:   make([]pricing.Finishing, 0, len(rows.Finishings)),
		Discounts:    make([]pricing.DiscountTier, 0, len(rows.Discounts)),
		Capabilities: make([]pricing.PaperCapability, 0, len(rows.Capabilities)),
	}

	var errs error
	for _, row := range rows.Printing {
		mapped, err := mapPrinting(row)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("printing_prices row %d: %w", row.ID, err))
			continue
		}
		card.Printing = append(card.Printing, mapped)
	}
	for _, row := range rows.Papers {
		mapped, err := mapPaper(row)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("paper_prices row %d: %w", row.ID, err))
			continue
		}
		card.Papers = append(card.Papers, mapped)
	}
	for _, row := range rows.Materials {
		mapped, err := mapMaterial(row)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("material_prices row %d: %w", row.ID, err))
			continue
		}
		card.Materials = append(card.Materials, mapped)
	}
	for _, row := range rows.Finishings {
		card.Finishings = append(card.Finishings, pricing.Finishing{
			ID:          row.ID,
			Name:        row.Name,
			Category:    enums.ParseFinishingCategory(row.Category),
			ChargeBasis: enums.NormalizeChargeBasis(row.ChargeBy),
			Price:       row.Price,
			IsDefault:   row.IsDefault,
			IsMandatory: row.IsMandatory,
		})
	}
	for _, row := range rows.Discounts {
		if row.MinQuantity <= 0 || row.DiscountPercent.IsNegative() || row.DiscountPercent.GreaterThan(decimal.NewFromInt(100)) {
			errs = multierr.Append(errs, fmt.Errorf("volume_discounts row %d: tier %d/%s%% is out of range", row.ID, row.MinQuantity, row.DiscountPercent))
			continue
		}
		card.Discounts = append(card.Discounts, pricing.DiscountTier{
			ID:          row.ID,
			Name:        row.Name,
			MinQuantity: row.MinQuantity,
			Percent:     row.DiscountPercent,
		})
	}
	for _, row := range rows.Capabilities {
		size, err := enums.ParseSheetSize(row.SheetSize)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("shop_paper_capabilities row %d: %w", row.ID, err))
			continue
		}
		card.Capabilities = append(card.Capabilities, pricing.PaperCapability{SheetSize: size, MinGSM: row.MinGSM, MaxGSM: row.MaxGSM})
	}

	card.Anomalies = errorStrings(errs)
	return card
}

func mapPrinting(row models.PrintingPrice) (pricing.PrintingPrice, error) {
	size, sizeErr := enums.ParseSheetSize(row.SheetSize)
	color, colorErr := enums.ParseColorMode(row.ColorMode)
	if err := multierr.Combine(sizeErr, colorErr, negativePrice(row.SellingPricePerSide)); err != nil {
		return pricing.PrintingPrice{}, err
	}
	mapped := pricing.PrintingPrice{
		ID:             row.ID,
		MachineID:      row.MachineID,
		SheetSize:      size,
		ColorMode:      color,
		PerSide:        row.SellingPricePerSide,
		DuplexPerSheet: nullable(row.SellingPriceDuplex),
		BuyingPerSide:  nullable(row.BuyingPricePerSide),
	}
	if row.Machine != nil {
		mapped.MachineName = row.Machine.Name
	}
	return mapped, nil
}

func mapPaper(row models.PaperPrice) (pricing.PaperPrice, error) {
	size, sizeErr := enums.ParseSheetSize(row.SheetSize)
	paperType, typeErr := enums.ParsePaperType(row.PaperType)
	var gsmErr error
	if row.GSM <= 0 {
		gsmErr = fmt.Errorf("invalid gsm %d", row.GSM)
	}
	if err := multierr.Combine(sizeErr, typeErr, gsmErr, negativePrice(row.SellingPrice)); err != nil {
		return pricing.PaperPrice{}, err
	}
	return pricing.PaperPrice{
		ID:           row.ID,
		SheetSize:    size,
		GSM:          row.GSM,
		PaperType:    paperType,
		SellingPrice: row.SellingPrice,
		BuyingPrice:  nullable(row.BuyingPrice),
	}, nil
}

func mapMaterial(row models.MaterialPrice) (pricing.MaterialPrice, error) {
	materialType, typeErr := enums.ParseMaterialType(row.MaterialType)
	unit, unitErr := enums.ParseMaterialUnit(row.Unit)
	if err := multierr.Combine(typeErr, unitErr, negativePrice(row.SellingPrice)); err != nil {
		return pricing.MaterialPrice{}, err
	}
	return pricing.MaterialPrice{
		ID:           row.ID,
		MaterialType: materialType,
		Unit:         unit,
		SellingPrice: row.SellingPrice,
		BuyingPrice:  nullable(row.BuyingPrice),
	}, nil
}

// MapTemplate validates a template row. Invalid defaults fail the mapping; invalid
// adjustment or material rate rows are dropped and reported.
func MapTemplate(row models.PrintTemplate) (pricing.Template, []string, error) {
	tpl := pricing.Template{
		ID:               row.ID,
		Slug:             row.Slug,
		Title:            row.Title,
		ShopID:           row.ShopID,
		BasePrice:        row.BasePrice,
		MinQuantity:      row.MinQuantity,
		DefaultGSM:       row.DefaultGSM,
		MinGSM:           row.MinGSM,
		MaxGSM:           row.MaxGSM,
		FinalWidthMM:     nullable(row.FinalWidthMM),
		FinalHeightMM:    nullable(row.FinalHeightMM),
		LargeFormat:      row.IsLargeFormat,
		DuplexMultiplier: orZero(row.DuplexMultiplier),
		GSMStepPercent:   nullable(row.GSMStepPercent),
		PrintingShare:    orZero(row.PrintingShare),
	}

	var defaults error
	if row.DefaultSheetSize != "" {
		size, err := enums.ParseSheetSize(row.DefaultSheetSize)
		defaults = multierr.Append(defaults, err)
		tpl.DefaultSheetSize = size
	}
	if row.DefaultPaperType != "" {
		paperType, err := enums.ParsePaperType(row.DefaultPaperType)
		defaults = multierr.Append(defaults, err)
		tpl.DefaultPaperType = paperType
	}
	if row.DefaultSides != "" {
		sides, err := enums.ParsePrintSides(row.DefaultSides)
		defaults = multierr.Append(defaults, err)
		tpl.DefaultSides = sides
	}
	if defaults != nil {
		return pricing.Template{}, nil, fmt.Errorf("template %s defaults: %w", row.Slug, defaults)
	}

	for _, v := range row.AllowedGSM {
		tpl.AllowedGSM = append(tpl.AllowedGSM, int(v))
	}

	for _, f := range row.Finishings {
		tpl.Finishings = append(tpl.Finishings, pricing.TemplateFinishing{
			ID:          f.ID,
			Name:        f.Name,
			PriceDelta:  f.PriceDelta,
			IsMandatory: f.IsMandatory,
			IsDefault:   f.IsDefault,
		})
	}
	for _, o := range row.Options {
		tpl.Options = append(tpl.Options, pricing.TemplateOption{
			ID:            o.ID,
			Group:         o.OptionGroup,
			Label:         o.Label,
			PriceModifier: o.PriceModifier,
		})
	}

	var errs error
	for _, a := range row.Adjustments {
		dim, dimErr := enums.ParseAdjustmentDimension(a.Dimension)
		mode, modeErr := enums.ParseAdjustmentMode(a.Mode)
		if err := multierr.Combine(dimErr, modeErr); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("template_adjustments row %d: %w", a.ID, err))
			continue
		}
		tpl.Adjustments = append(tpl.Adjustments, pricing.TemplateAdjustment{
			Dimension: dim,
			Value:     normalizeAdjustmentValue(dim, a.Value),
			Mode:      mode,
			Amount:    a.Amount,
		})
	}
	for _, m := range row.MaterialRates {
		materialType, err := enums.ParseMaterialType(m.MaterialType)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("template_material_rates row %d: %w", m.ID, err))
			continue
		}
		if tpl.MaterialRates == nil {
			tpl.MaterialRates = make(map[enums.MaterialType]decimal.Decimal, len(row.MaterialRates))
		}
		tpl.MaterialRates[materialType] = m.PricePerSqm
	}

	return tpl, errorStrings(errs), nil
}

// Adjustment values are compared against job values, which are canonical upper case
// enum strings or plain integers for gsm.
func normalizeAdjustmentValue(dim enums.AdjustmentDimension, value string) string {
	switch dim {
	case enums.AdjustmentDimensionSheetSize:
		if v, err := enums.ParseSheetSize(value); err == nil {
			return v.String()
		}
	case enums.AdjustmentDimensionPaperType:
		if v, err := enums.ParsePaperType(value); err == nil {
			return v.String()
		}
	case enums.AdjustmentDimensionPrintSides:
		if v, err := enums.ParsePrintSides(value); err == nil {
			return v.String()
		}
	}
	return value
}

// MapCapabilities converts capability rows, skipping unknown sheet sizes.
func MapCapabilities(rows []models.ShopPaperCapability) []pricing.PaperCapability {
	out := make([]pricing.PaperCapability, 0, len(rows))
	for _, row := range rows {
		size, err := enums.ParseSheetSize(row.SheetSize)
		if err != nil {
			continue
		}
		out = append(out, pricing.PaperCapability{SheetSize: size, MinGSM: row.MinGSM, MaxGSM: row.MaxGSM})
	}
	return out
}

func negativePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("negative selling price %s", price)
	}
	return nil
}

func nullable(v decimal.NullDecimal) *decimal.Decimal {
	if !v.Valid {
		return nil
	}
	d := v.Decimal
	return &d
}

func orZero(v decimal.NullDecimal) decimal.Decimal {
	if !v.Valid {
		return decimal.Zero
	}
	return v.Decimal
}

func errorStrings(err error) []string {
	all := multierr.Errors(err)
	if len(all) == 0 {
		return nil
	}
	out := make([]string, len(all))
	for i, e := range all {
		out[i] = e.Error()
	}
	return out
}
