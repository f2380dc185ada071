package pricing

import (
	"context"
	"fmt"

	"github.com/printhub/printhub-backend/pkg/enums"
	"github.com/printhub/printhub-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// ShopCalculator prices jobs against one shop's rate card.
type ShopCalculator struct {
	logg *logger.Logger
}

// NewShopCalculator returns a calculator. logg may be nil.
func NewShopCalculator(logg *logger.Logger) *ShopCalculator {
	return &ShopCalculator{logg: logg}
}

// Calculate prices job against card. Any unresolved rate fails the calculation.
func (c *ShopCalculator) Calculate(ctx context.Context, card RateCard, job JobSpec) (Breakdown, error) {
	if job.Quantity <= 0 {
		return Breakdown{}, invalidQuantity(job.Quantity)
	}

	rec := &anomalyRecorder{logg: c.logg}
	for _, msg := range card.Anomalies {
		rec.anomaly(ctx, AnomalyInvalidRow, "rate_card", msg)
	}

	b := Breakdown{
		Context:        ContextShop,
		Currency:       card.Currency,
		ShopSlug:       card.ShopSlug,
		Quantity:       job.Quantity,
		BilledQuantity: job.Quantity,
	}

	var err error
	if job.IsLargeFormat() {
		err = c.priceMaterial(ctx, rec, card, job, &b)
	} else {
		err = c.priceSheets(ctx, rec, card, job, &b)
	}
	if err != nil {
		return Breakdown{}, err
	}

	if err := c.priceFinishing(card, job, &b); err != nil {
		return Breakdown{}, err
	}

	if tier := ResolveDiscount(card.Discounts, job.Quantity); tier != nil {
		b.DiscountPercent = tier.Percent
		rec.note("volume discount %s%% applied for %d+ units", tier.Percent.String(), tier.MinQuantity)
	} else {
		b.DiscountPercent = decimal.Zero
	}

	rec.settle(ctx, &b)
	return b, nil
}

func (c *ShopCalculator) priceSheets(ctx context.Context, rec *anomalyRecorder, card RateCard, job JobSpec, b *Breakdown) error {
	b.Mode = ModeDigital
	if job.SheetSize == nil {
		return missingField("sheet_size", "sheet_size is required for digital jobs")
	}
	if job.GSM == nil {
		return missingField("gsm", "gsm is required for digital jobs")
	}
	size := *job.SheetSize
	if !size.IsValid() {
		return missingField("sheet_size", fmt.Sprintf("unsupported sheet size %q", size))
	}
	if *job.GSM <= 0 {
		return missingField("gsm", "gsm must be positive")
	}

	printing, res, err := FindPrintingPrice(card.Printing, PrintingCriteria{
		SheetSize: size,
		ColorMode: job.colorMode(),
		MachineID: job.MachineID,
	})
	if err != nil {
		return err
	}
	rec.resolution(ctx, res)

	paper, res, err := FindPaperPrice(card.Papers, PaperCriteria{
		SheetSize: size,
		GSM:       *job.GSM,
		PaperType: job.paperType(),
	})
	if err != nil {
		return err
	}
	rec.resolution(ctx, res)

	sheets := job.Quantity
	if job.PieceWidthMM != nil || job.PieceHeightMM != nil {
		if job.PieceWidthMM == nil {
			return missingField("piece_width_mm", "piece_width_mm is required with piece_height_mm")
		}
		if job.PieceHeightMM == nil {
			return missingField("piece_height_mm", "piece_height_mm is required with piece_width_mm")
		}
		sheetW, sheetH, _ := size.DimensionsMM()
		perSheet := Imposition(*job.PieceWidthMM, *job.PieceHeightMM, sheetW, sheetH)
		if perSheet == 0 {
			return pieceDoesNotFit(size.String(), job.PieceWidthMM.String(), job.PieceHeightMM.String())
		}
		b.Imposition = perSheet
		sheets = SheetsRequired(job.Quantity, perSheet)
	}
	b.SheetsRequired = sheets

	qty := decimal.NewFromInt(int64(job.Quantity))
	duplex := job.sides() == enums.PrintSidesDuplex
	duplexSheets := decimal.NewFromInt(int64(SheetsRequired(job.Quantity, 2)))
	if duplex {
		rate := printing.PerSide.Mul(decimal.NewFromInt(2))
		if printing.DuplexPerSheet != nil {
			rate = *printing.DuplexPerSheet
		} else {
			rec.note("no duplex rate configured; billed at twice the per-side price per sheet")
			rec.anomaly(ctx, AnomalyDuplexDefault, DimensionPrinting,
				fmt.Sprintf("printing row %d has no duplex price", printing.ID))
		}
		b.PrintingCost = duplexSheets.Mul(rate)
	} else {
		b.PrintingCost = qty.Mul(printing.PerSide)
	}

	sheetCount := decimal.NewFromInt(int64(sheets))
	b.PaperCost = sheetCount.Mul(paper.SellingPrice)
	b.PricePerSheet = paper.SellingPrice.Round(unitRatePlaces)

	if printing.BuyingPerSide != nil && paper.BuyingPrice != nil {
		// Buying is per printed side on the same physical sheets billed above.
		printCost := qty.Mul(*printing.BuyingPerSide)
		if duplex {
			printCost = duplexSheets.Mul(decimal.NewFromInt(2)).Mul(*printing.BuyingPerSide)
		}
		cogs := printCost.Add(sheetCount.Mul(*paper.BuyingPrice))
		b.CostOfGoods = &cogs
	}
	return nil
}

func (c *ShopCalculator) priceMaterial(ctx context.Context, rec *anomalyRecorder, card RateCard, job JobSpec, b *Breakdown) error {
	b.Mode = ModeLargeFormat
	if job.MaterialType == nil {
		return missingField("material_type", "material_type is required for large-format jobs")
	}
	unit := enums.MaterialUnitSQM
	if job.Unit != nil {
		unit = *job.Unit
	}

	material, res, err := FindMaterialPrice(card.Materials, MaterialCriteria{
		MaterialType: *job.MaterialType,
		Unit:         unit,
	})
	if err != nil {
		return err
	}
	rec.resolution(ctx, res)

	qty := decimal.NewFromInt(int64(job.Quantity))
	units := qty
	if unit.IsArea() {
		area, ok := job.Area()
		if !ok {
			return missingField("area_sqm", "area_sqm or width_m and height_m are required for area-priced material")
		}
		if !area.IsPositive() {
			return missingField("area_sqm", "area must be positive")
		}
		b.AreaSqm = &area
		units = area.Mul(qty)
	}

	b.SheetsRequired = job.Quantity
	b.PrintingCost = decimal.Zero
	b.MaterialCost = units.Mul(material.SellingPrice)
	b.PricePerSheet = material.SellingPrice.Round(unitRatePlaces)
	rec.note("printing is included in the %s material rate", material.MaterialType)

	if material.BuyingPrice != nil {
		cogs := units.Mul(*material.BuyingPrice)
		b.CostOfGoods = &cogs
	}
	return nil
}

func (c *ShopCalculator) priceFinishing(card RateCard, job JobSpec, b *Breakdown) error {
	selected, err := FindFinishings(card.Finishings, job.FinishingIDs)
	if err != nil {
		return err
	}

	applied := make([]Finishing, 0, len(selected))
	seen := map[int64]struct{}{}
	add := func(f Finishing) {
		if _, ok := seen[f.ID]; ok {
			return
		}
		seen[f.ID] = struct{}{}
		applied = append(applied, f)
	}
	for _, f := range card.Finishings {
		if f.IsMandatory {
			add(f)
		}
	}
	if job.FinishingIDs == nil {
		for _, f := range card.Finishings {
			if f.IsDefault {
				add(f)
			}
		}
	}
	for _, f := range selected {
		add(f)
	}

	total := decimal.Zero
	lines := make([]FinishingLine, 0, len(applied))
	for _, f := range applied {
		units, ok := chargeUnits(f.ChargeBasis, b.SheetsRequired, job.Quantity)
		if !ok {
			return unknownChargeBasis(f.ID, string(f.ChargeBasis))
		}
		line := FinishingLine{
			ID:          f.ID,
			Name:        f.Name,
			ChargeBasis: f.ChargeBasis,
			UnitPrice:   f.Price,
			Units:       units,
			Total:       f.Price.Mul(decimal.NewFromInt(int64(units))).Round(moneyPlaces),
			Mandatory:   f.IsMandatory,
		}
		total = total.Add(line.Total)
		lines = append(lines, line)
	}
	b.FinishingCost = total
	b.Finishings = lines
	return nil
}
