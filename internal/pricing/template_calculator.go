package pricing

import (
	"context"
	"fmt"
	"strconv"

	"github.com/printhub/printhub-backend/pkg/enums"
	"github.com/printhub/printhub-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// EstimateDisclaimer is attached to every template quote.
const EstimateDisclaimer = "template prices are estimates; the producing shop confirms the final price"

var mmPerMetre = decimal.NewFromInt(1000)

// TemplateCalculator prices jobs with a template's base-plus-deltas model. Volume
// discounts never apply.
type TemplateCalculator struct {
	logg *logger.Logger
}

// NewTemplateCalculator returns a calculator. logg may be nil.
func NewTemplateCalculator(logg *logger.Logger) *TemplateCalculator {
	return &TemplateCalculator{logg: logg}
}

// Calculate prices job against tpl. caps restricts paper weights to what a shop can
// run and may be nil for the global catalog.
func (c *TemplateCalculator) Calculate(ctx context.Context, tpl Template, caps []PaperCapability, job JobSpec) (Breakdown, error) {
	if job.Quantity <= 0 {
		return Breakdown{}, invalidQuantity(job.Quantity)
	}

	rec := &anomalyRecorder{logg: c.logg}
	for _, msg := range tpl.Anomalies {
		rec.anomaly(ctx, AnomalyInvalidRow, "template", msg)
	}
	billed := job.Quantity
	if minQty := tpl.minQuantity(); billed < minQty {
		billed = minQty
		rec.note("quantity %d is below the template minimum of %d; billed as %d", job.Quantity, minQty, minQty)
	}

	b := Breakdown{
		Context:         ContextTemplate,
		TemplateSlug:    tpl.Slug,
		Quantity:        job.Quantity,
		BilledQuantity:  billed,
		SheetsRequired:  billed,
		DiscountPercent: decimal.Zero,
		Estimate:        true,
	}

	var err error
	if tpl.LargeFormat || job.IsLargeFormat() {
		err = c.priceArea(rec, tpl, job, &b)
	} else {
		err = c.priceDigital(tpl, caps, job, &b)
	}
	if err != nil {
		return Breakdown{}, err
	}

	if err := c.priceFinishing(tpl, job, &b); err != nil {
		return Breakdown{}, err
	}
	if err := c.priceOptions(tpl, job, &b); err != nil {
		return Breakdown{}, err
	}

	rec.note(EstimateDisclaimer)
	rec.settle(ctx, &b)
	return b, nil
}

func (c *TemplateCalculator) priceDigital(tpl Template, caps []PaperCapability, job JobSpec, b *Breakdown) error {
	b.Mode = ModeDigital

	size := tpl.DefaultSheetSize
	if job.SheetSize != nil {
		size = *job.SheetSize
	}
	gsm := tpl.DefaultGSM
	if job.GSM != nil {
		gsm = *job.GSM
	}
	paperType := tpl.DefaultPaperType
	if job.PaperType != nil {
		paperType = *job.PaperType
	}
	sides := tpl.DefaultSides
	if sides == "" {
		sides = enums.PrintSidesSimplex
	}
	if job.Sides != nil {
		sides = *job.Sides
	}

	if size != "" && !size.IsValid() {
		return missingField("sheet_size", fmt.Sprintf("unsupported sheet size %q", size))
	}
	if gsm != 0 || job.GSM != nil {
		if err := ValidateGSM(tpl, caps, size, gsm); err != nil {
			return err
		}
	}

	billed := decimal.NewFromInt(int64(b.BilledQuantity))
	base := tpl.BasePrice.Mul(billed)
	share := tpl.printingShare()
	printing := base.Mul(share)
	material := base.Sub(printing)

	defaultSides := tpl.DefaultSides
	if defaultSides == "" {
		defaultSides = enums.PrintSidesSimplex
	}
	if sides != defaultSides {
		if sides == enums.PrintSidesDuplex {
			printing = printing.Mul(tpl.duplexMultiplier())
		} else {
			printing = printing.Div(tpl.duplexMultiplier())
		}
	}

	// Only stock heavier than the default is surcharged.
	if tpl.DefaultGSM > 0 && gsm > tpl.DefaultGSM {
		steps := (gsm - tpl.DefaultGSM) / gsmStep
		factor := decimal.NewFromInt(1).Add(tpl.gsmStepPercent().Mul(decimal.NewFromInt(int64(steps))).Div(hundred))
		material = material.Mul(factor)
	}

	printing = applyAdjustment(tpl, enums.AdjustmentDimensionSheetSize, string(tpl.DefaultSheetSize), string(size), printing, billed)
	printing = applyAdjustment(tpl, enums.AdjustmentDimensionPrintSides, string(defaultSides), string(sides), printing, billed)
	material = applyAdjustment(tpl, enums.AdjustmentDimensionGSM, strconv.Itoa(tpl.DefaultGSM), strconv.Itoa(gsm), material, billed)
	material = applyAdjustment(tpl, enums.AdjustmentDimensionPaperType, string(tpl.DefaultPaperType), string(paperType), material, billed)

	b.PrintingCost = printing
	b.PaperCost = material

	if tpl.FinalWidthMM != nil && tpl.FinalHeightMM != nil {
		if sheetW, sheetH, ok := size.DimensionsMM(); ok {
			if perSheet := Imposition(*tpl.FinalWidthMM, *tpl.FinalHeightMM, sheetW, sheetH); perSheet > 0 {
				b.Imposition = perSheet
				b.SheetsRequired = SheetsRequired(b.BilledQuantity, perSheet)
			}
		}
	}
	if b.SheetsRequired > 0 {
		b.PricePerSheet = material.Div(decimal.NewFromInt(int64(b.SheetsRequired))).Round(unitRatePlaces)
	}
	return nil
}

// applyAdjustment applies the configured delta when the job deviates from the
// template default. MULTIPLY scales the amount; ADD is charged per billed unit.
func applyAdjustment(tpl Template, dim enums.AdjustmentDimension, defaultValue, value string, amount, billed decimal.Decimal) decimal.Decimal {
	if value == "" || value == defaultValue {
		return amount
	}
	adj, ok := tpl.adjustment(dim, value)
	if !ok {
		return amount
	}
	switch adj.Mode {
	case enums.AdjustmentModeMultiply:
		return amount.Mul(adj.Amount)
	case enums.AdjustmentModeAdd:
		return amount.Add(adj.Amount.Mul(billed))
	default:
		return amount
	}
}

func (c *TemplateCalculator) priceArea(rec *anomalyRecorder, tpl Template, job JobSpec, b *Breakdown) error {
	b.Mode = ModeLargeFormat

	area, ok := job.Area()
	if !ok && tpl.FinalWidthMM != nil && tpl.FinalHeightMM != nil {
		area = tpl.FinalWidthMM.Div(mmPerMetre).Mul(tpl.FinalHeightMM.Div(mmPerMetre))
		ok = true
	}
	if !ok {
		return missingField("area_sqm", "area_sqm or width_m and height_m are required for large-format templates")
	}
	if !area.IsPositive() {
		return missingField("area_sqm", "area must be positive")
	}

	rate := tpl.BasePrice
	if job.MaterialType != nil && len(tpl.MaterialRates) > 0 {
		r, found := tpl.MaterialRates[*job.MaterialType]
		if !found {
			return noPrice(DimensionMaterial, fmt.Sprintf("%s on template %s", *job.MaterialType, tpl.Slug))
		}
		rate = r
	}

	b.AreaSqm = &area
	b.PrintingCost = decimal.Zero
	b.MaterialCost = area.Mul(rate).Mul(decimal.NewFromInt(int64(b.BilledQuantity)))
	b.PricePerSheet = area.Mul(rate).Round(unitRatePlaces)
	rec.note("large-format price is area %s sqm at %s per sqm", area.String(), rate.String())
	return nil
}

func (c *TemplateCalculator) priceFinishing(tpl Template, job JobSpec, b *Breakdown) error {
	byID := make(map[int64]TemplateFinishing, len(tpl.Finishings))
	for _, f := range tpl.Finishings {
		byID[f.ID] = f
	}
	for _, id := range job.FinishingIDs {
		if _, ok := byID[id]; !ok {
			return noPrice(DimensionFinishing, fmt.Sprintf("id %d on template %s", id, tpl.Slug))
		}
	}

	selected := make(map[int64]bool, len(job.FinishingIDs))
	for _, id := range job.FinishingIDs {
		selected[id] = true
	}

	billed := decimal.NewFromInt(int64(b.BilledQuantity))
	total := decimal.Zero
	var lines []FinishingLine
	for _, f := range tpl.Finishings {
		apply := f.IsMandatory || selected[f.ID] || (job.FinishingIDs == nil && f.IsDefault)
		if !apply {
			continue
		}
		line := FinishingLine{
			ID:          f.ID,
			Name:        f.Name,
			ChargeBasis: enums.ChargeBasisPerPiece,
			UnitPrice:   f.PriceDelta,
			Units:       b.BilledQuantity,
			Total:       f.PriceDelta.Mul(billed).Round(moneyPlaces),
			Mandatory:   f.IsMandatory,
		}
		total = total.Add(line.Total)
		lines = append(lines, line)
	}
	b.FinishingCost = total
	b.Finishings = lines
	return nil
}

func (c *TemplateCalculator) priceOptions(tpl Template, job JobSpec, b *Breakdown) error {
	byID := make(map[int64]TemplateOption, len(tpl.Options))
	for _, o := range tpl.Options {
		byID[o.ID] = o
	}

	seen := make(map[int64]struct{}, len(job.OptionIDs))
	total := decimal.Zero
	var lines []OptionLine
	for _, id := range job.OptionIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		opt, ok := byID[id]
		if !ok {
			return noPrice(DimensionOption, fmt.Sprintf("id %d on template %s", id, tpl.Slug))
		}
		lines = append(lines, OptionLine{ID: opt.ID, Group: opt.Group, Label: opt.Label, Amount: opt.PriceModifier})
		total = total.Add(opt.PriceModifier)
	}
	b.OptionsCost = total
	b.Options = lines
	return nil
}
