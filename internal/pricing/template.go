package pricing

import (
	"github.com/printhub/printhub-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Template pricing defaults applied when a template leaves the field unset.
var (
	DefaultDuplexMultiplier = decimal.RequireFromString("1.4")
	DefaultGSMStepPercent   = decimal.NewFromInt(5)
	DefaultPrintingShare    = decimal.RequireFromString("0.6")
)

const gsmStep = 50

// TemplateFinishing is a finishing attached to a template, charged per billed unit.
type TemplateFinishing struct {
	ID          int64
	Name        string
	PriceDelta  decimal.Decimal
	IsMandatory bool
	IsDefault   bool
}

// TemplateOption is a selectable option charged once per job.
type TemplateOption struct {
	ID            int64
	Group         string
	Label         string
	PriceModifier decimal.Decimal
}

// TemplateAdjustment changes the price when a job deviates from the template default
// on one dimension. ADD amounts are per billed unit.
type TemplateAdjustment struct {
	Dimension enums.AdjustmentDimension
	Value     string
	Mode      enums.AdjustmentMode
	Amount    decimal.Decimal
}

// Template is a global demo catalog entry priced with a base-plus-deltas model.
type Template struct {
	ID          int64
	Slug        string
	Title       string
	ShopID      *int64
	BasePrice   decimal.Decimal
	MinQuantity int

	DefaultSheetSize enums.SheetSize
	DefaultGSM       int
	DefaultPaperType enums.PaperType
	DefaultSides     enums.PrintSides

	AllowedGSM []int
	MinGSM     *int
	MaxGSM     *int

	FinalWidthMM  *decimal.Decimal
	FinalHeightMM *decimal.Decimal

	LargeFormat   bool
	MaterialRates map[enums.MaterialType]decimal.Decimal

	DuplexMultiplier decimal.Decimal
	// GSMStepPercent is nil when unset; an explicit zero disables weight pricing.
	GSMStepPercent *decimal.Decimal
	PrintingShare  decimal.Decimal

	Finishings  []TemplateFinishing
	Options     []TemplateOption
	Adjustments []TemplateAdjustment

	// Anomalies lists configuration rows dropped while validating the template.
	Anomalies []string
}

func (t Template) duplexMultiplier() decimal.Decimal {
	if t.DuplexMultiplier.IsPositive() {
		return t.DuplexMultiplier
	}
	return DefaultDuplexMultiplier
}

func (t Template) gsmStepPercent() decimal.Decimal {
	if t.GSMStepPercent == nil || t.GSMStepPercent.IsNegative() {
		return DefaultGSMStepPercent
	}
	return *t.GSMStepPercent
}

func (t Template) printingShare() decimal.Decimal {
	if t.PrintingShare.IsPositive() && t.PrintingShare.LessThanOrEqual(decimal.NewFromInt(1)) {
		return t.PrintingShare
	}
	return DefaultPrintingShare
}

func (t Template) minQuantity() int {
	if t.MinQuantity < 1 {
		return 1
	}
	return t.MinQuantity
}

func (t Template) adjustment(dim enums.AdjustmentDimension, value string) (TemplateAdjustment, bool) {
	for _, adj := range t.Adjustments {
		if adj.Dimension == dim && adj.Value == value {
			return adj, true
		}
	}
	return TemplateAdjustment{}, false
}
