package pricing

import (
	"context"
	"fmt"

	"github.com/printhub/printhub-backend/pkg/enums"
	"github.com/printhub/printhub-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// ContextKind names the catalog a breakdown was priced against.
type ContextKind string

const (
	ContextShop     ContextKind = "shop"
	ContextTemplate ContextKind = "template"
)

// Mode separates sheet-fed digital jobs from area-priced large-format jobs.
type Mode string

const (
	ModeDigital     Mode = "digital"
	ModeLargeFormat Mode = "large_format"
)

// AnomalyKind classifies catalog problems that were recovered from locally.
type AnomalyKind string

const (
	AnomalyDuplicateRows AnomalyKind = "duplicate_rows"
	AnomalyNegativeTotal AnomalyKind = "negative_total"
	AnomalyDuplexDefault AnomalyKind = "duplex_default"
	AnomalyInvalidRow    AnomalyKind = "invalid_row"
)

// Anomaly is a catalog defect surfaced alongside a successful calculation.
type Anomaly struct {
	Kind      AnomalyKind
	Dimension string
	Message   string
}

// FinishingLine is one itemised finishing charge.
type FinishingLine struct {
	ID          int64
	Name        string
	ChargeBasis enums.ChargeBasis
	UnitPrice   decimal.Decimal
	Units       int
	Total       decimal.Decimal
	Mandatory   bool
}

// OptionLine is one selected template option.
type OptionLine struct {
	ID     int64
	Group  string
	Label  string
	Amount decimal.Decimal
}

// Breakdown is the priced result of one calculation. Calculators build it once and
// hand it back by value; nothing in this package touches it afterwards.
type Breakdown struct {
	Context      ContextKind
	Mode         Mode
	Currency     string
	ShopSlug     string
	TemplateSlug string

	Quantity       int
	BilledQuantity int
	SheetsRequired int
	Imposition     int
	AreaSqm        *decimal.Decimal

	PrintingCost    decimal.Decimal
	PaperCost       decimal.Decimal
	MaterialCost    decimal.Decimal
	FinishingCost   decimal.Decimal
	OptionsCost     decimal.Decimal
	Subtotal        decimal.Decimal
	DiscountPercent decimal.Decimal
	DiscountAmount  decimal.Decimal
	GrandTotal      decimal.Decimal

	PricePerSheet decimal.Decimal
	PricePerUnit  decimal.Decimal
	CostOfGoods   *decimal.Decimal
	Margin        *decimal.Decimal

	Finishings []FinishingLine
	Options    []OptionLine
	Notes      []string
	Anomalies  []Anomaly
	Estimate   bool
}

// Rounding applied to the figures a breakdown exposes.
const (
	moneyPlaces    = 2
	unitRatePlaces = 4
)

var hundred = decimal.NewFromInt(100)

type anomalyRecorder struct {
	logg      *logger.Logger
	notes     []string
	anomalies []Anomaly
}

func (r *anomalyRecorder) note(format string, args ...any) {
	r.notes = append(r.notes, fmt.Sprintf(format, args...))
}

func (r *anomalyRecorder) anomaly(ctx context.Context, kind AnomalyKind, dimension, message string) {
	r.anomalies = append(r.anomalies, Anomaly{Kind: kind, Dimension: dimension, Message: message})
	if r.logg != nil {
		ctx = r.logg.WithFields(ctx, map[string]any{
			"anomaly_kind": string(kind),
			"dimension":    dimension,
		})
		r.logg.Warn(ctx, "pricing catalog anomaly: "+message)
	}
}

func (r *anomalyRecorder) resolution(ctx context.Context, res Resolution) {
	if !res.Ambiguous() {
		return
	}
	r.anomaly(ctx, AnomalyDuplicateRows, res.Dimension,
		fmt.Sprintf("%d duplicate active %s rows for %s; used row %d", res.Duplicates, res.Dimension, res.Criteria, res.RowID))
}

// settle rounds each cost component, derives subtotal, discount and grand total from
// the rounded figures and clamps the grand total at zero.
func (r *anomalyRecorder) settle(ctx context.Context, b *Breakdown) {
	b.PrintingCost = b.PrintingCost.Round(moneyPlaces)
	b.PaperCost = b.PaperCost.Round(moneyPlaces)
	b.MaterialCost = b.MaterialCost.Round(moneyPlaces)
	b.FinishingCost = b.FinishingCost.Round(moneyPlaces)
	b.OptionsCost = b.OptionsCost.Round(moneyPlaces)

	b.Subtotal = b.PrintingCost.Add(b.PaperCost).Add(b.MaterialCost).Add(b.FinishingCost).Add(b.OptionsCost)
	b.DiscountAmount = b.Subtotal.Mul(b.DiscountPercent).Div(hundred).Round(moneyPlaces)
	b.GrandTotal = b.Subtotal.Sub(b.DiscountAmount)
	if b.GrandTotal.IsNegative() {
		r.anomaly(ctx, AnomalyNegativeTotal, "total",
			fmt.Sprintf("net total %s is negative; clamped to zero", b.GrandTotal.StringFixed(moneyPlaces)))
		r.note("grand total clamped to zero because the configured charges net to a negative amount")
		b.GrandTotal = decimal.Zero
	}

	billed := b.BilledQuantity
	if billed <= 0 {
		billed = b.Quantity
	}
	if billed > 0 {
		b.PricePerUnit = b.GrandTotal.Div(decimal.NewFromInt(int64(billed))).Round(unitRatePlaces)
	}

	if b.CostOfGoods != nil {
		cogs := b.CostOfGoods.Round(moneyPlaces)
		margin := b.GrandTotal.Sub(cogs)
		b.CostOfGoods = &cogs
		b.Margin = &margin
	}

	b.Notes = append([]string(nil), r.notes...)
	b.Anomalies = append([]Anomaly(nil), r.anomalies...)
}

func chargeUnits(basis enums.ChargeBasis, sheets, quantity int) (int, bool) {
	switch basis {
	case enums.ChargeBasisPerJob:
		return 1, true
	case enums.ChargeBasisPerSheet:
		return sheets, true
	case enums.ChargeBasisPerPiece:
		return quantity, true
	default:
		return 0, false
	}
}
