package pricing

import (
	"github.com/printhub/printhub-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// PrintingPrice is one active printing row of a shop. DuplexPerSheet is nil when the
// shop never configured a double-sided rate for the row.
type PrintingPrice struct {
	ID             int64
	MachineID      *int64
	MachineName    string
	SheetSize      enums.SheetSize
	ColorMode      enums.ColorMode
	PerSide        decimal.Decimal
	DuplexPerSheet *decimal.Decimal
	BuyingPerSide  *decimal.Decimal
}

// PaperPrice is the selling (and optionally buying) price of a single sheet of stock.
type PaperPrice struct {
	ID           int64
	SheetSize    enums.SheetSize
	GSM          int
	PaperType    enums.PaperType
	SellingPrice decimal.Decimal
	BuyingPrice  *decimal.Decimal
}

// MaterialPrice prices large-format material per sheet or per square metre.
type MaterialPrice struct {
	ID           int64
	MaterialType enums.MaterialType
	Unit         enums.MaterialUnit
	SellingPrice decimal.Decimal
	BuyingPrice  *decimal.Decimal
}

// Finishing is a shop finishing service. ChargeBasis keeps whatever the catalog
// stored so that unsupported values fail the calculation instead of being guessed.
type Finishing struct {
	ID          int64
	Name        string
	Category    enums.FinishingCategory
	ChargeBasis enums.ChargeBasis
	Price       decimal.Decimal
	IsDefault   bool
	IsMandatory bool
}

// PaperCapability bounds the paper weights a shop can run on one sheet size.
type PaperCapability struct {
	SheetSize enums.SheetSize
	MinGSM    int
	MaxGSM    int
}

// RateCard is the validated snapshot of a shop's active pricing rows.
type RateCard struct {
	ShopID       int64
	ShopSlug     string
	Currency     string
	Printing     []PrintingPrice
	Papers       []PaperPrice
	Materials    []MaterialPrice
	Finishings   []Finishing
	Discounts    []DiscountTier
	Capabilities []PaperCapability

	// Anomalies lists rows dropped while validating the raw catalog.
	Anomalies []string
}

// CapabilityFor returns the shop's weight bounds for a sheet size.
func (rc RateCard) CapabilityFor(size enums.SheetSize) (PaperCapability, bool) {
	return findCapability(rc.Capabilities, size)
}

func findCapability(caps []PaperCapability, size enums.SheetSize) (PaperCapability, bool) {
	for _, c := range caps {
		if c.SheetSize == size {
			return c, true
		}
	}
	return PaperCapability{}, false
}
