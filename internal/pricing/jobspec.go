package pricing

import (
	"github.com/printhub/printhub-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// JobSpec describes the job to price. Digital jobs set the sheet fields; large-format
// jobs set the material fields. A nil FinishingIDs means "no selection made", while an
// empty slice means "explicitly none".
type JobSpec struct {
	Quantity int

	SheetSize *enums.SheetSize
	GSM       *int
	PaperType *enums.PaperType
	ColorMode *enums.ColorMode
	Sides     *enums.PrintSides
	MachineID *int64

	PieceWidthMM  *decimal.Decimal
	PieceHeightMM *decimal.Decimal

	MaterialType *enums.MaterialType
	Unit         *enums.MaterialUnit
	AreaSqm      *decimal.Decimal
	WidthM       *decimal.Decimal
	HeightM      *decimal.Decimal

	FinishingIDs []int64
	OptionIDs    []int64
}

// IsLargeFormat reports whether the job carries large-format material fields.
func (j JobSpec) IsLargeFormat() bool {
	return j.MaterialType != nil || j.Unit != nil || j.AreaSqm != nil || j.WidthM != nil || j.HeightM != nil
}

// Area returns the explicit area or width×height, if either is available.
func (j JobSpec) Area() (decimal.Decimal, bool) {
	if j.AreaSqm != nil {
		return *j.AreaSqm, true
	}
	if j.WidthM != nil && j.HeightM != nil {
		return j.WidthM.Mul(*j.HeightM), true
	}
	return decimal.Zero, false
}

func (j JobSpec) colorMode() enums.ColorMode {
	if j.ColorMode != nil {
		return *j.ColorMode
	}
	return enums.ColorModeColor
}

func (j JobSpec) sides() enums.PrintSides {
	if j.Sides != nil {
		return *j.Sides
	}
	return enums.PrintSidesSimplex
}

func (j JobSpec) paperType() enums.PaperType {
	if j.PaperType != nil {
		return *j.PaperType
	}
	return enums.PaperTypeGloss
}
