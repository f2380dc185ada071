package enums

import "strings"

// ChargeBasis is the unit a finishing service bills against.
type ChargeBasis string

const (
	ChargeBasisPerJob   ChargeBasis = "PER_JOB"
	ChargeBasisPerSheet ChargeBasis = "PER_SHEET"
	ChargeBasisPerPiece ChargeBasis = "PER_PIECE"
)

var validChargeBases = []ChargeBasis{
	ChargeBasisPerJob,
	ChargeBasisPerSheet,
	ChargeBasisPerPiece,
}

// String implements fmt.Stringer.
func (c ChargeBasis) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ChargeBasis.
func (c ChargeBasis) IsValid() bool {
	for _, candidate := range validChargeBases {
		if candidate == c {
			return true
		}
	}
	return false
}

// NormalizeChargeBasis upper-cases the raw value without rejecting unknown bases;
// catalog rows keep whatever basis they were stored with so pricing can report it.
func NormalizeChargeBasis(value string) ChargeBasis {
	return ChargeBasis(strings.ToUpper(strings.TrimSpace(value)))
}

// FinishingCategory groups finishing services for display.
type FinishingCategory string

const (
	FinishingCategoryLamination FinishingCategory = "LAMINATION"
	FinishingCategoryBinding    FinishingCategory = "BINDING"
	FinishingCategoryCutting    FinishingCategory = "CUTTING"
	FinishingCategoryFolding    FinishingCategory = "FOLDING"
	FinishingCategoryOther      FinishingCategory = "OTHER"
)

// ParseFinishingCategory falls back to OTHER for unknown categories.
func ParseFinishingCategory(value string) FinishingCategory {
	switch c := FinishingCategory(strings.ToUpper(strings.TrimSpace(value))); c {
	case FinishingCategoryLamination, FinishingCategoryBinding, FinishingCategoryCutting, FinishingCategoryFolding:
		return c
	default:
		return FinishingCategoryOther
	}
}
