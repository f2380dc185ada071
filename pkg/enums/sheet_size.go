package enums

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// SheetSize identifies a physical stock sheet the shop prints on.
type SheetSize string

const (
	SheetSizeA5   SheetSize = "A5"
	SheetSizeA4   SheetSize = "A4"
	SheetSizeA3   SheetSize = "A3"
	SheetSizeSRA3 SheetSize = "SRA3"
)

var validSheetSizes = []SheetSize{
	SheetSizeA5,
	SheetSizeA4,
	SheetSizeA3,
	SheetSizeSRA3,
}

// sheetDimensionsMM holds portrait width x height in millimetres.
var sheetDimensionsMM = map[SheetSize][2]int64{
	SheetSizeA5:   {148, 210},
	SheetSizeA4:   {210, 297},
	SheetSizeA3:   {297, 420},
	SheetSizeSRA3: {320, 450},
}

// String implements fmt.Stringer.
func (s SheetSize) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SheetSize.
func (s SheetSize) IsValid() bool {
	for _, candidate := range validSheetSizes {
		if candidate == s {
			return true
		}
	}
	return false
}

// DimensionsMM returns the portrait width and height of the sheet in millimetres.
func (s SheetSize) DimensionsMM() (decimal.Decimal, decimal.Decimal, bool) {
	dims, ok := sheetDimensionsMM[s]
	if !ok {
		return decimal.Zero, decimal.Zero, false
	}
	return decimal.NewFromInt(dims[0]), decimal.NewFromInt(dims[1]), true
}

// ParseSheetSize converts raw input into a SheetSize. Matching is case-insensitive.
func ParseSheetSize(value string) (SheetSize, error) {
	normalized := SheetSize(strings.ToUpper(strings.TrimSpace(value)))
	if normalized.IsValid() {
		return normalized, nil
	}
	return "", fmt.Errorf("invalid sheet size %q", value)
}
