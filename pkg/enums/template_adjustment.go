package enums

import (
	"fmt"
	"strings"
)

// AdjustmentDimension names the job attribute a template price adjustment keys on.
type AdjustmentDimension string

const (
	AdjustmentDimensionSheetSize  AdjustmentDimension = "sheet_size"
	AdjustmentDimensionGSM        AdjustmentDimension = "gsm"
	AdjustmentDimensionPaperType  AdjustmentDimension = "paper_type"
	AdjustmentDimensionPrintSides AdjustmentDimension = "print_sides"
)

// IsValid reports whether the value is a known AdjustmentDimension.
func (d AdjustmentDimension) IsValid() bool {
	switch d {
	case AdjustmentDimensionSheetSize, AdjustmentDimensionGSM, AdjustmentDimensionPaperType, AdjustmentDimensionPrintSides:
		return true
	}
	return false
}

// ParseAdjustmentDimension converts raw input into an AdjustmentDimension.
func ParseAdjustmentDimension(value string) (AdjustmentDimension, error) {
	normalized := AdjustmentDimension(strings.ToLower(strings.TrimSpace(value)))
	if normalized.IsValid() {
		return normalized, nil
	}
	return "", fmt.Errorf("invalid adjustment dimension %q", value)
}

// AdjustmentMode controls how an adjustment amount is combined with a price component.
type AdjustmentMode string

const (
	// AdjustmentModeAdd adds the amount once per billed unit.
	AdjustmentModeAdd AdjustmentMode = "ADD"
	// AdjustmentModeMultiply scales the component by the amount.
	AdjustmentModeMultiply AdjustmentMode = "MULTIPLY"
)

// IsValid reports whether the value is a known AdjustmentMode.
func (m AdjustmentMode) IsValid() bool {
	return m == AdjustmentModeAdd || m == AdjustmentModeMultiply
}

// ParseAdjustmentMode converts raw input into an AdjustmentMode.
func ParseAdjustmentMode(value string) (AdjustmentMode, error) {
	normalized := AdjustmentMode(strings.ToUpper(strings.TrimSpace(value)))
	if normalized.IsValid() {
		return normalized, nil
	}
	return "", fmt.Errorf("invalid adjustment mode %q", value)
}
