package enums

import (
	"fmt"
	"strings"
)

// MaterialType identifies a large-format substrate.
type MaterialType string

const (
	MaterialTypeBanner     MaterialType = "BANNER"
	MaterialTypeVinyl      MaterialType = "VINYL"
	MaterialTypeReflective MaterialType = "REFLECTIVE"
	MaterialTypePaper      MaterialType = "PAPER"
)

var validMaterialTypes = []MaterialType{
	MaterialTypeBanner,
	MaterialTypeVinyl,
	MaterialTypeReflective,
	MaterialTypePaper,
}

// String implements fmt.Stringer.
func (m MaterialType) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MaterialType.
func (m MaterialType) IsValid() bool {
	for _, candidate := range validMaterialTypes {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMaterialType converts raw input into a MaterialType.
func ParseMaterialType(value string) (MaterialType, error) {
	normalized := MaterialType(strings.ToUpper(strings.TrimSpace(value)))
	if normalized.IsValid() {
		return normalized, nil
	}
	return "", fmt.Errorf("invalid material type %q", value)
}

// MaterialUnit is the billing unit a material price is quoted in.
type MaterialUnit string

const (
	MaterialUnitSheetA4   MaterialUnit = "SHEET_A4"
	MaterialUnitSheetA3   MaterialUnit = "SHEET_A3"
	MaterialUnitSheetSRA3 MaterialUnit = "SHEET_SRA3"
	MaterialUnitSQM       MaterialUnit = "SQM"
)

var validMaterialUnits = []MaterialUnit{
	MaterialUnitSheetA4,
	MaterialUnitSheetA3,
	MaterialUnitSheetSRA3,
	MaterialUnitSQM,
}

// String implements fmt.Stringer.
func (m MaterialUnit) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MaterialUnit.
func (m MaterialUnit) IsValid() bool {
	for _, candidate := range validMaterialUnits {
		if candidate == m {
			return true
		}
	}
	return false
}

// IsArea reports whether the unit bills by surface area.
func (m MaterialUnit) IsArea() bool {
	return m == MaterialUnitSQM
}

// ParseMaterialUnit converts raw input into a MaterialUnit.
func ParseMaterialUnit(value string) (MaterialUnit, error) {
	normalized := MaterialUnit(strings.ToUpper(strings.TrimSpace(value)))
	if normalized.IsValid() {
		return normalized, nil
	}
	return "", fmt.Errorf("invalid material unit %q", value)
}
