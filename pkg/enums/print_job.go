package enums

import (
	"fmt"
	"strings"
)

// ColorMode describes the ink configuration a printing rate applies to.
type ColorMode string

const (
	ColorModeBW    ColorMode = "BW"
	ColorModeColor ColorMode = "COLOR"
)

var validColorModes = []ColorMode{ColorModeBW, ColorModeColor}

// String implements fmt.Stringer.
func (c ColorMode) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ColorMode.
func (c ColorMode) IsValid() bool {
	for _, candidate := range validColorModes {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseColorMode converts raw input into a ColorMode.
func ParseColorMode(value string) (ColorMode, error) {
	normalized := ColorMode(strings.ToUpper(strings.TrimSpace(value)))
	if normalized.IsValid() {
		return normalized, nil
	}
	return "", fmt.Errorf("invalid color mode %q", value)
}

// PrintSides distinguishes single-sided from double-sided jobs.
type PrintSides string

const (
	PrintSidesSimplex PrintSides = "SIMPLEX"
	PrintSidesDuplex  PrintSides = "DUPLEX"
)

// String implements fmt.Stringer.
func (p PrintSides) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PrintSides.
func (p PrintSides) IsValid() bool {
	return p == PrintSidesSimplex || p == PrintSidesDuplex
}

// ParsePrintSides converts raw input into PrintSides.
func ParsePrintSides(value string) (PrintSides, error) {
	normalized := PrintSides(strings.ToUpper(strings.TrimSpace(value)))
	if normalized.IsValid() {
		return normalized, nil
	}
	return "", fmt.Errorf("invalid print sides %q", value)
}

// PaperType is the paper finish stocked by a shop.
type PaperType string

const (
	PaperTypeGloss PaperType = "GLOSS"
	PaperTypeMatte PaperType = "MATTE"
	PaperTypeBond  PaperType = "BOND"
	PaperTypeArt   PaperType = "ART"
)

var validPaperTypes = []PaperType{
	PaperTypeGloss,
	PaperTypeMatte,
	PaperTypeBond,
	PaperTypeArt,
}

// String implements fmt.Stringer.
func (p PaperType) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PaperType.
func (p PaperType) IsValid() bool {
	for _, candidate := range validPaperTypes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePaperType converts raw input into a PaperType.
func ParsePaperType(value string) (PaperType, error) {
	normalized := PaperType(strings.ToUpper(strings.TrimSpace(value)))
	if normalized.IsValid() {
		return normalized, nil
	}
	return "", fmt.Errorf("invalid paper type %q", value)
}
