package pricing

import "github.com/shopspring/decimal"

// Imposition returns how many pieces of the given size fit on one sheet, trying the
// piece as given and rotated by 90 degrees. Zero means the piece does not fit at all.
func Imposition(pieceWidth, pieceHeight, sheetWidth, sheetHeight decimal.Decimal) int {
	if !pieceWidth.IsPositive() || !pieceHeight.IsPositive() || !sheetWidth.IsPositive() || !sheetHeight.IsPositive() {
		return 0
	}
	upright := fitAlong(sheetWidth, pieceWidth) * fitAlong(sheetHeight, pieceHeight)
	rotated := fitAlong(sheetWidth, pieceHeight) * fitAlong(sheetHeight, pieceWidth)
	if rotated > upright {
		return rotated
	}
	return upright
}

func fitAlong(sheet, piece decimal.Decimal) int {
	return int(sheet.Div(piece).Floor().IntPart())
}

// SheetsRequired is the number of physical sheets needed to produce quantity pieces
// at perSheet pieces per sheet.
func SheetsRequired(quantity, perSheet int) int {
	if perSheet <= 0 {
		return quantity
	}
	return (quantity + perSheet - 1) / perSheet
}
