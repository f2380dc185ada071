package pricing

import (
	"fmt"

	pkgerrors "github.com/printhub/printhub-backend/pkg/errors"
)

// Catalog dimensions reported when a rate cannot be resolved.
const (
	DimensionPrinting  = "printing"
	DimensionPaper     = "paper"
	DimensionMaterial  = "material"
	DimensionFinishing = "finishing"
	DimensionOption    = "option"
)

func invalidQuantity(quantity int) *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeInvalidQty, fmt.Sprintf("quantity must be positive, got %d", quantity)).
		WithDetails(map[string]any{"field": "quantity"})
}

func missingField(field, message string) *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeValidation, message).
		WithDetails(map[string]any{"field": field})
}

func noPrice(dimension, criteria string) *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeNoPrice, fmt.Sprintf("no %s price for %s", dimension, criteria)).
		WithDetails(map[string]any{"dimension": dimension, "criteria": criteria})
}

func pieceDoesNotFit(stock string, width, height string) *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodePieceNoFit, fmt.Sprintf("piece %sx%smm does not fit on %s in either orientation", width, height, stock)).
		WithDetails(map[string]any{"field": "piece_width_mm", "stock": stock})
}

func unknownChargeBasis(finishingID int64, basis string) *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeUnknownBasis, fmt.Sprintf("finishing %d has unsupported charge basis %q", finishingID, basis)).
		WithDetails(map[string]any{"field": "charge_basis", "finishing_id": finishingID, "charge_basis": basis})
}
