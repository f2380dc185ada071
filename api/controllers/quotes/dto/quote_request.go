package dto

import "github.com/shopspring/decimal"

// QuoteRequest is the job description accepted by every calculation endpoint.
// Digital jobs send the sheet fields, large-format jobs send the material fields.
// Omitting finishing_ids applies the catalog's default finishings; an empty list
// opts out of them.
type QuoteRequest struct {
	Quantity int `json:"quantity"`

	SheetSize *string `json:"sheet_size,omitempty"`
	GSM       *int    `json:"gsm,omitempty" validate:"omitempty,min=1"`
	PaperType *string `json:"paper_type,omitempty"`
	ColorMode *string `json:"color_mode,omitempty"`
	Sides     *string `json:"sides,omitempty"`
	MachineID *int64  `json:"machine_id,omitempty" validate:"omitempty,min=1"`

	PieceWidthMM  *decimal.Decimal `json:"piece_width_mm,omitempty" validate:"omitempty,gt=0"`
	PieceHeightMM *decimal.Decimal `json:"piece_height_mm,omitempty" validate:"omitempty,gt=0"`

	MaterialType *string          `json:"material_type,omitempty"`
	Unit         *string          `json:"unit,omitempty"`
	AreaSqm      *decimal.Decimal `json:"area_sqm,omitempty" validate:"omitempty,gt=0"`
	WidthM       *decimal.Decimal `json:"width_m,omitempty" validate:"omitempty,gt=0"`
	HeightM      *decimal.Decimal `json:"height_m,omitempty" validate:"omitempty,gt=0"`

	FinishingIDs []int64 `json:"finishing_ids,omitempty" validate:"omitempty,max=50,dive,min=1"`
	OptionIDs    []int64 `json:"option_ids,omitempty" validate:"omitempty,max=50,dive,min=1"`
}
