package quotes

import (
	"github.com/printhub/printhub-backend/api/controllers/quotes/dto"
	"github.com/printhub/printhub-backend/internal/pricing"
	"github.com/printhub/printhub-backend/pkg/enums"
	pkgerrors "github.com/printhub/printhub-backend/pkg/errors"
)

func toJobSpec(payload dto.QuoteRequest) (pricing.JobSpec, error) {
	job := pricing.JobSpec{
		Quantity:      payload.Quantity,
		GSM:           payload.GSM,
		MachineID:     payload.MachineID,
		PieceWidthMM:  payload.PieceWidthMM,
		PieceHeightMM: payload.PieceHeightMM,
		AreaSqm:       payload.AreaSqm,
		WidthM:        payload.WidthM,
		HeightM:       payload.HeightM,
		FinishingIDs:  payload.FinishingIDs,
		OptionIDs:     payload.OptionIDs,
	}

	var err error
	if job.SheetSize, err = parseOptional(payload.SheetSize, "sheet_size", enums.ParseSheetSize); err != nil {
		return pricing.JobSpec{}, err
	}
	if job.PaperType, err = parseOptional(payload.PaperType, "paper_type", enums.ParsePaperType); err != nil {
		return pricing.JobSpec{}, err
	}
	if job.ColorMode, err = parseOptional(payload.ColorMode, "color_mode", enums.ParseColorMode); err != nil {
		return pricing.JobSpec{}, err
	}
	if job.Sides, err = parseOptional(payload.Sides, "sides", enums.ParsePrintSides); err != nil {
		return pricing.JobSpec{}, err
	}
	if job.MaterialType, err = parseOptional(payload.MaterialType, "material_type", enums.ParseMaterialType); err != nil {
		return pricing.JobSpec{}, err
	}
	if job.Unit, err = parseOptional(payload.Unit, "unit", enums.ParseMaterialUnit); err != nil {
		return pricing.JobSpec{}, err
	}
	return job, nil
}

func parseOptional[T any](raw *string, field string, parse func(string) (T, error)) (*T, error) {
	if raw == nil {
		return nil, nil
	}
	value, err := parse(*raw)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid "+field).
			WithDetails(map[string]any{"field": field, "value": *raw})
	}
	return &value, nil
}
