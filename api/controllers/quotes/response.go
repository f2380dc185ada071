package quotes

import (
	"github.com/printhub/printhub-backend/api/controllers/quotes/dto"
	"github.com/printhub/printhub-backend/internal/pricing"
	"github.com/shopspring/decimal"
)

const unitRatePlaces = 4

func newQuoteResponse(b pricing.Breakdown, places int32) dto.QuoteResponse {
	money := func(d decimal.Decimal) string { return d.StringFixed(places) }

	finishings := make([]dto.QuoteFinishingLine, 0, len(b.Finishings))
	for _, f := range b.Finishings {
		finishings = append(finishings, dto.QuoteFinishingLine{
			ID:          f.ID,
			Name:        f.Name,
			ChargeBasis: string(f.ChargeBasis),
			UnitPrice:   f.UnitPrice.String(),
			Units:       f.Units,
			Total:       money(f.Total),
			Mandatory:   f.Mandatory,
		})
	}

	options := make([]dto.QuoteOptionLine, 0, len(b.Options))
	for _, o := range b.Options {
		options = append(options, dto.QuoteOptionLine{
			ID:     o.ID,
			Group:  o.Group,
			Label:  o.Label,
			Amount: money(o.Amount),
		})
	}

	anomalies := make([]dto.QuoteAnomaly, 0, len(b.Anomalies))
	for _, a := range b.Anomalies {
		anomalies = append(anomalies, dto.QuoteAnomaly{
			Kind:      string(a.Kind),
			Dimension: a.Dimension,
			Message:   a.Message,
		})
	}

	notes := b.Notes
	if notes == nil {
		notes = []string{}
	}

	return dto.QuoteResponse{
		Context:        string(b.Context),
		Mode:           string(b.Mode),
		Currency:       b.Currency,
		ShopSlug:       b.ShopSlug,
		TemplateSlug:   b.TemplateSlug,
		Quantity:       b.Quantity,
		BilledQuantity: b.BilledQuantity,
		SheetsRequired: b.SheetsRequired,
		Imposition:     b.Imposition,
		AreaSqm:        optionalString(b.AreaSqm, func(d decimal.Decimal) string { return d.String() }),
		Costs: dto.QuoteCosts{
			Printing:  money(b.PrintingCost),
			Paper:     money(b.PaperCost),
			Material:  money(b.MaterialCost),
			Finishing: money(b.FinishingCost),
			Options:   money(b.OptionsCost),
			Subtotal:  money(b.Subtotal),
		},
		DiscountPercent: b.DiscountPercent.String(),
		DiscountAmount:  money(b.DiscountAmount),
		GrandTotal:      money(b.GrandTotal),
		PricePerSheet:   b.PricePerSheet.StringFixed(unitRatePlaces),
		PricePerUnit:    b.PricePerUnit.StringFixed(unitRatePlaces),
		CostOfGoods:     optionalString(b.CostOfGoods, money),
		Margin:          optionalString(b.Margin, money),
		Finishings:      finishings,
		Options:         options,
		Notes:           notes,
		Anomalies:       anomalies,
		Estimate:        b.Estimate,
	}
}

func newRateCardResponse(card pricing.RateCard, places int32) dto.RateCardResponse {
	money := func(d decimal.Decimal) string { return d.StringFixed(places) }

	printing := make([]dto.RateCardPrinting, 0, len(card.Printing))
	for _, p := range card.Printing {
		printing = append(printing, dto.RateCardPrinting{
			ID:                  p.ID,
			MachineID:           p.MachineID,
			MachineName:         p.MachineName,
			SheetSize:           string(p.SheetSize),
			ColorMode:           string(p.ColorMode),
			PricePerSide:        money(p.PerSide),
			DuplexPricePerSheet: optionalString(p.DuplexPerSheet, money),
		})
	}

	papers := make([]dto.RateCardPaper, 0, len(card.Papers))
	for _, p := range card.Papers {
		papers = append(papers, dto.RateCardPaper{
			ID:        p.ID,
			SheetSize: string(p.SheetSize),
			GSM:       p.GSM,
			PaperType: string(p.PaperType),
			Price:     money(p.SellingPrice),
		})
	}

	materials := make([]dto.RateCardMaterial, 0, len(card.Materials))
	for _, m := range card.Materials {
		materials = append(materials, dto.RateCardMaterial{
			ID:           m.ID,
			MaterialType: string(m.MaterialType),
			Unit:         string(m.Unit),
			Price:        money(m.SellingPrice),
		})
	}

	finishings := make([]dto.RateCardFinishing, 0, len(card.Finishings))
	for _, f := range card.Finishings {
		finishings = append(finishings, dto.RateCardFinishing{
			ID:          f.ID,
			Name:        f.Name,
			Category:    string(f.Category),
			ChargeBasis: string(f.ChargeBasis),
			Price:       money(f.Price),
			IsDefault:   f.IsDefault,
			IsMandatory: f.IsMandatory,
		})
	}

	discounts := make([]dto.RateCardDiscount, 0, len(card.Discounts))
	for _, d := range card.Discounts {
		discounts = append(discounts, dto.RateCardDiscount{
			ID:          d.ID,
			Name:        d.Name,
			MinQuantity: d.MinQuantity,
			Percent:     d.Percent.String(),
		})
	}

	capabilities := make([]dto.RateCardCapability, 0, len(card.Capabilities))
	for _, c := range card.Capabilities {
		capabilities = append(capabilities, dto.RateCardCapability{
			SheetSize: string(c.SheetSize),
			MinGSM:    c.MinGSM,
			MaxGSM:    c.MaxGSM,
		})
	}

	anomalies := card.Anomalies
	if anomalies == nil {
		anomalies = []string{}
	}

	return dto.RateCardResponse{
		ShopSlug:     card.ShopSlug,
		Currency:     card.Currency,
		Printing:     printing,
		Papers:       papers,
		Materials:    materials,
		Finishings:   finishings,
		Discounts:    discounts,
		Capabilities: capabilities,
		Summary: dto.RateCardSummary{
			Printing:     len(printing),
			Papers:       len(papers),
			Materials:    len(materials),
			Finishings:   len(finishings),
			Discounts:    len(discounts),
			Capabilities: len(capabilities),
		},
		Anomalies: anomalies,
	}
}

func optionalString(d *decimal.Decimal, format func(decimal.Decimal) string) *string {
	if d == nil {
		return nil
	}
	s := format(*d)
	return &s
}
