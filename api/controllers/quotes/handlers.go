package quotes

import (
	"net/http"

	"github.com/printhub/printhub-backend/api/controllers/quotes/dto"
	"github.com/printhub/printhub-backend/api/responses"
	"github.com/printhub/printhub-backend/api/validators"
	"github.com/printhub/printhub-backend/internal/pricing"
	quotesvc "github.com/printhub/printhub-backend/internal/quotes"
	pkgerrors "github.com/printhub/printhub-backend/pkg/errors"
	"github.com/printhub/printhub-backend/pkg/logger"
)

// ShopQuoteCalculate prices a job against a shop's live rate card.
func ShopQuoteCalculate(svc quotesvc.Service, places int32, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote service unavailable"))
			return
		}

		shopSlug, err := validators.PathSlug(r, "shopSlug")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		job, err := decodeJob(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		breakdown, err := svc.QuoteForShop(r.Context(), shopSlug, job)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newQuoteResponse(breakdown, places))
	}
}

// TemplateQuoteCalculate prices a job against a template's estimate pricing.
func TemplateQuoteCalculate(svc quotesvc.Service, places int32, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote service unavailable"))
			return
		}

		templateSlug, err := validators.PathSlug(r, "templateSlug")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		job, err := decodeJob(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		breakdown, err := svc.QuoteForTemplate(r.Context(), templateSlug, job)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newQuoteResponse(breakdown, places))
	}
}

// ShopTemplateQuoteCalculate prices a template through a shop, enforcing the shop's
// paper capabilities.
func ShopTemplateQuoteCalculate(svc quotesvc.Service, places int32, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote service unavailable"))
			return
		}

		shopSlug, err := validators.PathSlug(r, "shopSlug")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		templateSlug, err := validators.PathSlug(r, "templateSlug")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		job, err := decodeJob(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		breakdown, err := svc.QuoteForShopTemplate(r.Context(), shopSlug, templateSlug, job)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newQuoteResponse(breakdown, places))
	}
}

// ShopRateCard exposes the validated rate card of a shop.
func ShopRateCard(svc quotesvc.Service, places int32, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote service unavailable"))
			return
		}

		shopSlug, err := validators.PathSlug(r, "shopSlug")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		card, err := svc.RateCard(r.Context(), shopSlug)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newRateCardResponse(card, places))
	}
}

func decodeJob(r *http.Request) (pricing.JobSpec, error) {
	var payload dto.QuoteRequest
	if err := validators.DecodeJSONBody(r, &payload); err != nil {
		return pricing.JobSpec{}, err
	}
	return toJobSpec(payload)
}
