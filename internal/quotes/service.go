package quotes

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/printhub/printhub-backend/internal/catalog"
	"github.com/printhub/printhub-backend/internal/pricing"
	pkgerrors "github.com/printhub/printhub-backend/pkg/errors"
	"github.com/printhub/printhub-backend/pkg/logger"
	"github.com/printhub/printhub-backend/pkg/metrics"
)

// Service prices jobs against freshly loaded catalog snapshots.
type Service interface {
	QuoteForShop(ctx context.Context, shopSlug string, job pricing.JobSpec) (pricing.Breakdown, error)
	QuoteForTemplate(ctx context.Context, templateSlug string, job pricing.JobSpec) (pricing.Breakdown, error)
	QuoteForShopTemplate(ctx context.Context, shopSlug, templateSlug string, job pricing.JobSpec) (pricing.Breakdown, error)
	RateCard(ctx context.Context, shopSlug string) (pricing.RateCard, error)
}

type calculator interface {
	Calculate(ctx context.Context, cc pricing.CatalogContext, job pricing.JobSpec) (pricing.Breakdown, error)
}

type service struct {
	catalog catalog.Service
	engine  calculator
	metrics *metrics.QuoteMetrics
	logg    *logger.Logger
	now     func() time.Time
}

// NewService wires the quote service. metrics may be nil.
func NewService(catalogSvc catalog.Service, engine calculator, quoteMetrics *metrics.QuoteMetrics, logg *logger.Logger) (Service, error) {
	if catalogSvc == nil {
		return nil, fmt.Errorf("catalog service required")
	}
	if engine == nil {
		return nil, fmt.Errorf("pricing engine required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		catalog: catalogSvc,
		engine:  engine,
		metrics: quoteMetrics,
		logg:    logg,
		now:     time.Now,
	}, nil
}

func (s *service) QuoteForShop(ctx context.Context, shopSlug string, job pricing.JobSpec) (pricing.Breakdown, error) {
	ctx = s.logg.WithShopSlug(ctx, shopSlug)
	return s.quote(ctx, pricing.ContextShop, job, func(ctx context.Context) (pricing.CatalogContext, error) {
		card, err := s.catalog.LoadRateCard(ctx, shopSlug)
		if err != nil {
			return nil, err
		}
		return pricing.ShopContext{RateCard: card}, nil
	})
}

func (s *service) QuoteForTemplate(ctx context.Context, templateSlug string, job pricing.JobSpec) (pricing.Breakdown, error) {
	ctx = s.logg.WithTemplateSlug(ctx, templateSlug)
	return s.quote(ctx, pricing.ContextTemplate, job, func(ctx context.Context) (pricing.CatalogContext, error) {
		tc, err := s.catalog.LoadTemplate(ctx, templateSlug)
		if err != nil {
			return nil, err
		}
		return tc, nil
	})
}

func (s *service) QuoteForShopTemplate(ctx context.Context, shopSlug, templateSlug string, job pricing.JobSpec) (pricing.Breakdown, error) {
	ctx = s.logg.WithShopSlug(ctx, shopSlug)
	ctx = s.logg.WithTemplateSlug(ctx, templateSlug)
	return s.quote(ctx, pricing.ContextTemplate, job, func(ctx context.Context) (pricing.CatalogContext, error) {
		tc, err := s.catalog.LoadShopTemplate(ctx, shopSlug, templateSlug)
		if err != nil {
			return nil, err
		}
		return tc, nil
	})
}

func (s *service) RateCard(ctx context.Context, shopSlug string) (pricing.RateCard, error) {
	ctx = s.logg.WithShopSlug(ctx, shopSlug)
	card, err := s.catalog.LoadRateCard(ctx, shopSlug)
	if err != nil {
		return pricing.RateCard{}, err
	}
	return card, nil
}

func (s *service) quote(ctx context.Context, kind pricing.ContextKind, job pricing.JobSpec, load func(context.Context) (pricing.CatalogContext, error)) (pricing.Breakdown, error) {
	started := s.now()
	label := string(kind)
	defer func() {
		s.metrics.ObserveDuration(label, s.now().Sub(started))
	}()

	cc, err := load(ctx)
	if err != nil {
		s.metrics.IncOutcome(label, outcomeFor(err))
		return pricing.Breakdown{}, err
	}

	result, err := s.engine.Calculate(ctx, cc, job)
	if err != nil {
		s.metrics.IncOutcome(label, outcomeFor(err))
		return pricing.Breakdown{}, err
	}

	for _, a := range result.Anomalies {
		s.metrics.IncAnomaly(string(a.Kind))
	}
	s.metrics.IncOutcome(label, metrics.OutcomeSuccess)

	logCtx := s.logg.WithFields(ctx, map[string]any{
		"quantity":    job.Quantity,
		"mode":        string(result.Mode),
		"grand_total": result.GrandTotal.StringFixed(2),
		"anomalies":   len(result.Anomalies),
	})
	s.logg.Info(logCtx, "quote calculated")
	return result, nil
}

// outcomeFor splits caller mistakes from server-side failures.
func outcomeFor(err error) string {
	typed := pkgerrors.As(err)
	if typed == nil {
		return metrics.OutcomeFailed
	}
	if pkgerrors.MetadataFor(typed.Code()).HTTPStatus < http.StatusInternalServerError {
		return metrics.OutcomeRejected
	}
	return metrics.OutcomeFailed
}
