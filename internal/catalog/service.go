package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/printhub/printhub-backend/internal/pricing"
	"github.com/printhub/printhub-backend/pkg/db/models"
	pkgerrors "github.com/printhub/printhub-backend/pkg/errors"
	"github.com/printhub/printhub-backend/pkg/logger"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Service loads validated catalog snapshots for the pricing engine. Every call reads
// storage afresh; nothing is cached between requests.
type Service interface {
	LoadRateCard(ctx context.Context, shopSlug string) (pricing.RateCard, error)
	LoadTemplate(ctx context.Context, templateSlug string) (pricing.TemplateContext, error)
	LoadShopTemplate(ctx context.Context, shopSlug, templateSlug string) (pricing.TemplateContext, error)
}

type catalogReader interface {
	FindShopBySlug(ctx context.Context, slug string) (*models.Shop, error)
	ListPrintingPrices(ctx context.Context, shopID int64) ([]models.PrintingPrice, error)
	ListPaperPrices(ctx context.Context, shopID int64) ([]models.PaperPrice, error)
	ListMaterialPrices(ctx context.Context, shopID int64) ([]models.MaterialPrice, error)
	ListFinishingServices(ctx context.Context, shopID int64) ([]models.FinishingService, error)
	ListVolumeDiscounts(ctx context.Context, shopID int64) ([]models.VolumeDiscount, error)
	ListPaperCapabilities(ctx context.Context, shopID int64) ([]models.ShopPaperCapability, error)
	FindTemplateBySlug(ctx context.Context, slug string) (*models.PrintTemplate, error)
}

type service struct {
	repo            catalogReader
	logg            *logger.Logger
	defaultCurrency string
}

// NewService constructs a catalog service.
func NewService(repo catalogReader, logg *logger.Logger, defaultCurrency string) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{repo: repo, logg: logg, defaultCurrency: defaultCurrency}, nil
}

func (s *service) LoadRateCard(ctx context.Context, shopSlug string) (pricing.RateCard, error) {
	shop, err := s.findShop(ctx, shopSlug)
	if err != nil {
		return pricing.RateCard{}, err
	}

	rows := RateCardRows{Shop: *shop}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		rows.Printing, err = s.repo.ListPrintingPrices(gctx, shop.ID)
		return wrapList("printing prices", err)
	})
	g.Go(func() (err error) {
		rows.Papers, err = s.repo.ListPaperPrices(gctx, shop.ID)
		return wrapList("paper prices", err)
	})
	g.Go(func() (err error) {
		rows.Materials, err = s.repo.ListMaterialPrices(gctx, shop.ID)
		return wrapList("material prices", err)
	})
	g.Go(func() (err error) {
		rows.Finishings, err = s.repo.ListFinishingServices(gctx, shop.ID)
		return wrapList("finishing services", err)
	})
	g.Go(func() (err error) {
		rows.Discounts, err = s.repo.ListVolumeDiscounts(gctx, shop.ID)
		return wrapList("volume discounts", err)
	})
	g.Go(func() (err error) {
		rows.Capabilities, err = s.repo.ListPaperCapabilities(gctx, shop.ID)
		return wrapList("paper capabilities", err)
	})
	if err := g.Wait(); err != nil {
		return pricing.RateCard{}, err
	}

	card := MapRateCard(rows)
	if card.Currency == "" {
		card.Currency = s.defaultCurrency
	}
	if len(card.Anomalies) > 0 {
		logCtx := s.logg.WithFields(ctx, map[string]any{
			"shop_slug": shopSlug,
			"anomalies": card.Anomalies,
		})
		s.logg.Warn(logCtx, "rate card contains rows that could not be validated")
	}
	return card, nil
}

func (s *service) LoadTemplate(ctx context.Context, templateSlug string) (pricing.TemplateContext, error) {
	tpl, err := s.findTemplate(ctx, templateSlug)
	if err != nil {
		return pricing.TemplateContext{}, err
	}
	return pricing.TemplateContext{Template: tpl, Currency: s.defaultCurrency}, nil
}

func (s *service) LoadShopTemplate(ctx context.Context, shopSlug, templateSlug string) (pricing.TemplateContext, error) {
	shop, err := s.findShop(ctx, shopSlug)
	if err != nil {
		return pricing.TemplateContext{}, err
	}
	tpl, err := s.findTemplate(ctx, templateSlug)
	if err != nil {
		return pricing.TemplateContext{}, err
	}
	if tpl.ShopID != nil && *tpl.ShopID != shop.ID {
		return pricing.TemplateContext{}, pkgerrors.New(pkgerrors.CodeNotFound, "template not found for shop")
	}

	caps, err := s.repo.ListPaperCapabilities(ctx, shop.ID)
	if err != nil {
		return pricing.TemplateContext{}, wrapList("paper capabilities", err)
	}

	currency := shop.Currency
	if currency == "" {
		currency = s.defaultCurrency
	}
	return pricing.TemplateContext{
		Template:     tpl,
		Capabilities: MapCapabilities(caps),
		ShopSlug:     shop.Slug,
		Currency:     currency,
	}, nil
}

func (s *service) findShop(ctx context.Context, slug string) (*models.Shop, error) {
	shop, err := s.repo.FindShopBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "shop not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load shop")
	}
	return shop, nil
}

func (s *service) findTemplate(ctx context.Context, slug string) (pricing.Template, error) {
	row, err := s.repo.FindTemplateBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pricing.Template{}, pkgerrors.New(pkgerrors.CodeNotFound, "template not found")
		}
		return pricing.Template{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load template")
	}

	tpl, anomalies, err := MapTemplate(*row)
	if err != nil {
		return pricing.Template{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "template pricing configuration is invalid")
	}
	if len(anomalies) > 0 {
		logCtx := s.logg.WithFields(ctx, map[string]any{
			"template_slug": slug,
			"anomalies":     anomalies,
		})
		s.logg.Warn(logCtx, "template contains rows that could not be validated")
	}
	tpl.Anomalies = anomalies
	return tpl, nil
}

func wrapList(what string, err error) error {
	if err == nil {
		return nil
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list "+what)
}
