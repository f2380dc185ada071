package pricing

import (
	"context"

	pkgerrors "github.com/printhub/printhub-backend/pkg/errors"
	"github.com/printhub/printhub-backend/pkg/logger"
)

// CatalogContext is either a ShopContext or a TemplateContext.
type CatalogContext interface {
	Kind() ContextKind
	isCatalogContext()
}

// ShopContext prices against a shop's live rate card.
type ShopContext struct {
	RateCard RateCard
}

func (ShopContext) Kind() ContextKind { return ContextShop }

func (ShopContext) isCatalogContext() {}

// TemplateContext prices against a template. Capabilities and ShopSlug are set when
// the template is quoted through a shop.
type TemplateContext struct {
	Template     Template
	Capabilities []PaperCapability
	ShopSlug     string
	Currency     string
}

func (TemplateContext) Kind() ContextKind { return ContextTemplate }

func (TemplateContext) isCatalogContext() {}

// Engine dispatches a job to the calculator matching its catalog context.
type Engine struct {
	shop     *ShopCalculator
	template *TemplateCalculator
}

// NewEngine wires both calculators. logg may be nil.
func NewEngine(logg *logger.Logger) *Engine {
	return &Engine{
		shop:     NewShopCalculator(logg),
		template: NewTemplateCalculator(logg),
	}
}

// Calculate prices job in the given catalog context.
func (e *Engine) Calculate(ctx context.Context, cc CatalogContext, job JobSpec) (Breakdown, error) {
	switch c := cc.(type) {
	case ShopContext:
		return e.shop.Calculate(ctx, c.RateCard, job)
	case *ShopContext:
		if c == nil {
			break
		}
		return e.shop.Calculate(ctx, c.RateCard, job)
	case TemplateContext:
		return e.quoteTemplate(ctx, c, job)
	case *TemplateContext:
		if c == nil {
			break
		}
		return e.quoteTemplate(ctx, *c, job)
	}
	return Breakdown{}, pkgerrors.New(pkgerrors.CodeValidation, "a shop or template catalog is required")
}

func (e *Engine) quoteTemplate(ctx context.Context, c TemplateContext, job JobSpec) (Breakdown, error) {
	b, err := e.template.Calculate(ctx, c.Template, c.Capabilities, job)
	if err != nil {
		return Breakdown{}, err
	}
	b.ShopSlug = c.ShopSlug
	b.Currency = c.Currency
	return b, nil
}
