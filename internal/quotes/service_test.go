package quotes

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/printhub/printhub-backend/internal/pricing"
	"github.com/printhub/printhub-backend/pkg/enums"
	pkgerrors "github.com/printhub/printhub-backend/pkg/errors"
	"github.com/printhub/printhub-backend/pkg/logger"
	"github.com/printhub/printhub-backend/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	card        pricing.RateCard
	template    pricing.TemplateContext
	err         error
	loadedShops []string
}

func (s *stubCatalog) LoadRateCard(ctx context.Context, shopSlug string) (pricing.RateCard, error) {
	s.loadedShops = append(s.loadedShops, shopSlug)
	if s.err != nil {
		return pricing.RateCard{}, s.err
	}
	return s.card, nil
}

func (s *stubCatalog) LoadTemplate(ctx context.Context, templateSlug string) (pricing.TemplateContext, error) {
	if s.err != nil {
		return pricing.TemplateContext{}, s.err
	}
	return s.template, nil
}

func (s *stubCatalog) LoadShopTemplate(ctx context.Context, shopSlug, templateSlug string) (pricing.TemplateContext, error) {
	s.loadedShops = append(s.loadedShops, shopSlug)
	if s.err != nil {
		return pricing.TemplateContext{}, s.err
	}
	tc := s.template
	tc.ShopSlug = shopSlug
	return tc, nil
}

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func ptr[T any](v T) *T { return &v }

func testCard() pricing.RateCard {
	return pricing.RateCard{
		ShopID:   1,
		ShopSlug: "lagos-print",
		Currency: "NGN",
		Printing: []pricing.PrintingPrice{
			{ID: 1, SheetSize: enums.SheetSizeA4, ColorMode: enums.ColorModeColor, PerSide: dec("1.00")},
		},
		Papers: []pricing.PaperPrice{
			{ID: 2, SheetSize: enums.SheetSizeA4, GSM: 300, PaperType: enums.PaperTypeGloss, SellingPrice: dec("0.50")},
			{ID: 3, SheetSize: enums.SheetSizeA4, GSM: 300, PaperType: enums.PaperTypeGloss, SellingPrice: dec("0.70")},
		},
	}
}

func testTemplate() pricing.TemplateContext {
	return pricing.TemplateContext{
		Template: pricing.Template{
			ID:               9,
			Slug:             "flyers",
			Title:            "Flyers",
			BasePrice:        dec("0.20"),
			MinQuantity:      1,
			DefaultSheetSize: enums.SheetSizeA4,
			DefaultGSM:       150,
			DefaultPaperType: enums.PaperTypeGloss,
			DefaultSides:     enums.PrintSidesSimplex,
		},
		Currency: "KES",
	}
}

func newTestService(t *testing.T, cat *stubCatalog) (Service, *prometheus.Registry, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	logg := logger.New(logger.Options{ServiceName: "test", Output: buf})
	reg := prometheus.NewRegistry()
	svc, err := NewService(cat, pricing.NewEngine(logg), metrics.NewQuoteMetrics(reg), logg)
	require.NoError(t, err)
	return svc, reg, buf
}

func TestNewServiceRequiresDependencies(t *testing.T) {
	logg := logger.New(logger.Options{ServiceName: "test", Output: &bytes.Buffer{}})
	_, err := NewService(nil, pricing.NewEngine(nil), nil, logg)
	require.Error(t, err)
	_, err = NewService(&stubCatalog{}, nil, nil, logg)
	require.Error(t, err)
	_, err = NewService(&stubCatalog{}, pricing.NewEngine(nil), nil, nil)
	require.Error(t, err)
}

func TestQuoteForShopRecordsSuccessAndAnomalies(t *testing.T) {
	cat := &stubCatalog{card: testCard()}
	svc, _, buf := newTestService(t, cat)

	b, err := svc.QuoteForShop(context.Background(), "lagos-print", pricing.JobSpec{
		Quantity:  10,
		SheetSize: ptr(enums.SheetSizeA4),
		GSM:       ptr(300),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"lagos-print"}, cat.loadedShops)
	assert.Equal(t, "10.00", b.PrintingCost.StringFixed(2))
	assert.Equal(t, "5.00", b.PaperCost.StringFixed(2))
	assert.Equal(t, "15.00", b.GrandTotal.StringFixed(2))
	require.Len(t, b.Anomalies, 1)
	assert.Equal(t, pricing.AnomalyDuplicateRows, b.Anomalies[0].Kind)

	assert.Contains(t, buf.String(), `"shop_slug":"lagos-print"`)
	assert.Contains(t, buf.String(), "quote calculated")
}

func TestQuoteMetricsByOutcome(t *testing.T) {
	cat := &stubCatalog{card: testCard()}
	svc, reg, _ := newTestService(t, cat)

	ctx := context.Background()
	_, err := svc.QuoteForShop(ctx, "lagos-print", pricing.JobSpec{Quantity: 10, SheetSize: ptr(enums.SheetSizeA4), GSM: ptr(300)})
	require.NoError(t, err)
	_, err = svc.QuoteForShop(ctx, "lagos-print", pricing.JobSpec{Quantity: 0})
	require.Error(t, err)

	cat.err = pkgerrors.Wrap(pkgerrors.CodeDependency, errors.New("connection refused"), "db: load shop")
	_, err = svc.QuoteForShop(ctx, "lagos-print", pricing.JobSpec{Quantity: 10})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeDependency, pkgerrors.As(err).Code())

	for _, outcome := range []string{metrics.OutcomeSuccess, metrics.OutcomeRejected, metrics.OutcomeFailed} {
		got := counterValue(t, reg, "quote_calculations_total", map[string]string{"context": "shop", "outcome": outcome})
		assert.Equal(t, 1.0, got, outcome)
	}
	assert.Equal(t, 1.0, counterValue(t, reg, "quote_catalog_anomalies_total", map[string]string{"kind": string(pricing.AnomalyDuplicateRows)}))
}

func TestQuoteForTemplateMarksEstimate(t *testing.T) {
	cat := &stubCatalog{template: testTemplate()}
	svc, _, _ := newTestService(t, cat)

	b, err := svc.QuoteForTemplate(context.Background(), "flyers", pricing.JobSpec{Quantity: 100})
	require.NoError(t, err)

	assert.Equal(t, pricing.ContextTemplate, b.Context)
	assert.True(t, b.Estimate)
	assert.Equal(t, "KES", b.Currency)
	assert.Equal(t, "20.00", b.GrandTotal.StringFixed(2))
	assert.Contains(t, b.Notes, pricing.EstimateDisclaimer)
}

func TestQuoteForShopTemplateCarriesShop(t *testing.T) {
	cat := &stubCatalog{template: testTemplate()}
	svc, _, buf := newTestService(t, cat)

	b, err := svc.QuoteForShopTemplate(context.Background(), "nairobi-press", "flyers", pricing.JobSpec{Quantity: 10})
	require.NoError(t, err)

	assert.Equal(t, "nairobi-press", b.ShopSlug)
	assert.Equal(t, []string{"nairobi-press"}, cat.loadedShops)
	assert.Contains(t, buf.String(), `"template_slug":"flyers"`)
}

func TestRateCardPassesThroughErrors(t *testing.T) {
	cat := &stubCatalog{err: pkgerrors.New(pkgerrors.CodeNotFound, "shop not found")}
	svc, _, _ := newTestService(t, cat)

	_, err := svc.RateCard(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestOutcomeFor(t *testing.T) {
	t.Parallel()
	cases := map[string]struct {
		err  error
		want string
	}{
		"untyped":    {err: errors.New("boom"), want: metrics.OutcomeFailed},
		"validation": {err: pkgerrors.New(pkgerrors.CodeValidation, "bad"), want: metrics.OutcomeRejected},
		"no price":   {err: pkgerrors.New(pkgerrors.CodeNoPrice, "none"), want: metrics.OutcomeRejected},
		"internal":   {err: pkgerrors.New(pkgerrors.CodeInternal, "bad"), want: metrics.OutcomeFailed},
	}
	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := outcomeFor(tc.err); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if labelsMatch(m.GetLabel(), labels) {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func labelsMatch(pairs []*dto.LabelPair, want map[string]string) bool {
	if len(pairs) != len(want) {
		return false
	}
	for _, pair := range pairs {
		if want[pair.GetName()] != pair.GetValue() {
			return false
		}
	}
	return true
}
