package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/printhub/printhub-backend/api/controllers"
	quotecontrollers "github.com/printhub/printhub-backend/api/controllers/quotes"
	"github.com/printhub/printhub-backend/api/middleware"
	quotesvc "github.com/printhub/printhub-backend/internal/quotes"
	"github.com/printhub/printhub-backend/pkg/config"
	"github.com/printhub/printhub-backend/pkg/db"
	"github.com/printhub/printhub-backend/pkg/logger"
	"github.com/printhub/printhub-backend/pkg/redis"
)

// NewRouter wires the HTTP surface. redisClient may be nil, in which case
// quote endpoints are not rate limited and readiness skips the Redis check.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	quoteService quotesvc.Service,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	// A typed nil inside an interface is non-nil, so only assign a live client.
	var (
		limiter     middleware.RateLimiter
		redisPinger redis.Pinger
	)
	if redisClient != nil {
		limiter = redisClient
		redisPinger = redisClient
	}

	quotePolicy := middleware.NewRateLimitPolicy(
		"quotes",
		cfg.RateLimit.QuoteWindow,
		cfg.RateLimit.QuoteIPLimit,
	)
	places := cfg.Pricing.DisplayPlaces

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisPinger))
	})

	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(quotePolicy, limiter, logg))

		r.Route("/shops/{shopSlug}", func(r chi.Router) {
			r.Post("/quotes/calculate", quotecontrollers.ShopQuoteCalculate(quoteService, places, logg))
			r.Get("/pricing/rate-card", quotecontrollers.ShopRateCard(quoteService, places, logg))
			r.Post("/templates/{templateSlug}/calculate-price", quotecontrollers.ShopTemplateQuoteCalculate(quoteService, places, logg))
		})
		r.Post("/templates/{templateSlug}/calculate-price", quotecontrollers.TemplateQuoteCalculate(quoteService, places, logg))
	})

	return r
}
