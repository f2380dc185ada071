package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/printhub/printhub-backend/api/responses"
	"github.com/printhub/printhub-backend/pkg/config"
	"github.com/printhub/printhub-backend/pkg/db"
	pkgerrors "github.com/printhub/printhub-backend/pkg/errors"
	"github.com/printhub/printhub-backend/pkg/logger"
	"github.com/printhub/printhub-backend/pkg/redis"
)

const readinessTimeout = 2 * time.Second

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-PrintHub-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the database and, when configured, Redis.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-PrintHub-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		checks := map[string]string{}
		failed := ""
		if dbP == nil {
			failed = "db"
			checks["db"] = "missing"
		} else if err := dbP.Ping(ctx); err != nil {
			failed = "db"
			checks["db"] = "unreachable"
		} else {
			checks["db"] = "ok"
		}
		if redisP != nil {
			if err := redisP.Ping(ctx); err != nil {
				if failed == "" {
					failed = "redis"
				}
				checks["redis"] = "unreachable"
			} else {
				checks["redis"] = "ok"
			}
		}

		if failed != "" {
			err := pkgerrors.New(pkgerrors.CodeDependency, failed+" not ready").WithDetails(checks)
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
