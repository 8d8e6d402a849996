package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/emoorm/storefront/api/responses"
	"github.com/emoorm/storefront/internal/catalog"
	"github.com/emoorm/storefront/pkg/config"
	"github.com/emoorm/storefront/pkg/logger"
)

const readinessTimeout = 2 * time.Second

// Pinger is any dependency that can report liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Emoorm-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady checks each dependency with a short deadline and reports them
// individually. Any failure flips the response to 503.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP, redisP Pinger, cache *catalog.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Emoorm-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		checks := map[string]string{}
		ready := true

		for name, p := range map[string]Pinger{"database": dbP, "redis": redisP} {
			if p == nil {
				checks[name] = "not configured"
				ready = false
				continue
			}
			if err := p.Ping(ctx); err != nil {
				if logg != nil {
					logg.Warn(logg.WithField(ctx, "dependency", name), "readiness check failed")
				}
				checks[name] = "unreachable"
				ready = false
				continue
			}
			checks[name] = "ok"
		}

		if cache != nil {
			switch cache.State() {
			case catalog.StateReady:
				checks["catalog"] = "ready"
			case catalog.StateLoading:
				checks["catalog"] = "loading"
			default:
				checks["catalog"] = "empty"
			}
		}

		payload := map[string]any{"status": "ready", "checks": checks}
		if !ready {
			payload["status"] = "degraded"
			responses.WriteSuccessStatus(w, http.StatusServiceUnavailable, payload)
			return
		}
		responses.WriteSuccess(w, payload)
	}
}
