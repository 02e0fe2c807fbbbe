package controllers

import (
	"context"
	"net/http"

	"github.com/florawhisper/storefront-gateway/api/responses"
	"github.com/florawhisper/storefront-gateway/pkg/config"
	pkgerrors "github.com/florawhisper/storefront-gateway/pkg/errors"
	"github.com/florawhisper/storefront-gateway/pkg/logger"
)

const envHeader = "X-Flora-Env"

// Pinger is the connectivity check surfaced by readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady verifies the session store and upstream are reachable.
func HealthReady(cfg *config.Config, sessions Pinger, upstream Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		if sessions != nil {
			if err := sessions.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "session store unreachable"))
				return
			}
		}
		if upstream != nil {
			if err := upstream.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "store API unreachable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
