package controllers

import (
	"context"
	"net/http"

	"go.uber.org/multierr"

	"github.com/zyreejago/hidroponik/api/responses"
	"github.com/zyreejago/hidroponik/pkg/config"
	pkgerrors "github.com/zyreejago/hidroponik/pkg/errors"
	"github.com/zyreejago/hidroponik/pkg/logger"
)

const envHeader = "X-Hidroponik-Env"

// Pinger is the health check surface shared by the backing clients.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady checks every backing dependency and reports which ones failed.
func HealthReady(cfg *config.Config, logg *logger.Logger, checks map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		var combined error
		failed := []string{}
		for name, check := range checks {
			if check == nil {
				continue
			}
			if err := check.Ping(r.Context()); err != nil {
				combined = multierr.Append(combined, err)
				failed = append(failed, name)
			}
		}

		if combined != nil {
			err := pkgerrors.Wrap(pkgerrors.CodeDependency, combined, "readiness check failed").
				WithDetails(map[string]any{"failed": failed})
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
