package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/zyreejago/hidroponik/api/responses"
	pkgerrors "github.com/zyreejago/hidroponik/pkg/errors"
	"github.com/zyreejago/hidroponik/pkg/logger"
)

const cartSessionHeader = "X-Cart-Session"

// CartSession resolves the cart session identifier on cart and checkout
// endpoints. A missing header mints a fresh session; the ID must be a UUID
// so keys stay bounded. The resolved ID is echoed back on the response so
// clients can persist it.
func CartSession(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get(cartSessionHeader))
			if raw == "" {
				raw = uuid.NewString()
			} else if _, err := uuid.Parse(raw); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cart session id"))
				return
			}

			w.Header().Set(cartSessionHeader, raw)

			ctx := WithCartSession(r.Context(), raw)
			if logg != nil {
				ctx = logg.WithCartSession(ctx, raw)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
