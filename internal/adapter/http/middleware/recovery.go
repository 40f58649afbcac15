package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iho/goloan/internal/domain"
)

var httpPanicsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "http_panics_recovered_total",
	Help: "Handler panics turned into 500 responses",
})

type panicResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// Recovery turns a handler panic into a 500 and logs it with the stack, the
// request id and the caller. http.ErrAbortHandler is re-raised.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			httpPanicsTotal.Inc()

			logger := zerolog.Ctx(r.Context())
			if logger.GetLevel() == zerolog.Disabled {
				logger = &log.Logger
			}

			reqID := chimiddleware.GetReqID(r.Context())
			event := logger.Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Str("request_id", reqID).
				Str("method", r.Method).
				Str("path", r.URL.Path)
			if user, ok := domain.UserFromContext(r.Context()); ok {
				event = event.Str("user_id", user.ID)
			}
			event.Msg("panic recovered")

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(panicResponse{Error: "internal server error", RequestID: reqID})
		}()

		next.ServeHTTP(w, r)
	})
}
