package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/2beens/liftplan/internal/telemetry/metrics"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// PanicRecovery turns a handler panic into a 500. The panic is logged with
// its stack, reported to sentry and recorded on the request span.
// http.ErrAbortHandler is re-raised so net/http can abort the response.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if err, ok := r.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(r)
				}

				route := routeName(req)
				log.WithFields(log.Fields{
					"route":  route,
					"method": req.Method,
				}).Errorf("http: panic serving %s: %v\n%s", req.URL.Path, r, debug.Stack())

				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				if hub := sentry.GetHubFromContext(req.Context()); hub != nil {
					hub.Recover(r)
				} else {
					sentry.CurrentHub().Recover(r)
				}

				span := trace.SpanFromContext(req.Context())
				span.RecordError(fmt.Errorf("panic in %s: %v", route, r))
				span.SetStatus(codes.Error, "panic")

				http.Error(respWriter, "internal server error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(respWriter, req)
		})
	}
}
