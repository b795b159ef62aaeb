package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/gymsplit/internal/telemetry/metrics"

	"github.com/gorilla/mux"
)

func RequestMetrics(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			metricsManager.GaugeRequests.Inc()
			resp := &responseWriter{respWriter, http.StatusOK}

			defer func(begin time.Time) {
				metricsManager.GaugeRequests.Dec()
				status := strconv.Itoa(resp.statusCode)
				metricsManager.CounterRequests.WithLabelValues(req.Method, status).Inc()
				metricsManager.HistogramRequestDuration.
					WithLabelValues(routeTemplate(req), req.Method, status).
					Observe(time.Since(begin).Seconds())
			}(time.Now())

			// handler call
			next.ServeHTTP(resp, req)
		})
	}
}

// routeTemplate keeps label cardinality bounded: /progress/{exercise}
// instead of one series per exercise.
func routeTemplate(req *http.Request) string {
	if route := mux.CurrentRoute(req); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (r *responseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.statusCode = statusCode
}
