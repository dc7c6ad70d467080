// Package http assembles the chi router and the HTTP server for the
// public API.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nandeeshlaxetti-prog/courtdata/internal/application/resolution"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/config"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/infrastructure/monitoring/logging"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/infrastructure/monitoring/prometheus"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/interfaces/http/handlers"
)

// NewRouter builds the API route tree.
func NewRouter(cfg *config.Config, orchestrator *resolution.Orchestrator,
	metrics *prometheus.Metrics, logger logging.Logger) http.Handler {

	h := handlers.NewCaseHandler(orchestrator, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger, metrics))

	r.Get("/healthz", h.Health)
	if cfg.Metrics.Enabled {
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/cases", func(r chi.Router) {
			r.Get("/cnr/{cnr}", h.GetCaseByCNR)
			r.Get("/cnr/{cnr}/orders", h.ListOrders)
			r.Get("/cnr/{cnr}/orders/{number}/pdf", h.DownloadOrder)
			r.Post("/search", h.SearchCases)
		})
		r.Get("/causelist", h.GetCauseList)
		r.Post("/sessions/{sessionID}/resume", h.ResumeLookup)
		r.Route("/import", func(r chi.Router) {
			r.Post("/cases", h.ImportCase)
			r.Post("/cases/{cnr}/orders", h.ImportOrders)
		})
		r.Route("/providers", func(r chi.Router) {
			r.Get("/", h.ListProviders)
			r.Get("/health", h.ProbeProviders)
		})
	})

	return r
}

// requestLogger records one structured log line and the request metrics
// for every inbound call.
func requestLogger(logger logging.Logger, metrics *prometheus.Metrics) func(http.Handler) http.Handler {
	log := logger.Named("http")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			elapsed := time.Since(started)
			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = r.URL.Path
			}

			metrics.HTTPRequests.WithLabelValues(r.Method, route, statusClass(ww.Status())).Inc()
			metrics.HTTPDuration.WithLabelValues(route).Observe(elapsed.Seconds())

			log.Info("request",
				logging.String("method", r.Method),
				logging.String("route", route),
				logging.Int("status", ww.Status()),
				logging.Duration("elapsed", elapsed),
				logging.String("request_id", middleware.GetReqID(r.Context())))
		})
	}
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
