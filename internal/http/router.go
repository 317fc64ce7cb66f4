package http

import (
	"encoding/json"
	"net/http"

	"helpscout-metrics/internal/shared/loggers"
	"helpscout-metrics/internal/shared/metrics"
	"helpscout-metrics/internal/sinks"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates the ops HTTP router: liveness, the latest report
// snapshot, and prometheus self-telemetry. The reporting job itself never
// serves requests; this surface exists for dashboards and probes.
func NewRouter(snapshot *sinks.Snapshot, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	router.Get("/healthz", handleHealthz)
	router.Get("/report", handleReport(snapshot))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// handleReport serves the latest reported metric values as JSON. Before
// the first successful tick the body is an empty object.
func handleReport(snapshot *sinks.Snapshot) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot.Values()); err != nil {
			loggers.Ctx(r.Context()).Error().Err(err).Msg("failed to encode report snapshot")
		}
	}
}
