package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the single method endpoint plus the metrics endpoint.
// Unknown routes answer with the 404 envelope rather than a bare body.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(withRequestID)
	r.Use(recoverer(h.logger))

	r.Post("/method", h.handleMethod)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(w, "", http.StatusNotFound)
	})
	return r
}
