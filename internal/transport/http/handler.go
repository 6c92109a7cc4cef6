// Package httptransport is the thin HTTP edge of the service: request
// framing, the response envelope, request ids and panic containment.
// Everything with business meaning is delegated to the service layer.
package httptransport

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scoring_api_requests_total",
		Help: "Handled method requests by response code",
	}, []string{"code"})

	requestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "scoring_api_request_duration_seconds",
		Help:    "Method request handling latency",
		Buckets: []float64{.005, .01, .05, .1, .5, 1, 5, 15},
	})
)

// Dispatcher is the service-layer contract the handler calls into.
type Dispatcher interface {
	Handle(ctx context.Context, body map[string]any) (payload any, code int, meta map[string]any)
}

// Handler serves the single method endpoint.
type Handler struct {
	svc    Dispatcher
	logger *slog.Logger
}

// NewHandler builds the HTTP handler around the dispatcher.
func NewHandler(svc Dispatcher, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// handleMethod implements POST /method. Body framing errors are decided
// here: an empty body is an invalid request (422), unparseable JSON is a
// bad request (400); everything past framing belongs to the dispatcher.
func (h *Handler) handleMethod(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := RequestID(r.Context())

	payload, code, meta := h.dispatch(r)

	requestsTotal.WithLabelValues(strconv.Itoa(code)).Inc()
	requestDuration.Observe(time.Since(start).Seconds())

	attrs := []any{"request_id", requestID, "code", code}
	for k, v := range meta {
		attrs = append(attrs, k, v)
	}
	h.logger.Info("method request handled", attrs...)

	writeEnvelope(w, payload, code)
}

func (h *Handler) dispatch(r *http.Request) (any, int, map[string]any) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r.Body); err != nil {
		return "", http.StatusBadRequest, nil
	}
	if len(bytes.TrimSpace(buf.Bytes())) == 0 {
		return "", http.StatusUnprocessableEntity, nil
	}

	dec := json.NewDecoder(&buf)
	dec.UseNumber()
	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		return "", http.StatusBadRequest, nil
	}
	return h.svc.Handle(r.Context(), body)
}
