// Package service routes validated envelopes to the two scoring methods
// and maps every outcome to a transport-agnostic (payload, status) pair.
// The store is an injected dependency; the service itself keeps no mutable
// state and is safe for concurrent use.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"scoring-api/internal/scoring/auth"
	"scoring-api/internal/scoring/request"
	"scoring-api/internal/scoring/schema"
	"scoring-api/internal/scoring/store"
)

type methodFunc func(ctx context.Context, req *request.MethodRequest) (any, map[string]any, int)

// Service dispatches authenticated method calls.
type Service struct {
	store   store.Store
	auth    *auth.Checker
	logger  *slog.Logger
	methods map[string]methodFunc
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// New builds a Service around the given store and token checker.
func New(st store.Store, checker *auth.Checker, opts ...Option) (*Service, error) {
	if st == nil {
		return nil, fmt.Errorf("store is required")
	}
	if checker == nil {
		return nil, fmt.Errorf("auth checker is required")
	}

	s := &Service{store: st, auth: checker, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	// closed method set; an unknown name is a routing failure, not a
	// validation failure
	s.methods = map[string]methodFunc{
		request.MethodOnlineScore:      s.onlineScore,
		request.MethodClientsInterests: s.clientsInterests,
	}
	return s, nil
}

// Handle validates, authenticates and dispatches one decoded request body.
// It returns the response payload (an error message string on failure —
// empty means "use the default for the status"), the status code, and
// method context for the access log.
func (s *Service) Handle(ctx context.Context, body map[string]any) (any, int, map[string]any) {
	if len(body) == 0 {
		return "", http.StatusUnprocessableEntity, nil
	}

	req, err := request.ParseMethodRequest(body)
	if err != nil {
		return err.Error(), http.StatusUnprocessableEntity, nil
	}
	if !s.auth.Check(req) {
		return "", http.StatusForbidden, nil
	}

	method, ok := s.methods[req.Method]
	if !ok {
		return "", http.StatusBadRequest, nil
	}
	payload, meta, code := method(ctx, req)
	return payload, code, meta
}

// argumentsError maps argument-schema failures to 422 with the formatted
// message; anything else is an internal fault.
func argumentsError(err error) (any, int) {
	var verr *schema.ValidationError
	var cerr *schema.ConstraintError
	if errors.As(err, &verr) || errors.As(err, &cerr) {
		return err.Error(), http.StatusUnprocessableEntity
	}
	return "", http.StatusInternalServerError
}

func (s *Service) onlineScore(ctx context.Context, req *request.MethodRequest) (any, map[string]any, int) {
	args, err := request.ParseOnlineScoreArgs(req.Arguments)
	if err != nil {
		payload, code := argumentsError(err)
		return payload, nil, code
	}
	meta := args.Context()

	if req.IsAdmin() {
		return map[string]any{"score": float64(adminScore)}, meta, http.StatusOK
	}
	return map[string]any{"score": s.score(ctx, args)}, meta, http.StatusOK
}

func (s *Service) clientsInterests(ctx context.Context, req *request.MethodRequest) (any, map[string]any, int) {
	args, err := request.ParseClientsInterestsArgs(req.Arguments)
	if err != nil {
		payload, code := argumentsError(err)
		return payload, nil, code
	}
	meta := args.Context()

	interests, err := s.interests(ctx, args)
	if err != nil {
		// no safe default for interests: a miss or outage fails the request
		s.logger.Error("interests lookup failed", "err", err)
		return "", meta, http.StatusInternalServerError
	}
	return interests, meta, http.StatusOK
}
