// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes document generation over HTTP for the web client.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/pdiddy/writer/internal/assemble"
	"github.com/pdiddy/writer/pkg/types"
)

const (
	maxBodyBytes    = 1 << 20
	shutdownTimeout = 10 * time.Second
)

// Generator produces documents. *assemble.Service satisfies it.
type Generator interface {
	Generate(ctx context.Context, req assemble.Request) (assemble.Outcome, error)
}

// Server serves the HTTP API.
type Server struct {
	cfg      types.Config
	gen      Generator
	gatherer prometheus.Gatherer
	log      logrus.FieldLogger
}

// New returns a Server. gatherer may be nil to disable /metrics.
func New(cfg types.Config, gen Generator, gatherer prometheus.Gatherer, log logrus.FieldLogger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Server{cfg: cfg, gen: gen, gatherer: gatherer, log: log}
}

// Handler returns the routed API with CORS and token checks applied.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.Handle("/", s.status()).Methods(http.MethodGet)
	router.Handle("/templates", s.listTemplates(".txt")).Methods(http.MethodGet)
	router.Handle("/report-templates", s.listTemplates(".txt", ".tex")).Methods(http.MethodGet)
	router.Handle("/placeholders", s.resumePlaceholders()).Methods(http.MethodGet)
	router.Handle("/report-placeholders", s.reportPlaceholders()).Methods(http.MethodGet)
	router.Handle("/generate-pdf", s.generateResume()).Methods(http.MethodPost)
	router.Handle("/generate-report-pdf", s.generateReport()).Methods(http.MethodPost)
	router.Handle("/generate-cv", s.generateLetter()).Methods(http.MethodPost)
	if s.gatherer != nil {
		router.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	// Outside the router so preflight requests reach them even though no
	// route accepts OPTIONS.
	return s.cors(s.requireToken(router))
}

// Run listens on the configured address until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Server.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled, then shuts down
// gracefully, letting in-flight requests finish.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.log.WithField("addr", ln.Addr().String()).Info("serving HTTP API")

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving HTTP: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down HTTP server: %w", err)
	}
	s.log.Info("HTTP API stopped")
	return nil
}
