// SPDX-License-Identifier: MIT

// Package server exposes a GraphEngine over HTTP/JSON.
package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/graphd/engine"
	"github.com/katalvlaran/graphd/internal/config"
	"github.com/katalvlaran/graphd/internal/log"
	"github.com/katalvlaran/graphd/internal/metrics"
)

// Server exposes a GraphEngine over HTTP.
type Server struct {
	l        *log.ZapLogger
	cfg      *config.Config
	engine   *engine.GraphEngine
	metrics  *metrics.Metrics
	validate *validator.Validate
	limiter  *rate.Limiter
	mux      *chi.Mux
}

// New wires the router. m may be nil, in which case /metrics is not served.
func New(cfg *config.Config, e *engine.GraphEngine, l *log.ZapLogger, m *metrics.Metrics) *Server {
	s := &Server{
		l:        l,
		cfg:      cfg,
		engine:   e,
		metrics:  m,
		validate: newValidator(),
		mux:      chi.NewRouter(),
	}
	if cfg.RateLimit.RPS > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
	}
	s.setupHandlers()

	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) setupHandlers() {
	s.mux.Use(
		middleware.RequestID,
		middleware.RealIP,
		s.l.Middleware(),
		middleware.Recoverer,
		s.countRequests,
	)
	s.mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	s.mux.Get("/health", s.health)
	if s.metrics != nil {
		s.mux.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	s.mux.Group(func(r chi.Router) {
		r.Use(s.rateLimit)

		r.Post("/create_graph", s.createGraph)
		r.Post("/create_graph_from_file", s.createGraphFromFile)
		r.Post("/reset_graph", s.resetGraph)
		r.Post("/add_vertex", s.addVertex)
		r.Post("/add_edge", s.addEdge)
		r.Post("/insert_batch_items", s.insertBatchItems)
		r.Post("/insert_batch_info", s.insertBatchInfo)

		r.Get("/get_graph_info", s.graphInfo)
		r.Get("/adjacency", s.adjacency)
		r.Get("/degree", s.degree)
		r.Get("/shortest_path", s.shortestPath)
		r.Get("/verify_adj", s.verifyAdj)
		r.Get("/check_eulerian", s.checkEulerian)
		r.Get("/eulerian_path", s.eulerianPath)
	})
}

// Start serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.mux,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
	g, gctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		s.l.Info("starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-ctx.Done():
		s.l.Info("gracefully shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrapf(err, "failed to gracefully shutdown HTTP server")
		}
		return errors.Wrap(g.Wait(), "HTTP server stopped")

	case <-gctx.Done():
		return errors.Wrapf(g.Wait(), "failed to start HTTP server on %s", addr)
	}
}
