package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vishalmourya/car-saarthi/internal/advisor"
	"github.com/vishalmourya/car-saarthi/internal/config"
)

type Server struct {
	cfg     config.ServerConfig
	server  *http.Server
	router  *chi.Mux
	advisor *advisor.Advisor
}

func New(cfg config.Config, adv *advisor.Advisor) *Server {
	s := &Server{
		cfg:     cfg.Server,
		router:  chi.NewRouter(),
		advisor: adv,
	}

	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	// The chain path makes four model calls back to back.
	s.router.Use(middleware.Timeout(3 * time.Minute))

	// Serve the web form
	fs := http.FileServer(http.Dir("web/static"))
	s.router.Handle("/*", fs)

	// API routes
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/recommend", s.handleRecommend)
		r.Get("/health", s.handleHealth)
	})
}

// Handler exposes the route tree for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run() error {
	// Create a channel to listen for errors coming from the listener
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("starting server", "address", s.server.Addr)
		serverErrors <- s.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		slog.Info("starting shutdown", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
	}

	return nil
}
