package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/httplog"

	"github.com/deepmindru-afk/superuzyr/internal/application/port/input"
	"github.com/deepmindru-afk/superuzyr/internal/application/port/output"
)

type Config struct {
	Addr            string
	AdminToken      string
	PublicBaseURL   string
	ShutdownTimeout time.Duration
	// TrustProxyHeaders lets X-Forwarded-Proto/Host pick the link base
	// when PublicBaseURL is unset.
	TrustProxyHeaders bool
	// AccessLog enables httplog request logging.
	AccessLog bool
}

type Server struct {
	tasks      input.TaskCatalog
	runner     input.TaskRunner
	logger     output.LoggerPort
	config     Config
	httpServer *http.Server
}

func NewServer(tasks input.TaskCatalog, runner input.TaskRunner, logger output.LoggerPort, cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":3000"
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	return &Server{
		tasks:  tasks,
		runner: runner,
		logger: logger.Named("http"),
		config: cfg,
	}
}

func (s *Server) accessLogger() func(http.Handler) http.Handler {
	if !s.config.AccessLog {
		return func(next http.Handler) http.Handler { return next }
	}
	return httplog.RequestLogger(httplog.NewLogger("superuzyr", httplog.Options{
		JSON:    true,
		Concise: true,
	}))
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.config.Addr, err)
	}
	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "addr", ln.Addr().String())
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
