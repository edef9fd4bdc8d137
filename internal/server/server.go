package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/BRAVO68WEB/demoapp/internal/config"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Server is the demoapp HTTP service. One instance is built by the entry
// point and owns the listener for the life of the process.
type Server struct {
	cfg       config.Config
	log       *logrus.Logger
	accessLog bool
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for the listening line and access logs.
func WithLogger(l *logrus.Logger) Option {
	return func(s *Server) { s.log = l }
}

// WithAccessLog enables one log entry per request.
func WithAccessLog(on bool) Option {
	return func(s *Server) { s.accessLog = on }
}

// New creates a new Server for cfg.
func New(cfg config.Config, opts ...Option) *Server {
	s := &Server{cfg: cfg, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the snapshot the server was built with.
func (s *Server) Config() config.Config { return s.cfg }

// Handler returns the routing table: GET / and nothing else.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /{$}", RootHandler())
	return RequestID(s.log, s.accessLog)(mux)
}

// Listen binds the configured port.
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", s.cfg.Addr(), err)
	}
	return ln, nil
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully.
// It logs the listening URL once before accepting connections.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	s.log.Infof("App listening at %s", listenURL(ln))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// Run binds the configured port and serves until ctx is cancelled.
// A bind failure is returned as is; there is no retry.
func (s *Server) Run(ctx context.Context) error {
	ln, err := s.Listen()
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// listenURL reports the bound port, which differs from the configured one
// only when the configured port is 0.
func listenURL(ln net.Listener) string {
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		return "http://localhost:" + strconv.Itoa(addr.Port)
	}
	return "http://" + ln.Addr().String()
}
