// Package server is the development server of the menu widgets. It serves the
// demo page, the wasm bundle, the current menu spec and the widget config, and
// reloads the menu spec when its file changes.
package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/mchmarny/breve/pkg/config"
	"github.com/mchmarny/breve/pkg/logger"
	"github.com/mchmarny/breve/pkg/menu"
	"github.com/mchmarny/breve/pkg/metric"
)

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = 9876

	// DefaultReadTimeout is the maximum duration for reading the entire request,
	// including the body.
	DefaultReadTimeout = 10 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of
	// the response. The wasm bundle is a few megabytes, so keep it generous.
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next
	// request when keep-alives are enabled.
	DefaultIdleTimeout = 60 * time.Second

	// DefaultShutdownTimeout is the maximum duration to wait for active
	// connections to close during shutdown.
	DefaultShutdownTimeout = 5 * time.Second

	// DefaultMaxHeaderBytes caps the request header size.
	DefaultMaxHeaderBytes = 1 << 20 // 1 MB
)

// ErrNoMenu is returned by New when no menu file is configured.
var ErrNoMenu = errors.New("menu file is required")

// Server defines the development server.
type Server interface {
	// Serve starts the HTTP server and the menu file watcher and blocks until
	// the context is canceled. Returns nil on graceful shutdown.
	Serve(ctx context.Context) error

	// IsRunning returns true once the socket is bound and until the server
	// stops. Safe for concurrent use.
	IsRunning() bool

	// Handler returns the router, for tests and for embedding.
	Handler() http.Handler
}

// server is the internal implementation of the Server interface.
type server struct {
	router          http.Handler
	port            int
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	maxHeaderBytes  int
	errLog          *log.Logger
	tlsConfig       *TLSConfig
	registry        *prometheus.Registry
	extra           map[string]http.Handler

	menuFile  string
	assetsDir string
	cfg       config.Config
	reloads   *metric.Counter

	mu      sync.RWMutex // protects running and the current menu
	running bool
	spec    *menu.Spec
	raw     []byte
}

// TLSConfig contains the certificate and key file paths for HTTPS.
type TLSConfig struct {
	CertFile string // Path to the TLS certificate file
	KeyFile  string // Path to the TLS private key file
}

// Option is a functional option for configuring the Server.
type Option func(*server)

// WithPort sets the port number. Defaults to DefaultPort. Zero picks a free
// port.
func WithPort(port int) Option {
	return func(s *server) { s.port = port }
}

// WithReadTimeout sets the maximum duration for reading the entire request.
func WithReadTimeout(d time.Duration) Option {
	return func(s *server) { s.readTimeout = d }
}

// WithWriteTimeout sets the maximum duration for writing the response.
func WithWriteTimeout(d time.Duration) Option {
	return func(s *server) { s.writeTimeout = d }
}

// WithIdleTimeout sets the keep-alive idle timeout.
func WithIdleTimeout(d time.Duration) Option {
	return func(s *server) { s.idleTimeout = d }
}

// WithShutdownTimeout sets the grace period of a shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *server) { s.shutdownTimeout = d }
}

// WithMaxHeaderBytes sets the maximum size of request headers.
func WithMaxHeaderBytes(n int) Option {
	return func(s *server) { s.maxHeaderBytes = n }
}

// WithTLS serves HTTPS with the given certificate and key files. Some browsers
// only expose clipboard APIs to menu callbacks on secure origins.
func WithTLS(cfg TLSConfig) Option {
	return func(s *server) { s.tlsConfig = &cfg }
}

// WithHandler registers an additional handler for pattern.
func WithHandler(pattern string, handler http.Handler) Option {
	return func(s *server) { s.extra[pattern] = handler }
}

// WithMenuFile sets the YAML or JSON menu spec to serve. Required.
func WithMenuFile(path string) Option {
	return func(s *server) { s.menuFile = path }
}

// WithAssetsDir serves the files of dir, typically the wasm bundle and
// wasm_exec.js, under /assets/.
func WithAssetsDir(dir string) Option {
	return func(s *server) { s.assetsDir = dir }
}

// WithConfig sets the widget config served at /config.
func WithConfig(cfg config.Config) Option {
	return func(s *server) { s.cfg = cfg }
}

// WithRegistry sets the Prometheus registry exposed at /metrics. Defaults to
// a fresh registry per server so tests do not collide.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *server) {
		if reg != nil {
			s.registry = reg
		}
	}
}

// New creates the server and loads the menu file.
//
// Default configuration:
//   - Port: 9876
//   - ReadTimeout: 10s
//   - WriteTimeout: 30s
//   - IdleTimeout: 60s
//   - ShutdownTimeout: 5s
//   - MaxHeaderBytes: 1 MB
func New(opts ...Option) (Server, error) {
	s := &server{
		port:            DefaultPort,
		readTimeout:     DefaultReadTimeout,
		writeTimeout:    DefaultWriteTimeout,
		idleTimeout:     DefaultIdleTimeout,
		shutdownTimeout: DefaultShutdownTimeout,
		maxHeaderBytes:  DefaultMaxHeaderBytes,
		registry:        prometheus.NewRegistry(),
		errLog:          logger.NewLogLogger(slog.LevelError),
		extra:           map[string]http.Handler{},
		cfg:             config.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.menuFile == "" {
		return nil, ErrNoMenu
	}
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}
	if err := s.load(); err != nil {
		return nil, err
	}

	s.reloads = metric.NewCounterWithRegistry(s.registry, "menu_reloads_total",
		"Number of menu file reloads, by result.", "result")
	s.router = s.routes()

	slog.Info("server initialized",
		"port", s.port,
		"menu", s.menuFile,
		"assets", s.assetsDir,
		"items", s.current().Len())

	return s, nil
}

func (s *server) Handler() http.Handler { return s.router }

// IsRunning returns true if the server is accepting connections.
func (s *server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.running
}

func (s *server) setRunning(v bool) {
	s.mu.Lock()
	s.running = v
	s.mu.Unlock()
}

// Serve runs three goroutines under one errgroup:
//  1. the HTTP server on a pre-bound listener
//  2. the shutdown goroutine, waiting for context cancellation
//  3. the menu file watcher
//
// http.ErrServerClosed is not an error. A failing watcher stops the server.
func (s *server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", s.port),
		Handler:        s.router,
		ReadTimeout:    s.readTimeout,
		WriteTimeout:   s.writeTimeout,
		IdleTimeout:    s.idleTimeout,
		MaxHeaderBytes: s.maxHeaderBytes,
		ErrorLog:       s.errLog,
	}

	listener, err := s.listen(srv.Addr)
	if err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		// running only after the socket is bound
		s.setRunning(true)
		defer s.setRunning(false)

		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		slog.Info("shutting down server", "grace_period", s.shutdownTimeout)
		start := time.Now()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "error", err)
		}

		slog.Info("server shutdown complete", "duration", time.Since(start))
		return nil
	})

	g.Go(func() error {
		return s.watch(gCtx)
	})

	return g.Wait()
}

func (s *server) listen(addr string) (net.Listener, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to create listener: %w", err)
	}

	if s.tlsConfig == nil {
		slog.Info("starting server", "addr", listener.Addr().String())
		return listener, nil
	}

	cert, err := tls.LoadX509KeyPair(s.tlsConfig.CertFile, s.tlsConfig.KeyFile)
	if err != nil {
		listener.Close()
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}

	slog.Info("starting TLS server", "addr", listener.Addr().String())
	return tls.NewListener(listener, &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}), nil
}
