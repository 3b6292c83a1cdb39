package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/custodia-labs/eatwise-cli/internal/core/ports/driving"
	"github.com/custodia-labs/eatwise-cli/internal/logger"
)

// DefaultAddr is the listen address used when none is given.
const DefaultAddr = "127.0.0.1:8765"

// ErrMissingExtractService is returned when the extract service is not provided.
var ErrMissingExtractService = errors.New("httpapi: extract service is required")

// Ports aggregates the driving ports served over HTTP.
type Ports struct {
	// Extract runs the extraction heuristic. Required.
	Extract driving.ExtractService

	// Scan controls the scan session. Optional.
	Scan driving.ScanService

	// History exposes past scan results. Optional.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Extract == nil {
		return ErrMissingExtractService
	}
	return nil
}

// Server is the HTTP API server.
type Server struct {
	ports  *Ports
	router *mux.Router
}

// NewServer creates a server and registers its routes.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, err
	}

	s := &Server{
		ports:  ports,
		router: mux.NewRouter(),
	}
	s.routes()
	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	v1 := s.router.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/extract", s.handleExtract).Methods(http.MethodPost)
	v1.HandleFunc("/scan/start", s.handleScanStart).Methods(http.MethodPost)
	v1.HandleFunc("/scan/stop", s.handleScanStop).Methods(http.MethodPost)
	v1.HandleFunc("/scan/status", s.handleScanStatus).Methods(http.MethodGet)
	v1.HandleFunc("/history", s.handleHistoryList).Methods(http.MethodGet)
	v1.HandleFunc("/history", s.handleHistoryClear).Methods(http.MethodDelete)
	v1.HandleFunc("/history/{id}", s.handleHistoryGet).Methods(http.MethodGet)
	v1.HandleFunc("/history/{id}", s.handleHistoryDelete).Methods(http.MethodDelete)

	s.router.Use(logRequests)
}

// Run serves on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	logger.Info("http api listening on %s", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("%s %s (%s)", r.Method, r.URL.Path, time.Since(start))
	})
}
