package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Version is the MCP server version reported during initialisation.
const Version = "0.1.0"

// shutdownTimeout bounds how long RunHTTP waits for open streams to close.
const shutdownTimeout = 5 * time.Second

// Server exposes ingredient extraction and the scan session as MCP tools,
// and the scan history as resources.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer creates a Server over ports. Only Extract is required; tools
// backed by a missing Scan or History port report that they are unavailable.
func NewServer(ports *Ports) (*Server, error) {
	if ports == nil {
		return nil, ErrMissingExtractService
	}
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "eatwise",
		Version: Version,
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, &mcp.ServerOptions{Instructions: instructions(ports)}),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// instructions tells the client which parts of eatwise are live.
func instructions(p *Ports) string {
	var b strings.Builder
	b.WriteString("eatwise finds the ingredient list in product or label text. ")
	b.WriteString("Call extract_ingredients with the text; pass anchors or stops to override the configured keywords.")
	if p.Scan != nil {
		b.WriteString(" start_scan reads the bound screen once and returns the block, the raw text fallback or a status line.")
		b.WriteString(" scan_status reports whether a screen is bound.")
	}
	if p.History != nil {
		b.WriteString(" Past scans are listed at " + uriScheme + "history.")
	}
	return b.String()
}

// Run serves MCP over stdio until ctx is cancelled or the client hangs up.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns the streamable HTTP handler for this server.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)
}

// RunHTTP serves MCP over streamable HTTP on addr until ctx is cancelled.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		httpServer.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
