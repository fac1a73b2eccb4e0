package mcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/astrolabe/internal/logger"
)

// Server exposes chart tools and saved-chart resources over MCP.
type Server struct {
	ports   *Ports
	server  *mcp.Server
	limiter *rate.Limiter
	now     func() time.Time
}

type options struct {
	version string
	limit   rate.Limit
	burst   int
}

// Option configures a Server.
type Option func(*options)

// WithVersion sets the version reported to clients during initialisation.
func WithVersion(v string) Option {
	return func(o *options) {
		if v != "" {
			o.version = v
		}
	}
}

// WithRateLimit caps tool calls at perSecond with bursts of up to burst.
// Calls over the limit wait rather than fail.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(o *options) {
		o.limit = rate.Limit(perSecond)
		o.burst = burst
	}
}

// NewServer registers tools and resources against ports. Only the chart
// service is required.
func NewServer(ports *Ports, opts ...Option) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	o := options{version: "dev", limit: 20, burst: 40}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Server{
		ports:   ports,
		server:  mcp.NewServer(&mcp.Implementation{Name: "astrolabe", Version: o.version}, nil),
		limiter: rate.NewLimiter(o.limit, o.burst),
		now:     time.Now,
	}
	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run serves a single client over stdin and stdout until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP listens on addr and serves streamable HTTP until ctx is done.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts HTTP connections on ln. The MCP endpoint is mounted at the
// root and /healthz answers liveness probes. Serve closes ln when it returns.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	mux.Handle("/", mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil))

	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("MCP HTTP shutdown: %v", err)
		}
	}()

	logger.Debug("MCP HTTP server on %s", ln.Addr())
	err := srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		<-stopped
		return nil
	}
	return err
}

// wait blocks until the rate limiter admits another tool call.
func (s *Server) wait(ctx context.Context) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limited: %w", err)
	}
	return nil
}
