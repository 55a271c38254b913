// Package server wires a toolset into an MCP server and serves it over
// stdio or streamable HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/toolforge/toolforge/pkg/telemetry"
	"github.com/toolforge/toolforge/pkg/toolset"
)

const (
	mcpEndpoint            = "/mcp"
	healthEndpoint         = "/health"
	metricsEndpoint        = "/metrics"
	defaultShutdownTimeout = 10 * time.Second
)

// Options configures the MCP server.
type Options struct {
	Name         string
	Version      string
	Instructions string
	// Metrics enables tool-call instrumentation and the /metrics endpoint.
	Metrics bool
}

// NewMCPServer creates an MCP server and registers every tool in the
// toolset. When metrics are enabled, handlers are instrumented against the
// default Prometheus registerer.
func NewMCPServer(opts Options, ts *toolset.Toolset) (*server.MCPServer, error) {
	serverOpts := []server.ServerOption{
		server.WithLogging(),
		server.WithToolCapabilities(true),
	}
	if opts.Instructions != "" {
		serverOpts = append(serverOpts, server.WithInstructions(opts.Instructions))
	}

	mcpServer := server.NewMCPServer(opts.Name, opts.Version, serverOpts...)

	var middleware []toolset.HandlerMiddleware
	if opts.Metrics {
		metrics := telemetry.NewMetrics(prometheus.DefaultRegisterer)
		middleware = append(middleware, metrics.WrapHandler)
	}

	if err := ts.RegisterMCP(mcpServer, middleware...); err != nil {
		return nil, err
	}
	return mcpServer, nil
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Info("Incoming request", "method", r.Method, "path", r.URL.Path, "remote_addr", r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}

// Serve runs the MCP server over streamable HTTP until the context is
// cancelled or a termination signal arrives.
func Serve(ctx context.Context, mcpServer *server.MCPServer, listenAddr string, metrics bool) error {
	mux := http.NewServeMux()

	httpServer := &http.Server{
		Addr:    listenAddr,
		Handler: loggingMiddleware(mux),
	}

	streamableHTTPServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithStreamableHTTPServer(httpServer),
		server.WithStateLess(true),
	)
	mux.Handle(mcpEndpoint, streamableHTTPServer)
	mux.Handle("/", streamableHTTPServer)

	mux.HandleFunc(healthEndpoint, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if metrics {
		mux.Handle(metricsEndpoint, promhttp.Handler())
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGHUP, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "listen_addr", listenAddr, "mcp_endpoint", mcpEndpoint)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-sigChan:
		slog.Warn("Received signal, initiating graceful shutdown", "signal", sig)
		cancel()
	case <-ctx.Done():
		slog.Warn("Context cancelled, initiating graceful shutdown")
	case err := <-serverErr:
		slog.Error("HTTP server error", "error", err)
		return err
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer shutdownCancel()

	slog.Info("Shutting down HTTP server gracefully")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
		return err
	}

	slog.Info("HTTP server shutdown complete")
	return nil
}
