package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/prometheus/common/promslog"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/toolforge/toolforge/pkg/config"
	"github.com/toolforge/toolforge/pkg/server"
)

const (
	serverName    = "toolforge"
	serverVersion = "1.0.0"

	serverInstructions = `This server exposes tools declared with the toolforge definition DSL.
Call list-style tools first to discover available data, then act on exact
values returned by them.`
)

func main() {
	var configPath = flag.String("config", "", "Path to TOML config file")
	var listen = flag.String("listen", "", "Listen address for HTTP mode (e.g., :9100, 127.0.0.1:8080)")
	var logLevel = flag.String("log-level", "", "Log level: debug, info, warn, error")
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Invalid config: %v", err)
		}
		cfg = loaded
	}

	// Flags override the config file.
	if *listen != "" {
		cfg.Listen = *listen
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	configureLogging(cfg.LogLevel, cfg.LogFormat)

	ts := demoToolset()

	opts := server.Options{
		Name:         serverName,
		Version:      serverVersion,
		Instructions: serverInstructions,
		Metrics:      cfg.Metrics && cfg.Listen != "",
	}

	srv, err := server.NewMCPServer(opts, ts)
	if err != nil {
		log.Fatalf("Failed to create MCP server: %v", err)
	}

	slog.Info("Starting server", "toolset", ts.Name(), "tools", len(ts.Definitions()))

	if cfg.Listen != "" {
		if err := server.Serve(context.Background(), srv, cfg.Listen, opts.Metrics); err != nil {
			log.Fatalf("HTTP server failed: %v", err)
		}
	} else {
		stdioServer := mcpserver.NewStdioServer(srv)
		if err := stdioServer.Listen(context.Background(), os.Stdin, os.Stdout); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}
}

// configureLogging sets up the slog logger with the specified level and format
func configureLogging(levelStr, formatStr string) {
	level := promslog.NewLevel()
	if err := level.Set(levelStr); err != nil {
		log.Fatal(err.Error())
	}

	format := promslog.NewFormat()
	if err := format.Set(formatStr); err != nil {
		log.Fatal(err.Error())
	}

	logger := promslog.New(&promslog.Config{
		Level:  level,
		Format: format,
		Style:  promslog.GoKitStyle,
	})
	slog.SetDefault(logger)
}
